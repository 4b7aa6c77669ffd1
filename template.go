package tabclip

// Role classifies one display column of a rendered row.
type Role uint8

const (
	// RoleData marks a character belonging to a field.
	RoleData Role = iota

	// RoleBorder marks an inner column separator. Border characters are
	// subject to column-range filtering.
	RoleBorder

	// RoleDecor marks frame and padding characters, copied verbatim in text
	// format and ignored elsewhere.
	RoleDecor

	// RoleEnd terminates the row.
	RoleEnd
)

// Template tags each display column of a row with its Role. Header rows and
// data rows may carry different templates; see Layout.
type Template []Role

// ParseTemplate builds a Template from a headline string in which each byte
// tags one display column: 'd' for field data, 'I' for an inner column
// separator, 'N' or a newline for the row terminator, and anything else for
// frame decoration.
func ParseTemplate(headline string) Template {
	tmpl := make(Template, 0, len(headline))
	for i := 0; i < len(headline); i++ {
		switch headline[i] {
		case 'd':
			tmpl = append(tmpl, RoleData)
		case 'I':
			tmpl = append(tmpl, RoleBorder)
		case 'N', '\n':
			return append(tmpl, RoleEnd)
		default:
			tmpl = append(tmpl, RoleDecor)
		}
	}
	return tmpl
}
