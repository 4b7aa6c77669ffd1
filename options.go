package tabclip

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Options carries the pager settings the export engine honors.
type Options struct {
	// Force8Bit treats every byte as one display column wide instead of
	// decoding UTF-8.
	Force8Bit bool `yaml:"force_8bit"`

	// EmptyStringIsNull renders empty fields as NULL in CSV and SQL output.
	EmptyStringIsNull bool `yaml:"empty_string_is_null"`

	// NoCursor disables the row cursor; CmdCopy then covers the whole table.
	NoCursor bool `yaml:"no_cursor"`

	// VerticalCursor enables the column cursor; CmdCopy with both cursors
	// active copies the cell at their crossing.
	VerticalCursor bool `yaml:"vertical_cursor"`
}

// LoadOptions decodes Options from YAML. Empty input yields the zero value.
func LoadOptions(r io.Reader) (Options, error) {
	var opts Options
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return Options{}, nil
		}
		return Options{}, err
	}
	return opts, nil
}
