package tabclip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimSpaces(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"both ends":   {input: "  hello, world  ", want: "hello, world"},
		"leading":     {input: "   x", want: "x"},
		"trailing":    {input: "x   ", want: "x"},
		"untouched":   {input: "x y", want: "x y"},
		"all spaces":  {input: "    ", want: ""},
		"empty":       {input: "", want: ""},
		"inner runes": {input: " žluť ", want: "žluť"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, trimSpaces(tt.input))
		})
	}
}

func TestTrimSpacesIdempotent(t *testing.T) {
	t.Parallel()
	once := trimSpaces("  hello, world  ")
	assert.Equal(t, once, trimSpaces(once))
}

func TestCSVQuote(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input      string
		force8     bool
		emptyNull  bool
		want       string
		wantIsNull bool
	}{
		"plain unchanged":    {input: "abc", want: "abc"},
		"digits unchanged":   {input: "123", want: "123"},
		"comma quoted":       {input: "hello, world", want: `"hello, world"`},
		"quote doubled":      {input: `say "hi"`, want: `"say ""hi"""`},
		"tab quoted":         {input: "a\tb", want: "\"a\tb\""},
		"newline quoted":     {input: "a\nb", want: "\"a\nb\""},
		"cr quoted":          {input: "a\rb", want: "\"a\rb\""},
		"empty":              {input: "", want: `""`},
		"empty as null":      {input: "", emptyNull: true, want: "", wantIsNull: true},
		"null glyph":         {input: "∅", want: "", wantIsNull: true},
		"null glyph force8":  {input: "∅", force8: true, want: "∅"},
		"unicode unchanged":  {input: "žluť", want: "žluť"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, isNull := csvQuote(tt.input, tt.force8, tt.emptyNull)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantIsNull, isNull)
		})
	}
}

func TestCSVQuoteScenarioLength(t *testing.T) {
	t.Parallel()
	got, isNull := csvQuote("hello, world", false, false)
	assert.False(t, isNull)
	assert.Len(t, got, 14)
}

func TestQuoteSQLIdentifier(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"lowercase":        {input: "orders", want: "orders"},
		"with underscore":  {input: "order_total", want: "order_total"},
		"with digits":      {input: "col2", want: "col2"},
		"mixed case":       {input: "Order Total", want: `"Order Total"`},
		"leading digit":    {input: "2col", want: `"2col"`},
		"leading space":    {input: " col", want: `" col"`},
		"inner quote":      {input: `a"b`, want: `"a""b"`},
		"non-ascii":        {input: "sloupec_ž", want: `"sloupec_ž"`},
		"empty unchanged":  {input: "", want: ""},
		"quoted unchanged": {input: `"Order Total"`, want: `"Order Total"`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, quoteSQLIdentifier(tt.input))
		})
	}
}

func TestQuoteSQLIdentifierIdempotent(t *testing.T) {
	t.Parallel()
	once := quoteSQLIdentifier("Order Total")
	assert.Equal(t, once, quoteSQLIdentifier(once))
}

func TestQuoteSQLLiteral(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input     string
		force8    bool
		emptyNull bool
		want      string
	}{
		"integer":            {input: "123", want: "123"},
		"decimal":            {input: "12.5", want: "12.5"},
		"two dots":           {input: "1.2.3", want: "'1.2.3'"},
		"text":               {input: "abc", want: "'abc'"},
		"quote doubled":      {input: "o'brien", want: "'o''brien'"},
		"upper null":         {input: "NULL", want: "NULL"},
		"lower null":         {input: "null", want: "null"},
		"mixed null quoted":  {input: "Null", want: "'Null'"},
		"null glyph":         {input: "∅", want: "NULL"},
		"null glyph force8":  {input: "∅", force8: true, want: "'∅'"},
		"empty":              {input: "", want: "''"},
		"empty as null":      {input: "", emptyNull: true, want: "NULL"},
		"negative not plain": {input: "-1", want: "'-1'"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, quoteSQLLiteral(tt.input, tt.force8, tt.emptyNull))
		})
	}
}
