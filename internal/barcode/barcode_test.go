package barcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Deterministic(t *testing.T) {
	inputs := []string{"100", "INV-2024", "01712345678", ""}
	for _, in := range inputs {
		assert.Equal(t, Code39.Encode(in), Code39.Encode(in), "Code39 must be pure for %q", in)
		assert.Equal(t, Numeric.Encode(in), Numeric.Encode(in), "Numeric must be pure for %q", in)
	}
}

func TestEncode_NeverEmptyNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"100",
		"hello world",
		"আদেশ",       // unicode
		"!@#^&*()_=", // symbols outside both tables
		"\x00\xff",
		strings.Repeat("9", 200),
	}

	for _, in := range inputs {
		for _, enc := range []*Encoding{Code39, Numeric} {
			bits := enc.Encode(in)
			require.NotEmpty(t, bits, "bitstring must never be empty for %q", in)
			for _, c := range bits {
				require.True(t, c == '0' || c == '1', "bitstring must contain only 0/1, got %q in %q", c, in)
			}
		}
	}
}

func TestEncode_GuardPatterns(t *testing.T) {
	bits := Code39.Encode("1")
	assert.True(t, strings.HasPrefix(bits, "010010100"))
	assert.True(t, strings.HasSuffix(bits, "010010100"))

	bits = Numeric.Encode("7")
	assert.True(t, strings.HasPrefix(bits, "101"))
	assert.True(t, strings.HasSuffix(bits, "101"))
}

func TestEncode_Code39Layout(t *testing.T) {
	// guard + spacer + pattern('1') + guard
	want := "010010100" + "0" + "100100001" + "010010100"
	assert.Equal(t, want, Code39.Encode("1"))

	// lowercase is uppercased before lookup
	assert.Equal(t, Code39.Encode("A"), Code39.Encode("a"))
}

func TestEncode_Fallbacks(t *testing.T) {
	// '?' is not in the Code 39 table
	want := "010010100" + "0" + "0010010100" + "010010100"
	assert.Equal(t, want, Code39.Encode("?"))

	// non-digits in the numeric encoding collapse to the pattern for '5'
	assert.Equal(t, Numeric.Encode("5"), Numeric.Encode("x"))
}

func TestBars_Geometry(t *testing.T) {
	bits := "10110"
	bars := Bars(bits, RenderOptions{Width: 100, Height: 40, MinBarWidth: 0.8})

	require.Len(t, bars, len(bits))
	assert.Equal(t, 20.0, bars[0].Width, "width / len(bits)")
	assert.Equal(t, 40.0, bars[0].Height)
	assert.True(t, bars[0].Dark)
	assert.False(t, bars[1].Dark)
	assert.Equal(t, 20.0, bars[1].X)
}

func TestBars_MinimumBarWidth(t *testing.T) {
	bits := strings.Repeat("1", 200)
	bars := Bars(bits, RenderOptions{Width: 100, MinBarWidth: 1.0, Height: 40})
	require.NotEmpty(t, bars)
	assert.Equal(t, 1.0, bars[0].Width, "bars must not shrink below the minimum")
}

func TestBars_LabelReservesHeight(t *testing.T) {
	bars := Bars("101", RenderOptions{Width: 30, Height: 40, MinBarWidth: 0.8, Label: "101", LabelHeight: 10})
	require.NotEmpty(t, bars)
	assert.Equal(t, 30.0, bars[0].Height)
}

func TestSVG(t *testing.T) {
	svg := SVG(Numeric.Encode("42"), RenderOptions{Width: 80, Height: 30, MinBarWidth: 1.0, Label: "42", LabelHeight: 8})
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "<rect")
	assert.Contains(t, svg, ">42<")

	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" width="0.0" height="0.0"></svg>`, SVG("", RenderOptions{}))
}
