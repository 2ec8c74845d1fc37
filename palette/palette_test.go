package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette_Color(t *testing.T) {
	tests := map[string]struct {
		palette Palette
		index   int
		want    Color
	}{
		"first":           {palette: Default, index: 0, want: "#217ecaff"},
		"last":            {palette: Default, index: 5, want: "#a31d60ff"},
		"wraps":           {palette: Default, index: 6, want: "#217ecaff"},
		"wraps twice":     {palette: Default, index: 13, want: "#0b7954ff"},
		"negative":        {palette: Default, index: -1, want: "#a31d60ff"},
		"custom":          {palette: Palette{"#000000", "#ffffff"}, index: 3, want: "#ffffff"},
		"empty uses dflt": {palette: nil, index: 1, want: "#0b7954ff"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, test.palette.Color(test.index))
		})
	}
}

func TestPalette_ColorIsStableUnderReordering(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Equal(t, Default.Color(i), Default.Color(i+len(Default)))
	}
}

func TestColor_RGBA(t *testing.T) {
	r, g, b, a, err := Color("#217ecaff").RGBA()
	require.NoError(t, err)
	assert.Equal(t, []uint8{0x21, 0x7e, 0xca, 0xff}, []uint8{r, g, b, a})

	r, g, b, a, err = Color("#0b7954").RGBA()
	require.NoError(t, err)
	assert.Equal(t, []uint8{0x0b, 0x79, 0x54, 0xff}, []uint8{r, g, b, a})

	_, _, _, _, err = Color("#zzzzzz").RGBA()
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, _, _, _, err = Color("#123").RGBA()
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestColor_RGB(t *testing.T) {
	assert.Equal(t, Color("#217eca"), Color("#217ecaff").RGB())
	assert.Equal(t, Color("#217eca"), Color("#217eca").RGB())
}

func TestPalette_Validate(t *testing.T) {
	assert.NoError(t, Default.Validate())
	assert.Error(t, Palette{"#000000", "red"}.Validate())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "cpu", Label(0, "cpu"))
	assert.Equal(t, "Series 1", Label(0, ""))
	assert.Equal(t, "Series 12", Label(11, ""))
}
