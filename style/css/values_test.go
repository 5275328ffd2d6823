package css_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/scenecss/style"
	"github.com/npillmayer/scenecss/style/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFont(t *testing.T) {
	ctx := style.DefaultUnitContext()
	f, err := css.ParseFont("18 Amble", ctx)
	require.NoError(t, err)
	assert.Equal(t, css.NewFont("Amble", 18), f)

	f, err = css.ParseFont(`italic bold 20px "Amble Light", sans-serif`, ctx)
	require.NoError(t, err)
	assert.Equal(t, "Amble Light", f.Family)
	assert.Equal(t, 20.0, f.Size)
	assert.Equal(t, "bold", f.Weight)
	assert.Equal(t, "italic", f.Posture)

	ctx.ParentFontSize = 10
	f, err = css.ParseFont("1.5em Amble", ctx)
	require.NoError(t, err)
	assert.Equal(t, 15.0, f.FontSize())

	f, err = css.ParseFont("400 Amble", ctx)
	require.NoError(t, err)
	assert.Equal(t, 400.0, f.Size, "numeric weight in size position is a size")

	for _, bad := range []string{"", "bold", "18", "bold Amble", "-2 Amble"} {
		_, err := css.ParseFont(style.Property(bad), ctx)
		assert.Error(t, err, "font %q", bad)
	}
}

func TestParseOpacity(t *testing.T) {
	tests := map[string]float64{
		".76": 0.76,
		"42%": 0.42,
		"1":   1,
		"1.7": 1,
		"-3":  0,
	}
	for in, expected := range tests {
		x, err := css.ParseOpacity(style.Property(in))
		require.NoError(t, err, in)
		assert.InDelta(t, expected, x, 1e-9, in)
	}
	for _, bad := range []string{"half", "NaN", "NaN%", "Inf", "-Inf", "+Inf%"} {
		_, err := css.ParseOpacity(style.Property(bad))
		assert.Error(t, err, "opacity %q", bad)
	}
}

func TestParseCursor(t *testing.T) {
	c, err := css.ParseCursor("HAND")
	require.NoError(t, err)
	assert.Equal(t, css.CursorHand, c)
	c, err = css.ParseCursor("null")
	require.NoError(t, err)
	assert.Equal(t, css.CursorNull, c)
	assert.Equal(t, "null", c.String())
	_, err = css.ParseCursor("spinning-beachball")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := css.ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, c)
	c, err = css.ParseColor("#0f0")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0xff, 0, 0xff}, c)
	c, err = css.ParseColor("#11223380")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 0x80}, c)
	assert.Equal(t, "#11223380", css.ColorString(c))
	c, err = css.ParseColor("none")
	require.NoError(t, err)
	assert.Equal(t, css.Transparent, c)
	_, err = css.ParseColor("#12")
	assert.Error(t, err)
	_, err = css.ParseColor("notacolor")
	assert.Error(t, err)
}

func TestConvertLength(t *testing.T) {
	v, err := css.ConvertLength("1em", style.UnitContext{FontSize: 18})
	require.NoError(t, err)
	assert.Equal(t, css.FromPoints(18), v)
	_, err = css.ConvertLength("-3", style.DefaultUnitContext())
	assert.Error(t, err)
	_, err = css.ConvertLength("-0.5em", style.DefaultUnitContext())
	assert.Error(t, err)
	v, err = css.ConvertLength("0", style.DefaultUnitContext())
	require.NoError(t, err)
	assert.Equal(t, css.FromPoints(0), v)
}
