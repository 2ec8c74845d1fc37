// Package palette maps series indexes to display colors and labels.
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned for colors that are not #rrggbb or #rrggbbaa.
var ErrInvalidColor = errors.New("invalid color")

// Color is a hex color, #rrggbb or #rrggbbaa.
type Color string

// RGBA decodes the color. Alpha defaults to 0xff.
func (c Color) RGBA() (r, g, b, a uint8, err error) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 && len(s) != 8 {
		return 0, 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, c)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, c)
	}
	return uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// RGB returns the color without its alpha channel, as #rrggbb.
func (c Color) RGB() Color {
	s := string(c)
	if strings.HasPrefix(s, "#") && len(s) == 9 {
		return Color(s[:7])
	}
	return c
}

// Palette is an ordered list of colors assigned to series by index.
type Palette []Color

// Default is the palette used when none is configured.
var Default = Palette{
	"#217ecaff",
	"#0b7954ff",
	"#a36c0cff",
	"#812828ff",
	"#4f3392ff",
	"#a31d60ff",
}

// Color returns the color for the series at index, cycling through the palette.
// An empty palette falls back to Default.
func (p Palette) Color(index int) Color {
	if len(p) == 0 {
		p = Default
	}
	i := index % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Validate checks every color in the palette.
func (p Palette) Validate() error {
	for i, c := range p {
		if _, _, _, _, err := c.RGBA(); err != nil {
			return fmt.Errorf("palette entry %d: %w", i, err)
		}
	}
	return nil
}

// Label returns label, or "Series N" (1-based) when label is empty.
func Label(index int, label string) string {
	if label != "" {
		return label
	}
	return "Series " + strconv.Itoa(index+1)
}
