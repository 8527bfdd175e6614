package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HSL is a color expressed as whole-number hue (degrees, [0,360)),
// saturation and lightness (percent, [0,100]).
type HSL struct {
	Hue        int `yaml:"hue" json:"hue"`
	Saturation int `yaml:"saturation" json:"saturation"`
	Lightness  int `yaml:"lightness" json:"lightness"`
}

// String renders the triple as "hsl(h°, s%, l%)".
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%d°, %d%%, %d%%)", h.Hue, h.Saturation, h.Lightness)
}

// Hex renders the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ToHex is the function form of Color.Hex.
func ToHex(c Color) string {
	return c.Hex()
}

// HSL converts the color with the six-sector formula, rounding each
// component half-up to a whole number. A hue that rounds to 360 is
// reported as 0.
func (c Color) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	var h, s float64
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}

		switch hi {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	// The explicit conversion keeps the product from being fused with the
	// +0.5 in roundHalfUp, which would move exact .5 boundaries.
	hue := roundHalfUp(float64(h * 360))
	if hue == 360 {
		hue = 0
	}
	return HSL{
		Hue:        hue,
		Saturation: roundHalfUp(float64(s * 100)),
		Lightness:  roundHalfUp(float64(l * 100)),
	}
}

// ToHSL is the function form of Color.HSL.
func ToHSL(c Color) HSL {
	return c.HSL()
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// ParseHex parses "#rrggbb" or "#rgb", with or without the leading '#',
// in any case.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("hex color %q must have 3 or 6 digits: %w", s, ErrInvalidInput)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %w", s, ErrInvalidInput)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
