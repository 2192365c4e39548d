package wireframe

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a non premultiplied RGBA color.
// The zero value is transparent and means "no paint":
// a shape with a zero Fill is not filled.
type Color struct{ R, G, B, A uint8 }

var _ color.Color = Color{} // assert interface conformance

var errBadHex = errors.New("invalid hex color")

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xff} }

// IsZero returns true for the "no paint" color.
func (c Color) IsZero() bool { return c.A == 0 }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex returns the #rrggbb form of c, or "none" for the zero color.
func (c Color) Hex() string {
	if c.IsZero() {
		return "none"
	}
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// MarshalYAML writes the color in hex form.
func (c Color) MarshalYAML() (interface{}, error) { return c.Hex(), nil }

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa, with or without the leading '#'.
func ParseHex(s string) (Color, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(v) {
	case 3:
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", errBadHex, s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", errBadHex, s)
	}
	if len(v) == 6 {
		return RGB(uint8(n>>16), uint8(n>>8), uint8(n)), nil
	}
	return Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}
