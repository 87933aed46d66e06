package graphics

import (
	"fmt"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// ParseColor parses "#RGB", "#RRGGBB" or "#AARRGGBB" hex notation.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		var r, g, b uint8
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return RGB(r*17, g*17, b*17), nil
	case 6:
		var v uint32
		if _, err := fmt.Sscanf(hex, "%06x", &v); err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return Color(v | 0xFF000000), nil
	case 8:
		var v uint32
		if _, err := fmt.Sscanf(hex, "%08x", &v); err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return Color(v), nil
	default:
		return 0, fmt.Errorf("invalid color %q: expected #RGB, #RRGGBB or #AARRGGBB", s)
	}
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha byte of the color.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// HexRGB returns the color as "#RRGGBB", discarding alpha.
func (c Color) HexRGB() string {
	return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
}

// Opacity returns the alpha channel normalized to 0.0-1.0.
func (c Color) Opacity() float64 {
	return float64(c.Alpha()) / maxByte
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
