// Package colorutil parses hit colors and picks legible label colors.
package colorutil

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ContrastThreshold is the luminance sum above which dark text is used.
const ContrastThreshold = 382

var ErrMalformedColor = errors.New("malformed hex color")

// Common marker colors.
var (
	Black      = RGB{R: 0, G: 0, B: 0}
	White      = RGB{R: 255, G: 255, B: 255}
	DefaultHit = RGB{R: 255, G: 0, B: 0}
)

type RGB struct {
	R, G, B uint8
}

// LuminanceSum returns R+G+B in the range 0..765.
func (c RGB) LuminanceSum() int {
	return int(c.R) + int(c.G) + int(c.B)
}

// RGBA returns c as an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// ParseHex parses "#rrggbb" style strings.
//
// Leading '#' characters are stripped and the remaining digits are repeated
// until six characters are available, so "f" reads as "ffffff", "ab" as
// "ababab" and "abc" as "abcabc". Digits past the sixth are ignored.
func ParseHex(hex string) (RGB, error) {
	clean := strings.TrimLeft(hex, "#")
	if clean == "" {
		return RGB{}, fmt.Errorf("%w: %q is empty", ErrMalformedColor, hex)
	}
	for _, ch := range clean {
		if !isHexDigit(ch) {
			return RGB{}, fmt.Errorf("%w: %q contains %q", ErrMalformedColor, hex, ch)
		}
	}

	expanded := strings.Repeat(clean, 6)[:6]
	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(expanded[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrMalformedColor, hex, err)
		}
		channels[i] = uint8(v)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// PrefersDarkText reports whether text drawn over a color with the given
// luminance sum should be black rather than white.
func PrefersDarkText(sum int) bool {
	return sum > ContrastThreshold
}

// LabelColor returns black or white, whichever reads better on c.
func LabelColor(c RGB) RGB {
	if PrefersDarkText(c.LuminanceSum()) {
		return Black
	}
	return White
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
