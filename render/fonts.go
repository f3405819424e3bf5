package render

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/golang/freetype/truetype"
	"github.com/rook-computer/shootingtarget/internal/assets"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/font/opentype"
)

// DPI used for scalable fonts.
const DPI = 96

const (
	MinBitmapFont = 1
	MaxBitmapFont = 5
)

// ClampBitmapFont maps any index onto the available built-in fonts.
func ClampBitmapFont(index int) int {
	if index < MinBitmapFont {
		return MinBitmapFont
	}
	if index > MaxBitmapFont {
		return MaxBitmapFont
	}
	return index
}

func bitmapFace(index int) *basicfont.Face {
	switch ClampBitmapFont(index) {
	case 4:
		return inconsolata.Regular8x16
	case 5:
		return inconsolata.Bold8x16
	default:
		return basicfont.Face7x13
	}
}

func measureBitmap(face *basicfont.Face, text string) (width, height int) {
	return face.Advance * utf8.RuneCountInString(text), face.Height
}

// scalableFont is a parsed font file. TrueType outlines go through
// freetype; CFF based OpenType files fall back to x/image/font/opentype.
type scalableFont struct {
	tt *truetype.Font
	ot *opentype.Font
}

func parseScalableFont(data []byte) (*scalableFont, error) {
	tt, ttErr := truetype.Parse(data)
	if ttErr == nil {
		return &scalableFont{tt: tt}, nil
	}
	ot, otErr := opentype.Parse(data)
	if otErr != nil {
		return nil, errors.Join(ttErr, otErr)
	}
	return &scalableFont{ot: ot}, nil
}

func (f *scalableFont) face(size float64) (font.Face, error) {
	if f.tt != nil {
		return truetype.NewFace(f.tt, &truetype.Options{Size: size, DPI: DPI, Hinting: font.HintingFull}), nil
	}
	return opentype.NewFace(f.ot, &opentype.FaceOptions{Size: size, DPI: DPI, Hinting: font.HintingFull})
}

// fontCache loads each font file once. An empty path selects the embedded
// default font.
type fontCache struct {
	fonts map[string]*scalableFont
}

func (c *fontCache) load(path string) (*scalableFont, error) {
	if f, ok := c.fonts[path]; ok {
		return f, nil
	}
	data := assets.FontTTF
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = raw
	}
	f, err := parseScalableFont(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}
	if c.fonts == nil {
		c.fonts = make(map[string]*scalableFont)
	}
	c.fonts[path] = f
	return f, nil
}
