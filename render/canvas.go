// Package render provides the drawing surface a target is rendered onto.
//
// Canvas is the primitive set the layout engine needs. RasterCanvas draws
// into an in-memory RGBA image and encodes it; Recorder only records the
// calls it receives.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/math/fixed"
)

var (
	ErrUnknownFormat = errors.New("unknown image format")
	ErrNoSurface     = errors.New("canvas surface not created")
	ErrRotatedText   = errors.New("rotated text is not supported")
)

// Canvas is implemented by drawing surfaces. Coordinates are in pixels with
// the origin at the top-left corner.
type Canvas interface {
	CreateSurface(width, height int) error
	FillTransparentBackground()
	AllocateColor(r, g, b, a uint8) color.Color

	// FillEllipse fills an ellipse centered on (cx, cy).
	FillEllipse(cx, cy, width, height float64, c color.Color)

	// Bitmap text uses a built-in fixed-size font addressed by index.
	// (x, y) is the top-left corner of the text.
	MeasureBitmapText(font int, text string) (width, height int)
	DrawBitmapText(font int, x, y float64, text string, c color.Color)

	// Scalable text uses a font file; size is in points. The bounds are
	// relative to the baseline origin, and (x, y) in DrawScalableText is
	// that origin.
	MeasureScalableText(size float64, font, text string) (fixed.Rectangle26_6, error)
	DrawScalableText(size, angle, x, y float64, c color.Color, font, text string) error

	// Encode writes the surface in the given format and reports success.
	Encode(format Format, opts EncodeOptions) bool
}

type Format int

const (
	PNG Format = iota
	JPEG
	GIF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension returns the usual file extension, without the dot.
func (f Format) Extension() string {
	if f == JPEG {
		return "jpg"
	}
	return f.String()
}

func (f Format) Valid() bool {
	return f == PNG || f == JPEG || f == GIF
}

// ParseFormat accepts "png", "jpg", "jpeg" and "gif" in any case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DefaultQuality lets the encoder pick its own quality or compression level.
const DefaultQuality = -1

// PNGFilter is a bitmask of PNG row filters.
type PNGFilter int

const (
	PNGNoFilter PNGFilter = 1 << (iota + 3)
	PNGFilterSub
	PNGFilterUp
	PNGFilterAvg
	PNGFilterPaeth

	PNGAllFilters = PNGNoFilter | PNGFilterSub | PNGFilterUp | PNGFilterAvg | PNGFilterPaeth
)

// EncodeOptions control Canvas.Encode.
//
// An empty Destination asks the canvas to emit the raw encoded stream
// instead of writing a file. Quality means compression level 0..9 for PNG
// and 0..100 for JPEG; GIF ignores it. Filters only apply to PNG.
type EncodeOptions struct {
	Destination string
	Quality     int
	Filters     PNGFilter
}
