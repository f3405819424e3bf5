package render

import (
	"image/color"
	"unicode/utf8"

	"golang.org/x/image/math/fixed"
)

type OpKind int

const (
	OpCreateSurface OpKind = iota
	OpFillBackground
	OpFillEllipse
	OpBitmapText
	OpScalableText
	OpEncode
)

func (k OpKind) String() string {
	switch k {
	case OpCreateSurface:
		return "create-surface"
	case OpFillBackground:
		return "fill-background"
	case OpFillEllipse:
		return "fill-ellipse"
	case OpBitmapText:
		return "bitmap-text"
	case OpScalableText:
		return "scalable-text"
	case OpEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// Op is one recorded canvas call. Only the fields relevant to Kind are set.
type Op struct {
	Kind OpKind

	X, Y          float64
	Width, Height float64
	Color         color.Color

	Text     string
	Font     int
	FontPath string
	Size     float64
	Angle    float64

	Format  Format
	Options EncodeOptions
}

// BitmapGlyphSize returns the glyph cell RasterCanvas uses for a built-in
// font index.
func BitmapGlyphSize(index int) (width, height int) {
	face := bitmapFace(index)
	return face.Advance, face.Height
}

// Recorder is a Canvas that draws nothing and remembers every call.
//
// Bitmap text is measured with the same faces RasterCanvas draws, so layouts
// recorded here match rendered ones.
//
// Scalable text is measured as 0.6*size per rune wide and size tall, with
// the box sitting on the baseline.
type Recorder struct {
	Ops []Op

	// EncodeResult is returned from Encode.
	EncodeResult bool
	// MeasureErr, when set, is returned from MeasureScalableText.
	MeasureErr error
}

func NewRecorder() *Recorder { return &Recorder{EncodeResult: true} }

func (r *Recorder) CreateSurface(width, height int) error {
	r.Ops = append(r.Ops, Op{Kind: OpCreateSurface, Width: float64(width), Height: float64(height)})
	return nil
}

func (r *Recorder) FillTransparentBackground() {
	r.Ops = append(r.Ops, Op{Kind: OpFillBackground})
}

func (r *Recorder) AllocateColor(red, green, blue, alpha uint8) color.Color {
	return color.NRGBA{R: red, G: green, B: blue, A: alpha}
}

func (r *Recorder) FillEllipse(cx, cy, width, height float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillEllipse, X: cx, Y: cy, Width: width, Height: height, Color: c})
}

func (r *Recorder) MeasureBitmapText(index int, text string) (width, height int) {
	return measureBitmap(bitmapFace(index), text)
}

func (r *Recorder) DrawBitmapText(index int, x, y float64, text string, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpBitmapText, Font: index, X: x, Y: y, Text: text, Color: c})
}

func (r *Recorder) MeasureScalableText(size float64, path, text string) (fixed.Rectangle26_6, error) {
	if r.MeasureErr != nil {
		return fixed.Rectangle26_6{}, r.MeasureErr
	}
	width := floatToFixed(0.6 * size * float64(utf8.RuneCountInString(text)))
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 0, Y: -floatToFixed(size)},
		Max: fixed.Point26_6{X: width, Y: 0},
	}, nil
}

func (r *Recorder) DrawScalableText(size, angle, x, y float64, c color.Color, path, text string) error {
	r.Ops = append(r.Ops, Op{Kind: OpScalableText, Size: size, Angle: angle, X: x, Y: y, Color: c, FontPath: path, Text: text})
	return nil
}

func (r *Recorder) Encode(format Format, opts EncodeOptions) bool {
	r.Ops = append(r.Ops, Op{Kind: OpEncode, Format: format, Options: opts})
	return r.EncodeResult
}

// Filter returns the recorded ops of the given kind, in call order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
