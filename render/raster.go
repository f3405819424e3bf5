package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	"github.com/golang/freetype"
	"github.com/rook-computer/shootingtarget/internal/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate an ellipse.
const kappa = 0.5522847498

// RasterCanvas renders into an offscreen RGBA image.
type RasterCanvas struct {
	canvas *image.RGBA
	raster *vector.Rasterizer
	fonts  fontCache

	// Output receives the encoded stream when no destination is given.
	// Defaults to os.Stdout.
	Output io.Writer
	Logger Logger
}

func NewRasterCanvas() *RasterCanvas { return &RasterCanvas{Logger: NoopLogger{}} }

// Image returns the surface, or nil before CreateSurface.
func (r *RasterCanvas) Image() *image.RGBA { return r.canvas }

func (r *RasterCanvas) logger() Logger {
	if r.Logger == nil {
		return NoopLogger{}
	}
	return r.Logger
}

func (r *RasterCanvas) CreateSurface(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	r.canvas = image.NewRGBA(image.Rect(0, 0, width, height))
	r.raster = vector.NewRasterizer(width, height)
	r.logger().Infof("canvas", "surface created, size=%dx%d", width, height)
	return nil
}

func (r *RasterCanvas) FillTransparentBackground() {
	if r.canvas == nil {
		return
	}
	draw.Draw(r.canvas, r.canvas.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (r *RasterCanvas) AllocateColor(red, green, blue, alpha uint8) color.Color {
	return color.NRGBA{R: red, G: green, B: blue, A: alpha}
}

func (r *RasterCanvas) FillEllipse(cx, cy, width, height float64, c color.Color) {
	if r.canvas == nil || width <= 0 || height <= 0 {
		return
	}
	rect := layout.EllipseBounds(cx, cy, width, height).Intersect(r.canvas.Bounds())
	if rect.Empty() {
		return
	}

	// Rasterize only the ellipse's bounding box, shifted to its own origin.
	r.raster.Reset(rect.Dx(), rect.Dy())
	r.raster.DrawOp = draw.Over

	rx, ry := float32(width/2), float32(height/2)
	x, y := float32(cx)-float32(rect.Min.X), float32(cy)-float32(rect.Min.Y)
	kx, ky := rx*kappa, ry*kappa
	r.raster.MoveTo(x+rx, y)
	r.raster.CubeTo(x+rx, y+ky, x+kx, y+ry, x, y+ry)
	r.raster.CubeTo(x-kx, y+ry, x-rx, y+ky, x-rx, y)
	r.raster.CubeTo(x-rx, y-ky, x-kx, y-ry, x, y-ry)
	r.raster.CubeTo(x+kx, y-ry, x+rx, y-ky, x+rx, y)
	r.raster.ClosePath()
	r.raster.Draw(r.canvas, rect, image.NewUniform(c), image.Point{})
}

func (r *RasterCanvas) MeasureBitmapText(index int, text string) (width, height int) {
	return measureBitmap(bitmapFace(index), text)
}

func (r *RasterCanvas) DrawBitmapText(index int, x, y float64, text string, c color.Color) {
	if r.canvas == nil {
		return
	}
	face := bitmapFace(index)
	drawer := &font.Drawer{Dst: r.canvas, Src: image.NewUniform(c), Face: face}
	drawer.Dot = fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y) + fixed.I(face.Ascent)}
	drawer.DrawString(text)
}

func (r *RasterCanvas) MeasureScalableText(size float64, path, text string) (fixed.Rectangle26_6, error) {
	f, err := r.fonts.load(path)
	if err != nil {
		return fixed.Rectangle26_6{}, err
	}
	face, err := f.face(size)
	if err != nil {
		return fixed.Rectangle26_6{}, err
	}
	defer face.Close()
	bounds, _ := font.BoundString(face, text)
	return bounds, nil
}

func (r *RasterCanvas) DrawScalableText(size, angle, x, y float64, c color.Color, path, text string) error {
	if r.canvas == nil {
		return ErrNoSurface
	}
	if angle != 0 {
		return fmt.Errorf("%w: angle %v", ErrRotatedText, angle)
	}
	f, err := r.fonts.load(path)
	if err != nil {
		return err
	}
	dot := fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)}
	src := image.NewUniform(c)

	if f.tt != nil {
		ctx := freetype.NewContext()
		ctx.SetDPI(DPI)
		ctx.SetFont(f.tt)
		ctx.SetFontSize(size)
		ctx.SetHinting(font.HintingFull)
		ctx.SetClip(r.canvas.Bounds())
		ctx.SetDst(r.canvas)
		ctx.SetSrc(src)
		if _, err := ctx.DrawString(text, dot); err != nil {
			return fmt.Errorf("draw text %q: %w", text, err)
		}
		return nil
	}

	face, err := f.face(size)
	if err != nil {
		return err
	}
	defer face.Close()
	drawer := &font.Drawer{Dst: r.canvas, Src: src, Face: face, Dot: dot}
	drawer.DrawString(text)
	return nil
}

func (r *RasterCanvas) Encode(format Format, opts EncodeOptions) bool {
	if r.canvas == nil {
		r.logger().Errorf("canvas", "encode %s: %v", format, ErrNoSurface)
		return false
	}
	if opts.Destination == "" {
		w := r.Output
		if w == nil {
			w = os.Stdout
		}
		if err := encodeImage(w, r.canvas, format, opts, r.logger()); err != nil {
			r.logger().Errorf("canvas", "encode %s to stream failed: %v", format, err)
			return false
		}
		return true
	}

	if err := encodeFile(opts.Destination, r.canvas, format, opts, r.logger()); err != nil {
		r.logger().Errorf("canvas", "encode %s to %s failed: %v", format, opts.Destination, err)
		return false
	}
	r.logger().Infof("canvas", "wrote %s", opts.Destination)
	return true
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
