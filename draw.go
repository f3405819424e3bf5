package shootingtarget

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/rook-computer/shootingtarget/internal/colorutil"
	"github.com/rook-computer/shootingtarget/internal/layout"
	"github.com/rook-computer/shootingtarget/render"
)

var (
	ErrNilCanvas          = errors.New("nil canvas")
	ErrInvalidUnit        = errors.New("unit must be a positive number")
	ErrInvalidRingSpacing = errors.New("ring spacing must be a positive number")
	ErrInvalidFont        = errors.New("invalid font")
)

// ErrMalformedColor is returned when a hit color is not a hex color.
var ErrMalformedColor = colorutil.ErrMalformedColor

// Render draws the target onto canvas and asks it to encode the result.
//
// The returned bool is the canvas's encode result. A non-nil error means a
// precondition failed (nothing was drawn) or a label could not be measured
// or drawn.
func (t *Target) Render(canvas render.Canvas, opts RenderOptions) (bool, error) {
	if err := t.validate(canvas, opts); err != nil {
		return false, err
	}
	hitColors, err := t.resolveHitColors()
	if err != nil {
		return false, err
	}

	log := t.logger()
	log.Infof("target", "render start, hits=%d unit=%g format=%s font=%s", len(t.hits), opts.Unit, opts.Format, opts.Font)

	unit := opts.Unit
	sizeF := layout.CanvasSize(t.ringSpacing, unit)
	size := int(sizeF)
	if err := canvas.CreateSurface(size, size); err != nil {
		return false, fmt.Errorf("create surface: %w", err)
	}
	canvas.FillTransparentBackground()

	black := canvas.AllocateColor(0, 0, 0, 0xFF)
	white := canvas.AllocateColor(0xFF, 0xFF, 0xFF, 0xFF)
	red := canvas.AllocateColor(colorutil.DefaultHit.R, colorutil.DefaultHit.G, colorutil.DefaultHit.B, 0xFF)

	center := sizeF / 2
	labels := labeler{canvas: canvas, font: opts.Font, size: layout.ScalableTextSize(unit)}

	// Rings, outermost first, so each disc covers the inside of the last.
	for x := RingCount; x > 0; x-- {
		diameter := layout.RingDiameter(x, t.ringSpacing, unit)
		ringColor, fillColor := white, black
		if layout.RingIsDark(x) {
			ringColor, fillColor = black, white
		}

		canvas.FillEllipse(center, center, diameter, diameter, ringColor)
		inner := diameter - layout.RingOutlineWidth
		canvas.FillEllipse(center, center, inner, inner, fillColor)

		if layout.RingHasLabel(x) {
			anchors := layout.LabelAnchors(center, diameter, unit)
			if err := labels.draw(strconv.Itoa(layout.RingScore(x)), ringColor, anchors[:]...); err != nil {
				return false, fmt.Errorf("ring %d label: %w", x, err)
			}
		}
	}

	innerTen := layout.InnerTenDiameter(unit)
	canvas.FillEllipse(center, center, innerTen, innerTen, white)

	marker := layout.HitMarkerDiameter(unit)
	for i, hit := range t.hits {
		pos := layout.HitPosition(center, hit.X, hit.Y, unit)
		rgb := hitColors[i]

		fill := red
		if hit.Color != "" {
			fill = canvas.AllocateColor(rgb.R, rgb.G, rgb.B, 0xFF)
		}
		textColor := white
		if colorutil.LabelColor(rgb) == colorutil.Black {
			textColor = black
		}

		canvas.FillEllipse(pos.X, pos.Y, marker, marker, white)
		canvas.FillEllipse(pos.X, pos.Y, marker-layout.HitOutlineWidth, marker-layout.HitOutlineWidth, fill)
		if err := labels.draw(hit.labelFor(i), textColor, pos); err != nil {
			return false, fmt.Errorf("hit %d label: %w", i+1, err)
		}
	}

	ok := canvas.Encode(opts.Format, render.EncodeOptions{
		Destination: opts.Destination,
		Quality:     opts.Quality,
		Filters:     opts.Filters,
	})
	if !ok {
		log.Errorf("target", "encode %s failed", opts.Format)
		return false, nil
	}
	log.Infof("target", "render done, size=%dx%d", size, size)
	return true, nil
}

func (t *Target) validate(canvas render.Canvas, opts RenderOptions) error {
	if canvas == nil {
		return ErrNilCanvas
	}
	if math.IsNaN(opts.Unit) || math.IsInf(opts.Unit, 0) || opts.Unit <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidUnit, opts.Unit)
	}
	if math.IsNaN(t.ringSpacing) || math.IsInf(t.ringSpacing, 0) || t.ringSpacing <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRingSpacing, t.ringSpacing)
	}
	if !opts.Format.Valid() {
		return fmt.Errorf("%w: %s", render.ErrUnknownFormat, opts.Format)
	}
	if opts.Font.Kind != FontBuiltin && opts.Font.Kind != FontScalable {
		return fmt.Errorf("%w: %s", ErrInvalidFont, opts.Font)
	}
	return nil
}

// resolveHitColors parses every hit color up front so a malformed one
// fails before anything is drawn.
func (t *Target) resolveHitColors() ([]colorutil.RGB, error) {
	out := make([]colorutil.RGB, len(t.hits))
	for i, hit := range t.hits {
		if hit.Color == "" {
			out[i] = colorutil.DefaultHit
			continue
		}
		rgb, err := colorutil.ParseHex(hit.Color)
		if err != nil {
			return nil, fmt.Errorf("hit %d: %w", i+1, err)
		}
		out[i] = rgb
	}
	return out, nil
}

// labeler centers text on anchor points using the selected font.
type labeler struct {
	canvas render.Canvas
	font   Font
	size   float64
}

func (l labeler) draw(text string, c color.Color, anchors ...layout.Point) error {
	switch l.font.Kind {
	case FontBuiltin:
		width, height := l.canvas.MeasureBitmapText(l.font.Index, text)
		for _, anchor := range anchors {
			origin := layout.BitmapTextOrigin(anchor, width, height)
			l.canvas.DrawBitmapText(l.font.Index, origin.X, origin.Y, text, c)
		}
		return nil
	case FontScalable:
		bbox, err := l.canvas.MeasureScalableText(l.size, l.font.Path, text)
		if err != nil {
			return fmt.Errorf("measure %q: %w", text, err)
		}
		for _, anchor := range anchors {
			origin := layout.ScalableTextOrigin(anchor, bbox)
			if err := l.canvas.DrawScalableText(l.size, 0, origin.X, origin.Y, c, l.font.Path, text); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFont, l.font)
	}
}
