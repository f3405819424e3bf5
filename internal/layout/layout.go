// Package layout holds the target geometry. All values are in pixels
// unless stated otherwise; the unit converts abstract target distances.
package layout

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"
)

const (
	// RingCount is the number of drawn scoring rings.
	RingCount = 9

	// RingOutlineWidth is how much smaller the inner disc of a ring is.
	RingOutlineWidth = 3

	// HitOutlineWidth is the border left around a hit marker.
	HitOutlineWidth = 3

	tenRadius         = 0.25
	labelInset        = 1.25
	hitMarkerSize     = 4.5
	hitCoordinateStep = 0.01
)

type Point struct {
	X, Y float64
}

// CanvasSize returns the edge length of the square canvas.
func CanvasSize(ringSpacing, unit float64) float64 {
	return (tenRadius + RingCount*ringSpacing) * 2 * unit
}

// RingDiameter returns the outer diameter of ring x (1 innermost, 9 outermost).
func RingDiameter(x int, ringSpacing, unit float64) float64 {
	return ((float64(x) * ringSpacing * 2) + tenRadius*2) * unit
}

// RingIsDark reports whether ring x is filled black with a white inside.
func RingIsDark(x int) bool { return x > 6 }

// RingScore is the numeral printed on ring x.
func RingScore(x int) int { return 10 - x }

// RingHasLabel reports whether ring x carries numerals. The innermost ring
// collapses into the ten zone and stays blank.
func RingHasLabel(x int) bool {
	score := RingScore(x)
	return score >= 1 && score <= 8
}

// InnerTenDiameter returns the diameter of the white inner-ten disc.
func InnerTenDiameter(unit float64) float64 {
	return tenRadius * 2 * unit
}

// HitMarkerDiameter returns the diameter of a hit's white border disc.
func HitMarkerDiameter(unit float64) float64 {
	return hitMarkerSize * unit
}

// ScalableTextSize returns the point size used for scalable labels.
func ScalableTextSize(unit float64) float64 {
	return unit * labelInset
}

// HitPosition converts hit coordinates (hundredths of a unit, +y up) into
// canvas coordinates around center.
func HitPosition(center, x, y, unit float64) Point {
	return Point{
		X: center + x*hitCoordinateStep*unit,
		Y: center - y*hitCoordinateStep*unit,
	}
}

// LabelAnchors returns the left, right, top and bottom numeral anchors of a
// ring with the given diameter.
func LabelAnchors(center, diameter, unit float64) [4]Point {
	offset := diameter/2 - unit*labelInset
	return [4]Point{
		{X: center - offset, Y: center},
		{X: center + offset, Y: center},
		{X: center, Y: center - offset},
		{X: center, Y: center + offset},
	}
}

// BitmapTextOrigin returns the top-left corner for bitmap text of the given
// size centered on anchor.
func BitmapTextOrigin(anchor Point, width, height int) Point {
	return Point{
		X: anchor.X - float64(width)/2,
		Y: anchor.Y - float64(height)/2,
	}
}

// ScalableTextOrigin returns the baseline origin for scalable text whose
// bounding box is bbox, centered on anchor.
func ScalableTextOrigin(anchor Point, bbox fixed.Rectangle26_6) Point {
	halfWidth := fixedToFloat(bbox.Max.X-bbox.Min.X) / 2
	halfHeight := fixedToFloat(bbox.Max.Y-bbox.Min.Y) / 2
	return Point{
		X: anchor.X - halfWidth,
		Y: anchor.Y + halfHeight,
	}
}

// EllipseBounds returns the integer pixel rectangle covering an ellipse
// centered on (cx, cy) with the given extents.
func EllipseBounds(cx, cy, width, height float64) image.Rectangle {
	rect := image.Rect(
		int(math.Floor(cx-width/2)),
		int(math.Floor(cy-height/2)),
		int(math.Ceil(cx+width/2)),
		int(math.Ceil(cy+height/2)),
	)
	return Normalize(rect)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
