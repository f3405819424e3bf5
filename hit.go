package shootingtarget

import "strconv"

// Hit is a recorded shot. X and Y are offsets from the target center in
// hundredths of a unit, with +Y pointing up.
type Hit struct {
	X, Y float64

	// Label replaces the default "<n>." numbering when non-empty.
	Label string
	// Color is a hex color such as "#00ff00"; empty means red.
	Color string
}

func NewHit(x, y float64) *Hit { return &Hit{X: x, Y: y} }

// WithLabel sets the label and returns h.
func (h *Hit) WithLabel(label string) *Hit {
	h.Label = label
	return h
}

// WithColor sets the color and returns h.
func (h *Hit) WithColor(hex string) *Hit {
	h.Color = hex
	return h
}

// labelFor returns the text drawn on a hit at position index.
func (h *Hit) labelFor(index int) string {
	if h.Label != "" {
		return h.Label
	}
	return strconv.Itoa(index+1) + "."
}
