package shootingtarget

import (
	"github.com/rook-computer/shootingtarget/internal/layout"
	"github.com/rook-computer/shootingtarget/render"
)

const (
	DefaultDiameter10      = 0.5
	DefaultDiameterInner10 = 0.5
	DefaultRingSpacing     = 2.5
)

// RingCount is the number of scoring rings drawn on every target.
const RingCount = layout.RingCount

// Target holds the ring parameters and the hits drawn on top of them.
//
// A Target is not safe for concurrent use; callers must serialize hit
// updates with Render.
type Target struct {
	diameter10      float64
	diameterInner10 float64
	ringSpacing     float64
	hits            []*Hit

	Logger render.Logger
}

// Option configures a Target during creation.
type Option func(*Target)

func WithDiameter10(d float64) Option {
	return func(t *Target) { t.diameter10 = d }
}

func WithDiameterInner10(d float64) Option {
	return func(t *Target) { t.diameterInner10 = d }
}

// WithRingSpacing sets the distance between successive ring boundaries.
func WithRingSpacing(spacing float64) Option {
	return func(t *Target) { t.ringSpacing = spacing }
}

// WithHits sets the initial hits.
func WithHits(hits ...*Hit) Option {
	return func(t *Target) { t.SetHits(hits) }
}

func New(opts ...Option) *Target {
	t := &Target{
		diameter10:      DefaultDiameter10,
		diameterInner10: DefaultDiameterInner10,
		ringSpacing:     DefaultRingSpacing,
		Logger:          render.NoopLogger{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Target) Diameter10() float64      { return t.diameter10 }
func (t *Target) DiameterInner10() float64 { return t.diameterInner10 }
func (t *Target) RingSpacing() float64     { return t.ringSpacing }

// Hits returns the hits in insertion order. The slice is a copy; the hits
// are shared.
func (t *Target) Hits() []*Hit {
	out := make([]*Hit, len(t.hits))
	copy(out, t.hits)
	return out
}

// SetHits replaces all hits. Nil entries are dropped.
func (t *Target) SetHits(hits []*Hit) *Target {
	t.hits = make([]*Hit, 0, len(hits))
	for _, h := range hits {
		if h != nil {
			t.hits = append(t.hits, h)
		}
	}
	return t
}

// SetHit replaces all hits with h, or clears them when h is nil.
func (t *Target) SetHit(h *Hit) *Target {
	if h == nil {
		return t.SetHits(nil)
	}
	return t.SetHits([]*Hit{h})
}

// AddHit appends h unless that same hit is already present.
func (t *Target) AddHit(h *Hit) *Target {
	if h == nil {
		return t
	}
	for _, existing := range t.hits {
		if existing == h {
			return t
		}
	}
	t.hits = append(t.hits, h)
	return t
}

func (t *Target) logger() render.Logger {
	if t.Logger == nil {
		return render.NoopLogger{}
	}
	return t.Logger
}
