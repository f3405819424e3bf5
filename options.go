package shootingtarget

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rook-computer/shootingtarget/render"
)

const (
	EnvUnit    = "SHOOTINGTARGET_UNIT"
	EnvFormat  = "SHOOTINGTARGET_FORMAT"
	EnvFont    = "SHOOTINGTARGET_FONT"
	EnvQuality = "SHOOTINGTARGET_QUALITY"
)

const (
	DefaultUnit        = 20
	DefaultBuiltinFont = 5
)

// RenderOptions control a single Render call.
type RenderOptions struct {
	// Unit is the number of pixels per target distance unit; must be > 0.
	Unit   float64
	Format render.Format
	Font   Font

	// Destination is a file path. Empty means the canvas emits the raw
	// encoded stream instead.
	Destination string
	Quality     int
	Filters     render.PNGFilter
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Unit:    DefaultUnit,
		Format:  render.PNG,
		Font:    BuiltinFont(DefaultBuiltinFont),
		Quality: render.DefaultQuality,
	}
}

// RenderOptionsFromEnv returns DefaultRenderOptions overridden by the
// SHOOTINGTARGET_* environment variables. A numeric font value selects a
// built-in font, anything else is taken as a font file path.
func RenderOptionsFromEnv() (RenderOptions, error) {
	opts := DefaultRenderOptions()

	if raw := os.Getenv(EnvUnit); raw != "" {
		unit, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return RenderOptions{}, fmt.Errorf("%s must be a number (got %q): %w", EnvUnit, raw, err)
		}
		opts.Unit = unit
	}

	if raw := os.Getenv(EnvFormat); raw != "" {
		format, err := render.ParseFormat(raw)
		if err != nil {
			return RenderOptions{}, fmt.Errorf("%s: %w", EnvFormat, err)
		}
		opts.Format = format
	}

	if raw := strings.TrimSpace(os.Getenv(EnvFont)); raw != "" {
		if index, err := strconv.Atoi(raw); err == nil {
			opts.Font = BuiltinFont(index)
		} else {
			opts.Font = ScalableFont(raw)
		}
	}

	if raw := os.Getenv(EnvQuality); raw != "" {
		quality, err := strconv.Atoi(raw)
		if err != nil {
			return RenderOptions{}, fmt.Errorf("%s must be an integer (got %q): %w", EnvQuality, raw, err)
		}
		opts.Quality = quality
	}

	return opts, nil
}
