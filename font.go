package shootingtarget

import "fmt"

type FontKind int

const (
	// FontBuiltin selects one of the fixed-size bitmap fonts by index.
	FontBuiltin FontKind = iota
	// FontScalable selects a TrueType/OpenType font file.
	FontScalable
)

// Font picks how labels are drawn. Build it with BuiltinFont or
// ScalableFont.
type Font struct {
	Kind  FontKind
	Index int
	Path  string
}

// BuiltinFont selects bitmap font index (1..5, clamped by the canvas).
func BuiltinFont(index int) Font { return Font{Kind: FontBuiltin, Index: index} }

// ScalableFont selects the font file at path. An empty path uses the
// canvas's default scalable font.
func ScalableFont(path string) Font { return Font{Kind: FontScalable, Path: path} }

func (f Font) String() string {
	switch f.Kind {
	case FontBuiltin:
		return fmt.Sprintf("builtin:%d", f.Index)
	case FontScalable:
		if f.Path == "" {
			return "scalable:default"
		}
		return "scalable:" + f.Path
	default:
		return fmt.Sprintf("FontKind(%d)", int(f.Kind))
	}
}
