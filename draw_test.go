package shootingtarget

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/rook-computer/shootingtarget/render"
)

var (
	black = color.NRGBA{A: 0xFF}
	white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	red   = color.NRGBA{R: 0xFF, A: 0xFF}
)

func renderRecorded(t *testing.T, tg *Target, opts RenderOptions) *render.Recorder {
	t.Helper()
	rec := render.NewRecorder()
	ok, err := tg.Render(rec, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !ok {
		t.Fatalf("Render reported failure")
	}
	return rec
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRenderSingleHitEndToEnd(t *testing.T) {
	tg := New(WithHits(NewHit(0, 0)))
	rec := renderRecorded(t, tg, DefaultRenderOptions())

	if first := rec.Ops[0]; first.Kind != render.OpCreateSurface || first.Width != 910 || first.Height != 910 {
		t.Fatalf("first op = %+v, want 910x910 surface", first)
	}
	if rec.Ops[1].Kind != render.OpFillBackground {
		t.Fatalf("second op = %v, want background fill", rec.Ops[1].Kind)
	}

	ellipses := rec.Filter(render.OpFillEllipse)
	if got, want := len(ellipses), 2*RingCount+1+2; got != want {
		t.Fatalf("ellipses = %d, want %d", got, want)
	}
	border, disc := ellipses[len(ellipses)-2], ellipses[len(ellipses)-1]
	if border.Width != 90 || border.Height != 90 || border.Color != white {
		t.Errorf("border = %+v, want white 90", border)
	}
	if disc.Width != 87 || disc.Height != 87 || disc.Color != red {
		t.Errorf("disc = %+v, want red 87", disc)
	}
	if disc.X != 455 || disc.Y != 455 {
		t.Errorf("disc center = (%v, %v), want canvas center", disc.X, disc.Y)
	}

	texts := rec.Filter(render.OpBitmapText)
	label := texts[len(texts)-1]
	if label.Text != "1." || label.Color != white {
		t.Errorf("label = %+v, want white \"1.\"", label)
	}
	// Font 5 glyphs are 8x16, so "1." is 16 wide.
	if label.X != 447 || label.Y != 447 {
		t.Errorf("label origin = (%v, %v), want (447, 447)", label.X, label.Y)
	}

	last := rec.Ops[len(rec.Ops)-1]
	if last.Kind != render.OpEncode || last.Format != render.PNG || last.Options.Quality != render.DefaultQuality {
		t.Errorf("last op = %+v, want png encode", last)
	}
}

func TestRenderRingOrderAndColors(t *testing.T) {
	rec := renderRecorded(t, New(), DefaultRenderOptions())
	ellipses := rec.Filter(render.OpFillEllipse)

	for i, x := 0, RingCount; x > 0; i, x = i+2, x-1 {
		outer, inner := ellipses[i], ellipses[i+1]
		wantDiameter := (float64(x)*2.5*2 + 0.5) * 20
		if outer.Width != wantDiameter {
			t.Errorf("ring %d diameter = %v, want %v", x, outer.Width, wantDiameter)
		}
		if inner.Width != wantDiameter-3 {
			t.Errorf("ring %d inner diameter = %v, want %v", x, inner.Width, wantDiameter-3)
		}
		wantOuter, wantInner := white, black
		if x > 6 {
			wantOuter, wantInner = black, white
		}
		if outer.Color != wantOuter || inner.Color != wantInner {
			t.Errorf("ring %d colors = %v/%v", x, outer.Color, inner.Color)
		}
	}

	innerTen := ellipses[2*RingCount]
	if innerTen.Width != 10 || innerTen.Color != white {
		t.Errorf("inner ten = %+v, want white 10", innerTen)
	}
}

func TestRenderRingLabels(t *testing.T) {
	rec := renderRecorded(t, New(), DefaultRenderOptions())
	texts := rec.Filter(render.OpBitmapText)
	if len(texts) != 8*4 {
		t.Fatalf("ring labels = %d, want 32", len(texts))
	}

	// Outermost ring: score 1, diameter 910, numerals 430 px from center.
	wantOrigins := [][2]float64{
		{455 - 430 - 4, 447},
		{455 + 430 - 4, 447},
		{451, 455 - 430 - 8},
		{451, 455 + 430 - 8},
	}
	for i, want := range wantOrigins {
		got := texts[i]
		if got.Text != "1" || got.Color != black {
			t.Errorf("label %d = %+v, want black \"1\"", i, got)
		}
		if !near(got.X, want[0]) || !near(got.Y, want[1]) {
			t.Errorf("label %d origin = (%v, %v), want (%v, %v)", i, got.X, got.Y, want[0], want[1])
		}
	}

	// Ring 5 lies in the light-on-dark band and carries score 5.
	if got := texts[4*4]; got.Text != "5" || got.Color != white {
		t.Errorf("ring 5 label = %+v, want white \"5\"", got)
	}
	if got := texts[len(texts)-1]; got.Text != "8" {
		t.Errorf("innermost label = %q, want 8", got.Text)
	}
}

func TestRenderHitsInInsertionOrder(t *testing.T) {
	tg := New()
	tg.AddHit(NewHit(100, 50))
	tg.AddHit(NewHit(-200, -100).WithColor("#c8c800"))
	tg.AddHit(NewHit(0, 0).WithColor("#646464").WithLabel("last"))

	rec := renderRecorded(t, tg, DefaultRenderOptions())
	ellipses := rec.Filter(render.OpFillEllipse)[2*RingCount+1:]
	texts := rec.Filter(render.OpBitmapText)[32:]

	if len(ellipses) != 6 || len(texts) != 3 {
		t.Fatalf("hit ops = %d ellipses, %d texts", len(ellipses), len(texts))
	}

	if e := ellipses[0]; e.X != 475 || e.Y != 445 {
		t.Errorf("hit 1 position = (%v, %v), want (475, 445)", e.X, e.Y)
	}
	if e := ellipses[2]; e.X != 415 || e.Y != 475 {
		t.Errorf("hit 2 position = (%v, %v), want (415, 475)", e.X, e.Y)
	}
	if got := ellipses[3].Color; got != (color.NRGBA{R: 200, G: 200, A: 0xFF}) {
		t.Errorf("hit 2 fill = %v", got)
	}

	want := []struct {
		text  string
		color color.Color
	}{
		{"1.", white},
		{"2.", black},
		{"last", white},
	}
	for i, w := range want {
		if texts[i].Text != w.text || texts[i].Color != w.color {
			t.Errorf("hit %d label = %q %v, want %q %v", i+1, texts[i].Text, texts[i].Color, w.text, w.color)
		}
	}
}

func TestRenderScalableFont(t *testing.T) {
	tg := New(WithHits(NewHit(0, 0)))
	opts := DefaultRenderOptions()
	opts.Font = ScalableFont("/fonts/target.ttf")

	rec := renderRecorded(t, tg, opts)
	if n := len(rec.Filter(render.OpBitmapText)); n != 0 {
		t.Errorf("bitmap text used %d times with a scalable font", n)
	}
	texts := rec.Filter(render.OpScalableText)
	if len(texts) != 33 {
		t.Fatalf("scalable texts = %d, want 33", len(texts))
	}
	label := texts[32]
	if label.Size != 25 || label.Angle != 0 || label.FontPath != "/fonts/target.ttf" {
		t.Errorf("label = %+v", label)
	}
	// The recorder measures "1." as 30x25 sitting on the baseline.
	if !near(label.X, 440) || !near(label.Y, 467.5) {
		t.Errorf("label origin = (%v, %v), want (440, 467.5)", label.X, label.Y)
	}
}

func TestRenderPropagatesEncodeFailure(t *testing.T) {
	rec := render.NewRecorder()
	rec.EncodeResult = false
	opts := DefaultRenderOptions()
	opts.Format = render.GIF
	opts.Destination = "/tmp/out.gif"

	ok, err := New().Render(rec, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if ok {
		t.Errorf("Render reported success after encode failure")
	}
	last := rec.Ops[len(rec.Ops)-1]
	if last.Format != render.GIF || last.Options.Destination != "/tmp/out.gif" {
		t.Errorf("encode op = %+v", last)
	}
}

func TestRenderMeasureError(t *testing.T) {
	rec := render.NewRecorder()
	rec.MeasureErr = errors.New("no such font")
	opts := DefaultRenderOptions()
	opts.Font = ScalableFont("missing.ttf")

	ok, err := New().Render(rec, opts)
	if ok || err == nil {
		t.Fatalf("Render = %v, %v; want failure", ok, err)
	}
	if !errors.Is(err, rec.MeasureErr) {
		t.Errorf("err = %v, want wrapped measure error", err)
	}
}

func TestRenderPreconditions(t *testing.T) {
	valid := DefaultRenderOptions()
	withUnit := func(u float64) RenderOptions { o := valid; o.Unit = u; return o }
	withFormat := valid
	withFormat.Format = render.Format(9)
	withFont := valid
	withFont.Font = Font{Kind: FontKind(7)}

	tests := []struct {
		name    string
		target  *Target
		canvas  render.Canvas
		opts    RenderOptions
		wantErr error
	}{
		{"nil canvas", New(), nil, valid, ErrNilCanvas},
		{"zero unit", New(), render.NewRecorder(), withUnit(0), ErrInvalidUnit},
		{"negative unit", New(), render.NewRecorder(), withUnit(-5), ErrInvalidUnit},
		{"nan unit", New(), render.NewRecorder(), withUnit(math.NaN()), ErrInvalidUnit},
		{"zero spacing", New(WithRingSpacing(0)), render.NewRecorder(), valid, ErrInvalidRingSpacing},
		{"bad format", New(), render.NewRecorder(), withFormat, render.ErrUnknownFormat},
		{"bad font", New(), render.NewRecorder(), withFont, ErrInvalidFont},
		{"bad color", New(WithHits(NewHit(0, 0).WithColor("#zz0000"))), render.NewRecorder(), valid, ErrMalformedColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := tt.target.Render(tt.canvas, tt.opts)
			if ok || !errors.Is(err, tt.wantErr) {
				t.Fatalf("Render = %v, %v; want %v", ok, err, tt.wantErr)
			}
			if rec, isRec := tt.canvas.(*render.Recorder); isRec && len(rec.Ops) != 0 {
				t.Errorf("canvas received %d calls before failing", len(rec.Ops))
			}
		})
	}
}
