// Package shootingtarget lays out a circular shooting target with its
// scoring rings, ring numerals and marked hits, and renders it onto a
// render.Canvas.
//
//	t := shootingtarget.New(shootingtarget.WithHits(
//		shootingtarget.NewHit(0, 0),
//		shootingtarget.NewHit(120, -80).WithColor("#ffd700"),
//	))
//	ok, err := t.Render(render.NewRasterCanvas(), shootingtarget.RenderOptions{
//		Unit:        20,
//		Format:      render.PNG,
//		Font:        shootingtarget.BuiltinFont(5),
//		Destination: "target.png",
//		Quality:     render.DefaultQuality,
//	})
package shootingtarget
