// Package backdrop builds and animates a decorative sprite grid over
// background images, on top of the [scene] engine.
//
// The viewport is cut into a grid of cells: 20 columns when the window is
// wider than tall, 10 otherwise, with as many rows as fit. One extra cell on
// every side hangs off-screen as pointer slack. Each cell is a sprite in two
// actor layers; [GotoBackground] tiles a background image across the back
// layer and crossfades it in, row by row from the top, with a faint flash
// over every cell.
//
// # Quick start
//
//	eng := scene.NewEngine()
//	eng.Assets.LoadFile("dusk", "dusk.png")
//	eng.SetWindowSize(1280, 720)
//
//	view, err := backdrop.BuildView(eng, backdrop.WithPolicy(backdrop.PolicyQueue))
//	if err != nil {
//		log.Fatal(err)
//	}
//	s := scene.NewScene(eng)
//	s.Root().AddChild(view.Render)
//
//	backdrop.GotoBackground(eng, view, "dusk")
//	scene.Run(s, scene.RunConfig{Title: "Backdrop", Width: 1280, Height: 720})
//
// Call [UpdateView] whenever the window size changes; layout is polled, not
// subscribed. Each call starts a new layout epoch and replaces every sprite.
//
// # Overlapping transitions
//
// What happens when GotoBackground is called before the previous transition
// finished is chosen with [WithPolicy]: cancel it (default), queue behind it,
// or ignore the new request.
package backdrop
