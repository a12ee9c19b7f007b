// Package scene is a small retained-mode 2D engine for [Ebitengine].
//
// It provides the pieces the backdrop view is built from: a node tree of
// containers, capped batches, sprites and text; textures cut from loaded
// images; an asset registry keyed by string ids; and a tween scheduler
// (via [gween]) supporting delays, from/to values, completion callbacks and
// tag-based cancellation.
//
// All state lives in an [Engine] value passed explicitly to callers:
//
//	eng := scene.NewEngine()
//	if _, err := eng.Assets.LoadFile("dusk", "dusk.png"); err != nil {
//		log.Fatal(err)
//	}
//	s := scene.NewScene(eng)
//	// ... add nodes to s.Root() ...
//	scene.Run(s, scene.RunConfig{Title: "demo", Width: 800, Height: 600})
//
// The engine is single-threaded: every call happens on the game loop.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package scene
