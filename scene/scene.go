package scene

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree and drives the
// engine clock and drawing.
type Scene struct {
	root   *Node
	engine *Engine
	logger *slog.Logger
	debug  bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string

	updateFunc func() error
	lastStats  debugStats
	fps        fpsOverlay
}

// NewScene creates a scene with a pre-created root container bound to eng.
func NewScene(eng *Engine) *Scene {
	if eng == nil {
		panic("scene: NewScene requires an engine")
	}
	return &Scene{
		root:          NewContainer("root"),
		engine:        eng,
		logger:        slog.Default(),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Engine returns the engine the scene advances.
func (s *Scene) Engine() *Engine {
	return s.engine
}

// SetLogger sets the logger used for debug stats and screenshot failures.
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.logger = l
}

// SetUpdateFunc registers fn to run at the start of every Update, before
// tweens advance. Returning an error (for example ebiten.Termination) stops
// the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables per-frame timing stats, logged at debug
// level, and the FPS overlay in the top-left corner.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update runs the update hook and advances the engine by dt seconds.
func (s *Scene) Update(dt float32) error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.engine.Update(dt)
	if s.debug {
		s.fps.update(dt, s.engine.Tweens.Len())
	}
	return nil
}

// Draw traverses the scene tree and draws every visible node onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	var d drawer
	d.target = screen
	d.traverse(s.root, identityTransform, 1, false)

	if s.debug {
		s.lastStats = debugStats{
			drawTime:  time.Since(t0),
			drawn:     d.drawn,
			visited:   d.visited,
			tweens:    s.engine.Tweens.Len(),
			skipAlpha: d.skipped,
		}
		s.debugLog(s.lastStats)
	}

	s.flushScreenshots(screen)

	if s.debug {
		s.fps.draw(screen)
	}
}
