package backdrop

import (
	"io"
	"log/slog"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/backdrop/scene"
)

// newTestEngine returns an engine whose window reports w×h and whose screen
// reports nothing, so layout never depends on the host monitor.
func newTestEngine(w, h int) *scene.Engine {
	eng := scene.NewEngine()
	eng.SetWindowSize(w, h)
	eng.SetScreenSizeFunc(func() (int, int) { return 0, 0 })
	return eng
}

// register adds a blank w×h background under id.
func register(eng *scene.Engine, id string, w, h int) {
	eng.Assets.Register(id, ebiten.NewImage(w, h))
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// buildTestView builds a view for a 1000×500 window (20×10 cells) with two
// 1000×1000 backgrounds registered as "a" and "b".
func buildTestView(t *testing.T, opts ...Option) (*scene.Engine, *View) {
	t.Helper()
	eng := newTestEngine(1000, 500)
	register(eng, "a", 1000, 1000)
	register(eng, "b", 1000, 1000)
	opts = append([]Option{WithSeed(1), WithLogger(quietLogger())}, opts...)
	v, err := BuildView(eng, opts...)
	if err != nil {
		t.Fatalf("BuildView: %v", err)
	}
	return eng, v
}

// settle advances the engine until no tweens remain.
func settle(t *testing.T, eng *scene.Engine) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if eng.Tweens.Len() == 0 {
			return
		}
		eng.Update(0.05)
	}
	t.Fatalf("tweens still running: %d", eng.Tweens.Len())
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
