package main

import (
	"errors"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/backdrop"
	"github.com/phanxgames/backdrop/scene"
)

// app drives background cycling, keyboard control and resize handling.
type app struct {
	eng    *scene.Engine
	scene  *scene.Scene
	view   *backdrop.View
	cfg    *backdrop.Config
	logger *slog.Logger

	next    int
	elapsed time.Duration
	resize  debouncer
}

func newApp(eng *scene.Engine, s *scene.Scene, view *backdrop.View, cfg *backdrop.Config, logger *slog.Logger) *app {
	a := &app{
		eng:    eng,
		scene:  s,
		view:   view,
		cfg:    cfg,
		logger: logger,
		resize: debouncer{ticks: cfg.ResizeDebounce},
	}
	a.resize.settle(view.Geometry.Viewport.Width, view.Geometry.Viewport.Height)
	return a
}

func (a *app) update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		a.elapsed = 0
		if err := a.advance(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.scene.Screenshot(a.currentID())
	}

	if w, h := a.eng.WindowSize(); a.resize.observe(w, h) {
		if err := backdrop.UpdateView(a.eng, a.view); err != nil {
			a.logger.Warn("layout skipped", "width", w, "height", h, "error", err)
		}
	}

	if a.cfg.Interval > 0 {
		a.elapsed += time.Second / time.Duration(ebiten.TPS())
		if a.elapsed >= a.cfg.Interval {
			a.elapsed = 0
			return a.advance()
		}
	}
	return nil
}

// advance requests the next background in registration order. A busy
// rejection under the ignore policy is not an error.
func (a *app) advance() error {
	ids := a.eng.Assets.IDs()
	if len(ids) == 0 {
		return nil
	}
	id := ids[a.next%len(ids)]
	a.next++

	t, err := backdrop.GotoBackground(a.eng, a.view, id)
	switch {
	case errors.Is(err, backdrop.ErrTransitionBusy):
		a.logger.Debug("transition ignored", "id", id)
		return nil
	case errors.Is(err, backdrop.ErrDegenerateGrid), errors.Is(err, backdrop.ErrStaleGrid):
		a.logger.Warn("transition skipped", "id", id, "error", err)
		return nil
	case err != nil:
		return err
	}
	a.logger.Info("background", "id", id, "state", t.State(), "active", a.view.Active)
	return nil
}

func (a *app) currentID() string {
	ids := a.eng.Assets.IDs()
	if a.view.CurrentBg < 0 || a.view.CurrentBg >= len(ids) {
		return "backdrop"
	}
	return ids[a.view.CurrentBg]
}

// debouncer reports a size change only after the size has held still for
// the configured number of observations.
type debouncer struct {
	ticks int

	settledW, settledH int
	pendingW, pendingH int
	count              int
}

// settle records w×h as the size the layout currently matches.
func (d *debouncer) settle(w, h int) {
	d.settledW, d.settledH = w, h
	d.pendingW, d.pendingH = w, h
	d.count = 0
}

// observe feeds one reading and reports whether a relayout is due.
func (d *debouncer) observe(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if w == d.settledW && h == d.settledH {
		d.pendingW, d.pendingH = w, h
		d.count = 0
		return false
	}
	if w != d.pendingW || h != d.pendingH {
		d.pendingW, d.pendingH = w, h
		d.count = 0
	}
	d.count++
	if d.count < d.ticks {
		return false
	}
	d.settle(w, h)
	return true
}

// gradientStops are the color pairs for generated backgrounds.
var gradientStops = [][2]color.RGBA{
	{{R: 0x1f, G: 0x1c, B: 0x2c, A: 0xff}, {R: 0x92, G: 0x8d, B: 0xab, A: 0xff}},
	{{R: 0x0f, G: 0x20, B: 0x27, A: 0xff}, {R: 0x2c, G: 0x53, B: 0x64, A: 0xff}},
	{{R: 0xff, G: 0x7e, B: 0x5f, A: 0xff}, {R: 0xfe, G: 0xb4, B: 0x7b, A: 0xff}},
}

// registerGradients adds diagonal gradient images sized w×h as stand-in
// backgrounds.
func registerGradients(assets *scene.Assets, w, h int) {
	for i, stops := range gradientStops {
		assets.Register(gradientID(i), gradientImage(w, h, stops[0], stops[1]))
	}
}

func gradientID(i int) string {
	return "gradient-" + string(rune('a'+i))
}

func gradientImage(w, h int, from, to color.RGBA) *ebiten.Image {
	pix := make([]byte, 4*w*h)
	span := float64(w + h - 2)
	if span <= 0 {
		span = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := float64(x+y) / span
			i := 4 * (y*w + x)
			pix[i] = lerp8(from.R, to.R, t)
			pix[i+1] = lerp8(from.G, to.G, t)
			pix[i+2] = lerp8(from.B, to.B, t)
			pix[i+3] = 0xff
		}
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(pix)
	return img
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
