package backdrop

import (
	"fmt"
	"math"
	"strings"

	"github.com/phanxgames/backdrop/scene"
)

// Policy decides what happens when a transition is requested while another
// is still running.
type Policy uint8

const (
	PolicyCancel Policy = iota // stop the running transition and start the new one
	PolicyQueue                // start the new one when the running one completes
	PolicyIgnore               // reject the request with ErrTransitionBusy
)

func (p Policy) String() string {
	switch p {
	case PolicyQueue:
		return "queue"
	case PolicyIgnore:
		return "ignore"
	default:
		return "cancel"
	}
}

// ParsePolicy parses "cancel", "queue" or "ignore" (case-insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cancel", "":
		return PolicyCancel, nil
	case "queue":
		return PolicyQueue, nil
	case "ignore":
		return PolicyIgnore, nil
	default:
		return PolicyCancel, fmt.Errorf("backdrop: unknown transition policy %q", s)
	}
}

// TransitionState is the lifecycle of a Transition.
type TransitionState uint8

const (
	TransitionPending   TransitionState = iota // queued behind another transition
	TransitionRunning                          // tweens scheduled
	TransitionDone                             // every cell finished
	TransitionCancelled                        // stopped before finishing
)

func (s TransitionState) String() string {
	switch s {
	case TransitionPending:
		return "pending"
	case TransitionRunning:
		return "running"
	case TransitionDone:
		return "done"
	default:
		return "cancelled"
	}
}

// Transition is the handle for one background crossfade. All its tweens
// share Tag, so the whole transition can be cancelled at once.
type Transition struct {
	ID    string
	Tag   uint64
	Ratio float64

	state     TransitionState
	remaining int
	eng       Engine
	view      *View
}

// State returns the transition's lifecycle state.
func (t *Transition) State() TransitionState {
	return t.state
}

// Done reports whether the transition has finished or was cancelled.
func (t *Transition) Done() bool {
	return t.state == TransitionDone || t.state == TransitionCancelled
}

// Cancel stops a running transition where it is, or drops a queued one.
// Sprites keep whatever alpha they had reached.
func (t *Transition) Cancel() {
	switch t.state {
	case TransitionPending:
		v := t.view
		for i, q := range v.queue {
			if q == t {
				v.queue = append(v.queue[:i], v.queue[i+1:]...)
				break
			}
		}
	case TransitionRunning:
		t.eng.CancelTag(t.Tag)
		if t.view.current == t {
			t.view.current = nil
		}
	default:
		return
	}
	t.state = TransitionCancelled
}

// cellDone counts down finished animation chains; three per cell.
func (t *Transition) cellDone() {
	if t.state != TransitionRunning {
		return
	}
	t.remaining--
	if t.remaining > 0 {
		return
	}
	t.state = TransitionDone
	if t.view.current == t {
		t.view.current = nil
	}
	t.view.startQueued(t.eng)
}

// TargetAlpha is the resting alpha of a foreground cell: 1 on the top row,
// falling linearly and reaching 0 at row == rows.
func TargetAlpha(row, rows int) float64 {
	return 1 - float64(row)/float64(rows)
}

// TileRatio is the side, in source pixels, of the square tile of tex mapped
// to one cell: floor(min(h/rows, w/cols)).
func TileRatio(tex *scene.Texture, amount CellAmount) (float64, error) {
	ratio := math.Floor(math.Min(tex.Height()/float64(amount.Rows), tex.Width()/float64(amount.Cols)))
	if ratio < 1 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0, fmt.Errorf("%w: %.0fx%.0f image cannot tile %dx%d cells",
			ErrDegenerateGrid, tex.Width(), tex.Height(), amount.Cols, amount.Rows)
	}
	return ratio, nil
}

func tileRect(row, col int, ratio float64) scene.Rect {
	return scene.Rect{X: float64(col) * ratio, Y: float64(row) * ratio, Width: ratio, Height: ratio}
}

// GotoBackground crossfades the view to the background registered as id.
//
// The back actor layer takes the background, tiled at native resolution
// one ratio×ratio square per cell, and fades in to TargetAlpha while the
// front layer fades out; the two then swap roles. Rows start one after
// another from the top and every cell gets its own random duration. The flash
// layer pulses each cell to FlashAlpha and back on top of the crossfade.
//
// The call returns as soon as the tweens are scheduled. A request made while
// a transition runs follows the view's Policy. A request that fails leaves
// the view and any running transition untouched.
func GotoBackground(eng Engine, v *View, id string) (*Transition, error) {
	tex, ok := eng.Texture(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackground, id)
	}
	// A request that cannot start must not disturb the running transition.
	if _, err := v.prepare(tex); err != nil {
		return nil, err
	}
	t := &Transition{ID: id, eng: eng, view: v}

	if v.busy() {
		switch v.opts.policy {
		case PolicyIgnore:
			return nil, ErrTransitionBusy
		case PolicyQueue:
			v.queue = append(v.queue, t)
			return t, nil
		default:
			if v.current != nil {
				v.current.Cancel()
			}
		}
	}

	if err := v.start(eng, t, tex); err != nil {
		return nil, err
	}
	return t, nil
}

// busy reports whether a new request would overlap a running transition.
func (v *View) busy() bool {
	if v.current != nil && v.current.state == TransitionRunning {
		return true
	}
	return v.opts.policy == PolicyQueue && len(v.queue) > 0
}

// swapActive flips the foreground and returns the outgoing and incoming layers.
func (v *View) swapActive() (prev, next *Layer) {
	if v.Active != ShowingLayer1 {
		v.Active = ShowingLayer1
		return &v.Actor2, &v.Actor1
	}
	v.Active = ShowingLayer2
	return &v.Actor1, &v.Actor2
}

// prepare checks that the sprite grids match the current layout and that tex
// can tile it, returning the tile ratio.
func (v *View) prepare(tex *scene.Texture) (float64, error) {
	amount := v.Geometry.Amount
	for _, l := range v.layers() {
		if l.Sprites.Epoch != v.Epoch || l.Sprites.Rows() != amount.Rows || l.Sprites.Cols() != amount.Cols {
			return 0, fmt.Errorf("%w: layer %q built at epoch %d, view at %d",
				ErrStaleGrid, l.Container.Name, l.Sprites.Epoch, v.Epoch)
		}
	}
	return TileRatio(tex, amount)
}

// start schedules every cell's tweens for t.
func (v *View) start(eng Engine, t *Transition, tex *scene.Texture) error {
	ratio, err := v.prepare(tex)
	if err != nil {
		return err
	}
	g := v.Geometry
	rows, cols := g.Amount.Rows, g.Amount.Cols

	prev, next := v.swapActive()
	fill := CreateGraphicTexture(eng, v.opts.flashColor, 0, 0, g.Cell.Width, g.Cell.Height)

	t.Tag = eng.NextTag()
	t.Ratio = ratio
	t.state = TransitionRunning
	t.remaining = 3 * rows * cols
	v.current = t
	v.shown = t.ID
	v.CurrentBg = eng.TextureIndex(t.ID)

	tag := t.Tag
	for row := 0; row < rows; row++ {
		delay := float32(row) / float32(rows)
		alpha := TargetAlpha(row, rows)
		for col := 0; col < cols; col++ {
			flash := v.Extra.Sprites.At(row, col)
			in := next.Sprites.At(row, col)
			out := prev.Sprites.At(row, col)
			dur := v.randomDuration()

			flash.SetTexture(fill)
			in.SetTexture(eng.SubTexture(tex, tileRect(row, col, ratio)))

			eng.Tween(scene.To(out, scene.PropAlpha, 0, dur).
				WithDelay(delay).WithTag(tag).OnComplete(t.cellDone))
			eng.Tween(scene.FromTo(in, scene.PropAlpha, 0, alpha, dur).
				WithDelay(delay).WithTag(tag).OnComplete(t.cellDone))
			eng.Tween(scene.FromTo(flash, scene.PropAlpha, 0, FlashAlpha, dur/2).
				WithDelay(delay / 2).WithTag(tag).OnComplete(func() {
				eng.Tween(scene.To(flash, scene.PropAlpha, 0, dur/2).
					WithDelay(delay / 2).WithTag(tag).OnComplete(t.cellDone))
			}))
		}
	}

	v.opts.logger.Debug("backdrop transition",
		"id", t.ID,
		"tag", tag,
		"active", v.Active,
		"ratio", ratio,
		"cells", rows*cols,
	)
	return nil
}

// randomDuration draws a duration in [0, 1] seconds at 0.01 granularity.
func (v *View) randomDuration() float32 {
	return float32(math.Round(v.opts.rng.Float64()*100) / 100)
}

// startQueued starts waiting transitions until one is running or the queue
// is empty. Requests that can no longer start are cancelled and logged.
func (v *View) startQueued(eng Engine) {
	for len(v.queue) > 0 && (v.current == nil || v.current.state != TransitionRunning) {
		t := v.queue[0]
		v.queue = v.queue[1:]

		tex, ok := eng.Texture(t.ID)
		if !ok {
			t.state = TransitionCancelled
			v.opts.logger.Error("backdrop: queued background vanished", "id", t.ID)
			continue
		}
		if err := v.start(eng, t, tex); err != nil {
			t.state = TransitionCancelled
			v.opts.logger.Error("backdrop: queued transition failed", "id", t.ID, "error", err)
		}
	}
}
