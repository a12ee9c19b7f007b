package scene

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Property selects the Node field a Tween animates.
type Property uint8

const (
	PropAlpha Property = iota // Node.Alpha
	PropX                     // Node.X
	PropY                     // Node.Y
)

// DefaultEase is used by tweens that do not set an easing function.
var DefaultEase ease.TweenFunc = ease.OutQuad

// Tween animates one float64 property of a Node after an optional delay.
// Build one with To or FromTo, chain the With* setters, then hand it to a
// Tweener (or call Update yourself).
//
// A "to" tween samples its start value when the delay elapses; a "from-to"
// tween writes its start value immediately on creation so the node shows it
// during the delay. If the target node is disposed the tween stops without
// firing OnComplete.
type Tween struct {
	target   *Node
	prop     Property
	from     float64
	to       float64
	hasFrom  bool
	duration float32
	delay    float32
	fn       ease.TweenFunc
	tag      uint64

	onComplete func()

	tw        *gween.Tween
	elapsed   float32
	started   bool
	cancelled bool

	// Done is set once the tween reaches its end value, is cancelled, or its
	// target is disposed.
	Done bool
}

// To creates a tween from the property's value at start time to the target value.
func To(n *Node, p Property, to float64, duration float32) *Tween {
	return &Tween{target: n, prop: p, to: to, duration: duration, fn: DefaultEase}
}

// FromTo creates a tween from an explicit start value to the target value.
// The start value is applied to the node immediately.
func FromTo(n *Node, p Property, from, to float64, duration float32) *Tween {
	t := &Tween{target: n, prop: p, from: from, to: to, hasFrom: true, duration: duration, fn: DefaultEase}
	*t.field() = from
	return t
}

// WithDelay postpones the start of the tween by d seconds.
func (t *Tween) WithDelay(d float32) *Tween {
	t.delay = d
	return t
}

// WithEase sets the easing function.
func (t *Tween) WithEase(fn ease.TweenFunc) *Tween {
	if fn != nil {
		t.fn = fn
	}
	return t
}

// WithTag groups the tween so a Tweener can cancel it alongside its siblings.
func (t *Tween) WithTag(tag uint64) *Tween {
	t.tag = tag
	return t
}

// OnComplete registers fn to run once when the tween reaches its end value.
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

// Target returns the animated node.
func (t *Tween) Target() *Node { return t.target }

// Tag returns the tween's group tag (0 if untagged).
func (t *Tween) Tag() uint64 { return t.tag }

// Duration returns the animation length in seconds, excluding delay.
func (t *Tween) Duration() float32 { return t.duration }

// Delay returns the start delay in seconds.
func (t *Tween) Delay() float32 { return t.delay }

// End returns the value the tween animates towards.
func (t *Tween) End() float64 { return t.to }

// Start returns the explicit start value and whether one was given.
func (t *Tween) Start() (float64, bool) { return t.from, t.hasFrom }

// Cancelled reports whether the tween was stopped before completing.
func (t *Tween) Cancelled() bool { return t.cancelled }

// Cancel stops the tween where it is. OnComplete is not called.
func (t *Tween) Cancel() {
	if t.Done {
		return
	}
	t.Done = true
	t.cancelled = true
}

// Update advances the tween by dt seconds and writes the current value to the
// target node.
func (t *Tween) Update(dt float32) {
	if t.Done {
		return
	}
	if t.target == nil || t.target.IsDisposed() {
		t.Done = true
		t.cancelled = true
		return
	}

	if t.elapsed < t.delay {
		t.elapsed += dt
		if t.elapsed < t.delay {
			return
		}
		// Carry the overshoot into the animation.
		dt = t.elapsed - t.delay
	}

	if !t.started {
		t.started = true
		begin := t.from
		if !t.hasFrom {
			begin = *t.field()
		}
		if t.duration <= 0 {
			t.finish()
			return
		}
		t.tw = gween.New(float32(begin), float32(t.to), t.duration, t.fn)
	}

	val, finished := t.tw.Update(dt)
	if finished {
		t.finish()
		return
	}
	*t.field() = float64(val)
}

// finish snaps the property to the exact end value and fires OnComplete.
func (t *Tween) finish() {
	*t.field() = t.to
	t.Done = true
	if t.prop != PropAlpha {
		t.target.MarkDirty()
	}
	if t.onComplete != nil {
		t.onComplete()
	}
}

func (t *Tween) field() *float64 {
	switch t.prop {
	case PropX:
		t.target.transformDirty = true
		return &t.target.X
	case PropY:
		t.target.transformDirty = true
		return &t.target.Y
	default:
		return &t.target.Alpha
	}
}

// Tweener owns the running tweens and advances them once per tick.
// Tweens added from an OnComplete callback start on the following tick.
type Tweener struct {
	active  []*Tween
	nextTag uint64
}

// NewTweener creates an empty scheduler.
func NewTweener() *Tweener {
	return &Tweener{}
}

// Add schedules t and returns it.
func (s *Tweener) Add(t *Tween) *Tween {
	if t == nil {
		panic("scene: cannot schedule nil tween")
	}
	s.active = append(s.active, t)
	return t
}

// NextTag returns a fresh, non-zero tag for grouping tweens.
func (s *Tweener) NextTag() uint64 {
	s.nextTag++
	return s.nextTag
}

// Update advances every running tween by dt seconds and drops finished ones.
func (s *Tweener) Update(dt float32) {
	n := len(s.active)
	for i := 0; i < n; i++ {
		s.active[i].Update(dt)
	}
	// Compact in place, keeping tweens appended by callbacks during the loop.
	kept := s.active[:0]
	for _, t := range s.active {
		if !t.Done {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = kept
}

// CancelTag cancels every running tween carrying tag and returns how many
// were stopped. Tag 0 is never matched.
func (s *Tweener) CancelTag(tag uint64) int {
	if tag == 0 {
		return 0
	}
	count := 0
	for _, t := range s.active {
		if t.tag == tag && !t.Done {
			t.Cancel()
			count++
		}
	}
	return count
}

// Len returns the number of scheduled tweens that have not finished.
func (s *Tweener) Len() int {
	count := 0
	for _, t := range s.active {
		if !t.Done {
			count++
		}
	}
	return count
}

// Tagged returns the number of unfinished tweens carrying tag.
func (s *Tweener) Tagged(tag uint64) int {
	count := 0
	for _, t := range s.active {
		if t.tag == tag && !t.Done {
			count++
		}
	}
	return count
}
