package backdrop

import (
	"log/slog"
	"math/rand/v2"

	"github.com/phanxgames/backdrop/scene"
)

const (
	// SpriteBudget caps each batch layer's sprite count.
	SpriteBudget = 15000
	// GridAlpha is the opacity of the static reference lines.
	GridAlpha = 0.03
	// LabelAlpha is the opacity of the watermark label.
	LabelAlpha = 0.03
	// LabelScale sets the label font size as a multiple of the viewport width.
	LabelScale = 1.3
	// FlashAlpha is the peak opacity of the per-cell flash.
	FlashAlpha = 0.07

	// DefaultLabel is the watermark text.
	DefaultLabel = "Pc"
	// DefaultLabelColor is the watermark color as 0xRRGGBB.
	DefaultLabelColor = 0xD0D0D0

	// gridLineOverhang extends grid lines past the viewport so the offset
	// render layer never shows their ends.
	gridLineOverhang = 100
)

type options struct {
	rng        *rand.Rand
	label      string
	labelColor scene.Color
	flashColor scene.Color
	policy     Policy
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		label:      DefaultLabel,
		labelColor: scene.RGB(DefaultLabelColor),
		flashColor: scene.ColorBlack,
		policy:     PolicyCancel,
		logger:     slog.Default(),
	}
}

// Option customizes a View at build time.
type Option func(*options)

// WithRand sets the random source for per-cell transition durations.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSeed seeds the per-cell duration source deterministically.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithLabel sets the watermark text. An empty label draws no watermark.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithLabelColor sets the watermark color.
func WithLabelColor(c scene.Color) Option {
	return func(o *options) { o.labelColor = c }
}

// WithFlashColor sets the fill of the flash layer.
func WithFlashColor(c scene.Color) Option {
	return func(o *options) { o.flashColor = c }
}

// WithPolicy sets how a transition request is handled while one is running.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithLogger sets the logger for layout and queue events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
