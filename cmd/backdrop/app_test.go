package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phanxgames/backdrop"
	"github.com/phanxgames/backdrop/scene"
	"github.com/urfave/cli"
)

func TestDebouncer(t *testing.T) {
	d := debouncer{ticks: 3}
	d.settle(1000, 500)

	steps := []struct {
		w, h int
		want bool
	}{
		{1000, 500, false}, // unchanged
		{0, 0, false},      // minimized
		{900, 500, false},
		{800, 500, false}, // still dragging, count restarts
		{800, 500, false},
		{800, 500, true},
		{800, 500, false}, // settled
		{1000, 500, false},
		{800, 500, false}, // back to settled size cancels
		{800, 500, false},
	}
	for i, s := range steps {
		if got := d.observe(s.w, s.h); got != s.want {
			t.Errorf("step %d observe(%d, %d) = %v, want %v", i, s.w, s.h, got, s.want)
		}
	}
}

func TestDebouncerImmediate(t *testing.T) {
	d := debouncer{ticks: 0}
	d.settle(100, 100)
	if !d.observe(200, 100) {
		t.Error("zero ticks should relayout on the first change")
	}
}

func TestGradientID(t *testing.T) {
	for i, want := range []string{"gradient-a", "gradient-b", "gradient-c"} {
		if got := gradientID(i); got != want {
			t.Errorf("gradientID(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestLerp8(t *testing.T) {
	tests := []struct {
		a, b uint8
		t    float64
		want uint8
	}{
		{0, 255, 0, 0},
		{0, 255, 1, 255},
		{0, 255, 0.5, 128},
		{200, 100, 0.5, 150},
	}
	for _, tt := range tests {
		if got := lerp8(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("lerp8(%d, %d, %f) = %d, want %d", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestRegisterGradients(t *testing.T) {
	assets := scene.NewAssets()
	registerGradients(assets, 64, 32)
	if assets.Len() != len(gradientStops) {
		t.Fatalf("Len() = %d, want %d", assets.Len(), len(gradientStops))
	}
	tex, ok := assets.Texture("gradient-b")
	if !ok || tex.Width() != 64 || tex.Height() != 32 {
		t.Errorf("gradient-b = %v, %v", tex, ok)
	}
}

func newTestApp(t *testing.T, policy backdrop.Policy) *app {
	t.Helper()
	eng := scene.NewEngine()
	eng.SetWindowSize(1000, 500)
	eng.SetScreenSizeFunc(func() (int, int) { return 0, 0 })
	registerGradients(eng.Assets, 1000, 500)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	view, err := backdrop.BuildView(eng, backdrop.WithPolicy(policy), backdrop.WithSeed(3), backdrop.WithLogger(logger))
	if err != nil {
		t.Fatalf("BuildView: %v", err)
	}
	cfg := backdrop.DefaultConfig()
	cfg.Policy = policy
	return newApp(eng, scene.NewScene(eng), view, cfg, logger)
}

func TestAppAdvanceCycles(t *testing.T) {
	a := newTestApp(t, backdrop.PolicyCancel)
	if got := a.currentID(); got != "backdrop" {
		t.Errorf("currentID() before any background = %q, want backdrop", got)
	}
	for i, want := range []string{"gradient-a", "gradient-b", "gradient-c", "gradient-a"} {
		if err := a.advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if got := a.currentID(); got != want {
			t.Errorf("advance %d showed %q, want %q", i, got, want)
		}
	}
}

func TestAppAdvanceIgnoredWhileBusy(t *testing.T) {
	a := newTestApp(t, backdrop.PolicyIgnore)
	if err := a.advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := a.advance(); err != nil {
		t.Errorf("busy rejection should not be an error: %v", err)
	}
	if got := a.currentID(); got != "gradient-a" {
		t.Errorf("currentID() = %q, want gradient-a", got)
	}
}

// parseArgs runs the command line through loadConfig.
func parseArgs(t *testing.T, args ...string) (*backdrop.Config, error) {
	t.Helper()
	var (
		cfg *backdrop.Config
		err error
	)
	app := newCLIApp(func(c *cli.Context) error {
		cfg, err = loadConfig(c)
		return nil
	})
	app.Writer = io.Discard
	if runErr := app.Run(append([]string{"backdrop"}, args...)); runErr != nil {
		t.Fatalf("Run: %v", runErr)
	}
	return cfg, err
}

func TestLoadConfigFlags(t *testing.T) {
	cfg, err := parseArgs(t,
		"--width", "640", "--height", "480",
		"--interval", "3s", "--policy", "queue",
		"--seed", "9", "--debug",
		"dusk.png",
	)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("window = %dx%d, want 640x480", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Interval != 3*time.Second || cfg.Policy != backdrop.PolicyQueue || cfg.Seed != 9 {
		t.Errorf("interval/policy/seed = %s/%v/%d", cfg.Interval, cfg.Policy, cfg.Seed)
	}
	if !cfg.Debug || cfg.LogLevel != "debug" {
		t.Errorf("debug = %v, logLevel = %q", cfg.Debug, cfg.LogLevel)
	}
	if len(cfg.Backgrounds) != 1 || cfg.Backgrounds[0].ID != "dusk" || !filepath.IsAbs(cfg.Backgrounds[0].Path) {
		t.Errorf("Backgrounds = %+v", cfg.Backgrounds)
	}
}

func TestLoadConfigFileAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backdrop.yaml")
	if err := os.WriteFile(path, []byte("interval: 5s\nlabel: Lobby\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := parseArgs(t, "-c", path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Interval != 5*time.Second || cfg.Label != "Lobby" {
		t.Errorf("interval/label = %s/%q, want 5s/Lobby", cfg.Interval, cfg.Label)
	}

	cfg, err = parseArgs(t, "-c", path, "--interval", "0s")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Interval != 0 {
		t.Errorf("interval = %s, want 0 from the flag", cfg.Interval)
	}
}

func TestLoadConfigBadPolicy(t *testing.T) {
	if _, err := parseArgs(t, "--policy", "sometimes"); err == nil {
		t.Error("expected error")
	}
}
