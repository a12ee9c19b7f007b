package backdrop

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	want := DefaultConfig()
	if cfg.Window != want.Window || cfg.Label != DefaultLabel || cfg.Policy != PolicyCancel {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if cfg.Interval != 8*time.Second || cfg.ResizeDebounce != 15 {
		t.Errorf("interval/debounce = %s/%d, want 8s/15", cfg.Interval, cfg.ResizeDebounce)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
window:
  title: Lobby
  width: 800
  height: 600
label: ""
labelColor: 0xFF0000
flashColor: 0x202020
policy: queue
interval: 2500ms
seed: 42
resizeDebounce: 0
logLevel: debug
backgrounds:
  - id: dusk
    path: images/dusk.png
  - path: images/dawn.webp
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Window.Title != "Lobby" || cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if !cfg.Window.Resizable {
		t.Error("unset fields should keep their defaults")
	}
	if cfg.Label != "" || cfg.LabelColor != 0xFF0000 || cfg.FlashColor != 0x202020 {
		t.Errorf("label = %q 0x%X flash 0x%X", cfg.Label, cfg.LabelColor, cfg.FlashColor)
	}
	if cfg.Policy != PolicyQueue {
		t.Errorf("Policy = %v, want queue", cfg.Policy)
	}
	if cfg.Interval != 2500*time.Millisecond {
		t.Errorf("Interval = %s, want 2.5s", cfg.Interval)
	}
	if cfg.Seed != 42 || cfg.ResizeDebounce != 0 {
		t.Errorf("seed/debounce = %d/%d", cfg.Seed, cfg.ResizeDebounce)
	}
	if lvl, _ := cfg.SlogLevel(); lvl != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", lvl)
	}
	if len(cfg.Backgrounds) != 2 || cfg.Backgrounds[0].ID != "dusk" || cfg.Backgrounds[1].Path != "images/dawn.webp" {
		t.Errorf("Backgrounds = %+v", cfg.Backgrounds)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", "window: [", "failed to parse"},
		{"width", "window:\n  width: 0\n", "window size"},
		{"label color", "labelColor: 0x1000000\n", "labelColor"},
		{"flash color", "flashColor: 0x1000000\n", "flashColor"},
		{"policy", "policy: sometimes\n", "unknown transition policy"},
		{"interval", "interval: -1s\n", "interval"},
		{"debounce", "resizeDebounce: -3\n", "resizeDebounce"},
		{"log level", "logLevel: loud\n", "logLevel"},
		{"background", "backgrounds:\n  - id: x\n", "background 0 has no path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigSetsBaseDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backdrop.yaml")
	if err := os.WriteFile(path, []byte("label: Hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BaseDir != dir || cfg.Label != "Hi" {
		t.Errorf("BaseDir = %q, Label = %q", cfg.BaseDir, cfg.Label)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestPolicyYAML(t *testing.T) {
	out, err := yaml.Marshal(struct {
		Policy Policy `yaml:"policy"`
	}{PolicyIgnore})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != "policy: ignore\n" {
		t.Errorf("Marshal = %q", out)
	}
}

func TestConfigViewOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Label = "Hi"
	cfg.LabelColor = 0x102030
	cfg.Policy = PolicyIgnore
	cfg.Seed = 7

	o := defaultOptions()
	for _, opt := range cfg.ViewOptions() {
		opt(&o)
	}
	if o.label != "Hi" || o.labelColor.Hex() != 0x102030 || o.policy != PolicyIgnore {
		t.Errorf("options = %+v", o)
	}

	// Equal seeds give equal duration sequences.
	other := defaultOptions()
	WithSeed(7)(&other)
	for i := 0; i < 5; i++ {
		if a, b := o.rng.Float64(), other.rng.Float64(); a != b {
			t.Fatalf("draw %d: %f != %f", i, a, b)
		}
	}
}
