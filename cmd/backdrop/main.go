package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/backdrop"
	"github.com/phanxgames/backdrop/scene"
	"github.com/urfave/cli"
)

func main() {
	if err := newCLIApp(run).Run(os.Args); err != nil {
		slog.Error("backdrop failed", "error", err)
		os.Exit(1)
	}
}

// newCLIApp declares the command line and hands the parsed context to action.
func newCLIApp(action func(*cli.Context) error) *cli.App {
	app := cli.NewApp()
	app.Name = "backdrop"
	app.Usage = "crossfade a tinted sprite grid between background images"
	app.UsageText = "backdrop [options] [image files...]"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Path to a YAML config file",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "Initial window width (overrides config)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "Initial window height (overrides config)",
		},
		cli.DurationFlag{
			Name:  "interval",
			Usage: "Time between background changes, 0 to disable (overrides config)",
			Value: -1,
		},
		cli.StringFlag{
			Name:  "policy",
			Usage: "What to do when a change is requested mid-transition: cancel, queue or ignore",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn or error",
		},
		cli.StringFlag{
			Name:  "screenshot-dir",
			Usage: "Directory for screenshots taken with the S key",
		},
		cli.Uint64Flag{
			Name:  "seed",
			Usage: "Seed for per-cell durations (0 = random)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Log per-frame draw stats",
		},
	}
	app.Action = action
	return app
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	eng := scene.NewEngine()
	if err := eng.Assets.LoadEntries(cfg.Backgrounds, cfg.BaseDir); err != nil {
		return err
	}
	if eng.Assets.Len() == 0 {
		logger.Info("no backgrounds given, using generated gradients")
		registerGradients(eng.Assets, cfg.Window.Width, cfg.Window.Height)
	}
	eng.SetWindowSize(cfg.Window.Width, cfg.Window.Height)

	view, err := backdrop.BuildView(eng, append(cfg.ViewOptions(), backdrop.WithLogger(logger))...)
	if err != nil {
		return fmt.Errorf("build view: %w", err)
	}

	s := scene.NewScene(eng)
	s.SetLogger(logger)
	s.ClearColor = scene.ColorBlack
	s.ScreenshotDir = cfg.ScreenshotDir
	s.Root().AddChild(view.Render)

	a := newApp(eng, s, view, cfg, logger)
	if err := a.advance(); err != nil {
		return err
	}
	s.SetUpdateFunc(a.update)

	logger.Info("starting backdrop",
		"backgrounds", eng.Assets.Len(),
		"policy", cfg.Policy,
		"interval", cfg.Interval,
		"cols", view.Geometry.Amount.Cols,
		"rows", view.Geometry.Amount.Rows,
	)
	return scene.Run(s, scene.RunConfig{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Resizable: cfg.Window.Resizable,
		Debug:     cfg.Debug,
	})
}

// loadConfig reads the config file, if any, and applies flag overrides and
// positional image files.
func loadConfig(c *cli.Context) (*backdrop.Config, error) {
	cfg := backdrop.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := backdrop.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if w := c.Int("width"); w > 0 {
		cfg.Window.Width = w
	}
	if h := c.Int("height"); h > 0 {
		cfg.Window.Height = h
	}
	if d := c.Duration("interval"); d >= 0 {
		cfg.Interval = d
	}
	if p := c.String("policy"); p != "" {
		policy, err := backdrop.ParsePolicy(p)
		if err != nil {
			return nil, err
		}
		cfg.Policy = policy
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if dir := c.String("screenshot-dir"); dir != "" {
		cfg.ScreenshotDir = dir
	}
	if seed := c.Uint64("seed"); seed != 0 {
		cfg.Seed = seed
	}
	if c.Bool("debug") {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}

	for _, path := range c.Args() {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}
		id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		cfg.Backgrounds = append(cfg.Backgrounds, scene.AssetEntry{ID: id, Path: abs})
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(errors.New("invalid options"), err)
	}
	return cfg, nil
}
