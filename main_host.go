package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"prism/app"
	"prism/hal"
	"prism/internal/buildinfo"
	"prism/internal/config"
)

func main() {
	var (
		hcfg          hal.HeadlessConfig
		configPath    string
		snapshotPath  string
		snapshotScale int
		logLevel      string
		noHUD         bool
		version       bool
	)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&hcfg.Keys, "keys", "", "Keys typed one per tick in headless mode.")
	flag.StringVar(&configPath, "config", "", "Scene TOML file.")
	flag.StringVar(&snapshotPath, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.IntVar(&snapshotScale, "snapshot-scale", 1, "Integer upscale for -snapshot.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	flag.BoolVar(&noHUD, "no-hud", false, "Start with the status overlay hidden.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	sceneCfg, err := config.Load(configPath)
	if err != nil {
		fatal(err)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fatal(fmt.Errorf("-log-level: %w", err))
	}
	acfg := app.Config{Scene: sceneCfg, HUD: !noHUD, LogLevel: level}
	newApp := func(h hal.HAL) (func() error, error) { return app.New(h, acfg) }

	if hcfg.Enabled {
		hcfg.Width, hcfg.Height = sceneCfg.Width, sceneCfg.Height
		if snapshotPath != "" {
			hcfg.Snapshot = app.Snapshot(snapshotPath, snapshotScale)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatal(err)
		}
		return
	}

	if err := hal.RunWindow(hal.WindowConfig{
		Width:  sceneCfg.Width,
		Height: sceneCfg.Height,
		Scale:  sceneCfg.Scale,
		Title:  "prism (" + buildinfo.Short() + ")",
	}, newApp); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
