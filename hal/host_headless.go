package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Width      int
	Height     int
	Hz         int
	Ticks      uint64
	StepBudget int

	// Keys is typed one rune per tick before the step runs.
	Keys string

	// Snapshot, if set, receives the last presented frame when the run ends
	// after Ticks ticks.
	Snapshot func(*image.RGBA) error
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}

	h := New(cfg.Width, cfg.Height).(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	keys := []rune(cfg.Keys)
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if len(keys) > 0 && h.kbd.typeRune(keys[0]) {
				keys = keys[1:]
			}
			for i := 0; i < cfg.StepBudget && step != nil; i++ {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return snapshot(h, cfg)
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return snapshot(h, cfg)
			}
		}
	}
}

func snapshot(h *hostHAL, cfg HeadlessConfig) error {
	if cfg.Snapshot == nil {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, h.fb.width, h.fb.height))
	h.fb.snapshotRGBA(img)
	return cfg.Snapshot(img)
}
