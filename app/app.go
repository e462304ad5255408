// Package app drives a scene on a HAL. Each step drains keyboard input into
// scene commands, renders the frame into the framebuffer and presents it.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"prism/hal"
	"prism/internal/buildinfo"
	"prism/internal/config"
	"prism/quarkgl"
	"prism/scene"
)

// Config selects the scene and how the viewer runs it.
type Config struct {
	Scene config.Config

	// HUD draws the status lines over each frame. 'h' toggles it at runtime.
	HUD bool

	LogLevel slog.Level
}

var errNoFramebuffer = errors.New("app: no framebuffer")

// New builds the scene described by cfg on h and returns the per-tick step
// function expected by hal.RunWindow and hal.RunHeadless.
func New(h hal.HAL, cfg Config) (func() error, error) {
	v, err := newViewer(h, cfg)
	if err != nil {
		return nil, err
	}
	return v.step, nil
}

func newViewer(h hal.HAL, cfg Config) (*viewer, error) {
	if h == nil || h.Display() == nil || h.Display().Framebuffer() == nil {
		return nil, errNoFramebuffer
	}
	fb := h.Display().Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", fb.Format())
	}
	if fb.Width() != cfg.Scene.Width || fb.Height() != cfg.Scene.Height {
		return nil, fmt.Errorf("app: framebuffer %dx%d does not match scene %dx%d",
			fb.Width(), fb.Height(), cfg.Scene.Width, cfg.Scene.Height)
	}

	log := newLogger(h.Logger(), cfg.LogLevel)
	quarkgl.SetLogger(log)

	cam, meshes, err := cfg.Scene.Build()
	if err != nil {
		return nil, err
	}
	sc, err := scene.New(cam, meshes...)
	if err != nil {
		return nil, err
	}
	style, err := cfg.Scene.Style.Surface()
	if err != nil {
		return nil, err
	}
	target := &quarkgl.RGB565Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}
	surf, err := quarkgl.NewSurface(target, style)
	if err != nil {
		return nil, err
	}

	v := &viewer{
		fb:     fb,
		target: target,
		sc:     sc,
		surf:   surf,
		keys:   scene.DefaultKeyMap(),
		log:    log,
		hud:    cfg.HUD,
	}
	if in := h.Input(); in != nil && in.Keyboard() != nil {
		v.kbd = in.Keyboard().Events()
	}
	if t := h.Time(); t != nil {
		v.ticks = t.Ticks()
	}

	log.Info("prism: start",
		slog.String("build", buildinfo.String()),
		slog.Int("width", fb.Width()),
		slog.Int("height", fb.Height()),
		slog.Int("meshes", len(meshes)),
		slog.Float64("ppu", cam.PixelsPerUnit),
	)
	return v, nil
}
