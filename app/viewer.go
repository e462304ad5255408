package app

import (
	"log/slog"

	"prism/hal"
	"prism/quarkgl"
	"prism/scene"
)

// fpsWindow is the tick span (milliseconds on host) frames are counted over.
const fpsWindow = 1000

type viewer struct {
	fb     hal.Framebuffer
	target *quarkgl.RGB565Target
	sc     *scene.Scene
	surf   *quarkgl.Surface
	keys   scene.KeyMap
	log    *slog.Logger

	kbd   <-chan hal.KeyEvent
	ticks <-chan uint64

	hud   bool
	stats quarkgl.FrameStats

	now        uint64
	windowFrom uint64
	frames     int
	fps        int
	faulted    int
}

// step handles pending input, then draws and presents one frame.
func (v *viewer) step() error {
	if err := v.drainKeys(); err != nil {
		return err
	}
	v.drainTicks()

	st, err := v.sc.Render(v.surf)
	v.stats = st
	if err != nil && st.Faulted != v.faulted {
		v.log.Warn("prism: frame has faulty faces", slog.Int("faulted", st.Faulted), slog.Any("err", err))
	}
	v.faulted = st.Faulted
	v.frames++

	if v.hud {
		v.drawHUD()
	}
	return v.fb.Present()
}

func (v *viewer) drainKeys() error {
	if v.kbd == nil {
		return nil
	}
	for {
		select {
		case ev := <-v.kbd:
			if err := v.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	r := ev.Rune
	switch ev.Code {
	case hal.KeyEscape:
		return hal.ErrQuit
	case hal.KeyTab:
		r = '\t'
	}
	if r == 'h' {
		v.hud = !v.hud
		return nil
	}
	cmd, ok := v.keys.Lookup(r)
	if !ok {
		return nil
	}
	if v.sc.Apply(cmd) {
		v.log.Debug("prism: command",
			slog.String("key", string(r)),
			slog.String("axis", cmd.Axis.String()),
			slog.String("sel", v.sc.SelectionLabel()),
		)
	}
	return nil
}

// drainTicks keeps the newest tick and updates the frame rate once per window.
func (v *viewer) drainTicks() {
	if v.ticks == nil {
		return
	}
	for {
		select {
		case seq := <-v.ticks:
			v.now = seq
		default:
			if v.now-v.windowFrom >= fpsWindow {
				v.fps = int(uint64(v.frames) * fpsWindow / (v.now - v.windowFrom))
				v.windowFrom = v.now
				v.frames = 0
			}
			return
		}
	}
}
