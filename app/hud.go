package app

import (
	"fmt"
	"image/color"

	"prism/quarkgl"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	hudX          = 4
	hudLineHeight = 10
)

var hudFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// fbDisplayer lets tinyfont draw straight into the render target.
type fbDisplayer struct {
	t *quarkgl.RGB565Target
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), quarkgl.RGB(c.R, c.G, c.B))
}

func (d *fbDisplayer) Display() error { return nil }

func (v *viewer) hudLines() []string {
	st := v.stats
	return []string{
		fmt.Sprintf("sel %s  fps %d", v.sc.SelectionLabel(), v.fps),
		fmt.Sprintf("faces %d drawn %d back %d clip %d px %d",
			st.Faces, st.Rasterized, st.BackCulled, st.FrustumCulled, st.Pixels),
		"123/456 spin  sdf/jkl move  tab sel  h hud  esc quit",
	}
}

func (v *viewer) drawHUD() {
	d := &fbDisplayer{t: v.target}
	c := v.surf.Style().Stroke
	fg := color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	for i, line := range v.hudLines() {
		tinyfont.WriteLine(d, hudFont, hudX, int16((i+1)*hudLineHeight), line, fg)
	}
}
