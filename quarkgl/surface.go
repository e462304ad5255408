package quarkgl

import "fmt"

// SurfaceStyle is fixed once when a Surface is created.
type SurfaceStyle struct {
	Fill       Color
	Stroke     Color // overlay text; faces are only filled
	Background Color
}

// DefaultStyle is translucent green over white with a black stroke.
var DefaultStyle = SurfaceStyle{
	Fill:       RGBA(0, 255, 0, 128),
	Stroke:     RGB(0, 0, 0),
	Background: RGB(0xFF, 0xFF, 0xFF),
}

// Surface addresses a Target with signed cell coordinates centered on the
// middle of the frame, +y up.
//
// Cell (x, y) covers raster pixel (x+halfW, halfH-1-y), so the addressable
// range is [-halfW, halfW) × [-halfH, halfH). With an odd width or height
// halfW or halfH rounds down and the last column or row is never addressed.
type Surface struct {
	t     Target
	style SurfaceStyle
	fill  Color

	halfW, halfH int
}

// NewSurface wraps t. The fill color is composited over the background here,
// once, so filling a cell is a single pixel write.
func NewSurface(t Target, style SurfaceStyle) (*Surface, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil target", ErrInvalidSurface)
	}
	w, h := t.Size()
	if w <= 1 || h <= 1 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidSurface, w, h)
	}
	bg := style.Background.WithAlpha(0xFF)
	return &Surface{
		t:     t,
		style: style,
		fill:  style.Fill.Over(bg),
		halfW: w / 2,
		halfH: h / 2,
	}, nil
}

func (s *Surface) Style() SurfaceStyle { return s.style }

// HalfExtent returns half the surface width and height in cells.
func (s *Surface) HalfExtent() (halfW, halfH int) { return s.halfW, s.halfH }

// Clear paints the entire surface with the background color.
func (s *Surface) Clear() { s.t.Clear(s.style.Background.WithAlpha(0xFF)) }

// FillCell fills the unit cell at (x, y).
func (s *Surface) FillCell(x, y int) {
	s.t.SetPixel(x+s.halfW, s.halfH-1-y, s.fill)
}
