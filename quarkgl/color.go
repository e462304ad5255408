package quarkgl

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Over composites c on top of an opaque background and returns an opaque color.
func (c Color) Over(bg Color) Color {
	a := uint32(c.A)
	mix := func(fg, bg uint8) uint8 {
		return uint8((uint32(fg)*a + uint32(bg)*(255-a) + 127) / 255)
	}
	return Color{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: 0xFF}
}

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

// Light is a directional light. Rendering does not shade, so it only
// carries a direction for callers that want one.
type Light struct {
	Dir Vec3
}
