package quarkgl

// Target is a minimal pixel target for software rendering.
//
// Coordinates are raster coordinates: origin top-left, y down.
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}
