package quarkgl

import (
	"fmt"
	"math"
)

// ScreenDistance is the distance from the camera to its virtual screen.
const ScreenDistance = 50

// minDepth is the smallest depth along the view axis that Project accepts.
const minDepth = 1e-9

// Camera is a perspective camera with its own orthonormal frame.
type Camera struct {
	Position Vec3

	Forward Vec3
	Up      Vec3
	Right   Vec3

	// FoV is the ratio of view radius to distance (input degrees-like value / 100).
	FoV    float64
	Aspect float64

	// PixelsPerUnit scales virtual screen units to pixels.
	PixelsPerUnit float64

	width, height int
}

// NewCamera creates a camera at pos looking down -z with +y up.
//
// fov is the degrees-like field-of-view input; width and height are the size of
// the output surface in pixels.
func NewCamera(pos Vec3, fov float64, width, height int) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface %dx%d", ErrInvalidCamera, width, height)
	}
	if !(fov > 0) || !isFinite(fov) {
		return nil, fmt.Errorf("%w: field of view %v", ErrInvalidCamera, fov)
	}
	if !pos.finite() {
		return nil, fmt.Errorf("%w: position %v", ErrInvalidCamera, pos)
	}
	c := &Camera{
		Position: pos,
		Forward:  V3(0, 0, -1),
		Up:       V3(0, 1, 0),
		FoV:      fov / 100,
		Aspect:   float64(width) / float64(height),
		width:    width,
		height:   height,
	}
	right, err := Normalize(Cross(c.Up, c.Forward))
	if err != nil {
		return nil, err
	}
	c.Right = right
	c.PixelsPerUnit = pixelsPerUnit(ScreenDistance, c.FoV, c.Aspect, height)
	return c, nil
}

// pixelsPerUnit sizes the virtual screen from its diagonal and maps its height
// onto the output height.
func pixelsPerUnit(dist, fov, aspect float64, outHeight int) float64 {
	diagonal := 2 * dist * fov
	screenHeight := diagonal / math.Sqrt(1+aspect*aspect)
	return float64(outHeight) / screenHeight
}

// Size returns the output surface size the camera was built for.
func (c *Camera) Size() (w, h int) { return c.width, c.height }

// Move translates the camera by d.
func (c *Camera) Move(d Vec3) { c.Position = c.Position.Add(d) }

// Spin rotates the camera frame by e and re-orthonormalizes it.
func (c *Camera) Spin(e Euler) {
	r := EulerMatrix(e)
	c.Forward = Mat3MulV3(r, c.Forward)
	c.Up = Mat3MulV3(r, c.Up)
	c.Right = Mat3MulV3(r, c.Right)
	c.orthonormalize()
}

// orthonormalize removes accumulated drift: up is made perpendicular to
// forward, right is rebuilt as up × forward.
func (c *Camera) orthonormalize() {
	f, err := Normalize(c.Forward)
	if err != nil {
		return
	}
	u, err := Normalize(c.Up.Sub(f.Mul(Dot(c.Up, f))))
	if err != nil {
		return
	}
	r, err := Normalize(Cross(u, f))
	if err != nil {
		return
	}
	c.Forward, c.Up, c.Right = f, u, r
}

// WithinFrustum reports whether p lies inside the view cone.
//
// The cone has its apex at the camera and half-angle atan(FoV) around Forward.
func (c *Camera) WithinFrustum(p Vec3) bool {
	cv := Displacement(c.Position, p)
	depth := Dot(cv, c.Forward)
	if depth <= 0 {
		return false
	}
	foot := c.Position.Add(c.Forward.Mul(depth))
	return Distance(foot, p) <= depth*c.FoV
}

// Project maps p onto the screen plane in pixels, centered at (0,0) with +y up.
func (c *Camera) Project(p Vec3) (Point2, error) {
	cv := Displacement(c.Position, p)
	depth := Dot(cv, c.Forward)
	if math.Abs(depth) < minDepth {
		return Point2{}, fmt.Errorf("%w: %v at depth %g", ErrProjection, p, depth)
	}
	scale := ScreenDistance / depth * c.PixelsPerUnit
	pt := Point2{
		X: Dot(cv, c.Right) * scale,
		Y: Dot(cv, c.Up) * scale,
	}
	if !isFinite(pt.X) || !isFinite(pt.Y) {
		return Point2{}, fmt.Errorf("%w: %v projects to %v", ErrProjection, p, pt)
	}
	return pt, nil
}

// FacesAway reports whether f should be skipped as a back face.
//
// A face is drawn only when the angle between its normal and Forward is
// strictly greater than 90 degrees.
func (c *Camera) FacesAway(f *Face) (bool, error) {
	cos, err := CosAngle(f.Normal, c.Forward)
	if err != nil {
		return false, fmt.Errorf("face normal %v: %w", f.Normal, err)
	}
	return cos >= 0, nil
}
