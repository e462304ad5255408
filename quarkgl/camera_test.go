package quarkgl

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera(t *testing.T) *Camera {
	t.Helper()
	c, err := NewCamera(V3(0, 0, 500), 50, 800, 600)
	require.NoError(t, err)
	return c
}

func TestNewCamera(t *testing.T) {
	c := newTestCamera(t)

	assert.Equal(t, V3(0, 0, 500), c.Position)
	assert.Equal(t, V3(0, 0, -1), c.Forward)
	assert.Equal(t, V3(0, 1, 0), c.Up)
	assertVecInDelta(t, V3(-1, 0, 0), c.Right, tol)
	assert.InDelta(t, 0.5, c.FoV, tol)
	assert.InDelta(t, 4.0/3.0, c.Aspect, tol)

	// diagonal = 2*50*0.5 = 50, screen height = 50/sqrt(1+16/9) = 30, 600/30 = 20.
	assert.InDelta(t, 20.0, c.PixelsPerUnit, 1e-9)

	w, h := c.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestNewCameraRejects(t *testing.T) {
	_, err := NewCamera(Vec3{}, 50, 0, 600)
	assert.ErrorIs(t, err, ErrInvalidCamera)
	_, err = NewCamera(Vec3{}, 0, 800, 600)
	assert.ErrorIs(t, err, ErrInvalidCamera)
	_, err = NewCamera(V3(math.NaN(), 0, 0), 50, 800, 600)
	assert.ErrorIs(t, err, ErrInvalidCamera)
}

func TestCameraMove(t *testing.T) {
	c := newTestCamera(t)
	c.Move(V3(-1, 0, 0))
	c.Move(V3(0, -1, -1))
	assert.Equal(t, V3(-1, -1, 499), c.Position)
}

func assertOrthonormal(t *testing.T, c *Camera, delta float64) {
	t.Helper()
	assert.InDelta(t, 1.0, Len(c.Forward), delta)
	assert.InDelta(t, 1.0, Len(c.Up), delta)
	assert.InDelta(t, 1.0, Len(c.Right), delta)
	assert.InDelta(t, 0.0, Dot(c.Forward, c.Up), delta)
	assert.InDelta(t, 0.0, Dot(c.Forward, c.Right), delta)
	assert.InDelta(t, 0.0, Dot(c.Up, c.Right), delta)
}

func TestCameraSpinKeepsFrameOrthonormal(t *testing.T) {
	c := newTestCamera(t)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		c.Spin(Euler{
			Psi:   (rng.Float64() - 0.5) * 0.2,
			Theta: (rng.Float64() - 0.5) * 0.2,
			Phi:   (rng.Float64() - 0.5) * 0.2,
		})
	}
	assertOrthonormal(t, c, 1e-12)
	// Handedness is kept: right stays up × forward.
	assertVecInDelta(t, Cross(c.Up, c.Forward), c.Right, 1e-12)
}

func TestCameraSpinQuarterTurn(t *testing.T) {
	c := newTestCamera(t)
	c.Spin(Euler{Theta: math.Pi / 2})
	// Turning about y sends -z to -x.
	assertVecInDelta(t, V3(-1, 0, 0), c.Forward, tol)
	assertVecInDelta(t, V3(0, 1, 0), c.Up, tol)
	assertVecInDelta(t, V3(0, 0, 1), c.Right, tol)
}

func TestWithinFrustum(t *testing.T) {
	c := newTestCamera(t)

	tests := []struct {
		name string
		p    Vec3
		want bool
	}{
		{"on axis", V3(0, 0, 0), true},
		{"behind", V3(0, 0, 600), false},
		{"camera plane", V3(10, 0, 500), false},
		{"inside cone", V3(200, 0, 0), true},
		{"on cone edge", V3(250, 0, 0), true},
		{"outside cone", V3(251, 0, 0), false},
		{"diagonal outside", V3(200, 200, 0), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.WithinFrustum(tc.p))
		})
	}
}

func TestProject(t *testing.T) {
	c := newTestCamera(t)

	p, err := c.Project(V3(0, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, p.X, tol)
	assert.InDelta(t, 0.0, p.Y, tol)

	// depth 500, scale = 50/500*20 = 2 pixels per world unit.
	p, err = c.Project(V3(10, 20, 0))
	require.NoError(t, err)
	assert.InDelta(t, -20.0, p.X, tol) // right axis is -x
	assert.InDelta(t, 40.0, p.Y, tol)

	// Closer points spread further.
	near, err := c.Project(V3(10, 0, 250))
	require.NoError(t, err)
	assert.InDelta(t, -40.0, near.X, tol)
}

func TestProjectOnCameraPlane(t *testing.T) {
	c := newTestCamera(t)
	_, err := c.Project(c.Position)
	assert.ErrorIs(t, err, ErrProjection)

	_, err = c.Project(V3(30, 40, 500))
	assert.ErrorIs(t, err, ErrProjection)
}

func TestFacesAway(t *testing.T) {
	c := newTestCamera(t)
	f := &Face{Normal: V3(0, 0, 1)}

	away, err := c.FacesAway(f)
	require.NoError(t, err)
	assert.False(t, away, "face toward the camera must render")

	c.Forward = V3(0, 0, 1)
	away, err = c.FacesAway(f)
	require.NoError(t, err)
	assert.True(t, away, "face away from the camera must be skipped")

	// Perpendicular faces are skipped too.
	c.Forward = V3(1, 0, 0)
	away, err = c.FacesAway(f)
	require.NoError(t, err)
	assert.True(t, away)

	_, err = c.FacesAway(&Face{})
	assert.ErrorIs(t, err, ErrDegenerateVector)
}
