package quarkgl

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCubeFrame(t *testing.T) {
	cam := newTestCamera(t)
	cube, err := NewCube(V3(0, 0, 0), 50)
	require.NoError(t, err)
	s, img := newTestSurface(t, 800, 600)

	st, err := cam.Render([]*Mesh{cube}, s)
	require.NoError(t, err)

	assert.Equal(t, 12, st.Faces)
	assert.Equal(t, 10, st.BackCulled, "only the +z face looks at the camera")
	assert.Equal(t, 0, st.FrustumCulled)
	assert.Equal(t, 2, st.Rasterized)
	assert.Zero(t, st.Faulted)

	n, cx, cy := countFilled(img, DefaultStyle.Background)
	require.Positive(t, n)
	assert.InDelta(t, 400, cx, 2)
	assert.InDelta(t, 300, cy, 2)

	// The near face spans about ±52.6 pixels, so roughly 107×107 cells.
	assert.InDelta(t, 107*107, n, 300)
}

func TestRenderClearsSurface(t *testing.T) {
	cam := newTestCamera(t)
	cube, err := NewCube(V3(0, 0, 0), 50)
	require.NoError(t, err)
	s, img := newTestSurface(t, 320, 240)

	_, err = cam.Render([]*Mesh{cube}, s)
	require.NoError(t, err)
	first, _, _ := countFilled(img, DefaultStyle.Background)
	require.Positive(t, first)

	cube.Translate(V3(0, 0, 1000)) // behind the camera
	st, err := cam.Render([]*Mesh{cube}, s)
	require.NoError(t, err)
	assert.Equal(t, 2, st.FrustumCulled)
	n, _, _ := countFilled(img, DefaultStyle.Background)
	assert.Zero(t, n)
}

func TestRenderFullyCulledFaceDrawsNothing(t *testing.T) {
	cam := newTestCamera(t)
	// The triangle covers the view axis but every vertex is outside the cone.
	m := singleTriangle(t, V3(-1000, -1000, 0), V3(1000, -1000, 0), V3(0, 1000, 0), V3(0, 0, 1))
	for _, v := range m.Faces[0].Verts {
		require.False(t, cam.WithinFrustum(v.Pos))
	}
	s, img := newTestSurface(t, 200, 200)

	st, err := cam.Render([]*Mesh{m}, s)
	require.NoError(t, err)
	assert.Equal(t, 1, st.FrustumCulled)
	assert.Zero(t, st.Pixels)
	n, _, _ := countFilled(img, DefaultStyle.Background)
	assert.Zero(t, n)
}

func TestRenderPartiallyVisibleFace(t *testing.T) {
	cam := newTestCamera(t)
	m := singleTriangle(t, V3(0, 0, 0), V3(10, 0, 0), V3(0, 1000, 0), V3(0, 0, 1))
	assert.True(t, cam.WithinFrustum(m.Vertices[0].Pos))
	assert.False(t, cam.WithinFrustum(m.Vertices[2].Pos))
	s, img := newTestSurface(t, 200, 200)

	st, err := cam.Render([]*Mesh{m}, s)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Rasterized)
	n, _, _ := countFilled(img, DefaultStyle.Background)
	assert.Positive(t, n)
	assert.Equal(t, st.Pixels, n)
}

func TestRenderSkipsFaultyFaceAndContinues(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { SetLogger(nil) })

	cam := newTestCamera(t)
	// One vertex sits on the camera plane so projection fails.
	bad := singleTriangle(t, V3(0, 0, 500), V3(10, 0, 0), V3(0, 10, 0), V3(0, 0, 1))
	bad.Name = "bad"
	noNormal, err := NewCube(V3(0, 0, 0), 50)
	require.NoError(t, err)
	noNormal.Faces[4].Normal = Vec3{}
	good, err := NewCube(V3(0, 0, 0), 50)
	require.NoError(t, err)
	s, img := newTestSurface(t, 400, 300)

	st, err := cam.Render([]*Mesh{bad, noNormal, nil, good}, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProjection)
	assert.ErrorIs(t, err, ErrDegenerateVector)
	assert.Equal(t, 2, st.Faulted)
	assert.Equal(t, 4, st.Rasterized)

	n, _, _ := countFilled(img, DefaultStyle.Background)
	assert.Positive(t, n)
	assert.Equal(t, 2, strings.Count(buf.String(), "skip face"))
}

func TestRenderNilSurface(t *testing.T) {
	cam := newTestCamera(t)
	_, err := cam.Render(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidSurface)
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		assert.False(t, l.Enabled(context.Background(), level))
	}
}
