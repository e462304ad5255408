package quarkgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCubeTopology(t *testing.T) {
	center := V3(10, -5, 3)
	c, err := NewCube(center, 50)
	require.NoError(t, err)
	require.Len(t, c.Vertices, 8)
	require.Len(t, c.Faces, 12)
	assert.Equal(t, center, c.Center)
	assert.Equal(t, 50.0, c.Size)

	for i, v := range c.Vertices {
		assert.InDelta(t, 1.0, Len(v.Normal), tol, "vertex %d normal", i)
		assert.Equal(t, Color{}, v.Color)
	}

	// Every vertex of a face lies on the plane half an edge out along its normal.
	for i, f := range c.Faces {
		assert.InDelta(t, 1.0, Len(f.Normal), tol)
		for _, v := range f.Verts {
			assert.InDelta(t, 25.0, Dot(v.Pos.Sub(center), f.Normal), tol, "face %d", i)
		}
	}
}

func TestNewCubeFacesAliasVertices(t *testing.T) {
	c, err := NewCube(V3(0, 0, 0), 2)
	require.NoError(t, err)

	c.Vertices[0].Pos = V3(9, 9, 9)
	assert.Equal(t, V3(9, 9, 9), c.Faces[0].Verts[0].Pos)
}

func TestNewCubeInvalidSize(t *testing.T) {
	for _, size := range []float64{0, -1} {
		_, err := NewCube(V3(0, 0, 0), size)
		assert.ErrorIs(t, err, ErrInvalidMesh)
	}
}

func TestNewMeshValidates(t *testing.T) {
	verts := []Vertex{
		{Pos: V3(0, 0, 0), Normal: V3(0, 0, 1)},
		{Pos: V3(1, 0, 0), Normal: V3(0, 0, 1)},
		{Pos: V3(0, 1, 0), Normal: V3(0, 0, 1)},
	}

	_, err := NewMesh("tri", verts, []Tri{{0, 1, 3, V3(0, 0, 1)}}, Vec3{}, 1)
	assert.ErrorIs(t, err, ErrInvalidMesh)

	_, err = NewMesh("tri", verts, []Tri{{0, 1, 2, Vec3{}}}, Vec3{}, 1)
	assert.ErrorIs(t, err, ErrInvalidMesh)
	assert.ErrorIs(t, err, ErrDegenerateVector)

	m, err := NewMesh("tri", verts, []Tri{{0, 1, 2, V3(0, 0, 5)}}, Vec3{}, 1)
	require.NoError(t, err)
	assert.Equal(t, V3(0, 0, 1), m.Faces[0].Normal)

	// The mesh owns a copy of the input vertices.
	verts[0].Pos = V3(7, 7, 7)
	assert.Equal(t, V3(0, 0, 0), m.Vertices[0].Pos)
}

func TestNewVertex(t *testing.T) {
	v, err := NewVertex(V3(1, 2, 3), V3(0, 2, 0), RGB(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, V3(0, 1, 0), v.Normal)

	_, err = NewVertex(V3(1, 2, 3), Vec3{}, Color{})
	assert.ErrorIs(t, err, ErrDegenerateVector)
}

func TestMeshTranslate(t *testing.T) {
	c, err := NewCube(V3(0, 0, 0), 2)
	require.NoError(t, err)
	before := append([]Vertex(nil), c.Vertices...)

	c.Translate(V3(1, -2, 3))
	assert.Equal(t, V3(1, -2, 3), c.Center)
	for i := range c.Vertices {
		assert.Equal(t, before[i].Pos.Add(V3(1, -2, 3)), c.Vertices[i].Pos)
		assert.Equal(t, before[i].Normal, c.Vertices[i].Normal)
	}
}

func TestMeshSpinAboutCenter(t *testing.T) {
	center := V3(100, 0, 0)
	c, err := NewCube(center, 50)
	require.NoError(t, err)

	c.Spin(Euler{Psi: DegToRad(90)})
	assert.Equal(t, center, c.Center)

	// Rotation about the center keeps every vertex at the same distance from it.
	for _, v := range c.Vertices {
		assert.InDelta(t, 25*1.7320508075688772, Distance(center, v.Pos), 1e-6)
		assert.InDelta(t, 1.0, Len(v.Normal), tol)
	}
	// The +z face is still +z after a turn about z; the +x face now faces +y.
	assertVecInDelta(t, V3(0, 0, 1), c.Faces[0].Normal, tol)
	assertVecInDelta(t, V3(0, 1, 0), c.Faces[2].Normal, tol)
}

func TestMeshFullTurnReturnsToStart(t *testing.T) {
	axes := []struct {
		name string
		step Euler
	}{
		{"psi", Euler{Psi: DegToRad(1)}},
		{"theta", Euler{Theta: DegToRad(1)}},
		{"phi", Euler{Phi: DegToRad(1)}},
	}
	for _, ax := range axes {
		t.Run(ax.name, func(t *testing.T) {
			c, err := NewCube(V3(0, 0, 0), 50)
			require.NoError(t, err)
			start := append([]Vertex(nil), c.Vertices...)
			startNormals := make([]Vec3, len(c.Faces))
			for i, f := range c.Faces {
				startNormals[i] = f.Normal
			}

			for i := 0; i < 360; i++ {
				c.Spin(ax.step)
			}

			for i := range c.Vertices {
				assertVecInDelta(t, start[i].Pos, c.Vertices[i].Pos, 1e-6)
				assertVecInDelta(t, start[i].Normal, c.Vertices[i].Normal, 1e-9)
			}
			for i, f := range c.Faces {
				assertVecInDelta(t, startNormals[i], f.Normal, 1e-9)
			}
		})
	}
}

func TestNewPlane(t *testing.T) {
	p, err := NewPlane(V3(0, -200, 0), 200)
	require.NoError(t, err)
	require.Len(t, p.Faces, 2)
	for _, f := range p.Faces {
		assert.Equal(t, V3(0, 1, 0), f.Normal)
		for _, v := range f.Verts {
			assert.Equal(t, -200.0, v.Pos.Y)
		}
	}

	_, err = NewPlane(Vec3{}, 0)
	assert.ErrorIs(t, err, ErrInvalidMesh)
}
