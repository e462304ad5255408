package quarkgl

import "fmt"

// Canonical outward normals.
var (
	axisPosX = V3(1, 0, 0)
	axisNegX = V3(-1, 0, 0)
	axisPosY = V3(0, 1, 0)
	axisNegY = V3(0, -1, 0)
	axisPosZ = V3(0, 0, 1)
	axisNegZ = V3(0, 0, -1)
)

// cubeCorners lists corner directions; vertex i sits at center + corner*size/2.
var cubeCorners = [8]Vec3{
	{-1, 1, 1},
	{1, 1, 1},
	{1, -1, 1},
	{-1, -1, 1},
	{-1, 1, -1},
	{1, 1, -1},
	{1, -1, -1},
	{-1, -1, -1},
}

var cubeTris = [12]Tri{
	{0, 1, 3, axisPosZ},
	{2, 1, 3, axisPosZ},
	{1, 2, 5, axisPosX},
	{6, 2, 5, axisPosX},
	{6, 5, 7, axisNegZ},
	{4, 5, 7, axisNegZ},
	{0, 3, 4, axisNegX},
	{7, 3, 4, axisNegX},
	{4, 0, 5, axisPosY},
	{1, 0, 5, axisPosY},
	{7, 3, 6, axisNegY},
	{2, 3, 6, axisNegY},
}

// NewCube builds an axis-aligned cube with the given edge length.
//
// Vertex normals are the corner directions and are not used for rendering.
func NewCube(center Vec3, size float64) (*Mesh, error) {
	if !(size > 0) || !isFinite(size) {
		return nil, fmt.Errorf("%w: cube size %v", ErrInvalidMesh, size)
	}
	d := size / 2
	verts := make([]Vertex, 0, len(cubeCorners))
	for _, c := range cubeCorners {
		v, err := NewVertex(center.Add(c.Mul(d)), c, Color{})
		if err != nil {
			return nil, err
		}
		verts = append(verts, v)
	}
	return NewMesh("cube", verts, cubeTris[:], center, size)
}

// NewPlane builds a horizontal square of two triangles facing +y.
func NewPlane(center Vec3, size float64) (*Mesh, error) {
	if !(size > 0) || !isFinite(size) {
		return nil, fmt.Errorf("%w: plane size %v", ErrInvalidMesh, size)
	}
	d := size / 2
	corners := [4]Vec3{
		{d, 0, d},
		{-d, 0, d},
		{-d, 0, -d},
		{d, 0, -d},
	}
	verts := make([]Vertex, 0, len(corners))
	for _, c := range corners {
		verts = append(verts, Vertex{Pos: center.Add(c), Normal: axisPosY})
	}
	tris := []Tri{
		{0, 1, 2, axisPosY},
		{0, 2, 3, axisPosY},
	}
	return NewMesh("plane", verts, tris, center, size)
}
