package quarkgl

import "fmt"

// Vertex is a mesh vertex in world space.
type Vertex struct {
	Pos    Vec3
	Normal Vec3 // unit length
	Color  Color
}

// NewVertex creates a vertex, normalizing the given normal.
func NewVertex(pos, normal Vec3, c Color) (Vertex, error) {
	n, err := Normalize(normal)
	if err != nil {
		return Vertex{}, fmt.Errorf("vertex normal %v: %w", normal, err)
	}
	return Vertex{Pos: pos, Normal: n, Color: c}, nil
}

func (v *Vertex) Translate(d Vec3) { v.Pos = v.Pos.Add(d) }

// RotateAbout rotates the vertex position about center and its normal about
// the origin, both by r.
func (v *Vertex) RotateAbout(r Mat3, center Vec3) {
	v.Pos = center.Add(Mat3MulV3(r, v.Pos.Sub(center)))
	v.Normal = Mat3MulV3(r, v.Normal)
}

// Face is a triangle. Its vertices alias the owning mesh's vertex list.
type Face struct {
	Verts  [3]*Vertex
	Normal Vec3 // outward, unit length
}

// Tri describes a face by vertex indices when building a mesh.
type Tri struct {
	A, B, C int
	Normal  Vec3
}

// Mesh is a closed triangulated polyhedron with fixed topology.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Faces    []Face
	Center   Vec3
	Size     float64
}

// NewMesh builds a mesh from a vertex list and index triangles.
//
// The mesh keeps its own copy of verts; faces point into that copy, so the
// vertex list must never be appended to after construction.
func NewMesh(name string, verts []Vertex, tris []Tri, center Vec3, size float64) (*Mesh, error) {
	if len(verts) < 3 || len(tris) == 0 {
		return nil, fmt.Errorf("%w: %q has %d vertices and %d faces", ErrInvalidMesh, name, len(verts), len(tris))
	}
	m := &Mesh{
		Name:     name,
		Vertices: make([]Vertex, len(verts)),
		Faces:    make([]Face, 0, len(tris)),
		Center:   center,
		Size:     size,
	}
	copy(m.Vertices, verts)

	for i, t := range tris {
		for _, idx := range [3]int{t.A, t.B, t.C} {
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, fmt.Errorf("%w: %q face %d references vertex %d", ErrInvalidMesh, name, i, idx)
			}
		}
		n, err := Normalize(t.Normal)
		if err != nil {
			return nil, fmt.Errorf("%w: %q face %d normal: %w", ErrInvalidMesh, name, i, err)
		}
		m.Faces = append(m.Faces, Face{
			Verts:  [3]*Vertex{&m.Vertices[t.A], &m.Vertices[t.B], &m.Vertices[t.C]},
			Normal: n,
		})
	}
	return m, nil
}

// Spin rotates the mesh about its center.
//
// The center is read once; every vertex in the pass rotates about that same point.
func (m *Mesh) Spin(e Euler) {
	if m == nil {
		return
	}
	r := EulerMatrix(e)
	center := m.Center
	for i := range m.Vertices {
		m.Vertices[i].RotateAbout(r, center)
	}
	for i := range m.Faces {
		m.Faces[i].Normal = Mat3MulV3(r, m.Faces[i].Normal)
	}
}

// Translate moves the mesh and its center by d.
func (m *Mesh) Translate(d Vec3) {
	if m == nil {
		return
	}
	m.Center = m.Center.Add(d)
	for i := range m.Vertices {
		m.Vertices[i].Translate(d)
	}
}
