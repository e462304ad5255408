// Package scene holds the state a driver mutates between frames: the meshes, the
// camera and which meshes respond to input.
//
// A Scene is owned by one driver and is not safe for concurrent use; commands
// are applied between frames on the same goroutine that renders.
package scene

import (
	"fmt"

	"prism/quarkgl"
)

// Steps applied by one command.
const (
	AngleStepDeg = 1.0
	MoveStep     = 1.0
)

// Scene is the explicit render context passed to every core operation.
type Scene struct {
	Camera *quarkgl.Camera
	Meshes []*quarkgl.Mesh
	Light  quarkgl.Light

	// selected is -1 when every mesh is active.
	selected int
}

// New creates a scene. All meshes start active.
func New(cam *quarkgl.Camera, meshes ...*quarkgl.Mesh) (*Scene, error) {
	if cam == nil {
		return nil, fmt.Errorf("scene: nil camera")
	}
	for i, m := range meshes {
		if m == nil {
			return nil, fmt.Errorf("scene: mesh %d is nil", i)
		}
	}
	return &Scene{
		Camera:   cam,
		Meshes:   meshes,
		Light:    quarkgl.Light{Dir: quarkgl.V3(0, -1, 0)},
		selected: -1,
	}, nil
}

// Active returns the meshes that respond to mesh commands.
func (s *Scene) Active() []*quarkgl.Mesh {
	if s.selected < 0 || s.selected >= len(s.Meshes) {
		return s.Meshes
	}
	return s.Meshes[s.selected : s.selected+1]
}

// Selection returns the selected mesh index, or -1 when all meshes are active.
func (s *Scene) Selection() int { return s.selected }

// CycleSelection steps all → 0 → 1 → … → all.
func (s *Scene) CycleSelection() {
	s.selected++
	if s.selected >= len(s.Meshes) {
		s.selected = -1
	}
}

// SelectionLabel describes the active set for display.
func (s *Scene) SelectionLabel() string {
	if s.selected < 0 {
		return "all"
	}
	m := s.Meshes[s.selected]
	return fmt.Sprintf("%d:%s", s.selected, m.Name)
}

// Render draws one frame of the scene into surf.
func (s *Scene) Render(surf *quarkgl.Surface) (quarkgl.FrameStats, error) {
	return s.Camera.Render(s.Meshes, surf)
}
