package quarkgl

import (
	"errors"
	"fmt"
	"log/slog"
)

// FrameStats counts what happened to each face during one Render.
type FrameStats struct {
	Faces         int
	BackCulled    int
	FrustumCulled int
	Rasterized    int
	Faulted       int
	Pixels        int
}

// Render clears s and draws every visible face of meshes.
//
// A face whose geometry cannot be culled or projected is skipped and its error
// is joined into the returned error; the rest of the frame is still drawn.
func (c *Camera) Render(meshes []*Mesh, s *Surface) (FrameStats, error) {
	var st FrameStats
	if s == nil {
		return st, fmt.Errorf("%w: nil surface", ErrInvalidSurface)
	}
	s.Clear()

	var errs []error
	log := Logger()
	for _, m := range meshes {
		if m == nil {
			continue
		}
		for i := range m.Faces {
			f := &m.Faces[i]
			st.Faces++

			away, err := c.FacesAway(f)
			if err != nil {
				st.Faulted++
				errs = append(errs, fmt.Errorf("%s face %d: %w", m.Name, i, err))
				log.Warn("quarkgl: skip face", slog.String("mesh", m.Name), slog.Int("face", i), slog.Any("err", err))
				continue
			}
			if away {
				st.BackCulled++
				continue
			}
			if !c.anyWithinFrustum(f) {
				st.FrustumCulled++
				continue
			}

			n, err := c.Rasterize(f, s)
			if err != nil {
				st.Faulted++
				errs = append(errs, fmt.Errorf("%s face %d: %w", m.Name, i, err))
				log.Warn("quarkgl: skip face", slog.String("mesh", m.Name), slog.Int("face", i), slog.Any("err", err))
				continue
			}
			st.Rasterized++
			st.Pixels += n
		}
	}

	log.Debug("quarkgl: frame",
		slog.Int("faces", st.Faces),
		slog.Int("back", st.BackCulled),
		slog.Int("frustum", st.FrustumCulled),
		slog.Int("drawn", st.Rasterized),
		slog.Int("pixels", st.Pixels),
	)
	return st, errors.Join(errs...)
}

// anyWithinFrustum reports whether at least one vertex of f is in view.
// A partially visible face is drawn whole.
func (c *Camera) anyWithinFrustum(f *Face) bool {
	for _, v := range f.Verts {
		if c.WithinFrustum(v.Pos) {
			return true
		}
	}
	return false
}
