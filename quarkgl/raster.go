package quarkgl

import "math"

// cellCorners are the sample offsets tested for each cell, in order.
var cellCorners = [4]Point2{
	{0.5, 0.5},
	{0.5, -0.5},
	{-0.5, 0.5},
	{-0.5, -0.5},
}

// InOut reports whether p lies inside or on the boundary of the convex polygon.
//
// For every edge the z component of edge × (p - edge start) is taken. A zero
// value counts as inside. Otherwise p is inside iff every sign agrees.
func InOut(p Point2, poly []Point2) bool {
	if len(poly) == 0 {
		return false
	}
	sum := 0
	for i := range poly {
		j := i + 1
		if j == len(poly) {
			j = 0
		}
		ex, ey := poly[j].X-poly[i].X, poly[j].Y-poly[i].Y
		px, py := p.X-poly[i].X, p.Y-poly[i].Y
		cross := ex*py - ey*px
		switch {
		case cross == 0:
			return true
		case cross > 0:
			sum++
		default:
			sum--
		}
	}
	if sum < 0 {
		sum = -sum
	}
	return sum == len(poly)
}

// Rasterize projects f and fills every cell of s that has at least one corner
// inside the projected triangle. It returns the number of cells filled.
//
// Only cells whose corners can reach the triangle's bounding box are visited.
func (c *Camera) Rasterize(f *Face, s *Surface) (int, error) {
	var tri [3]Point2
	for i, v := range f.Verts {
		p, err := c.Project(v.Pos)
		if err != nil {
			return 0, err
		}
		tri[i] = p
	}

	halfW, halfH := s.HalfExtent()
	x0, x1, ok := cellSpan(tri[0].X, tri[1].X, tri[2].X, halfW)
	if !ok {
		return 0, nil
	}
	y0, y1, ok := cellSpan(tri[0].Y, tri[1].Y, tri[2].Y, halfH)
	if !ok {
		return 0, nil
	}

	filled := 0
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for _, off := range cellCorners {
				if InOut(Point2{X: float64(x) + off.X, Y: float64(y) + off.Y}, tri[:]) {
					s.FillCell(x, y)
					filled++
					break
				}
			}
		}
	}
	return filled, nil
}

// cellSpan returns the inclusive range of cells in [-half, half) whose
// half-pixel corners can touch [min(a,b,c), max(a,b,c)].
func cellSpan(a, b, c float64, half int) (lo, hi int, ok bool) {
	minV := math.Min(a, math.Min(b, c))
	maxV := math.Max(a, math.Max(b, c))
	first := math.Max(math.Ceil(minV-0.5), float64(-half))
	last := math.Min(math.Floor(maxV+0.5), float64(half-1))
	if first > last {
		return 0, 0, false
	}
	return int(first), int(last), true
}
