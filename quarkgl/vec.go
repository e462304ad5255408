package quarkgl

import "math"

// Vec3 is a 3D vector. It is used both as a point and as a displacement.
type Vec3 struct {
	X, Y, Z float64
}

// Point2 is a point on the projected screen plane, centered at (0,0).
type Point2 struct {
	X, Y float64
}

// Euler holds rotation angles in radians: Psi about Z, Theta about Y, Phi about X.
type Euler struct {
	Psi, Theta, Phi float64
}

// Mat3 is a row-major 3x3 matrix: m[row*3+col].
type Mat3 [9]float64

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) finite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Displacement returns the vector pointing from start to end.
func Displacement(start, end Vec3) Vec3 { return end.Sub(start) }

func Dot(a, b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Len(v Vec3) float64 { return math.Sqrt(Dot(v, v)) }

// Distance returns the length of the segment between two points.
func Distance(a, b Vec3) float64 { return Len(b.Sub(a)) }

// Normalize scales v to unit length.
//
// A zero-length or non-finite vector has no direction and yields ErrDegenerateVector.
func Normalize(v Vec3) (Vec3, error) {
	l := Len(v)
	if l == 0 || !isFinite(l) {
		return Vec3{}, ErrDegenerateVector
	}
	return v.Mul(1 / l), nil
}

// CosAngle returns the cosine of the angle between a and b.
func CosAngle(a, b Vec3) (float64, error) {
	la, lb := Len(a), Len(b)
	if la == 0 || lb == 0 || !isFinite(la) || !isFinite(lb) {
		return 0, ErrDegenerateVector
	}
	return Dot(a, b) / (la * lb), nil
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }

func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// EulerMatrix builds R = Rz(Psi)·Ry(Theta)·Rx(Phi).
func EulerMatrix(e Euler) Mat3 {
	cps, sps := math.Cos(e.Psi), math.Sin(e.Psi)
	cth, sth := math.Cos(e.Theta), math.Sin(e.Theta)
	cph, sph := math.Cos(e.Phi), math.Sin(e.Phi)
	return Mat3{
		cps * cth, cps*sth*sph - cph*sps, sps*sph + cps*cph*sth,
		cth * sps, cps*cph + sps*sth*sph, cph*sps*sth - cps*sph,
		-sth, cth * sph, cth * cph,
	}
}

func Mat3Mul(a, b Mat3) Mat3 {
	var out Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] =
				a[row*3+0]*b[0*3+col] +
					a[row*3+1]*b[1*3+col] +
					a[row*3+2]*b[2*3+col]
		}
	}
	return out
}

func Mat3MulV3(m Mat3, v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Rotate applies the Euler rotation e to v.
func Rotate(e Euler, v Vec3) Vec3 { return Mat3MulV3(EulerMatrix(e), v) }

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
