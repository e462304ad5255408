package scene

import "prism/quarkgl"

// Axis selects a world axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Op is a scene mutation.
type Op uint8

const (
	OpNone Op = iota
	OpRotateMeshes
	OpRotateCamera
	OpTranslateMeshes
	OpTranslateCamera
	OpCycleSelection
)

// Command is one discrete input action. Sign is +1 or -1.
type Command struct {
	Op   Op
	Axis Axis
	Sign int8
}

func (c Command) sign() float64 {
	if c.Sign < 0 {
		return -1
	}
	return 1
}

// euler turns a signed step about an axis into Euler angles: z is Psi, y is
// Theta, x is Phi.
func euler(a Axis, rad float64) quarkgl.Euler {
	switch a {
	case AxisZ:
		return quarkgl.Euler{Psi: rad}
	case AxisY:
		return quarkgl.Euler{Theta: rad}
	default:
		return quarkgl.Euler{Phi: rad}
	}
}

func offset(a Axis, d float64) quarkgl.Vec3 {
	switch a {
	case AxisX:
		return quarkgl.V3(d, 0, 0)
	case AxisY:
		return quarkgl.V3(0, d, 0)
	default:
		return quarkgl.V3(0, 0, d)
	}
}

// Apply runs cmd against the scene. It reports whether anything changed.
func (s *Scene) Apply(cmd Command) bool {
	switch cmd.Op {
	case OpRotateMeshes:
		e := euler(cmd.Axis, cmd.sign()*quarkgl.DegToRad(AngleStepDeg))
		for _, m := range s.Active() {
			m.Spin(e)
		}
		return len(s.Active()) > 0
	case OpRotateCamera:
		s.Camera.Spin(euler(cmd.Axis, cmd.sign()*quarkgl.DegToRad(AngleStepDeg)))
		return true
	case OpTranslateMeshes:
		d := offset(cmd.Axis, cmd.sign()*MoveStep)
		for _, m := range s.Active() {
			m.Translate(d)
		}
		return len(s.Active()) > 0
	case OpTranslateCamera:
		s.Camera.Move(offset(cmd.Axis, cmd.sign()*MoveStep))
		return true
	case OpCycleSelection:
		s.CycleSelection()
		return true
	default:
		return false
	}
}
