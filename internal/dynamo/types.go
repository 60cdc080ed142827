package dynamo

import "math"

// State is a point in the three-dimensional phase space.
type State struct {
	X, Y, Z float64
}

func (s State) IsValid() bool {
	for _, v := range [3]float64{s.X, s.Y, s.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Sub(o State) State {
	return State{s.X - o.X, s.Y - o.Y, s.Z - o.Z}
}

func (s State) Norm() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}

func (s State) Component(a Axis) float64 {
	switch a {
	case AxisY:
		return s.Y
	case AxisZ:
		return s.Z
	default:
		return s.X
	}
}

// Field is a vector field over phase space. The time argument is threaded
// through every derivative so steppers can evaluate at intermediate offsets,
// even though the built-in attractors are autonomous and ignore it.
type Field interface {
	DeriveX(x, y, z, t float64) float64
	DeriveY(x, y, z, t float64) float64
	DeriveZ(x, y, z, t float64) float64
	Params() map[string]float64
	InitialState() State
}

// Derive evaluates all three components of f at s.
func Derive(f Field, s State, t float64) State {
	return State{
		X: f.DeriveX(s.X, s.Y, s.Z, t),
		Y: f.DeriveY(s.X, s.Y, s.Z, t),
		Z: f.DeriveZ(s.X, s.Y, s.Z, t),
	}
}

// Stepper advances a state by one fixed time step.
type Stepper interface {
	Step(f Field, s State, t, dt float64) State
}
