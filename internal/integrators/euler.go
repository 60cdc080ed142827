package integrators

import "github.com/san-kum/strange/internal/dynamo"

// Euler is the forward Euler stepper, kept as a first-order reference for
// accuracy comparisons.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f dynamo.Field, s dynamo.State, t, dt float64) dynamo.State {
	k := dynamo.Derive(f, s, t)
	return dynamo.State{
		X: s.X + dt*k.X,
		Y: s.Y + dt*k.Y,
		Z: s.Z + dt*k.Z,
	}
}
