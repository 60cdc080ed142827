package integrators

import "github.com/san-kum/strange/internal/dynamo"

// RK4 is the classical fourth-order Runge-Kutta stepper. Local truncation
// error is O(dt^5) per step, global error O(dt^4).
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(f dynamo.Field, s dynamo.State, t, dt float64) dynamo.State {
	k1 := dynamo.Derive(f, s, t)

	s2 := dynamo.State{
		X: s.X + 0.5*k1.X*dt,
		Y: s.Y + 0.5*k1.Y*dt,
		Z: s.Z + 0.5*k1.Z*dt,
	}
	k2 := dynamo.Derive(f, s2, t+0.5*dt)

	s3 := dynamo.State{
		X: s.X + 0.5*k2.X*dt,
		Y: s.Y + 0.5*k2.Y*dt,
		Z: s.Z + 0.5*k2.Z*dt,
	}
	k3 := dynamo.Derive(f, s3, t+0.5*dt)

	s4 := dynamo.State{
		X: s.X + k3.X*dt,
		Y: s.Y + k3.Y*dt,
		Z: s.Z + k3.Z*dt,
	}
	k4 := dynamo.Derive(f, s4, t+dt)

	dt6 := dt / 6.0
	return dynamo.State{
		X: s.X + dt6*(k1.X+2*k2.X+2*k3.X+k4.X),
		Y: s.Y + dt6*(k1.Y+2*k2.Y+2*k3.Y+k4.Y),
		Z: s.Z + dt6*(k1.Z+2*k2.Z+2*k3.Z+k4.Z),
	}
}
