package analysis

import (
	"math"

	"github.com/san-kum/strange/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent using the
// trajectory separation method. A positive value indicates chaos.
//
// Algorithm:
// 1. Run two nearby trajectories
// 2. Measure their divergence over time
// 3. λ ≈ (1/t) * ln(|δx(t)/δx(0)|)
func LyapunovExponent(
	f dynamo.Field,
	st dynamo.Stepper,
	x0 dynamo.State,
	dt, duration float64,
	perturbation float64,
) float64 {
	// Perturbed companion trajectory
	xp := x0
	xp.X += perturbation
	d0 := perturbation

	x := x0
	t := 0.0

	sumLog := 0.0
	count := 0

	for t < duration {
		x = st.Step(f, x, t, dt)
		xp = st.Step(f, xp, t, dt)
		t += dt

		sep := xp.Sub(x).Norm()

		if sep > 0 && d0 > 0 {
			sumLog += math.Log(sep / d0)
			count++
		}

		// Renormalize to prevent overflow
		if sep > 1.0 {
			scale := d0 / sep
			xp = dynamo.State{
				X: x.X + (xp.X-x.X)*scale,
				Y: x.Y + (xp.Y-x.Y)*scale,
				Z: x.Z + (xp.Z-x.Z)*scale,
			}
		}
	}

	if count == 0 {
		return 0
	}

	return sumLog / (float64(count) * dt)
}

// Divergence returns the pointwise separation of two trajectories. Lengths
// may differ; the shorter one bounds the result.
func Divergence(a, b *dynamo.Trajectory) []float64 {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}

	sep := make([]float64, n)
	for i := 0; i < n; i++ {
		sep[i] = a.At(i).State().Sub(b.At(i).State()).Norm()
	}
	return sep
}
