package analysis

import (
	"github.com/san-kum/strange/internal/dynamo"
	"github.com/san-kum/strange/internal/field"
)

// BifurcationPoint records the distinct values one axis settles onto for a
// given parameter value.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

// BifurcationSweep varies one parameter of an attractor across a range and
// records quantized post-transient values of the chosen axis. Transitions
// from few values to many expose the route to chaos.
func BifurcationSweep(
	kind field.Kind,
	st dynamo.Stepper,
	paramName string,
	paramMin, paramMax float64,
	paramSteps int,
	axis dynamo.Axis,
	dt, transient, record float64,
) ([]BifurcationPoint, error) {
	if paramSteps <= 1 {
		paramSteps = 2
	}
	paramStep := (paramMax - paramMin) / float64(paramSteps-1)

	results := make([]BifurcationPoint, 0, paramSteps)

	for i := 0; i < paramSteps; i++ {
		param := paramMin + float64(i)*paramStep

		f, err := field.New(kind, field.WithParam(paramName, param))
		if err != nil {
			return nil, err
		}

		x := f.InitialState()
		t := 0.0

		// Let the transient die out before recording
		for t < transient {
			x = st.Step(f, x, t, dt)
			t += dt
		}

		values := make([]float64, 0, 100)
		seen := make(map[int]bool)

		for t < transient+record {
			x = st.Step(f, x, t, dt)
			t += dt

			v := x.Component(axis)
			// Quantize to find distinct values
			key := int(v * 1000)
			if !seen[key] {
				seen[key] = true
				values = append(values, v)
			}
		}

		results = append(results, BifurcationPoint{Param: param, Values: values})
	}

	return results, nil
}
