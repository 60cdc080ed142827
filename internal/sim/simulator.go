package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/strange/internal/dynamo"
)

// ErrInvalidArgument is returned when a run is rejected before any work.
var ErrInvalidArgument = errors.New("invalid argument")

type Config struct {
	TotalTime float64
	Steps     int
	Start     *dynamo.State // nil selects the field's initial condition
}

// Simulator produces a trajectory by repeated application of a fixed-step
// stepper. It holds no mutable state, so one instance may run concurrently.
type Simulator struct {
	field   dynamo.Field
	stepper dynamo.Stepper
}

func New(field dynamo.Field, stepper dynamo.Stepper) *Simulator {
	return &Simulator{field: field, stepper: stepper}
}

// Run integrates the field over cfg.TotalTime in cfg.Steps fixed steps.
// The trajectory has Steps+1 samples; sample 0 is the start state at t=0.
// A rejected config returns an error wrapping ErrInvalidArgument and no
// trajectory, never a partial one.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*dynamo.Trajectory, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	dt := cfg.TotalTime / float64(cfg.Steps)

	x := s.field.InitialState()
	if cfg.Start != nil {
		x = *cfg.Start
	}
	t := 0.0

	samples := make([]dynamo.Sample, 0, cfg.Steps+1)
	samples = append(samples, dynamo.Sample{X: x.X, Y: x.Y, Z: x.Z, T: t})

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		x = s.stepper.Step(s.field, x, t, dt)
		t += dt
		samples = append(samples, dynamo.Sample{X: x.X, Y: x.Y, Z: x.Z, T: t})
	}

	return dynamo.NewTrajectory(samples), nil
}

func validateConfig(cfg Config) error {
	if cfg.Steps < 1 {
		return fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalidArgument, cfg.Steps)
	}
	if cfg.TotalTime <= 0 {
		return fmt.Errorf("%w: total time must be positive, got %f", ErrInvalidArgument, cfg.TotalTime)
	}
	return nil
}
