package sim

import (
	"context"
	"testing"

	"github.com/san-kum/strange/internal/field"
	"github.com/san-kum/strange/internal/integrators"
)

func TestEnsembleRun(t *testing.T) {
	base := New(field.NewLorenz(), integrators.NewRK4())
	ensemble := NewEnsemble(base, 3, 1e-6)

	cfg := Config{TotalTime: 2.0, Steps: 200}
	results, err := ensemble.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("ensemble run failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 trajectories, got %d", len(results))
	}
	for i, tr := range results {
		if tr.Len() != 201 {
			t.Errorf("member %d: expected 201 samples, got %d", i, tr.Len())
		}
	}

	// Member 0 is unperturbed and must match a plain run bit for bit.
	ref, err := base.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("reference run failed: %v", err)
	}
	for i := 0; i < ref.Len(); i++ {
		if results[0].At(i) != ref.At(i) {
			t.Fatalf("member 0 diverged from reference at sample %d", i)
		}
	}

	// Perturbed members start apart.
	if results[0].First() == results[1].First() {
		t.Error("expected perturbed member to start from a different state")
	}
}

func TestEnsembleInvalidConfig(t *testing.T) {
	base := New(field.NewLorenz(), integrators.NewRK4())
	ensemble := NewEnsemble(base, 2, 1e-6)

	_, err := ensemble.Run(context.Background(), Config{TotalTime: 0, Steps: 10})
	if err == nil {
		t.Error("expected error for invalid config")
	}
}
