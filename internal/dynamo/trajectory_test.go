package dynamo

import (
	"math"
	"testing"
)

func testSamples() []Sample {
	return []Sample{
		{X: 0.1, Y: 0.1, Z: 0.1, T: 0},
		{X: -2.0, Y: 3.5, Z: 0.5, T: 0.01},
		{X: 1.5, Y: -1.0, Z: 7.2, T: 0.02},
	}
}

func TestTrajectoryAccessors(t *testing.T) {
	tr := NewTrajectory(testSamples())

	if tr.Len() != 3 {
		t.Errorf("expected length 3, got %d", tr.Len())
	}
	if tr.At(1).Y != 3.5 {
		t.Errorf("expected At(1).Y 3.5, got %g", tr.At(1).Y)
	}
	if tr.First().T != 0 {
		t.Errorf("expected First().T 0, got %g", tr.First().T)
	}
	if tr.Last().Z != 7.2 {
		t.Errorf("expected Last().Z 7.2, got %g", tr.Last().Z)
	}
}

func TestTrajectoryRange(t *testing.T) {
	tr := NewTrajectory(testSamples())

	tests := []struct {
		axis     Axis
		min, max float64
	}{
		{AxisX, -2.0, 1.5},
		{AxisY, -1.0, 3.5},
		{AxisZ, 0.1, 7.2},
	}

	for _, tt := range tests {
		min, max := tr.Range(tt.axis)
		if min != tt.min || max != tt.max {
			t.Errorf("axis %s: expected [%g, %g], got [%g, %g]", tt.axis, tt.min, tt.max, min, max)
		}
	}
}

func TestStateIsValid(t *testing.T) {
	if !(State{1, 2, 3}).IsValid() {
		t.Error("finite state reported invalid")
	}
	if (State{math.NaN(), 0, 0}).IsValid() {
		t.Error("NaN state reported valid")
	}
	if (State{0, math.Inf(1), 0}).IsValid() {
		t.Error("Inf state reported valid")
	}
}

func TestStateComponent(t *testing.T) {
	s := State{1, 2, 3}
	if s.Component(AxisX) != 1 || s.Component(AxisY) != 2 || s.Component(AxisZ) != 3 {
		t.Errorf("component mismatch for %v", s)
	}
}

type constantField struct{}

func (constantField) DeriveX(x, y, z, t float64) float64 { return 1 }
func (constantField) DeriveY(x, y, z, t float64) float64 { return 2 }
func (constantField) DeriveZ(x, y, z, t float64) float64 { return 3 }
func (constantField) Params() map[string]float64         { return nil }
func (constantField) InitialState() State                { return State{} }

func TestDerive(t *testing.T) {
	got := Derive(constantField{}, State{}, 0)
	if got != (State{1, 2, 3}) {
		t.Errorf("expected {1 2 3}, got %v", got)
	}
}
