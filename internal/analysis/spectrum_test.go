package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/strange/internal/dynamo"
)

func TestPowerSpectrumSine(t *testing.T) {
	// 2 Hz sine over 8 s, 512 samples
	n := 512
	duration := 8.0
	data := make([]float64, n)
	for i := range data {
		tNow := float64(i) * duration / float64(n)
		data[i] = math.Sin(2 * math.Pi * 2 * tNow)
	}

	ps := PowerSpectrum(data)

	maxIdx := 0
	maxPower := 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}

	// bin width is 1/duration, so 2 Hz lands at bin 16
	if maxIdx != 16 {
		t.Errorf("expected peak at bin 16, got %d", maxIdx)
	}
}

func TestDominantFrequency(t *testing.T) {
	n := 512
	duration := 8.0
	samples := make([]dynamo.Sample, n)
	for i := range samples {
		tNow := float64(i) * duration / float64(n)
		samples[i] = dynamo.Sample{X: math.Sin(2 * math.Pi * 2 * tNow), T: tNow}
	}

	freq, power := DominantFrequency(dynamo.NewTrajectory(samples), dynamo.AxisX, duration)

	if math.Abs(freq-2.0) > 0.2 {
		t.Errorf("expected dominant frequency near 2 Hz, got %g", freq)
	}
	if power <= 0 {
		t.Errorf("expected positive power, got %g", power)
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	tr := dynamo.NewTrajectory([]dynamo.Sample{{X: 1}})
	if freq, _ := DominantFrequency(tr, dynamo.AxisX, 1.0); freq != 0 {
		t.Errorf("expected zero frequency for single sample, got %g", freq)
	}
}
