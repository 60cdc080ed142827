package analysis

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/strange/internal/dynamo"
)

// FFT computes the discrete Fourier transform of data, zero-padded to the
// next power of two.
func FFT(data []float64) []complex128 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)
	return fftRadix2(padded)
}

func fftRadix2(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fftRadix2(even)
	fodd := fftRadix2(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum returns the magnitudes of the positive-frequency half of the
// transform.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-DC frequency, in Hz, of one
// axis of a trajectory, together with its spectral power. Chaotic flows
// still show a dominant rotation frequency around the attractor lobes.
func DominantFrequency(tr *dynamo.Trajectory, axis dynamo.Axis, duration float64) (freq, power float64) {
	if tr.Len() < 2 || duration <= 0 {
		return 0, 0
	}

	series := make([]float64, tr.Len())
	for i := range series {
		series[i] = tr.At(i).State().Component(axis)
	}

	ps := PowerSpectrum(series)

	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > power {
			power = ps[i]
			maxIdx = i
		}
	}

	// Zero padding inside FFT stretches the bin width; account for it.
	sampleRate := float64(len(series)) / duration
	freq = float64(maxIdx) * sampleRate / float64(2*len(ps))
	return freq, power
}
