package analysis

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform of a real series using
// radix-2 decimation. Length must be a power of two.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum returns the magnitude of each frequency bin up to the
// Nyquist frequency.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// DominantPeriod estimates the strongest oscillation period in a census
// series. The series is truncated to a power of two and centered before
// the transform so the DC component does not mask the peak. Returns 0
// when the series is too short or has no oscillation.
//
// A constant series has no spectral peak; cycle detection on constant
// population (a blinker holds 3 cells in both phases) needs board
// hashing, not this.
func DominantPeriod(series []float64) int {
	n := 1
	for n*2 <= len(series) {
		n *= 2
	}
	if n < 8 {
		return 0
	}

	mean := 0.0
	for _, v := range series[:n] {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range series[:n] {
		centered[i] = v - mean
	}

	ps := PowerSpectrum(centered)

	peakBin := 0
	peakPower := 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > peakPower {
			peakPower = ps[k]
			peakBin = k
		}
	}
	if peakBin == 0 || peakPower < 1e-9 {
		return 0
	}

	return int(math.Round(float64(n) / float64(peakBin)))
}
