package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// NextPow2 returns the smallest power of two >= n (1 for n <= 1).
func NextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// PowerSpectrum zero-pads data to a power of two and returns the FFT
// magnitudes of the non-negative frequency half.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	padded := make([]float64, NextPow2(len(data)))
	copy(padded, data)

	coeffs := fft.FFTReal(padded)
	n := len(coeffs) / 2
	if n == 0 {
		n = 1
	}
	ps := make([]float64, n)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// Spectrum returns the power spectrum and the frequency (Hz) of each bin for
// samples taken every dt seconds.
func Spectrum(data []float64, dt float64) (freqs, power []float64) {
	power = PowerSpectrum(data)
	if len(power) == 0 || dt <= 0 {
		return nil, power
	}
	n := float64(NextPow2(len(data)))
	freqs = make([]float64, len(power))
	for i := range freqs {
		freqs[i] = float64(i) / (n * dt)
	}
	return freqs, power
}

// DominantFrequency returns the frequency of the largest non-DC bin, or 0
// when the trace carries no oscillation.
func DominantFrequency(data []float64, dt float64) float64 {
	freqs, power := Spectrum(data, dt)
	if len(freqs) == 0 {
		return 0
	}
	// bins within rounding noise of zero do not count as oscillation
	maxPower, maxIdx := 1e-9*(power[0]+1), 0
	for i := 1; i < len(power); i++ {
		if power[i] > maxPower {
			maxPower = power[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 {
		return 0
	}
	return freqs[maxIdx]
}
