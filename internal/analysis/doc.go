// Package analysis provides spectral and timing analysis of receiver traces.
//
//   - [PowerSpectrum]: FFT magnitude of a zero-padded trace
//   - [DominantFrequency]: strongest non-DC frequency in Hz
//   - [Spectrum]: magnitudes paired with their frequencies
//   - [FirstArrival]: onset time of the wavefront at a receiver
//   - [ApparentVelocity]: source-to-receiver distance over arrival time
//
// # Example
//
//	trace := result.Traces[0]
//	f := analysis.DominantFrequency(trace.Samples, trace.DT)
package analysis
