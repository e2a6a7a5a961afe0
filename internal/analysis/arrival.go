package analysis

import "math"

// FirstArrival returns the time at which |u| first reaches fraction of the
// trace's peak magnitude, interpolated between samples. It returns -1 for a
// flat trace. Sample i is taken at i*dt.
func FirstArrival(samples []float64, dt, fraction float64) float64 {
	peak := 0.0
	for _, v := range samples {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 {
		return -1
	}

	threshold := fraction * peak
	prev := 0.0
	for i, v := range samples {
		curr := math.Abs(v)
		if curr >= threshold {
			if i == 0 {
				return 0
			}
			frac := (threshold - prev) / (curr - prev)
			if math.IsNaN(frac) || math.IsInf(frac, 0) {
				frac = 0.5
			}
			return (float64(i-1) + frac) * dt
		}
		prev = curr
	}
	return -1
}

// ApparentVelocity is the straight-line distance in metres from the source
// cell (sz, sx) to the receiver cell (rz, rx) divided by the arrival time.
func ApparentVelocity(sz, sx, rz, rx int, dx, dz, arrival float64) float64 {
	if arrival <= 0 {
		return 0
	}
	ex := float64(rx-sx) * dx
	ez := float64(rz-sz) * dz
	return math.Hypot(ex, ez) / arrival
}
