// Package seismic provides a 2-D finite-difference wavefield simulator.
//
// A [Simulator] owns a [Grid] of scalar displacement u(z, x) and advances
// it under the acoustic wave equation using a five-point Laplacian stencil:
//
//   - [Params]: grid size, spacing, velocity, time step and source
//   - [Grid]: nz × nx row-major displacement field
//   - [Scheme]: the time recurrence applied to interior cells
//   - [Receiver]: a cell sampled after every step (a seismogram)
//
// Boundary cells are never written, so edges stay at their initial value.
//
// # Example
//
//	params := seismic.DefaultParams()
//	sim := seismic.New()
//	result, err := sim.Run(ctx, params)
//	if err != nil {
//	    return err
//	}
//	final := result.Grid
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Use one simulator per run.
package seismic
