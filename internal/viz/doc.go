// Package viz provides terminal presentation of a wavefield.
//
//   - [Heatmap]: half-block coloured rendering of a grid
//   - [ColorBar]: horizontal legend for the diverging colour map
//   - [TracePlot]: ASCII seismogram of a receiver trace
//   - [LiveModel]: Bubble Tea program that steps a simulation on screen
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Restart from the source injection
//	+/-   - Steps per frame
//	T     - Cycle color themes
//	Q     - Quit
package viz
