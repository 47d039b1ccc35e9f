// Package analysis inspects traced curves offline.
//
//   - [Spectrum]: magnitude spectrum of a coordinate trace
//   - [DominantBins]: strongest non-DC frequencies of a spectrum
//   - [Closure]: revolutions, lobes and ticks until the curve repeats
//   - [Portrait]: ASCII plot of a point set
//
// # Closure
//
// A rolling-circle curve closes when both of its angles return to their
// start together. That happens when R/r is rational:
//
//	c, err := analysis.Closure(params, 100)
//	if err == nil && c.Closed {
//	    fmt.Println(c.Lobes, "lobes after", c.Ticks, "ticks")
//	}
package analysis
