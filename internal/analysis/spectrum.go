package analysis

import (
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"
)

// Spectrum returns the magnitudes of the first half of the FFT of data,
// zero padded to the next power of two.
func Spectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	n := dsputils.NextPowerOf2(len(data))
	padded := make([]float64, n)
	copy(padded, data)
	coeffs := fft.FFTReal(padded)

	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// Bin is one spectrum entry.
type Bin struct {
	Index     int
	Magnitude float64
	// Frequency in cycles per tick.
	Frequency float64
}

// DominantBins returns the k strongest local maxima of spectrum, skipping DC.
// size is the padded FFT length, twice len(spectrum).
func DominantBins(spectrum []float64, k int) []Bin {
	if k <= 0 {
		return nil
	}
	size := 2 * len(spectrum)
	bins := make([]Bin, 0)
	for i := 1; i < len(spectrum); i++ {
		m := spectrum[i]
		if m < spectrum[i-1] {
			continue
		}
		if i+1 < len(spectrum) && m < spectrum[i+1] {
			continue
		}
		if m == 0 {
			continue
		}
		bins = append(bins, Bin{Index: i, Magnitude: m, Frequency: float64(i) / float64(size)})
	}

	sort.SliceStable(bins, func(a, b int) bool { return bins[a].Magnitude > bins[b].Magnitude })
	if k < len(bins) {
		bins = bins[:k]
	}
	return bins
}
