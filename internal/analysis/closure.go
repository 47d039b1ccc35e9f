package analysis

import (
	"errors"
	"math"

	"github.com/san-kum/spirosim/internal/spiro"
)

// ClosureInfo describes when a rolling-circle curve repeats.
type ClosureInfo struct {
	// Ratio R/r as Lobes/Revolutions in lowest terms.
	Lobes       int
	Revolutions int
	// Ticks is the number of steps for the carrier angle to sweep
	// Revolutions full turns.
	Ticks float64
	// Closed is false when R/r has no rational form with a small enough
	// denominator; the other fields are then zero.
	Closed bool
}

const ratioTolerance = 1e-9

// Closure expands R/r as a continued fraction, stopping at the first
// convergent within tolerance or when the denominator would exceed maxDen.
func Closure(p spiro.CurveParams, maxDen int) (ClosureInfo, error) {
	if err := p.Validate(); err != nil {
		return ClosureInfo{}, err
	}
	if p.DeltaPhi == 0 {
		return ClosureInfo{}, errors.New("analysis: delta_phi is zero, the curve never moves")
	}

	num, den, ok := Rationalize(p.BaseRadius/p.RollingRadius, maxDen)
	if !ok {
		return ClosureInfo{}, nil
	}

	return ClosureInfo{
		Lobes:       num,
		Revolutions: den,
		Ticks:       2 * math.Pi * float64(den) / math.Abs(p.DeltaPhi),
		Closed:      true,
	}, nil
}

// Rationalize finds num/den with den <= maxDen matching x.
func Rationalize(x float64, maxDen int) (num, den int, ok bool) {
	if x <= 0 || math.IsNaN(x) || math.IsInf(x, 0) || maxDen < 1 {
		return 0, 0, false
	}

	// h and k hold the last two convergents.
	h0, h1 := 0, 1
	k0, k1 := 1, 0
	v := x
	for i := 0; i < 64; i++ {
		a := math.Floor(v)
		if a > math.MaxInt32 {
			return 0, 0, false
		}
		ai := int(a)
		h0, h1 = h1, ai*h1+h0
		k0, k1 = k1, ai*k1+k0
		if k1 > maxDen {
			return 0, 0, false
		}
		if math.Abs(float64(h1)/float64(k1)-x) <= ratioTolerance*x {
			return h1, k1, true
		}
		frac := v - a
		if frac < ratioTolerance {
			return 0, 0, false
		}
		v = 1 / frac
	}
	return 0, 0, false
}
