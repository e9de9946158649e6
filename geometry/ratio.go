package geometry

import (
	"encoding/json"
	"fmt"
)

// Ratio is a fixed-point fraction expressed in parts-per-million, avoiding
// the float64 drift a percentage field would accumulate across repeated
// multiplications (e.g. corner-radius-ratio × min(width,height)/2).
type Ratio int64

// PPM is the number of Ratio ticks per unit (1.0 == 100%).
const PPM Ratio = 1_000_000

// RatioFromPercent builds a Ratio from a percentage value (0..100 inclusive
// is the common case, but the constructor does not clamp — see
// UnsignedLimitedRatio for the clamped variant).
func RatioFromPercent(percent float64) Ratio {
	return Ratio(percent / 100.0 * float64(PPM))
}

// Mul multiplies a Length by this ratio, rounding toward zero.
func (r Ratio) Mul(l Length) Length {
	return Length(int64(l) * int64(r) / int64(PPM))
}

// UnsignedLimitedRatio is a Ratio constrained to [0, 100%].
type UnsignedLimitedRatio struct{ v Ratio }

// errRatioOutOfRange is returned when a ratio falls outside [0, 100%].
var errRatioOutOfRange = fmt.Errorf("geometry: ratio out of range [0, 100%%]")

// NewUnsignedLimitedRatio validates r ∈ [0, PPM].
func NewUnsignedLimitedRatio(r Ratio) (UnsignedLimitedRatio, error) {
	if r < 0 || r > PPM {
		return UnsignedLimitedRatio{}, fmt.Errorf("%w: %d", errRatioOutOfRange, r)
	}
	return UnsignedLimitedRatio{v: r}, nil
}

// Ratio returns the underlying Ratio.
func (u UnsignedLimitedRatio) Ratio() Ratio { return u.v }

// MarshalJSON encodes u as its plain ppm count.
func (u UnsignedLimitedRatio) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.v)
}

// UnmarshalJSON is the inverse of MarshalJSON, re-validating the decoded
// value through NewUnsignedLimitedRatio.
func (u *UnsignedLimitedRatio) UnmarshalJSON(data []byte) error {
	var r Ratio
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	parsed, err := NewUnsignedLimitedRatio(r)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
