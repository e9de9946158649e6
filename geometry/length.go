package geometry

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for the geometry package. Callers branch on these with
// errors.Is; messages are never matched by substring.
var (
	// ErrNegativeLength indicates a Length where only a non-negative value is valid.
	ErrNegativeLength = errors.New("geometry: length must be non-negative")

	// ErrNonPositiveLength indicates a Length where only a strictly positive value is valid.
	ErrNonPositiveLength = errors.New("geometry: length must be positive")
)

// Length is a signed measurement in integer nanometres. Using an integer
// unit avoids the rounding drift that floating-point millimetres would
// introduce across thousands of boolean polygon operations.
type Length int64

// Common length constants, expressed in nanometres.
const (
	Nanometre  Length = 1
	Micrometre Length = 1000 * Nanometre
	Millimetre Length = 1000 * Micrometre
)

// Abs returns the absolute value of l.
func (l Length) Abs() Length {
	if l < 0 {
		return -l
	}
	return l
}

// Add returns l+o. Length arithmetic below the scale boards are specified at
// (kilometres of nanometres) cannot overflow int64, so this is unchecked.
func (l Length) Add(o Length) Length { return l + o }

// Sub returns l-o.
func (l Length) Sub(o Length) Length { return l - o }

// Scale returns l scaled by an integer factor k. Used by the scaling
// invariance property (spec.md §8 property 4): multiplying every Length in a
// model by k must leave the message set structurally identical.
func (l Length) Scale(k int64) Length { return l * Length(k) }

// UnsignedLength is a Length known to be ≥ 0 (e.g. an offset magnitude).
type UnsignedLength struct{ v Length }

// NewUnsignedLength validates v ≥ 0 and returns the wrapped value.
func NewUnsignedLength(v Length) (UnsignedLength, error) {
	if v < 0 {
		return UnsignedLength{}, fmt.Errorf("geometry: %w: %d", ErrNegativeLength, v)
	}
	return UnsignedLength{v: v}, nil
}

// MustUnsignedLength panics on validation failure; reserved for compile-time
// constants and test fixtures, never for values derived from model data.
func MustUnsignedLength(v Length) UnsignedLength {
	ul, err := NewUnsignedLength(v)
	if err != nil {
		panic(err)
	}
	return ul
}

// Length returns the underlying Length.
func (u UnsignedLength) Length() Length { return u.v }

// MarshalJSON encodes u as its plain nanometre count, not as its unexported
// field, so board.Model snapshots round-trip through encoding/json.
func (u UnsignedLength) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.v)
}

// UnmarshalJSON is the inverse of MarshalJSON, re-validating the decoded
// value through NewUnsignedLength.
func (u *UnsignedLength) UnmarshalJSON(data []byte) error {
	var v Length
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := NewUnsignedLength(v)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// PositiveLength is a Length known to be > 0 (e.g. a drill diameter or pad width).
type PositiveLength struct{ v Length }

// NewPositiveLength validates v > 0 and returns the wrapped value.
func NewPositiveLength(v Length) (PositiveLength, error) {
	if v <= 0 {
		return PositiveLength{}, fmt.Errorf("geometry: %w: %d", ErrNonPositiveLength, v)
	}
	return PositiveLength{v: v}, nil
}

// MustPositiveLength panics on validation failure; reserved for compile-time
// constants and test fixtures.
func MustPositiveLength(v Length) PositiveLength {
	pl, err := NewPositiveLength(v)
	if err != nil {
		panic(err)
	}
	return pl
}

// Length returns the underlying Length.
func (p PositiveLength) Length() Length { return p.v }

// MarshalJSON encodes p as its plain nanometre count.
func (p PositiveLength) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.v)
}

// UnmarshalJSON is the inverse of MarshalJSON, re-validating the decoded
// value through NewPositiveLength.
func (p *PositiveLength) UnmarshalJSON(data []byte) error {
	var v Length
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := NewPositiveLength(v)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
