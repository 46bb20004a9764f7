// Package safe provides numeric conversions with overflow checks for values decoded from remote input.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("value out of range")

// Integer is any signed or unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, rejecting negatives and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d for uint32", ErrOutOfRange, v)
	}
	return uint32(v), nil
}

// Int64 converts v to int64, rejecting unsigned values above math.MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d for int64", ErrOutOfRange, v)
	}
	return int64(v), nil
}

// Amount converts a satoshi amount to the signed value carried by transaction outputs.
// Amounts above the 21M BTC supply are rejected.
func Amount(sats uint64) (int64, error) {
	const maxSats = 21_000_000 * 100_000_000
	if sats > maxSats {
		return 0, fmt.Errorf("%w: %d sat above supply", ErrOutOfRange, sats)
	}
	return Int64(sats)
}
