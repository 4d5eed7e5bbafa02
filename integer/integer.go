package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Base limits.
const (
	MinBase = 2
	MaxBase = 256
)

var zero = big.NewInt(0)

// CheckBase returns an error if base is outside [MinBase, MaxBase].
func CheckBase(base int) error {
	if base < MinBase || base > MaxBase {
		return Error.New("invalid base: %d", base)
	}

	return nil
}

// Value returns the integer represented by digits in base.
func Value(digits []uint8, base int) (_ *big.Int, err error) {
	defer Error.WrapP(&err)

	err = CheckBase(base)
	if err != nil {
		return nil, err
	}

	b := big.NewInt(int64(base))
	d := new(big.Int)
	v := new(big.Int)

	for i, digit := range digits {
		if int(digit) >= base {
			return nil, Error.New(
				"digit out of range: index=%d digit=%d base=%d",
				i,
				digit,
				base,
			)
		}

		d.SetUint64(uint64(digit))
		v.Mul(v, b)
		v.Add(v, d)
	}

	return v, nil
}

// Digits returns the digits of v in base, most significant first.
//
// The digits are produced by repeated division by base with each remainder
// prepended to the result. Zero yields a single zero digit.
func Digits(v *big.Int, base int) (digits []uint8, err error) {
	defer Error.WrapP(&err)

	err = CheckBase(base)
	if err != nil {
		return nil, err
	}

	switch v.Sign() {
	case -1:
		return nil, Error.New("negative value: %s", v.String())
	case 0:
		return []uint8{0}, nil
	}

	b := big.NewInt(int64(base))
	q := new(big.Int).Set(v)
	m := new(big.Int)

	// Note: collected least significant first and reversed at the end
	// which is equivalent to prepending each remainder.
	for q.Cmp(zero) > 0 {
		q.DivMod(q, b, m)
		digits = append(digits, uint8(m.Uint64()))
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return digits, nil
}

// And returns the bitwise AND of x and y as a new integer. Both must be
// non-negative.
func And(x, y *big.Int) (_ *big.Int, err error) {
	if x.Sign() < 0 || y.Sign() < 0 {
		return nil, Error.New("negative operand: x=%s y=%s", x.String(), y.String())
	}

	return new(big.Int).And(x, y), nil
}
