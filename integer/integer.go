package integer

import (
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// ErrNegative is returned when a negative value is converted to digits.
var ErrNegative = Error.New("negative magnitude")

// Digit is a single base Radix digit.
type Digit = uint32

// Digit geometry. Every sequence in this package shares one radix.
const (
	Bits  = 32
	Radix = uint64(1) << Bits
)

// CompareDigit returns -1, 0 or +1 as a is less than, equal to or greater
// than b.
func CompareDigit(a, b Digit) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// Digits is a magnitude in base Radix, most significant digit first.
type Digits []Digit

// Len returns the number of digits including any leading zeros.
func (ds Digits) Len() int {
	return len(ds)
}

// Clone returns an independent copy of the sequence.
func (ds Digits) Clone() Digits {
	if ds == nil {
		return nil
	}

	c := make(Digits, len(ds))
	copy(c, ds)

	return c
}

// IsZero returns true if the sequence is empty or all of its digits are zero.
func (ds Digits) IsZero() bool {
	for _, d := range ds {
		if d != 0 {
			return false
		}
	}

	return true
}

// TrimLeading returns the sequence without its leading zero digits. The
// result shares storage with ds.
func (ds Digits) TrimLeading() Digits {
	i := 0
	for i < len(ds) && ds[i] == 0 {
		i++
	}

	return ds[i:]
}

// Int returns the magnitude as a big.Int.
func (ds Digits) Int() *big.Int {
	i := new(big.Int)
	d := new(big.Int)

	for _, digit := range ds {
		i.Lsh(i, Bits)
		i.Or(i, d.SetUint64(uint64(digit)))
	}

	return i
}

// FromInt returns the digits of a non-negative integer. Zero is returned as
// an empty sequence.
func FromInt(i *big.Int) (ds Digits, err error) {
	defer Error.WrapP(&err)

	if i.Sign() < 0 {
		return nil, oops.Trace(ErrNegative)
	}

	// Note: big.Int encodes zero as an empty byte array which conveniently
	// is also our zero.
	bs := i.Bytes()
	if len(bs) == 0 {
		return Digits{}, nil
	}

	const width = Bits / 8

	// Left pad to a whole number of digits.
	pad := (width - len(bs)%width) % width
	buf := make([]byte, pad+len(bs))
	copy(buf[pad:], bs)

	ds = make(Digits, len(buf)/width)
	for n := range ds {
		var d Digit
		for _, b := range buf[n*width : (n+1)*width] {
			d = d<<8 | Digit(b)
		}
		ds[n] = d
	}

	return ds, nil
}
