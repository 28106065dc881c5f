package decimal

import (
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/udecimal/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// Strict construction errors.
var (
	ErrLeadingZero  = Error.New("leading zero digit")
	ErrTrailingZero = Error.New("trailing zero digit in fraction")
	ErrScaledZero   = Error.New("zero with non-zero scale")
)

// NewStrict returns a new unsigned decimal if the inputs are already in
// canonical form.
func NewStrict(digits integer.Digits, scale, precision uint) (u Unsigned, err error) {
	defer Error.WrapP(&err)

	if len(digits) > 0 && digits[0] == 0 {
		return u, oops.Trace(ErrLeadingZero)
	}

	if scale > 0 && len(digits) > 0 && digits[len(digits)-1] == 0 {
		return u, oops.Trace(ErrTrailingZero)
	}

	if len(digits) == 0 && scale > 0 {
		return u, oops.Trace(ErrScaledZero)
	}

	return New(digits, scale, precision), nil
}

// IsZero returns true if the magnitude is zero.
func (u Unsigned) IsZero() bool {
	return u.digits.IsZero()
}

// Canonical returns u with leading zero digits removed and trailing zero
// fraction digits dropped. Zero is returned as no digits with scale 0.
// Precision is kept as is.
func (u Unsigned) Canonical() Unsigned {
	ds := u.digits.TrimLeading()
	scale := u.scale

	if len(ds) == 0 {
		return Unsigned{
			digits:    integer.Digits{},
			precision: u.precision,
		}
	}

	end := len(ds)
	for scale > 0 && ds[end-1] == 0 {
		end--
		scale--
	}

	return New(ds[:end], scale, u.precision)
}

// IsCanonical returns true if u is unchanged by Canonical.
func (u Unsigned) IsCanonical() bool {
	if len(u.digits) == 0 {
		return u.scale == 0
	}

	if u.digits[0] == 0 {
		return false
	}

	return u.scale == 0 || u.digits[len(u.digits)-1] != 0
}

// CompareValue returns the ordering of the numbers a and b represent.
// Unlike Compare it is insensitive to leading and trailing zero digits.
func CompareValue(a, b Unsigned) Ordering {
	az, bz := a.IsZero(), b.IsZero()

	switch {
	case az && bz:
		return Equal
	case az:
		return Less
	case bz:
		return Greater
	}

	return Compare(a.Canonical(), b.Canonical())
}
