package decimal

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"

	"github.com/calebcase/udecimal/integer"
)

// Ordering is the result of comparing two values.
type Ordering int

// Orderings
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}

	return fmt.Sprintf("Ordering(%d)", int(o))
}

// Unsigned is an unsigned fixed point base integer.Radix number. It is
// immutable once constructed.
type Unsigned struct {
	digits    integer.Digits
	scale     uint
	precision uint
}

// New returns a new unsigned decimal. All inputs are accepted as given; see
// NewStrict for a validating constructor.
//
// The digits are copied.
func New(digits integer.Digits, scale, precision uint) Unsigned {
	return Unsigned{
		digits:    digits.Clone(),
		scale:     scale,
		precision: precision,
	}
}

// Digits returns a copy of the magnitude digits.
func (u Unsigned) Digits() integer.Digits {
	return u.digits.Clone()
}

// Scale returns the number of digits after the point.
func (u Unsigned) Scale() uint {
	return u.scale
}

// Precision returns the tracked significant digit count.
func (u Unsigned) Precision() uint {
	return u.precision
}

// String returns a debugging representation. It is not a text format.
func (u Unsigned) String() string {
	ds := make([]string, len(u.digits))
	for i, d := range u.digits {
		ds[i] = fmt.Sprint(d)
	}

	return fmt.Sprintf("[%s]e-%d/p%d", strings.Join(ds, " "), u.scale, u.precision)
}

// compareDiff compares the magnitude exponents (scale - len(digits)) of a
// and b. The subtraction is rearranged to a.scale + len(b) against
// b.scale + len(a) and carried out in 128 bits so that no scale overflows.
func compareDiff(a, b Unsigned) int {
	alo, ahi := bits.Add64(uint64(a.scale), uint64(len(b.digits)), 0)
	blo, bhi := bits.Add64(uint64(b.scale), uint64(len(a.digits)), 0)

	switch {
	case ahi < bhi, ahi == bhi && alo < blo:
		return -1
	case ahi > bhi, ahi == bhi && alo > blo:
		return 1
	}

	return 0
}

// Compare returns the ordering of a relative to b.
func Compare(a, b Unsigned) Ordering {
	// A smaller exponent is a larger number.
	switch compareDiff(a, b) {
	case -1:
		return Greater
	case 1:
		return Less
	}

	n := len(a.digits)
	if len(b.digits) < n {
		n = len(b.digits)
	}

	for i := 0; i < n; i++ {
		if c := integer.CompareDigit(a.digits[i], b.digits[i]); c != 0 {
			return Ordering(c)
		}
	}

	// The shorter sequence is padded with zeros.
	switch {
	case !a.digits[n:].IsZero():
		return Greater
	case !b.digits[n:].IsZero():
		return Less
	}

	return Equal
}

// Cmp returns -1, 0 or +1 as u is less than, equal to or greater than v.
func (u Unsigned) Cmp(v Unsigned) int {
	return int(Compare(u, v))
}

// Equal returns true if u and v compare Equal.
func (u Unsigned) Equal(v Unsigned) bool {
	return Compare(u, v) == Equal
}

// Less returns true if u compares Less than v.
func (u Unsigned) Less(v Unsigned) bool {
	return Compare(u, v) == Less
}

// Max returns the greater of u and v. If they are Equal u is returned.
func (u Unsigned) Max(v Unsigned) Unsigned {
	if Compare(u, v) == Less {
		return v
	}

	return u
}

// Min returns the lesser of u and v. If they are Equal u is returned.
func (u Unsigned) Min(v Unsigned) Unsigned {
	if Compare(u, v) == Greater {
		return v
	}

	return u
}

// Sort orders us ascending. Equal values keep their relative order.
func Sort(us []Unsigned) {
	sort.SliceStable(us, func(i, j int) bool {
		return Compare(us[i], us[j]) == Less
	})
}

// IsSorted returns true if us is in ascending order.
func IsSorted(us []Unsigned) bool {
	return sort.SliceIsSorted(us, func(i, j int) bool {
		return Compare(us[i], us[j]) == Less
	})
}
