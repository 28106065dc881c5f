// Package decimal provides an unsigned arbitrary precision fixed point
// number.
//
// The equation for an unsigned decimal number is:
//
//  number = value / Radix ^ scale
//
// Where value is the magnitude held by an integer.Digits sequence (most
// significant digit first), Radix is integer.Radix and scale is the number
// of digit positions after the point. For example:
//
//  [1 2 3] scale 2 = 1 + 2/Radix + 3/Radix^2
//
// Precision is carried alongside as metadata for display and rounding layers
// and does not take part in ordering.
//
// Ordering
//
// Compare orders values by their magnitude exponent first:
//
//  diff = scale - len(digits)
//
// A smaller diff is the larger number. When the exponents match the digits
// are compared pairwise from the most significant end. If one sequence runs
// out first the remaining digits of the other are compared against zero, so
// that trailing zero digits (with a matching scale) do not change the result:
//
//  | Digits      | Scale | diff | Compared to [1 2 3] scale 2 |
//  |-------------|-------|------|-----------------------------|
//  | [1 2 3]     | 3     | 0    | Less                        |
//  | [2 2 3]     | 2     | -1   | Greater                     |
//  | [1 2 3 0]   | 3     | -1   | Equal                       |
//  | [1 2 3 1]   | 3     | -1   | Greater                     |
//  |-------------|-------|------|-----------------------------|
//
// Values are not normalized by New. Leading zero digits shift the exponent
// and so Compare is an ordering of representations. Use Canonical or
// CompareValue when the numeric value is what matters.
package decimal
