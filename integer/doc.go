// Package integer provides the digit sequences backing decimal magnitudes.
//
// A magnitude is stored as a sequence of fixed width digits in base Radix,
// most significant digit first:
//
//  magnitude = d[0]*Radix^(n-1) + d[1]*Radix^(n-2) + ... + d[n-1]
//
// For example, the digits [1 2 3] represent:
//
//  1*2^64 + 2*2^32 + 3 = 18446744082299486211
//
// Sequences are not normalized. Leading zero digits are permitted and the
// empty sequence is zero.
package integer
