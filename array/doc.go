// Package array provides a fixed-length float64 array with elementwise
// arithmetic.
//
// An Array exclusively owns its backing slice. Constructors copy their
// input, ToSlice returns a copy, and every arithmetic operation allocates a
// fresh result, so no two arrays ever share storage. Once built an Array is
// never modified, which makes it safe to read from multiple goroutines.
//
// Binary operations that mix arrays and scalars go through Eval, which
// accepts a closed set of Operand variants and rejects the combinations that
// have no meaning (array divisors, scalar addition).
package array
