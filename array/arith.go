package array

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Add returns the elementwise sum a[i] + b[i].
// Returns ErrShapeMismatch if the sizes differ.
func Add(a, b *Array) (*Array, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrInvalidArgument)
	}
	if len(a.data) != len(b.data) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, len(a.data), len(b.data))
	}
	out := alloc(len(a.data))
	vecmath.AddBlock(out.data, a.data, b.data)
	return out, nil
}

// Multiply returns a[i] * k.
// A nil a is treated as an empty array.
func Multiply(a *Array, k float64) *Array {
	out := alloc(a.Len())
	if a != nil {
		vecmath.ScaleBlock(out.data, a.data, k)
	}
	return out
}

// Divide returns a[i] / k. Division by zero follows IEEE 754 and yields
// ±Inf or NaN per element.
func Divide(a *Array, k float64) *Array {
	out := alloc(a.Len())
	for i := range out.data {
		out.data[i] = a.data[i] / k
	}
	return out
}

// Apply returns fn(a[i]) for every element of a.
func Apply(fn func(float64) float64, a *Array) (*Array, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", ErrInvalidArgument)
	}
	out := alloc(a.Len())
	for i := range out.data {
		out.data[i] = fn(a.data[i])
	}
	return out, nil
}

// Sin returns the elementwise sine of a (radians).
func Sin(a *Array) *Array {
	out, _ := Apply(math.Sin, a)
	return out
}

// Cos returns the elementwise cosine of a (radians).
func Cos(a *Array) *Array {
	out, _ := Apply(math.Cos, a)
	return out
}
