package array

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxSize is the largest element count Empty and Generate will allocate.
const MaxSize = math.MaxInt32

// Number is the set of Go types FromSlice converts to float64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Array is a fixed-length sequence of float64 values.
// The zero value and a nil *Array are both valid empty arrays.
type Array struct {
	data []float64
}

// New returns an array holding a copy of values.
func New(values []float64) *Array {
	a := alloc(len(values))
	copy(a.data, values)
	return a
}

// FromSlice returns an array holding values converted to float64.
func FromSlice[T Number](values []T) *Array {
	a := alloc(len(values))
	for i, v := range values {
		a.data[i] = float64(v)
	}
	return a
}

// FromValues builds an array from a dynamically typed sequence.
//
// Typed numeric slices are converted directly. For []any every element must
// hold a Go numeric type; the first one that does not yields ErrConversion.
// Anything that is not a slice yields ErrInvalidArgument.
func FromValues(values any) (*Array, error) {
	switch v := values.(type) {
	case []float64:
		return New(v), nil
	case []float32:
		return FromSlice(v), nil
	case []int:
		return FromSlice(v), nil
	case []int32:
		return FromSlice(v), nil
	case []int64:
		return FromSlice(v), nil
	case []any:
		a := alloc(len(v))
		for i, item := range v {
			f, err := toFloat(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			a.data[i] = f
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: %T is not a sequence", ErrInvalidArgument, values)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: got %T", ErrConversion, v)
	}
}

// Empty returns a zero-filled array of the given size. Sizes up to MaxSize
// pass the check, but a request the machine cannot satisfy still fails with
// the runtime's out-of-memory fault (MaxSize elements is 16 GiB).
func Empty(size int) (*Array, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return alloc(size), nil
}

// Generate returns an array whose i-th element is fn(i).
func Generate(size int, fn func(i int) float64) (*Array, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil generator", ErrInvalidArgument)
	}
	if err := checkSize(size); err != nil {
		return nil, err
	}
	a := alloc(size)
	for i := range a.data {
		a.data[i] = fn(i)
	}
	return a, nil
}

func checkSize(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidArgument, size)
	}
	if size > MaxSize {
		return fmt.Errorf("%w: size %d exceeds %d", ErrAllocation, size, MaxSize)
	}
	return nil
}

// alloc returns an array of n slots. Callers must fill every slot before
// handing the array out.
func alloc(n int) *Array {
	return &Array{data: make([]float64, n)}
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// At returns the element at index i.
func (a *Array) At(i int) (float64, error) {
	n := a.Len()
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, n)
	}
	return a.data[i], nil
}

// ToSlice returns a copy of the elements in index order.
func (a *Array) ToSlice() []float64 {
	out := make([]float64, a.Len())
	if a != nil {
		copy(out, a.data)
	}
	return out
}

// String formats the array as [v0 v1 ...] using the shortest representation
// that round-trips each value.
func (a *Array) String() string {
	return a.Format(-1)
}

// Format formats the array as [v0 v1 ...] with prec digits after the
// decimal point, or the shortest round-trip form when prec is negative.
func (a *Array) Format(prec int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if prec < 0 {
			b.WriteString(strconv.FormatFloat(a.data[i], 'g', -1, 64))
		} else {
			b.WriteString(strconv.FormatFloat(a.data[i], 'f', prec, 64))
		}
	}
	b.WriteByte(']')
	return b.String()
}

// NearlyEqual reports whether a and b have the same size and every pair of
// elements differs by at most eps, either absolutely or relative to the
// larger magnitude. NaNs compare equal to each other, as do infinities of
// the same sign.
func NearlyEqual(a, b *Array, eps float64) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !nearlyEqual(a.data[i], b.data[i], eps) {
			return false
		}
	}
	return true
}

func nearlyEqual(x, y, eps float64) bool {
	if x == y {
		return true
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.IsNaN(x) && math.IsNaN(y)
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	diff := math.Abs(x - y)
	if diff <= eps {
		return true
	}
	return diff/math.Max(math.Abs(x), math.Abs(y)) <= eps
}
