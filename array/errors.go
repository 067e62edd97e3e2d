package array

import "errors"

// Errors returned by array operations.
var (
	ErrInvalidArgument = errors.New("array: invalid argument")
	ErrConversion      = errors.New("array: value is not numeric")
	ErrShapeMismatch   = errors.New("array: operand sizes differ")
	ErrIndexOutOfRange = errors.New("array: index out of range")
	ErrAllocation      = errors.New("array: cannot allocate buffer")
)
