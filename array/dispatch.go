package array

import (
	"fmt"
	"strings"
)

// Op identifies a binary arithmetic operator.
type Op int

// Supported operators.
const (
	OpAdd Op = iota + 1
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// ParseOp maps an operator symbol or name ("+", "add", "*", "x", "mul",
// "/", "div") to an Op.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add":
		return OpAdd, nil
	case "*", "x", "mul":
		return OpMul, nil
	case "/", "div":
		return OpDiv, nil
	default:
		return 0, fmt.Errorf("%w: unknown operator %q", ErrInvalidArgument, s)
	}
}

type operandKind uint8

const (
	kindArray operandKind = iota + 1
	kindScalar
)

// Operand is either an array or a scalar. The zero Operand is neither and is
// rejected by Eval.
type Operand struct {
	kind   operandKind
	arr    *Array
	scalar float64
}

// Of wraps an array as an operand.
func Of(a *Array) Operand {
	return Operand{kind: kindArray, arr: a}
}

// Scalar wraps a number as an operand.
func Scalar(k float64) Operand {
	return Operand{kind: kindScalar, scalar: k}
}

// IsScalar reports whether o holds a scalar.
func (o Operand) IsScalar() bool {
	return o.kind == kindScalar
}

func (o Operand) String() string {
	switch o.kind {
	case kindArray:
		return o.arr.String()
	case kindScalar:
		return fmt.Sprint(o.scalar)
	default:
		return "<invalid>"
	}
}

// Eval applies op to lhs and rhs.
//
// Supported forms are array+array, array*scalar, scalar*array and
// array/scalar. Every other combination yields ErrInvalidArgument.
func Eval(op Op, lhs, rhs Operand) (*Array, error) {
	if lhs.kind == 0 || rhs.kind == 0 {
		return nil, fmt.Errorf("%w: uninitialized operand", ErrInvalidArgument)
	}
	if (lhs.kind == kindArray && lhs.arr == nil) || (rhs.kind == kindArray && rhs.arr == nil) {
		return nil, fmt.Errorf("%w: nil array operand", ErrInvalidArgument)
	}

	switch op {
	case OpAdd:
		if lhs.kind != kindArray || rhs.kind != kindArray {
			return nil, unsupported(op, lhs, rhs)
		}
		return Add(lhs.arr, rhs.arr)
	case OpMul:
		switch {
		case lhs.kind == kindArray && rhs.kind == kindScalar:
			return Multiply(lhs.arr, rhs.scalar), nil
		case lhs.kind == kindScalar && rhs.kind == kindArray:
			return Multiply(rhs.arr, lhs.scalar), nil
		default:
			return nil, unsupported(op, lhs, rhs)
		}
	case OpDiv:
		if lhs.kind != kindArray || rhs.kind != kindScalar {
			return nil, unsupported(op, lhs, rhs)
		}
		return Divide(lhs.arr, rhs.scalar), nil
	default:
		return nil, fmt.Errorf("%w: unknown operator %v", ErrInvalidArgument, op)
	}
}

func unsupported(op Op, lhs, rhs Operand) error {
	return fmt.Errorf("%w: unsupported operands for %v: %s and %s",
		ErrInvalidArgument, op, lhs.kindName(), rhs.kindName())
}

func (o Operand) kindName() string {
	if o.kind == kindScalar {
		return "scalar"
	}
	return "array"
}
