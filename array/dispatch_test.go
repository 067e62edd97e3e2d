package array

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEval(t *testing.T) {
	a := New([]float64{1, 2, 3})
	b := New([]float64{10, 20, 30})

	tests := []struct {
		name     string
		op       Op
		lhs, rhs Operand
		want     []float64
	}{
		{"array plus array", OpAdd, Of(a), Of(b), []float64{11, 22, 33}},
		{"array times scalar", OpMul, Of(a), Scalar(2), []float64{2, 4, 6}},
		{"scalar times array", OpMul, Scalar(2), Of(a), []float64{2, 4, 6}},
		{"array over scalar", OpDiv, Of(b), Scalar(10), []float64{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.op, tt.lhs, tt.rhs)
			if err != nil {
				t.Fatalf("Eval() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got.ToSlice()); diff != "" {
				t.Fatalf("Eval mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalRejects(t *testing.T) {
	a := New([]float64{1, 2})

	tests := []struct {
		name     string
		op       Op
		lhs, rhs Operand
		want     error
	}{
		{"array plus scalar", OpAdd, Of(a), Scalar(1), ErrInvalidArgument},
		{"scalar plus array", OpAdd, Scalar(1), Of(a), ErrInvalidArgument},
		{"array times array", OpMul, Of(a), Of(a), ErrInvalidArgument},
		{"scalar times scalar", OpMul, Scalar(1), Scalar(2), ErrInvalidArgument},
		{"array over array", OpDiv, Of(a), Of(a), ErrInvalidArgument},
		{"scalar over array", OpDiv, Scalar(1), Of(a), ErrInvalidArgument},
		{"zero operand", OpAdd, Operand{}, Of(a), ErrInvalidArgument},
		{"nil array", OpMul, Of(nil), Scalar(2), ErrInvalidArgument},
		{"unknown op", Op(42), Of(a), Of(a), ErrInvalidArgument},
		{"shape mismatch", OpAdd, Of(a), Of(New([]float64{1})), ErrShapeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.op, tt.lhs, tt.rhs)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Eval() error = %v, want %v", err, tt.want)
			}
			if got != nil {
				t.Fatalf("Eval() = %v, want nil on error", got)
			}
		})
	}
}

func TestParseOp(t *testing.T) {
	cases := map[string]Op{
		"+": OpAdd, "add": OpAdd,
		"*": OpMul, "x": OpMul, " MUL ": OpMul,
		"/": OpDiv, "div": OpDiv,
	}
	for in, want := range cases {
		got, err := ParseOp(in)
		if err != nil {
			t.Fatalf("ParseOp(%q) error = %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseOp(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseOp("-"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("ParseOp(-) error = %v, want ErrInvalidArgument", err)
	}
}

func TestOpString(t *testing.T) {
	if OpAdd.String() != "+" || OpMul.String() != "*" || OpDiv.String() != "/" {
		t.Fatalf("unexpected operator symbols: %v %v %v", OpAdd, OpMul, OpDiv)
	}
	if got := Op(9).String(); got != "Op(9)" {
		t.Fatalf("Op(9).String() = %q", got)
	}
}

func TestOperandString(t *testing.T) {
	if got := Of(New([]float64{1, 2})).String(); got != "[1 2]" {
		t.Fatalf("array operand String() = %q", got)
	}
	if got := Scalar(2.5).String(); got != "2.5" {
		t.Fatalf("scalar operand String() = %q", got)
	}
	if !Scalar(1).IsScalar() || Of(nil).IsScalar() {
		t.Fatal("IsScalar reports the wrong variant")
	}
	if got := (Operand{}).String(); got != "<invalid>" {
		t.Fatalf("zero operand String() = %q", got)
	}
}
