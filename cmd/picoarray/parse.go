package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-array/array"
)

// parseValues parses "1,2,3" or "[1, 2, 3]" into an array. "[]" and "" are
// the empty array.
func parseValues(s string) (*array.Array, error) {
	body := strings.TrimSpace(s)
	if strings.HasPrefix(body, "[") || strings.HasSuffix(body, "]") {
		if !strings.HasPrefix(body, "[") || !strings.HasSuffix(body, "]") {
			return nil, fmt.Errorf("%w: unbalanced brackets in %q", array.ErrInvalidArgument, s)
		}
		body = strings.TrimSpace(body[1 : len(body)-1])
	}
	if body == "" {
		return array.New(nil), nil
	}

	tokens := strings.Split(body, ",")
	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := parseFloat(tok)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		values[i] = v
	}
	return array.New(values), nil
}

func parseFloat(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", array.ErrConversion, tok)
	}
	return v, nil
}

func parseInt(tok string) (int, error) {
	tok = strings.TrimSpace(tok)
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", array.ErrConversion, tok)
	}
	return n, nil
}

// parseOperand treats bracketed or comma-separated input as an array and
// anything else as a scalar.
func parseOperand(s string) (array.Operand, error) {
	t := strings.TrimSpace(s)
	if strings.ContainsAny(t, "[],") {
		a, err := parseValues(t)
		if err != nil {
			return array.Operand{}, err
		}
		return array.Of(a), nil
	}
	k, err := parseFloat(t)
	if err != nil {
		return array.Operand{}, err
	}
	return array.Scalar(k), nil
}
