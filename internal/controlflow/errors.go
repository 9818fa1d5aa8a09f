package controlflow

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrType           = errors.New("TypeError")
	ErrValue          = errors.New("ValueError")
	ErrIndex          = errors.New("IndexError")
)

// UnrealisticAgeError is returned for ages above the plausible maximum.
type UnrealisticAgeError struct {
	Age float64
}

func (e *UnrealisticAgeError) Error() string {
	return "Age seems unrealistic"
}

func Divide(numerator, denominator float64) (float64, error) {
	if denominator == 0 {
		return 0, ErrDivisionByZero
	}
	return numerator / denominator, nil
}

// ToFloat converts strings and numbers, mirroring float() for the kinds of
// input it accepts.
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: float() argument must be a string or a number, not 'NoneType'", ErrType)
	case int:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: could not convert string to float: %q", ErrValue, x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrType, v)
	}
}

type ExceptionHandlingResult struct {
	Division      any    `json:"division" yaml:"division"`
	Conversions   []any  `json:"conversions" yaml:"conversions"`
	FileStatus    string `json:"file_status" yaml:"file_status"`
	FileProcessed bool   `json:"file_processed" yaml:"file_processed"`
	CleanupDone   bool   `json:"cleanup_done" yaml:"cleanup_done"`
}

func ExceptionHandling(numerator, denominator float64) ExceptionHandlingResult {
	var r ExceptionHandlingResult

	if q, err := Divide(numerator, denominator); errors.Is(err, ErrDivisionByZero) {
		r.Division = "Cannot divide by zero"
	} else {
		r.Division = q
	}

	for _, v := range []any{"10", "3.14", "abc", nil, 5} {
		f, err := ToFloat(v)
		switch {
		case errors.Is(err, ErrValue):
			r.Conversions = append(r.Conversions, "Error: ValueError")
		case errors.Is(err, ErrType):
			r.Conversions = append(r.Conversions, "Error: TypeError")
		default:
			r.Conversions = append(r.Conversions, f)
		}
	}

	simulateRead(&r)
	return r
}

func simulateRead(r *ExceptionHandlingResult) {
	defer func() { r.CleanupDone = true }()

	read := func() (string, error) { return "Simulated file read", nil }
	if _, err := read(); err != nil {
		r.FileStatus = "error"
		return
	}
	r.FileStatus = "read"
	r.FileProcessed = true
}

func ValidateAge(age any) error {
	var f float64
	switch v := age.(type) {
	case int:
		f = float64(v)
	case float64:
		f = v
	default:
		return fmt.Errorf("%w: Age must be a number", ErrType)
	}

	if f < 0 {
		return fmt.Errorf("%w: Age cannot be negative", ErrValue)
	}
	if f > 150 {
		return &UnrealisticAgeError{Age: f}
	}
	return nil
}

// RaisingErrors validates a fixed set of ages and records how each failed.
func RaisingErrors() map[string]string {
	results := make(map[string]string)
	for _, age := range []any{25, -5, 200, "twenty", 50.5} {
		key := fmt.Sprint(age)
		err := ValidateAge(age)

		var unrealistic *UnrealisticAgeError
		switch {
		case err == nil:
			results[key] = "Valid"
		case errors.As(err, &unrealistic):
			results[key] = "CustomError: " + unrealistic.Error()
		default:
			results[key] = err.Error()
		}
	}
	return results
}

// SafeIndex turns an out-of-range panic into an error.
func SafeIndex(s []int, i int) (v int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrIndex, rec)
		}
	}()
	return s[i], nil
}

type RecoverResult struct {
	InRange    int    `json:"in_range" yaml:"in_range"`
	OutOfRange string `json:"out_of_range" yaml:"out_of_range"`
}

func RecoverPanic() RecoverResult {
	s := []int{10, 20, 30}
	v, _ := SafeIndex(s, 1)
	_, err := SafeIndex(s, 5)

	r := RecoverResult{InRange: v}
	if err != nil {
		r.OutOfRange = err.Error()
	}
	return r
}
