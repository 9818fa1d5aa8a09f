package stdlib

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

const piDigits = "3.1415926535897932384626433832795028841971693993751"

type DecimalBasic struct {
	FloatAddition   float64 `json:"float_addition" yaml:"float_addition"`
	DecimalAddition string  `json:"decimal_addition" yaml:"decimal_addition"`
	Multiplication  string  `json:"multiplication" yaml:"multiplication"`
	Division        string  `json:"division" yaml:"division"`
}

type DecimalRounding struct {
	Original  string `json:"original" yaml:"original"`
	Quantize2 string `json:"quantize_2" yaml:"quantize_2"`
	Quantize3 string `json:"quantize_3" yaml:"quantize_3"`
}

type DecimalSpecial struct {
	Infinity    string `json:"infinity" yaml:"infinity"`
	NegInfinity string `json:"neg_infinity" yaml:"neg_infinity"`
	NaN         string `json:"nan" yaml:"nan"`
}

type DecimalResult struct {
	Basic           DecimalBasic    `json:"basic" yaml:"basic"`
	HighPrecisionPi string          `json:"high_precision_pi" yaml:"high_precision_pi"`
	Rounding        DecimalRounding `json:"rounding" yaml:"rounding"`
	Special         DecimalSpecial  `json:"special" yaml:"special"`
}

// decimalContext mirrors a general purpose context with the given number of
// significant digits and banker's rounding.
func decimalContext(precision uint32) *apd.Context {
	c := apd.BaseContext.WithPrecision(precision)
	c.Rounding = apd.RoundHalfEven
	return c
}

func parseDecimal(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("decimal %q: %w", s, err)
	}
	return d, nil
}

type binaryOp func(d, x, y *apd.Decimal) (apd.Condition, error)

func apply(op binaryOp, a, b string) (string, error) {
	x, err := parseDecimal(a)
	if err != nil {
		return "", err
	}
	y, err := parseDecimal(b)
	if err != nil {
		return "", err
	}
	var d apd.Decimal
	if _, err := op(&d, x, y); err != nil {
		return "", err
	}
	return d.String(), nil
}

func quantize(ctx *apd.Context, s string, exp int32) (string, error) {
	x, err := parseDecimal(s)
	if err != nil {
		return "", err
	}
	var d apd.Decimal
	if _, err := ctx.Quantize(&d, x, exp); err != nil {
		return "", err
	}
	return d.String(), nil
}

func Decimal() (DecimalResult, error) {
	var r DecimalResult
	var err error

	ctx := decimalContext(10)
	a, b := 0.1, 0.2
	r.Basic.FloatAddition = a + b
	if r.Basic.DecimalAddition, err = apply(ctx.Add, "0.1", "0.2"); err != nil {
		return r, err
	}
	if r.Basic.Multiplication, err = apply(ctx.Mul, "2.5", "3.7"); err != nil {
		return r, err
	}
	if r.Basic.Division, err = apply(ctx.Quo, "10", "3"); err != nil {
		return r, err
	}

	pi, err := parseDecimal(piDigits)
	if err != nil {
		return r, err
	}
	r.HighPrecisionPi = pi.String()

	ctx = decimalContext(6)
	r.Rounding.Original = "3.14159"
	if r.Rounding.Quantize2, err = quantize(ctx, "3.14159", -2); err != nil {
		return r, err
	}
	if r.Rounding.Quantize3, err = quantize(ctx, "3.14159", -3); err != nil {
		return r, err
	}

	for dst, s := range map[*string]string{
		&r.Special.Infinity:    "Infinity",
		&r.Special.NegInfinity: "-Infinity",
		&r.Special.NaN:         "NaN",
	} {
		d, err := parseDecimal(s)
		if err != nil {
			return r, err
		}
		*dst = d.String()
	}

	return r, nil
}
