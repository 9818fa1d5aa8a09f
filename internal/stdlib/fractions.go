package stdlib

import (
	"fmt"
	"math"
	"math/big"
)

// LimitDenominator finds the closest fraction to f whose denominator is at
// most maxDenom.
func LimitDenominator(f *big.Rat, maxDenom int64) *big.Rat {
	limit := big.NewInt(maxDenom)
	if f.Denom().Cmp(limit) <= 0 {
		return new(big.Rat).Set(f)
	}

	p0, q0, p1, q1 := big.NewInt(0), big.NewInt(1), big.NewInt(1), big.NewInt(0)
	n, d := new(big.Int).Set(f.Num()), new(big.Int).Set(f.Denom())
	for {
		a := new(big.Int).Div(n, d)
		q2 := new(big.Int).Add(q0, new(big.Int).Mul(a, q1))
		if q2.Cmp(limit) > 0 {
			break
		}
		p0, q0, p1, q1 = p1, q1, new(big.Int).Add(p0, new(big.Int).Mul(a, p1)), q2
		n, d = d, new(big.Int).Sub(n, new(big.Int).Mul(a, d))
	}

	k := new(big.Int).Div(new(big.Int).Sub(limit, q0), q1)
	b1 := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	b2 := new(big.Rat).SetFrac(p1, q1)

	d1 := new(big.Rat).Abs(new(big.Rat).Sub(b2, f))
	d2 := new(big.Rat).Abs(new(big.Rat).Sub(b1, f))
	if d1.Cmp(d2) <= 0 {
		return b2
	}
	return b1
}

func parseRat(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid fraction %q", s)
	}
	return r, nil
}

type Creation struct {
	FromInts           string `json:"from_ints" yaml:"from_ints"`
	FromStringDecimal  string `json:"from_string_decimal" yaml:"from_string_decimal"`
	FromStringFraction string `json:"from_string_fraction" yaml:"from_string_fraction"`
}

type FractionArithmetic struct {
	Addition       string `json:"addition" yaml:"addition"`
	Subtraction    string `json:"subtraction" yaml:"subtraction"`
	Multiplication string `json:"multiplication" yaml:"multiplication"`
	Division       string `json:"division" yaml:"division"`
}

type FractionProperties struct {
	Numerator        int64  `json:"numerator" yaml:"numerator"`
	Denominator      int64  `json:"denominator" yaml:"denominator"`
	LimitDenominator string `json:"limit_denominator" yaml:"limit_denominator"`
}

type Conversion struct {
	ToFloat   float64 `json:"to_float" yaml:"to_float"`
	FromFloat string  `json:"from_float" yaml:"from_float"`
}

type FractionsResult struct {
	Creation   Creation           `json:"creation" yaml:"creation"`
	Arithmetic FractionArithmetic `json:"arithmetic" yaml:"arithmetic"`
	Properties FractionProperties `json:"properties" yaml:"properties"`
	Conversion Conversion         `json:"conversion" yaml:"conversion"`
}

func Fractions() (FractionsResult, error) {
	var r FractionsResult

	f1 := big.NewRat(3, 4)
	f2 := big.NewRat(1, 2)
	f3, err := parseRat("0.75")
	if err != nil {
		return r, err
	}
	f4, err := parseRat("1/3")
	if err != nil {
		return r, err
	}

	r.Creation = Creation{
		FromInts:           f1.RatString(),
		FromStringDecimal:  f3.RatString(),
		FromStringFraction: f4.RatString(),
	}

	r.Arithmetic = FractionArithmetic{
		Addition:       new(big.Rat).Add(f1, f2).RatString(),
		Subtraction:    new(big.Rat).Sub(f1, f2).RatString(),
		Multiplication: new(big.Rat).Mul(f1, f2).RatString(),
		Division:       new(big.Rat).Quo(f1, f2).RatString(),
	}

	pi := new(big.Rat).SetFloat64(math.Pi)
	r.Properties = FractionProperties{
		Numerator:        f1.Num().Int64(),
		Denominator:      f1.Denom().Int64(),
		LimitDenominator: LimitDenominator(pi, 100).RatString(),
	}

	toFloat, _ := f1.Float64()
	third := new(big.Rat).SetFloat64(0.333333333333)
	r.Conversion = Conversion{
		ToFloat:   toFloat,
		FromFloat: LimitDenominator(third, 1_000_000).RatString(),
	}

	return r, nil
}
