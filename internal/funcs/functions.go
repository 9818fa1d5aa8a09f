// Package funcs covers function signatures, wrappers, closures and
// generators.
package funcs

import (
	"maps"
	"math"

	"github.com/samber/lo"
)

func Greet(name string) string {
	return "Hello, " + name + "!"
}

// Power raises base to exp, or squares it when exp is omitted.
func Power(base float64, exp ...float64) float64 {
	e := 2.0
	if len(exp) > 0 {
		e = exp[0]
	}
	return math.Pow(base, e)
}

func Sum(args ...int) int {
	return lo.Sum(args)
}

// Kwargs returns a copy of the named arguments it was given.
func Kwargs(kwargs map[string]any) map[string]any {
	if kwargs == nil {
		return map[string]any{}
	}
	return maps.Clone(kwargs)
}

type Params struct {
	Required string         `json:"required" yaml:"required"`
	Default  string         `json:"default" yaml:"default"`
	Args     []any          `json:"args" yaml:"args"`
	Kwargs   map[string]any `json:"kwargs" yaml:"kwargs"`
}

// AllParams echoes every kind of parameter back. An empty def falls back
// to "default".
func AllParams(required, def string, args []any, kwargs map[string]any) Params {
	if def == "" {
		def = "default"
	}
	if args == nil {
		args = []any{}
	}
	return Params{Required: required, Default: def, Args: args, Kwargs: Kwargs(kwargs)}
}

var (
	Square = func(x int) int { return x * x }
	Add    = func(x, y int) int { return x + y }
	IsEven = func(x int) bool { return x%2 == 0 }
)

type FunctionsResult struct {
	Basic             string         `json:"basic" yaml:"basic"`
	DefaultUsed       float64        `json:"default_used" yaml:"default_used"`
	DefaultOverridden float64        `json:"default_overridden" yaml:"default_overridden"`
	VarArgs           int            `json:"var_args" yaml:"var_args"`
	Kwargs            map[string]any `json:"kwargs" yaml:"kwargs"`
	AllParams         Params         `json:"all_params" yaml:"all_params"`
	LambdaSquare      int            `json:"lambda_square" yaml:"lambda_square"`
	LambdaAdd         int            `json:"lambda_add" yaml:"lambda_add"`
	LambdaFilter      []int          `json:"lambda_filter" yaml:"lambda_filter"`
}

func DemonstrateFunctions() FunctionsResult {
	return FunctionsResult{
		Basic:             Greet("Python"),
		DefaultUsed:       Power(3),
		DefaultOverridden: Power(2, 4),
		VarArgs:           Sum(1, 2, 3, 4, 5),
		Kwargs:            Kwargs(map[string]any{"name": "Alice", "age": 30, "city": "NYC"}),
		AllParams:         AllParams("required", "custom", []any{1, 2}, map[string]any{"x": 10, "y": 20}),
		LambdaSquare:      Square(5),
		LambdaAdd:         Add(3, 7),
		LambdaFilter:      lo.Filter(lo.Range(10), func(x, _ int) bool { return IsEven(x) }),
	}
}
