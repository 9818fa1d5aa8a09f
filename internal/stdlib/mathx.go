package stdlib

import (
	"encoding/json"
	"math"
	"strconv"
)

// Float is a float64 that survives JSON encoding when it is infinite or
// NaN, by writing those as strings.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return json.Marshal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return json.Marshal(v)
}

func Factorial(n int) int {
	out := 1
	for i := 2; i <= n; i++ {
		out *= i
	}
	return out
}

func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

func Radians(deg float64) float64 { return deg * math.Pi / 180 }
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Dist is the Euclidean distance between two points of equal dimension.
func Dist(p, q []float64) float64 {
	var sum float64
	for i := range p {
		d := p[i] - q[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

type Constants struct {
	Pi  float64 `json:"pi" yaml:"pi"`
	E   float64 `json:"e" yaml:"e"`
	Tau float64 `json:"tau" yaml:"tau"`
	Inf Float   `json:"inf" yaml:"inf"`
	NaN Float   `json:"nan" yaml:"nan"`
}

type BasicMath struct {
	Sqrt16     float64 `json:"sqrt_16" yaml:"sqrt_16"`
	Pow2_3     float64 `json:"pow_2_3" yaml:"pow_2_3"`
	Exp1       float64 `json:"exp_1" yaml:"exp_1"`
	AbsNeg5    float64 `json:"abs_neg5" yaml:"abs_neg5"`
	Factorial5 int     `json:"factorial_5" yaml:"factorial_5"`
	GCD48_18   int     `json:"gcd_48_18" yaml:"gcd_48_18"`
	LCM12_18   int     `json:"lcm_12_18" yaml:"lcm_12_18"`
}

type Rounding struct {
	Ceil43  float64 `json:"ceil_4.3" yaml:"ceil_4.3"`
	Floor47 float64 `json:"floor_4.7" yaml:"floor_4.7"`
	Trunc47 float64 `json:"trunc_4.7" yaml:"trunc_4.7"`
	Round45 float64 `json:"round_4.5" yaml:"round_4.5"`
	Round46 float64 `json:"round_4.6" yaml:"round_4.6"`
}

type Logarithms struct {
	LogE         float64 `json:"log_e" yaml:"log_e"`
	Log10_100    float64 `json:"log10_100" yaml:"log10_100"`
	Log2_8       float64 `json:"log2_8" yaml:"log2_8"`
	LogBase3Of27 float64 `json:"log_base_3_27" yaml:"log_base_3_27"`
}

type Trigonometry struct {
	Sin45            float64 `json:"sin_45" yaml:"sin_45"`
	Cos45            float64 `json:"cos_45" yaml:"cos_45"`
	Tan45            float64 `json:"tan_45" yaml:"tan_45"`
	DegreesToRadians float64 `json:"degrees_to_radians" yaml:"degrees_to_radians"`
	RadiansToDegrees float64 `json:"radians_to_degrees" yaml:"radians_to_degrees"`
}

type Hyperbolic struct {
	Sinh1 float64 `json:"sinh_1" yaml:"sinh_1"`
	Cosh1 float64 `json:"cosh_1" yaml:"cosh_1"`
	Tanh1 float64 `json:"tanh_1" yaml:"tanh_1"`
}

type Special struct {
	IsNaN    bool    `json:"isnan" yaml:"isnan"`
	IsInf    bool    `json:"isinf" yaml:"isinf"`
	IsFinite bool    `json:"isfinite" yaml:"isfinite"`
	Copysign float64 `json:"copysign" yaml:"copysign"`
	Hypot    float64 `json:"hypot" yaml:"hypot"`
	Dist     float64 `json:"dist" yaml:"dist"`
}

type MathResult struct {
	Constants    Constants    `json:"constants" yaml:"constants"`
	Basic        BasicMath    `json:"basic" yaml:"basic"`
	Rounding     Rounding     `json:"rounding" yaml:"rounding"`
	Logarithms   Logarithms   `json:"logarithms" yaml:"logarithms"`
	Trigonometry Trigonometry `json:"trigonometry" yaml:"trigonometry"`
	Hyperbolic   Hyperbolic   `json:"hyperbolic" yaml:"hyperbolic"`
	Special      Special      `json:"special" yaml:"special"`
}

func Math() MathResult {
	angle := math.Pi / 4
	return MathResult{
		Constants: Constants{
			Pi:  math.Pi,
			E:   math.E,
			Tau: 2 * math.Pi,
			Inf: Float(math.Inf(1)),
			NaN: Float(math.NaN()),
		},
		Basic: BasicMath{
			Sqrt16:     math.Sqrt(16),
			Pow2_3:     math.Pow(2, 3),
			Exp1:       math.Exp(1),
			AbsNeg5:    math.Abs(-5),
			Factorial5: Factorial(5),
			GCD48_18:   GCD(48, 18),
			LCM12_18:   LCM(12, 18),
		},
		Rounding: Rounding{
			Ceil43:  math.Ceil(4.3),
			Floor47: math.Floor(4.7),
			Trunc47: math.Trunc(4.7),
			Round45: math.RoundToEven(4.5),
			Round46: math.RoundToEven(4.6),
		},
		Logarithms: Logarithms{
			LogE:         math.Log(math.E),
			Log10_100:    math.Log10(100),
			Log2_8:       math.Log2(8),
			LogBase3Of27: math.Log(27) / math.Log(3),
		},
		Trigonometry: Trigonometry{
			Sin45:            math.Sin(angle),
			Cos45:            math.Cos(angle),
			Tan45:            math.Tan(angle),
			DegreesToRadians: Radians(180),
			RadiansToDegrees: Degrees(math.Pi),
		},
		Hyperbolic: Hyperbolic{
			Sinh1: math.Sinh(1),
			Cosh1: math.Cosh(1),
			Tanh1: math.Tanh(1),
		},
		Special: Special{
			IsNaN:    math.IsNaN(math.NaN()),
			IsInf:    math.IsInf(math.Inf(1), 0),
			IsFinite: !math.IsInf(100, 0) && !math.IsNaN(100),
			Copysign: math.Copysign(5, -1),
			Hypot:    math.Hypot(3, 4),
			Dist:     Dist([]float64{1, 2}, []float64{4, 6}),
		},
	}
}
