// Package basics covers values, types and operators.
package basics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"text/template"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Complex renders as "(3+4i)" in text-based encodings.
type Complex complex128

func (c Complex) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatComplex(complex128(c), 'g', -1, 128)), nil
}

type VariablesResult struct {
	Integer      int     `json:"integer" yaml:"integer"`
	Float        float64 `json:"float" yaml:"float"`
	Complex      Complex `json:"complex" yaml:"complex"`
	String       string  `json:"string" yaml:"string"`
	Multiline    string  `json:"multiline" yaml:"multiline"`
	BooleanTrue  bool    `json:"boolean_true" yaml:"boolean_true"`
	BooleanFalse bool    `json:"boolean_false" yaml:"boolean_false"`
	None         *int    `json:"none" yaml:"none"`
}

func Variables() VariablesResult {
	single := "Hello"
	double := "World"
	multi := `This is a
multi-line string`

	return VariablesResult{
		Integer:      42,
		Float:        3.14159,
		Complex:      Complex(3 + 4i),
		String:       single + " " + double,
		Multiline:    multi,
		BooleanTrue:  true,
		BooleanFalse: false,
	}
}

type TypeCheckingResult struct {
	TypeOfNum  string  `json:"type_of_num" yaml:"type_of_num"`
	IsInt      bool    `json:"is_int" yaml:"is_int"`
	IsFloat    bool    `json:"is_float" yaml:"is_float"`
	StrToInt   int     `json:"str_to_int" yaml:"str_to_int"`
	IntToStr   string  `json:"int_to_str" yaml:"int_to_str"`
	FloatToInt int     `json:"float_to_int" yaml:"float_to_int"`
	IntToFloat float64 `json:"int_to_float" yaml:"int_to_float"`
}

func TypeChecking() (TypeCheckingResult, error) {
	var num any = 42
	var decimal any = 3.14
	text := "123"

	parsed, err := strconv.Atoi(text)
	if err != nil {
		return TypeCheckingResult{}, fmt.Errorf("convert %q: %w", text, err)
	}

	_, isInt := num.(int)
	_, isFloat := decimal.(float64)

	return TypeCheckingResult{
		TypeOfNum:  reflect.TypeOf(num).Name(),
		IsInt:      isInt,
		IsFloat:    isFloat,
		StrToInt:   parsed,
		IntToStr:   strconv.Itoa(num.(int)),
		FloatToInt: int(decimal.(float64)),
		IntToFloat: float64(num.(int)),
	}, nil
}

type ArithmeticResult struct {
	Addition       int     `json:"addition" yaml:"addition"`
	Subtraction    int     `json:"subtraction" yaml:"subtraction"`
	Multiplication int     `json:"multiplication" yaml:"multiplication"`
	Division       float64 `json:"division" yaml:"division"`
	FloorDivision  int     `json:"floor_division" yaml:"floor_division"`
	Modulo         int     `json:"modulo" yaml:"modulo"`
	Exponentiation Power   `json:"exponentiation" yaml:"exponentiation"`
}

// Arithmetic panics on b == 0 like the built-in operators.
func Arithmetic(a, b int) ArithmeticResult {
	return ArithmeticResult{
		Addition:       a + b,
		Subtraction:    a - b,
		Multiplication: a * b,
		Division:       float64(a) / float64(b),
		FloorDivision:  FloorDiv(a, b),
		Modulo:         FloorMod(a, b),
		Exponentiation: Pow(a, b),
	}
}

// FloorDiv rounds the quotient toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a remainder with the sign of b.
func FloorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// Power is the value of base**exp: an exact integer when exp >= 0 and a
// float otherwise. Int is nil for the float case.
type Power struct {
	Int   *big.Int
	Float float64
}

// Pow computes base**exp. Non-negative exponents never overflow.
func Pow(base, exp int) Power {
	if exp < 0 {
		return Power{Float: math.Pow(float64(base), float64(exp))}
	}
	return Power{Int: new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), nil)}
}

func (p Power) IsInt() bool { return p.Int != nil }

func (p Power) String() string {
	if p.Int != nil {
		return p.Int.String()
	}
	return strconv.FormatFloat(p.Float, 'g', -1, 64)
}

func (p Power) MarshalJSON() ([]byte, error) {
	if p.Int != nil {
		return p.Int.MarshalJSON()
	}
	return json.Marshal(p.Float)
}

func (p Power) MarshalYAML() (any, error) {
	if p.Int == nil {
		return p.Float, nil
	}
	if p.Int.IsInt64() {
		return p.Int.Int64(), nil
	}
	return p.Int.String(), nil
}

type ComparisonResult struct {
	GreaterThan  bool `json:"greater_than" yaml:"greater_than"`
	LessThan     bool `json:"less_than" yaml:"less_than"`
	Equal        bool `json:"equal" yaml:"equal"`
	NotEqual     bool `json:"not_equal" yaml:"not_equal"`
	GreaterEqual bool `json:"greater_equal" yaml:"greater_equal"`
	LessEqual    bool `json:"less_equal" yaml:"less_equal"`
}

func Comparison(a, b int) ComparisonResult {
	return ComparisonResult{
		GreaterThan:  a > b,
		LessThan:     a < b,
		Equal:        a == b,
		NotEqual:     a != b,
		GreaterEqual: a >= b,
		LessEqual:    a <= b,
	}
}

type LogicalResult struct {
	And  bool `json:"and" yaml:"and"`
	Or   bool `json:"or" yaml:"or"`
	NotX bool `json:"not_x" yaml:"not_x"`
	NotY bool `json:"not_y" yaml:"not_y"`
}

func Logical(x, y bool) LogicalResult {
	return LogicalResult{And: x && y, Or: x || y, NotX: !x, NotY: !y}
}

type BitwiseResult struct {
	And        int `json:"and" yaml:"and"`
	Or         int `json:"or" yaml:"or"`
	Xor        int `json:"xor" yaml:"xor"`
	Not        int `json:"not" yaml:"not"`
	LeftShift  int `json:"left_shift" yaml:"left_shift"`
	RightShift int `json:"right_shift" yaml:"right_shift"`
}

func Bitwise(m, n int) BitwiseResult {
	return BitwiseResult{
		And:        m & n,
		Or:         m | n,
		Xor:        m ^ n,
		Not:        ^m,
		LeftShift:  m << 1,
		RightShift: m >> 1,
	}
}

type StringOperationsResult struct {
	Length     int      `json:"length" yaml:"length"`
	Uppercase  string   `json:"uppercase" yaml:"uppercase"`
	Lowercase  string   `json:"lowercase" yaml:"lowercase"`
	TitleCase  string   `json:"title_case" yaml:"title_case"`
	StartsWith bool     `json:"starts_with" yaml:"starts_with"`
	EndsWith   bool     `json:"ends_with" yaml:"ends_with"`
	FindIndex  int      `json:"find_index" yaml:"find_index"`
	Replace    string   `json:"replace" yaml:"replace"`
	Split      []string `json:"split" yaml:"split"`
	Join       string   `json:"join" yaml:"join"`
	Strip      string   `json:"strip" yaml:"strip"`
	Substring  string   `json:"substring" yaml:"substring"`
	Reverse    string   `json:"reverse" yaml:"reverse"`
	Count      int      `json:"count" yaml:"count"`
	Formatted  string   `json:"formatted" yaml:"formatted"`
}

func StringOperations() StringOperationsResult {
	text := "Python Programming"

	return StringOperationsResult{
		Length:     len([]rune(text)),
		Uppercase:  strings.ToUpper(text),
		Lowercase:  strings.ToLower(text),
		TitleCase:  cases.Title(language.English).String(text),
		StartsWith: strings.HasPrefix(text, "Python"),
		EndsWith:   strings.HasSuffix(text, "ing"),
		FindIndex:  strings.Index(text, "Pro"),
		Replace:    strings.ReplaceAll(text, "Python", "Java"),
		Split:      strings.Fields(text),
		Join:       strings.Join([]string{"Python", "is", "awesome"}, "-"),
		Strip:      strings.TrimSpace("  spaces  "),
		Substring:  text[0:6],
		Reverse:    Reverse(text),
		Count:      strings.Count(text, "m"),
		Formatted:  fmt.Sprintf("Learning %s is fun!", text),
	}
}

// Reverse reverses s rune by rune.
func Reverse(s string) string {
	r := []rune(s)
	slices.Reverse(r)
	return string(r)
}

type StringFormattingResult struct {
	FString       string `json:"f_string" yaml:"f_string"`
	FormatMethod  string `json:"format_method" yaml:"format_method"`
	FormatNamed   string `json:"format_named" yaml:"format_named"`
	PercentFormat string `json:"percent_format" yaml:"percent_format"`
	NumberFormat  string `json:"number_format" yaml:"number_format"`
	Padding       string `json:"padding" yaml:"padding"`
	ZeroPadding   string `json:"zero_padding" yaml:"zero_padding"`
}

var namedTemplate = template.Must(template.New("named").Parse("Name: {{.n}}, Age: {{.a}}"))

func StringFormatting() (StringFormattingResult, error) {
	name := "Alice"
	age := 30
	pi := 3.14159

	var named bytes.Buffer
	if err := namedTemplate.Execute(&named, map[string]any{"n": name, "a": age}); err != nil {
		return StringFormattingResult{}, fmt.Errorf("render named template: %w", err)
	}

	return StringFormattingResult{
		FString:       fmt.Sprintf("Name: %s, Age: %d", name, age),
		FormatMethod:  fmt.Sprintf("Name: %v, Age: %v", name, age),
		FormatNamed:   named.String(),
		PercentFormat: fmt.Sprintf("Name: %s, Age: %d", name, age),
		NumberFormat:  fmt.Sprintf("Pi: %.2f", pi),
		Padding:       fmt.Sprintf("%10s", name),
		ZeroPadding:   fmt.Sprintf("%05d", age),
	}, nil
}

type AssignmentResult struct {
	Initial       int `json:"initial" yaml:"initial"`
	AfterAdd      int `json:"after_add" yaml:"after_add"`
	AfterSubtract int `json:"after_subtract" yaml:"after_subtract"`
	AfterMultiply int `json:"after_multiply" yaml:"after_multiply"`
	AfterFloorDiv int `json:"after_floor_div" yaml:"after_floor_div"`
	AfterPower    int `json:"after_power" yaml:"after_power"`
}

func AssignmentOperators() AssignmentResult {
	var r AssignmentResult
	x := 10
	r.Initial = x

	x += 5
	r.AfterAdd = x

	x -= 3
	r.AfterSubtract = x

	x *= 2
	r.AfterMultiply = x

	x = FloorDiv(x, 4)
	r.AfterFloorDiv = x

	x *= x
	r.AfterPower = x

	return r
}

type MembershipResult struct {
	AppleInList     bool `json:"apple_in_list" yaml:"apple_in_list"`
	GrapeInList     bool `json:"grape_in_list" yaml:"grape_in_list"`
	BananaNotInList bool `json:"banana_not_in_list" yaml:"banana_not_in_list"`
	HelloInString   bool `json:"Hello_in_string" yaml:"Hello_in_string"`
	ByeInString     bool `json:"bye_in_string" yaml:"bye_in_string"`
	ThreeInSet      bool `json:"three_in_set" yaml:"three_in_set"`
	TenNotInSet     bool `json:"ten_not_in_set" yaml:"ten_not_in_set"`
}

func Membership() MembershipResult {
	fruits := []string{"apple", "banana", "orange"}
	text := "Hello World"
	numbers := mapset.NewSet(1, 2, 3, 4, 5)

	return MembershipResult{
		AppleInList:     lo.Contains(fruits, "apple"),
		GrapeInList:     lo.Contains(fruits, "grape"),
		BananaNotInList: !lo.Contains(fruits, "banana"),
		HelloInString:   strings.Contains(text, "Hello"),
		ByeInString:     strings.Contains(text, "bye"),
		ThreeInSet:      numbers.Contains(3),
		TenNotInSet:     !numbers.Contains(10),
	}
}

type IdentityResult struct {
	AIsB            bool `json:"a_is_b" yaml:"a_is_b"`
	AEqualsB        bool `json:"a_equals_b" yaml:"a_equals_b"`
	AIsC            bool `json:"a_is_c" yaml:"a_is_c"`
	AIsNotB         bool `json:"a_is_not_b" yaml:"a_is_not_b"`
	NoneIsNone      bool `json:"none_is_none" yaml:"none_is_none"`
	EmptyListIsNone bool `json:"empty_list_is_none" yaml:"empty_list_is_none"`
}

// Identity compares slices by backing array versus by content.
func Identity() IdentityResult {
	a := []int{1, 2, 3}
	b := []int{1, 2, 3}
	c := a
	var none *int
	empty := []int{}

	same := func(x, y []int) bool { return &x[0] == &y[0] }

	return IdentityResult{
		AIsB:            same(a, b),
		AEqualsB:        slices.Equal(a, b),
		AIsC:            same(a, c),
		AIsNotB:         !same(a, b),
		NoneIsNone:      none == nil,
		EmptyListIsNone: empty == nil,
	}
}
