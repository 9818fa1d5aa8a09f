package collections

import (
	"reflect"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Point is a named two-field tuple.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// PointFromSlice builds a Point from exactly two values.
func PointFromSlice(v []int) (Point, bool) {
	if len(v) != 2 {
		return Point{}, false
	}
	return Point{X: v[0], Y: v[1]}, true
}

func (p Point) AsMap() map[string]int {
	return map[string]int{"x": p.X, "y": p.Y}
}

// Fields lists the tuple's field names in declaration order.
func (Point) Fields() []string {
	t := reflect.TypeFor[Point]()
	out := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		out = append(out, name)
	}
	return out
}

type Unpacking struct {
	XY   [2]int `json:"x_y" yaml:"x_y"`
	A    int    `json:"a" yaml:"a"`
	Rest []int  `json:"rest" yaml:"rest"`
	B    int    `json:"b" yaml:"b"`
}

type NamedTuple struct {
	Point1 [2]int         `json:"point1" yaml:"point1"`
	Point2 map[string]int `json:"point2" yaml:"point2"`
	Fields []string       `json:"fields" yaml:"fields"`
}

type TupleOperationsResult struct {
	First      int        `json:"first" yaml:"first"`
	Last       int        `json:"last" yaml:"last"`
	Slice      []int      `json:"slice" yaml:"slice"`
	Unpacking  Unpacking  `json:"unpacking" yaml:"unpacking"`
	Count2     int        `json:"count_2" yaml:"count_2"`
	IndexOf3   int        `json:"index_of_3" yaml:"index_of_3"`
	NamedTuple NamedTuple `json:"named_tuple" yaml:"named_tuple"`
	TupleAsKey string     `json:"tuple_as_key" yaml:"tuple_as_key"`
}

func TupleOperations() TupleOperationsResult {
	var r TupleOperationsResult

	t := [5]int{1, 2, 3, 4, 5}
	r.First = t[0]
	r.Last = t[len(t)-1]
	r.Slice = slices.Clone(t[1:4])

	x, y := 10, 20
	a, rest, b := t[0], slices.Clone(t[1:len(t)-1]), t[len(t)-1]
	r.Unpacking = Unpacking{XY: [2]int{x, y}, A: a, Rest: rest, B: b}

	counted := [6]int{1, 2, 3, 2, 4, 2}
	r.Count2 = lo.Count(counted[:], 2)
	r.IndexOf3 = slices.Index(counted[:], 3)

	p1 := Point{X: 11, Y: 22}
	p2, _ := PointFromSlice([]int{33, 44})
	r.NamedTuple = NamedTuple{
		Point1: [2]int{p1.X, p1.Y},
		Point2: p2.AsMap(),
		Fields: Point{}.Fields(),
	}

	// arrays are comparable and can key a map
	grid := map[[2]int]string{
		{0, 0}: "origin",
		{1, 0}: "right",
		{0, 1}: "up",
	}
	r.TupleAsKey = grid[[2]int{0, 0}]

	return r
}
