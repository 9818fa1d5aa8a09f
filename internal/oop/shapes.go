package oop

import (
	"fmt"
	"math"
	"reflect"
)

type Shape interface {
	Area() float64
	Perimeter() float64
	Color() string
}

type colored struct {
	color string
}

func (c colored) Color() string { return c.color }

func paint(color string) colored {
	if color == "" {
		color = "white"
	}
	return colored{color}
}

type Rectangle struct {
	colored
	Width, Height float64
}

func NewRectangle(width, height float64, color string) Rectangle {
	return Rectangle{colored: paint(color), Width: width, Height: height}
}

func (r Rectangle) Area() float64      { return r.Width * r.Height }
func (r Rectangle) Perimeter() float64 { return 2 * (r.Width + r.Height) }

type Circle struct {
	colored
	Radius float64
}

func NewCircle(radius float64, color string) Circle {
	return Circle{colored: paint(color), Radius: radius}
}

func (c Circle) Area() float64      { return math.Pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }

// KindOf returns the concrete type name behind s.
func KindOf(s Shape) string {
	return reflect.Indirect(reflect.ValueOf(s)).Type().Name()
}

func Describe(s Shape) string {
	return fmt.Sprintf("A %s %s with area %.2f", s.Color(), KindOf(s), s.Area())
}
