// Package oop models classes, inheritance, encapsulation and polymorphism
// with Go structs, embedding and interfaces.
package oop

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const Species = "Homo sapiens"

var population atomic.Int64

// Population reports how many Person values have been constructed.
func Population() int64 {
	return population.Load()
}

type Person struct {
	ID   uuid.UUID
	Name string
	Age  int
}

func NewPerson(name string, age int) *Person {
	population.Add(1)
	return &Person{ID: uuid.New(), Name: name, Age: age}
}

// FromBirthYear derives the age from the current calendar year.
func FromBirthYear(name string, birthYear int) *Person {
	return NewPerson(name, time.Now().Year()-birthYear)
}

func IsAdult(age int) bool {
	return age >= 18
}

func (p *Person) String() string {
	return fmt.Sprintf("%s (%d years old)", p.Name, p.Age)
}

func (p *Person) GoString() string {
	return fmt.Sprintf("Person(name='%s', age=%d)", p.Name, p.Age)
}

// Equal compares by name and age; identity is ignored.
func (p *Person) Equal(other *Person) bool {
	if other == nil {
		return false
	}
	return p.Name == other.Name && p.Age == other.Age
}

func (p *Person) Introduce() string {
	return fmt.Sprintf("Hi, I'm %s, %d years old", p.Name, p.Age)
}

func (p *Person) AgeGroup() string {
	switch {
	case p.Age < 13:
		return "Child"
	case p.Age < 20:
		return "Teenager"
	case p.Age < 60:
		return "Adult"
	default:
		return "Senior"
	}
}

type PersonInfo struct {
	Name     string `json:"name" yaml:"name"`
	Age      int    `json:"age" yaml:"age"`
	AgeGroup string `json:"age_group" yaml:"age_group"`
	IsAdult  bool   `json:"is_adult" yaml:"is_adult"`
}

func (p *Person) Info() PersonInfo {
	return PersonInfo{Name: p.Name, Age: p.Age, AgeGroup: p.AgeGroup(), IsAdult: IsAdult(p.Age)}
}
