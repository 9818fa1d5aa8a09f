package oop

import (
	"context"
	"fmt"

	"github.com/samber/lo"
)

type PersonResult struct {
	Str       string     `json:"str" yaml:"str"`
	Repr      string     `json:"repr" yaml:"repr"`
	Introduce string     `json:"introduce" yaml:"introduce"`
	AgeGroup  string     `json:"age_group" yaml:"age_group"`
	Info      PersonInfo `json:"info" yaml:"info"`
}

type StudentResult struct {
	Study   string      `json:"study" yaml:"study"`
	Courses []string    `json:"courses" yaml:"courses"`
	Info    StudentInfo `json:"info" yaml:"info"`
}

type BankAccountResult struct {
	Balance       float64 `json:"balance" yaml:"balance"`
	AccountNumber string  `json:"account_number" yaml:"account_number"`
	Statement     string  `json:"statement" yaml:"statement"`
}

type ShapeResult struct {
	Type        string  `json:"type" yaml:"type"`
	Area        float64 `json:"area" yaml:"area"`
	Perimeter   float64 `json:"perimeter" yaml:"perimeter"`
	Description string  `json:"description" yaml:"description"`
}

type SequenceResult struct {
	Length    int   `json:"length" yaml:"length"`
	Contains3 bool  `json:"contains_3" yaml:"contains_3"`
	Last      int   `json:"last" yaml:"last"`
	Combined  []int `json:"combined" yaml:"combined"`
}

type SingletonResult struct {
	SameInstance bool     `json:"same_instance" yaml:"same_instance"`
	ID1          string   `json:"id1" yaml:"id1"`
	ID2          string   `json:"id2" yaml:"id2"`
	Connected    bool     `json:"connected" yaml:"connected"`
	StoredAdults []string `json:"stored_adults" yaml:"stored_adults"`
}

type ClassesResult struct {
	Person        PersonResult      `json:"person" yaml:"person"`
	FromBirthYear PersonInfo        `json:"from_birth_year" yaml:"from_birth_year"`
	Student       StudentResult     `json:"student" yaml:"student"`
	BankAccount   BankAccountResult `json:"bank_account" yaml:"bank_account"`
	Shapes        []ShapeResult     `json:"shapes" yaml:"shapes"`
	Sequence      SequenceResult    `json:"sequence" yaml:"sequence"`
	Singleton     SingletonResult   `json:"singleton" yaml:"singleton"`
}

func DemonstrateClasses(ctx context.Context) (ClassesResult, error) {
	var r ClassesResult

	alice := NewPerson("Alice", 30)
	r.Person = PersonResult{
		Str:       alice.String(),
		Repr:      alice.GoString(),
		Introduce: alice.Introduce(),
		AgeGroup:  alice.AgeGroup(),
		Info:      alice.Info(),
	}

	bob := FromBirthYear("Bob", 1990)
	r.FromBirthYear = bob.Info()

	charlie := NewStudent("Charlie", 20, "S12345", 85.5)
	charlie.Enroll("Math")
	charlie.Enroll("Physics")
	r.Student = StudentResult{
		Study:   charlie.Study("Python"),
		Courses: charlie.Courses(),
		Info:    charlie.Info(),
	}

	account := NewBankAccount("1234567890", 1000)
	if _, err := account.Deposit(500); err != nil {
		return r, err
	}
	if _, err := account.Withdraw(200); err != nil {
		return r, err
	}
	r.BankAccount = BankAccountResult{
		Balance:       account.Balance(),
		AccountNumber: account.Number(),
		Statement:     account.Statement(),
	}

	shapes := []Shape{
		NewRectangle(5, 3, "red"),
		NewCircle(4, "blue"),
		NewRectangle(2, 8, "green"),
	}
	r.Shapes = lo.Map(shapes, func(s Shape, _ int) ShapeResult {
		return ShapeResult{Type: KindOf(s), Area: s.Area(), Perimeter: s.Perimeter(), Description: Describe(s)}
	})

	seq := NewSequence(1, 2, 3, 4, 5)
	last, err := seq.At(-1)
	if err != nil {
		return r, err
	}
	var combined []int
	for v := range seq.Concat(NewSequence(6, 7)).All() {
		combined = append(combined, v)
	}
	r.Sequence = SequenceResult{Length: seq.Len(), Contains3: seq.Contains(3), Last: last, Combined: combined}

	db1, db2 := Database(), Database()
	r.Singleton.SameInstance = db1 == db2
	r.Singleton.ID1 = fmt.Sprintf("%p", db1)
	r.Singleton.ID2 = fmt.Sprintf("%p", db2)
	if _, err := db1.Connect(ctx); err != nil {
		return r, err
	}
	r.Singleton.Connected = db2.Connected()
	people := []*Person{alice, bob, charlie.Person}
	for _, p := range people {
		if err := db1.SavePerson(ctx, p); err != nil {
			return r, err
		}
	}
	ids := lo.Map(people, func(p *Person, _ int) string { return p.ID.String() })
	adults, err := db2.Adults(ctx, ids...)
	if err != nil {
		return r, err
	}
	r.Singleton.StoredAdults = adults

	return r, nil
}
