package oop

import (
	"context"
	"fmt"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerson(t *testing.T) {
	t.Parallel()
	before := Population()
	p := NewPerson("Alice", 30)

	assert.Equal(t, "Alice (30 years old)", p.String())
	assert.Equal(t, "Person(name='Alice', age=30)", fmt.Sprintf("%#v", p))
	assert.Equal(t, "Hi, I'm Alice, 30 years old", p.Introduce())
	assert.True(t, p.Equal(NewPerson("Alice", 30)))
	assert.False(t, p.Equal(NewPerson("Alice", 31)))
	assert.False(t, p.Equal(nil))
	assert.GreaterOrEqual(t, Population(), before+3)
	assert.Equal(t, PersonInfo{Name: "Alice", Age: 30, AgeGroup: "Adult", IsAdult: true}, p.Info())
}

func TestAgeGroup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		age  int
		want string
	}{
		{5, "Child"},
		{12, "Child"},
		{13, "Teenager"},
		{19, "Teenager"},
		{20, "Adult"},
		{59, "Adult"},
		{60, "Senior"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, (&Person{Age: tt.age}).AgeGroup())
		})
	}
	assert.False(t, IsAdult(17))
	assert.True(t, IsAdult(18))
}

func TestFromBirthYear(t *testing.T) {
	t.Parallel()
	p := FromBirthYear("Bob", 1990)
	assert.Equal(t, time.Now().Year()-1990, p.Age)
}

func TestStudent(t *testing.T) {
	t.Parallel()
	s := NewStudent("Charlie", 20, "S12345", 85.5)
	s.Enroll("Math")
	s.Enroll("Physics")

	assert.Equal(t, "Charlie is studying Python", s.Study("Python"))
	courses := s.Courses()
	courses[0] = "Art"
	assert.Equal(t, []string{"Math", "Physics"}, s.Courses())

	info := s.Info()
	assert.Equal(t, "Charlie", info.Name)
	assert.Equal(t, "Adult", info.AgeGroup)
	assert.Equal(t, "S12345", info.StudentID)
	assert.Equal(t, 85.5, info.Grade)
	assert.Equal(t, "Charlie (20 years old)", s.String())
}

func TestBankAccount(t *testing.T) {
	t.Parallel()
	a := NewBankAccount("1234567890", 1000)

	bal, err := a.Deposit(500)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, bal)

	bal, err = a.Withdraw(200)
	require.NoError(t, err)
	assert.Equal(t, 1300.0, bal)

	_, err = a.Deposit(0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.EqualError(t, err, "Deposit amount must be positive")
	_, err = a.Withdraw(-1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.EqualError(t, err, "Withdrawal amount must be positive")
	_, err = a.Withdraw(5000)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.EqualError(t, err, "Insufficient funds")
	assert.Equal(t, 1300.0, a.Balance())

	assert.Equal(t, "***7890", a.Number())
	assert.Equal(t,
		"Account: ***7890\nCurrent Balance: $1300.00\nRecent Transactions:\n"+
			"  - deposit: $500.00\n  - withdrawal: $200.00\n",
		a.Statement())
}

func TestStatementKeepsLastFive(t *testing.T) {
	t.Parallel()
	a := NewBankAccount("42", 0)
	for i := 1; i <= 7; i++ {
		_, err := a.Deposit(float64(i))
		require.NoError(t, err)
	}
	st := a.Statement()
	assert.NotContains(t, st, "$2.00\n")
	assert.Contains(t, st, "$3.00\n")
	assert.Contains(t, st, "***42")
}

func TestShapes(t *testing.T) {
	t.Parallel()
	r := NewRectangle(5, 3, "red")
	assert.Equal(t, 15.0, r.Area())
	assert.Equal(t, 16.0, r.Perimeter())
	assert.Equal(t, "A red Rectangle with area 15.00", Describe(r))

	c := NewCircle(4, "")
	assert.Equal(t, "white", c.Color())
	assert.InDelta(t, math.Pi*16, c.Area(), 1e-9)
	assert.Equal(t, "A white Circle with area 50.27", Describe(c))
	assert.Equal(t, "Circle", KindOf(&c))
}

func TestSequence(t *testing.T) {
	t.Parallel()
	s := NewSequence(1, 2, 3)

	v, err := s.At(-1)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = s.At(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.At(-4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, s.Set(-3, 10))
	assert.Error(t, s.Set(5, 0))
	assert.True(t, s.Contains(10))
	assert.Equal(t, []int{10, 2, 3, 4}, slices.Collect(s.Concat(NewSequence(4)).All()))
	assert.Equal(t, 3, s.Len())
}

func TestDemonstrateClasses(t *testing.T) {
	ctx := context.Background()
	t.Cleanup(func() { Database().Disconnect() })

	r, err := DemonstrateClasses(ctx)
	require.NoError(t, err)

	assert.Contains(t, r.Person.Str, "Alice")
	assert.Equal(t, "Person(name='Alice', age=30)", r.Person.Repr)
	assert.Equal(t, "Bob", r.FromBirthYear.Name)
	assert.Contains(t, r.Student.Study, "Charlie")
	assert.Equal(t, []string{"Math", "Physics"}, r.Student.Courses)
	assert.Equal(t, 1300.0, r.BankAccount.Balance)
	assert.Contains(t, r.BankAccount.Statement, "$1300.00")

	require.Len(t, r.Shapes, 3)
	assert.Equal(t, "Rectangle", r.Shapes[0].Type)
	assert.Equal(t, "Circle", r.Shapes[1].Type)
	assert.Equal(t, "A green Rectangle with area 16.00", r.Shapes[2].Description)

	assert.Equal(t, SequenceResult{Length: 5, Contains3: true, Last: 5, Combined: []int{1, 2, 3, 4, 5, 6, 7}}, r.Sequence)

	assert.True(t, r.Singleton.SameInstance)
	assert.Equal(t, r.Singleton.ID1, r.Singleton.ID2)
	assert.True(t, r.Singleton.Connected)
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, r.Singleton.StoredAdults)

	again, err := DemonstrateClasses(ctx)
	require.NoError(t, err)
	assert.Equal(t, r.Singleton.StoredAdults, again.Singleton.StoredAdults)
}

func TestDatabaseNotConnected(t *testing.T) {
	db := &DatabaseConnection{ConnectionString: ":memory:"}
	assert.False(t, db.Connected())
	assert.Error(t, db.SavePerson(context.Background(), NewPerson("x", 1)))

	msg, err := db.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Connected to database", msg)
	msg, err = db.Disconnect()
	require.NoError(t, err)
	assert.Equal(t, "Disconnected from database", msg)
	assert.False(t, db.Connected())
}
