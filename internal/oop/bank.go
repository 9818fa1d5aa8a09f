package oop

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("Insufficient funds")
)

type Transaction struct {
	Kind   string  `json:"kind" yaml:"kind"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// BankAccount keeps its balance unexported; it only changes through
// Deposit and Withdraw.
type BankAccount struct {
	mu      sync.Mutex
	number  string
	balance float64
	history []Transaction
}

func NewBankAccount(number string, initial float64) *BankAccount {
	return &BankAccount{number: number, balance: initial}
}

func (a *BankAccount) Deposit(amount float64) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("Deposit %w", ErrInvalidAmount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += amount
	a.history = append(a.history, Transaction{"deposit", amount})
	return a.balance, nil
}

func (a *BankAccount) Withdraw(amount float64) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("Withdrawal %w", ErrInvalidAmount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount > a.balance {
		return 0, ErrInsufficientFunds
	}
	a.balance -= amount
	a.history = append(a.history, Transaction{"withdrawal", amount})
	return a.balance, nil
}

func (a *BankAccount) Balance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Number returns the account number with all but the last four digits
// hidden.
func (a *BankAccount) Number() string {
	n := a.number
	if len(n) > 4 {
		n = n[len(n)-4:]
	}
	return "***" + n
}

// Statement lists the balance and up to five most recent transactions.
func (a *BankAccount) Statement() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Account: %s\n", a.Number())
	fmt.Fprintf(&b, "Current Balance: $%.2f\n", a.balance)
	b.WriteString("Recent Transactions:\n")
	for _, t := range a.history[max(0, len(a.history)-5):] {
		fmt.Fprintf(&b, "  - %s: $%.2f\n", t.Kind, t.Amount)
	}
	return b.String()
}
