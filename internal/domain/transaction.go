package domain

import (
	"fmt"
	"math"
)

func (t Transaction) IsNegative() bool {
	return t.Amount < 0
}

func (t Transaction) IsPositive() bool {
	return !t.IsNegative()
}

func (t Transaction) Sign() string {
	if t.IsNegative() {
		return "-"
	}
	return "+"
}

func (t Transaction) DisplayAmount() string {
	return fmt.Sprintf("%s$%.2f", t.Sign(), math.Abs(t.Amount))
}

func Total(txns []Transaction) float64 {
	var sum float64
	for _, t := range txns {
		sum += t.Amount
	}
	return sum
}

func Income(txns []Transaction) float64 {
	var sum float64
	for _, t := range txns {
		if t.IsPositive() {
			sum += t.Amount
		}
	}
	return sum
}

func Expense(txns []Transaction) float64 {
	var sum float64
	for _, t := range txns {
		if t.IsNegative() {
			sum += t.Amount
		}
	}
	return sum
}
