package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayAmount(t *testing.T) {
	tests := []struct {
		name     string
		txn      Transaction
		expected string
	}{
		{name: "Expense", txn: Transaction{Amount: -5}, expected: "-$5.00"},
		{name: "Income", txn: Transaction{Amount: 100.5}, expected: "+$100.50"},
		{name: "Zero counts as income", txn: Transaction{Amount: 0}, expected: "+$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.txn.DisplayAmount())
		})
	}
}

func TestSummaries(t *testing.T) {
	txns := []Transaction{
		{Amount: 100},
		{Amount: -5},
		{Amount: -20.5},
		{Amount: 50},
	}

	assert.InDelta(t, 124.5, Total(txns), 1e-9)
	assert.InDelta(t, 150, Income(txns), 1e-9)
	assert.InDelta(t, -25.5, Expense(txns), 1e-9)
	assert.Zero(t, Total(nil))
}
