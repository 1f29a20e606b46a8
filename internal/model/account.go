package model

import "math"

// AccountID identifies an account. It is assigned by the store and never changes.
type AccountID string

type Account struct {
	ID                    AccountID `json:"id"`
	Name                  string    `json:"name"`
	TransactionCount      int64     `json:"transactionCount"`
	TransactionAmount     float64   `json:"transactionAmount"`
	TransactionMultiplier float64   `json:"transactionMultiplier"`
}

// Total returns count × amount × multiplier. It is never persisted. A
// product that overflows is clamped to math.MaxFloat64.
func (a Account) Total() float64 {
	total := float64(a.TransactionCount) * a.TransactionAmount * a.TransactionMultiplier
	switch {
	case math.IsNaN(total) || total < 0:
		return 0
	case math.IsInf(total, 1):
		return math.MaxFloat64
	}
	return total
}
