package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
)

type wireSnapshot struct {
	Accounts         json.RawMessage `json:"accounts"`
	CurrentAccountID json.RawMessage `json:"currentAccountId"`
	NextSequence     *float64        `json:"nextSequence"`
	NextAccountID    *float64        `json:"nextAccountId"` // written by older versions
}

type wireAccount struct {
	ID                    model.AccountID `json:"id"`
	Name                  string          `json:"name"`
	TransactionCount      *float64        `json:"transactionCount"`
	TransactionAmount     *float64        `json:"transactionAmount"`
	TransactionMultiplier *float64        `json:"transactionMultiplier"`
}

// EncodeSnapshot serialises snap as JSON.
func EncodeSnapshot(snap model.Snapshot) ([]byte, error) {
	if snap.Accounts == nil {
		snap.Accounts = []model.Account{}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot leniently. Unknown fields are ignored and
// unusable parts fall back to defaults; only a body that is not a JSON object
// fails, with ErrMalformedSnapshot. Invariant repair is left to the store.
func DecodeSnapshot(data []byte) (model.Snapshot, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return model.Snapshot{}, fmt.Errorf("%w: null body", ErrMalformedSnapshot)
	}

	var wire wireSnapshot
	if err := json.Unmarshal(data, &wire); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	snap := model.Snapshot{Accounts: decodeAccounts(wire.Accounts)}

	var current model.AccountID
	if err := json.Unmarshal(wire.CurrentAccountID, &current); err == nil && current != "" {
		snap.CurrentAccountID = &current
	} else if len(snap.Accounts) > 0 {
		first := snap.Accounts[0].ID
		snap.CurrentAccountID = &first
	}

	switch {
	case wire.NextSequence != nil:
		snap.NextSequence = toCount(*wire.NextSequence)
	case wire.NextAccountID != nil:
		snap.NextSequence = toCount(*wire.NextAccountID)
	default:
		snap.NextSequence = int64(len(snap.Accounts))
	}

	return snap, nil
}

func decodeAccounts(raw json.RawMessage) []model.Account {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []model.Account{}
	}

	accounts := make([]model.Account, 0, len(items))
	for _, item := range items {
		var wa wireAccount
		if err := json.Unmarshal(item, &wa); err != nil {
			continue
		}

		acc := model.Account{
			ID:                    wa.ID,
			Name:                  wa.Name,
			TransactionAmount:     constants.DefaultAmount,
			TransactionMultiplier: constants.DefaultMultiplier,
		}
		if wa.TransactionCount != nil {
			acc.TransactionCount = toCount(*wa.TransactionCount)
		}
		if wa.TransactionAmount != nil {
			acc.TransactionAmount = *wa.TransactionAmount
		}
		if wa.TransactionMultiplier != nil {
			acc.TransactionMultiplier = *wa.TransactionMultiplier
		}
		accounts = append(accounts, acc)
	}
	return accounts
}

func toCount(v float64) int64 {
	if v <= 0 {
		return 0
	}
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Trunc(v))
}
