package model

// Snapshot is the persisted form of the account store.
type Snapshot struct {
	Accounts         []Account  `json:"accounts"`
	CurrentAccountID *AccountID `json:"currentAccountId"`
	NextSequence     int64      `json:"nextSequence"`
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{NextSequence: s.NextSequence}

	if s.Accounts != nil {
		out.Accounts = make([]Account, len(s.Accounts))
		copy(out.Accounts, s.Accounts)
	}

	if s.CurrentAccountID != nil {
		id := *s.CurrentAccountID
		out.CurrentAccountID = &id
	}

	return out
}
