// Package tally holds the in-memory account store: accounts in display order,
// the current selection and the id sequence.
//
// A Store is not safe for concurrent use. Callers mutate it from a single
// goroutine and hand deep-copied snapshots to anything running elsewhere.
package tally

import (
	"math"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/validation"
)

type Store struct {
	accounts []model.Account
	current  model.AccountID // "" when accounts is empty
	nextSeq  int64
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Create appends a new account, makes it current and returns its id.
func (s *Store) Create() model.AccountID {
	seq := s.nextSeq
	id := NewAccountID(seq)

	s.accounts = append(s.accounts, model.Account{
		ID:                    id,
		Name:                  DefaultName(seq),
		TransactionAmount:     constants.DefaultAmount,
		TransactionMultiplier: constants.DefaultMultiplier,
	})
	s.current = id
	s.nextSeq++

	return id
}

// Select makes id current. Unknown ids are ignored.
func (s *Store) Select(id model.AccountID) bool {
	if s.indexOf(id) < 0 {
		return false
	}
	s.current = id
	return true
}

// Rename sets the trimmed name, or the placeholder when raw is blank.
func (s *Store) Rename(id model.AccountID, raw string) bool {
	return s.update(id, func(acc *model.Account) {
		name, ok := validation.NormalizeName(raw)
		if !ok {
			name = PlaceholderName(acc.ID)
		}
		acc.Name = name
	})
}

// SetAmount parses raw and stores the amount, or 0 when raw is invalid.
// The bool is false when id is unknown, in which case nothing is stored.
func (s *Store) SetAmount(id model.AccountID, raw string) (validation.Result, bool) {
	res := validation.ParseAmount(raw)
	ok := s.update(id, func(acc *model.Account) {
		acc.TransactionAmount = res.Value
	})
	return res, ok
}

// SetMultiplier parses raw and stores the multiplier, or 1 when raw is invalid.
func (s *Store) SetMultiplier(id model.AccountID, raw string) (validation.Result, bool) {
	res := validation.ParseMultiplier(raw)
	ok := s.update(id, func(acc *model.Account) {
		acc.TransactionMultiplier = res.Value
	})
	return res, ok
}

func (s *Store) Increment(id model.AccountID) bool {
	return s.update(id, func(acc *model.Account) {
		acc.TransactionCount++
	})
}

// Decrement lowers the count by one. At zero it leaves the count alone.
func (s *Store) Decrement(id model.AccountID) bool {
	return s.update(id, func(acc *model.Account) {
		if acc.TransactionCount > 0 {
			acc.TransactionCount--
		}
	})
}

func (s *Store) ResetCount(id model.AccountID) bool {
	return s.update(id, func(acc *model.Account) {
		acc.TransactionCount = 0
	})
}

// Delete removes id. If it was current, the first remaining account becomes
// current, or nothing when the store is now empty.
func (s *Store) Delete(id model.AccountID) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	s.accounts = append(s.accounts[:idx], s.accounts[idx+1:]...)

	if s.current == id {
		s.current = ""
		if len(s.accounts) > 0 {
			s.current = s.accounts[0].ID
		}
	}
	return true
}

// DerivedTotal returns count × amount × multiplier for id.
func (s *Store) DerivedTotal(id model.AccountID) (float64, bool) {
	acc, ok := s.Account(id)
	if !ok {
		return 0, false
	}
	return acc.Total(), true
}

// Account returns a copy of the account with the given id.
func (s *Store) Account(id model.AccountID) (model.Account, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Account{}, false
	}
	return s.accounts[idx], true
}

// Accounts returns a copy of all accounts in display order.
func (s *Store) Accounts() []model.Account {
	out := make([]model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// CurrentID returns the current account id, or false when the store is empty.
func (s *Store) CurrentID() (model.AccountID, bool) {
	return s.current, s.current != ""
}

func (s *Store) Current() (model.Account, bool) {
	return s.Account(s.current)
}

func (s *Store) Len() int {
	return len(s.accounts)
}

// NextSequence is the sequence the next created account will use.
func (s *Store) NextSequence() int64 {
	return s.nextSeq
}

// Snapshot returns a deep copy of the store state.
func (s *Store) Snapshot() model.Snapshot {
	snap := model.Snapshot{
		Accounts:     s.Accounts(),
		NextSequence: s.nextSeq,
	}
	if s.current != "" {
		id := s.current
		snap.CurrentAccountID = &id
	}
	return snap
}

// FromSnapshot rebuilds a store from persisted state, repairing anything that
// would break the store invariants: duplicate or empty ids, out-of-range
// numbers, a dangling current id and a sequence that could reuse an id.
func FromSnapshot(snap model.Snapshot) *Store {
	s := New()
	seen := make(map[model.AccountID]struct{}, len(snap.Accounts))

	for _, acc := range snap.Accounts {
		if acc.ID == "" {
			continue
		}
		if _, dup := seen[acc.ID]; dup {
			continue
		}
		seen[acc.ID] = struct{}{}

		s.accounts = append(s.accounts, sanitize(acc))

		if seq, ok := sequenceOf(acc.ID); ok && seq >= s.nextSeq {
			s.nextSeq = seq + 1
		}
	}

	s.nextSeq = max(s.nextSeq, snap.NextSequence, int64(len(s.accounts)))

	if snap.CurrentAccountID != nil && s.indexOf(*snap.CurrentAccountID) >= 0 {
		s.current = *snap.CurrentAccountID
	} else if len(s.accounts) > 0 {
		s.current = s.accounts[0].ID
	}

	return s
}

func sanitize(acc model.Account) model.Account {
	if name, ok := validation.NormalizeName(acc.Name); ok {
		acc.Name = name
	} else {
		acc.Name = PlaceholderName(acc.ID)
	}

	if acc.TransactionCount < 0 {
		acc.TransactionCount = 0
	}
	if !finite(acc.TransactionAmount) || acc.TransactionAmount < 0 {
		acc.TransactionAmount = constants.DefaultAmount
	}
	if !finite(acc.TransactionMultiplier) || acc.TransactionMultiplier <= 0 {
		acc.TransactionMultiplier = constants.DefaultMultiplier
	}
	return acc
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s *Store) update(id model.AccountID, fn func(*model.Account)) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	fn(&s.accounts[idx])
	return true
}

func (s *Store) indexOf(id model.AccountID) int {
	if id == "" {
		return -1
	}
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return i
		}
	}
	return -1
}
