package tally

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hance08/tally/internal/model"
)

func checkCurrent(t *testing.T, s *Store) {
	t.Helper()
	id, ok := s.CurrentID()
	if s.Len() == 0 {
		require.False(t, ok, "current must be empty when there are no accounts")
		return
	}
	require.True(t, ok, "current must be set when accounts exist")
	_, found := s.Account(id)
	require.True(t, found, "current %q must exist", id)
}

func TestCreate(t *testing.T) {
	s := New()
	checkCurrent(t, s)

	id := s.Create()
	require.Equal(t, model.AccountID("account_0"), id)

	acc, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "New Account 1", acc.Name)
	assert.Zero(t, acc.TransactionCount)
	assert.Zero(t, acc.TransactionAmount)
	assert.Equal(t, 1.0, acc.TransactionMultiplier)

	second := s.Create()
	require.Equal(t, model.AccountID("account_1"), second)
	cur, _ := s.CurrentID()
	assert.Equal(t, second, cur)
	assert.Equal(t, int64(2), s.NextSequence())
}

func TestCreateDeleteKeepsCurrentValid(t *testing.T) {
	s := New()
	ops := []string{"c", "c", "c", "d0", "c", "dcur", "d1", "dcur", "c", "dcur", "dcur", "dcur", "c"}

	for _, op := range ops {
		switch op {
		case "c":
			s.Create()
		case "dcur":
			id, _ := s.CurrentID()
			s.Delete(id)
		default:
			accs := s.Accounts()
			i := int(op[1] - '0')
			if i < len(accs) {
				s.Delete(accs[i].ID)
			}
		}
		checkCurrent(t, s)
	}
}

func TestSequenceNeverReused(t *testing.T) {
	s := New()
	a := s.Create()
	b := s.Create()
	require.True(t, s.Delete(b))
	require.True(t, s.Delete(a))

	c := s.Create()
	assert.Equal(t, model.AccountID("account_2"), c)

	acc, _ := s.Account(c)
	assert.Equal(t, "New Account 3", acc.Name)
}

func TestDeleteCurrentReassigns(t *testing.T) {
	s := New()
	first := s.Create()
	second := s.Create()

	require.True(t, s.Delete(second))
	cur, ok := s.CurrentID()
	require.True(t, ok)
	assert.Equal(t, first, cur)

	require.True(t, s.Delete(first))
	_, ok = s.CurrentID()
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestDeleteNonCurrentKeepsSelection(t *testing.T) {
	s := New()
	first := s.Create()
	second := s.Create()
	third := s.Create()
	require.True(t, s.Select(second))

	require.True(t, s.Delete(first))
	cur, _ := s.CurrentID()
	assert.Equal(t, second, cur)

	ids := []model.AccountID{}
	for _, acc := range s.Accounts() {
		ids = append(ids, acc.ID)
	}
	assert.Equal(t, []model.AccountID{second, third}, ids)
}

func TestSelect(t *testing.T) {
	s := New()
	first := s.Create()
	s.Create()

	assert.True(t, s.Select(first))
	cur, _ := s.CurrentID()
	assert.Equal(t, first, cur)

	assert.False(t, s.Select("account_99"))
	cur, _ = s.CurrentID()
	assert.Equal(t, first, cur)
}

func TestCounter(t *testing.T) {
	s := New()
	id := s.Create()

	require.True(t, s.Decrement(id))
	acc, _ := s.Account(id)
	assert.Zero(t, acc.TransactionCount)

	require.True(t, s.Increment(id))
	acc, _ = s.Account(id)
	assert.Equal(t, int64(1), acc.TransactionCount)

	s.Increment(id)
	s.Increment(id)
	s.Decrement(id)
	acc, _ = s.Account(id)
	assert.Equal(t, int64(2), acc.TransactionCount)

	require.True(t, s.ResetCount(id))
	acc, _ = s.Account(id)
	assert.Zero(t, acc.TransactionCount)
}

func TestSetAmount(t *testing.T) {
	s := New()
	id := s.Create()

	res, ok := s.SetAmount(id, "12.5")
	require.True(t, ok)
	assert.True(t, res.Valid())
	acc, _ := s.Account(id)
	assert.Equal(t, 12.5, acc.TransactionAmount)

	for _, raw := range []string{"-5", "abc"} {
		s.SetAmount(id, "3")
		res, ok := s.SetAmount(id, raw)
		require.True(t, ok)
		assert.NotEmpty(t, res.Warning, raw)
		acc, _ := s.Account(id)
		assert.Zero(t, acc.TransactionAmount, raw)
	}
}

func TestSetMultiplier(t *testing.T) {
	s := New()
	id := s.Create()

	res, ok := s.SetMultiplier(id, "2")
	require.True(t, ok)
	assert.True(t, res.Valid())

	for _, raw := range []string{"0", "-2", "x"} {
		s.SetMultiplier(id, "4")
		res, ok := s.SetMultiplier(id, raw)
		require.True(t, ok)
		assert.NotEmpty(t, res.Warning, raw)
		acc, _ := s.Account(id)
		assert.Equal(t, 1.0, acc.TransactionMultiplier, raw)
	}
}

func TestRename(t *testing.T) {
	s := New()
	s.Create()
	id := s.Create()

	require.True(t, s.Rename(id, "  Futures  "))
	acc, _ := s.Account(id)
	assert.Equal(t, "Futures", acc.Name)

	require.True(t, s.Rename(id, "   "))
	acc, _ = s.Account(id)
	assert.Equal(t, "Account 2", acc.Name)
}

func TestDerivedTotal(t *testing.T) {
	s := New()
	id := s.Create()
	for range 3 {
		s.Increment(id)
	}
	s.SetAmount(id, "12.5")
	s.SetMultiplier(id, "2")

	total, ok := s.DerivedTotal(id)
	require.True(t, ok)
	assert.Equal(t, 75.0, total)

	_, ok = s.DerivedTotal("missing")
	assert.False(t, ok)
}

func TestDerivedTotalOverflowIsClamped(t *testing.T) {
	s := New()
	id := s.Create()
	s.Increment(id)

	res, _ := s.SetAmount(id, "1e200")
	assert.True(t, res.Valid())
	res, _ = s.SetMultiplier(id, "1e200")
	assert.True(t, res.Valid())

	total, ok := s.DerivedTotal(id)
	require.True(t, ok)
	assert.False(t, math.IsInf(total, 0))
	assert.Equal(t, math.MaxFloat64, total)
}

func TestUnknownIDIsNoop(t *testing.T) {
	s := New()

	// empty store, no current account
	cur, _ := s.CurrentID()
	assert.False(t, s.Increment(cur))
	assert.False(t, s.Decrement(cur))
	assert.False(t, s.ResetCount(cur))
	assert.False(t, s.Rename(cur, "x"))
	assert.False(t, s.Delete(cur))
	_, ok := s.SetAmount(cur, "1")
	assert.False(t, ok)
	_, ok = s.SetMultiplier(cur, "1")
	assert.False(t, ok)

	id := s.Create()
	before := s.Snapshot()
	assert.False(t, s.Increment("account_42"))
	assert.False(t, s.Delete("account_42"))
	assert.False(t, s.Rename("account_42", "x"))
	assert.Equal(t, before, s.Snapshot())
	checkCurrent(t, s)
	_, ok = s.Account(id)
	assert.True(t, ok)
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := New()
	a := s.Create()
	b := s.Create()
	s.Create()
	s.Rename(a, "Spot")
	s.SetAmount(b, "7.25")
	s.SetMultiplier(b, "1.5")
	s.Increment(b)
	s.Delete(s.Accounts()[2].ID)
	s.Select(a)

	snap := s.Snapshot()
	restored := FromSnapshot(snap)

	assert.Equal(t, s.Accounts(), restored.Accounts())
	assert.Equal(t, s.NextSequence(), restored.NextSequence())
	cur, _ := restored.CurrentID()
	assert.Equal(t, a, cur)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := New()
	id := s.Create()
	snap := s.Snapshot()

	s.Increment(id)
	s.Rename(id, "changed")

	assert.Zero(t, snap.Accounts[0].TransactionCount)
	assert.Equal(t, "New Account 1", snap.Accounts[0].Name)
}

func TestFromSnapshotRepairs(t *testing.T) {
	dangling := model.AccountID("account_9")
	snap := model.Snapshot{
		Accounts: []model.Account{
			{ID: "account_3", Name: " A ", TransactionCount: -4, TransactionAmount: -1, TransactionMultiplier: 0},
			{ID: "account_3", Name: "dup"},
			{ID: "", Name: "no id"},
			{ID: "legacy", Name: "", TransactionMultiplier: 2},
		},
		CurrentAccountID: &dangling,
		NextSequence:     1,
	}

	s := FromSnapshot(snap)
	require.Equal(t, 2, s.Len())

	accs := s.Accounts()
	assert.Equal(t, model.Account{ID: "account_3", Name: "A", TransactionMultiplier: 1}, accs[0])
	assert.Equal(t, "Account (unnamed)", accs[1].Name)
	assert.Equal(t, 2.0, accs[1].TransactionMultiplier)

	cur, ok := s.CurrentID()
	require.True(t, ok)
	assert.Equal(t, model.AccountID("account_3"), cur)

	assert.Equal(t, int64(4), s.NextSequence())
	assert.Equal(t, model.AccountID("account_4"), s.Create())
}

func TestFromEmptySnapshot(t *testing.T) {
	s := FromSnapshot(model.Snapshot{})
	assert.Zero(t, s.Len())
	assert.Zero(t, s.NextSequence())
	checkCurrent(t, s)
}
