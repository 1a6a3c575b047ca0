package ledger

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"max.ks1230/budget-bot/internal/entity/month"
	"max.ks1230/budget-bot/internal/entity/user"
	"max.ks1230/budget-bot/internal/model/customerr"
	"max.ks1230/budget-bot/internal/utils"
)

type snapshotStorage interface {
	GetUserByID(ctx context.Context, id int64) (user.Record, error)
	SaveUserByID(ctx context.Context, id int64, rec user.Record) error
	GetSnapshot(ctx context.Context, userID int64) ([]byte, error)
	SaveSnapshot(ctx context.Context, userID int64, payload []byte) error
}

// Store is the single source of truth for month records. Every mutation
// loads the user's snapshot, applies the change and writes the whole
// snapshot back. Mutations of one user are serialized with a per-user lock
// since operations are not designed to interleave.
type Store struct {
	storage snapshotStorage

	mu        sync.Mutex
	userLocks map[int64]*sync.Mutex
}

func NewStore(storage snapshotStorage) *Store {
	return &Store{
		storage:   storage,
		userLocks: make(map[int64]*sync.Mutex),
	}
}

func (s *Store) lockUser(userID int64) func() {
	s.mu.Lock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (s *Store) load(ctx context.Context, userID int64) (Snapshot, error) {
	raw, err := s.storage.GetSnapshot(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}
	snap := DecodeSnapshot(raw)
	// months that slipped into the past are locked on every load
	lockBefore(snap, month.Current())
	return snap, nil
}

func (s *Store) save(ctx context.Context, userID int64, snap Snapshot) error {
	raw, err := EncodeSnapshot(snap)
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	return errors.Wrap(s.storage.SaveSnapshot(ctx, userID, raw), "save snapshot")
}

// update runs fn over the user's snapshot and writes the snapshot back only
// when fn succeeds, so a rejected mutation leaves the stored data untouched.
func (s *Store) update(ctx context.Context, userID int64, fn func(snap Snapshot) error) error {
	defer s.lockUser(userID)()

	snap, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if err = fn(snap); err != nil {
		return err
	}
	return s.save(ctx, userID, snap)
}

// EnsureMonth returns the record for id, creating the default one (default
// categories, zero savings, empty ledgers, unlocked) on first access.
// Idempotent. A month that is already in the past comes back locked.
func (s *Store) EnsureMonth(ctx context.Context, userID int64, id month.ID) (month.Record, error) {
	var rec month.Record
	err := s.update(ctx, userID, func(snap Snapshot) error {
		snap.ensure(id)
		lockBefore(snap, month.Current())
		rec = snap[id]
		return nil
	})
	return rec, err
}

// SetCurrent makes id the active month for the user, creating it when
// needed. Every load re-asserts locks on past months.
func (s *Store) SetCurrent(ctx context.Context, userID int64, id month.ID) (month.Record, error) {
	var rec month.Record
	err := s.update(ctx, userID, func(snap Snapshot) error {
		rec = snap.ensure(id)
		lockBefore(snap, month.FromTime(time.Now()))
		rec = snap[id]
		return nil
	})
	if err != nil {
		return month.Record{}, err
	}

	userRec, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return month.Record{}, errors.Wrap(err, "set current")
	}
	userRec.SetCurrentMonth(id)
	if err = s.storage.SaveUserByID(ctx, userID, userRec); err != nil {
		return month.Record{}, errors.Wrap(err, "set current")
	}
	return rec, nil
}

// CurrentMonth reports the user's active month, if any.
func (s *Store) CurrentMonth(ctx context.Context, userID int64) (month.ID, bool, error) {
	userRec, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return "", false, errors.Wrap(err, "current month")
	}
	id, ok := userRec.CurrentMonth()
	return id, ok, nil
}

// MonthIDs enumerates every month the user has touched, in chronological
// order.
func (s *Store) MonthIDs(ctx context.Context, userID int64) ([]month.ID, error) {
	defer s.lockUser(userID)()

	snap, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return snap.MonthIDs(), nil
}

// LockPastMonths locks every month strictly before the month of ref. It
// never unlocks anything, so running it repeatedly is harmless.
func (s *Store) LockPastMonths(ctx context.Context, userID int64, ref time.Time) error {
	return s.update(ctx, userID, func(snap Snapshot) error {
		lockBefore(snap, month.FromTime(ref))
		return nil
	})
}

func lockBefore(snap Snapshot, boundary month.ID) {
	for id, rec := range snap {
		if id.Before(boundary) {
			rec.Locked = true
			snap[id] = rec
		}
	}
}

// LockCurrent locks the user's active month. A user without an active month
// is a no-op, not an error.
func (s *Store) LockCurrent(ctx context.Context, userID int64) error {
	id, ok, err := s.CurrentMonth(ctx, userID)
	if err != nil || !ok {
		return err
	}
	return s.update(ctx, userID, func(snap Snapshot) error {
		rec := snap.ensure(id)
		rec.Locked = true
		snap[id] = rec
		return nil
	})
}

// CarryForward seeds the chronological successor of from with a deep copy
// of from's record, unlocked, overwriting whatever was there. It is the one
// operation allowed to write past a lock, and it does not check the
// source's lock state.
func (s *Store) CarryForward(ctx context.Context, userID int64, from month.ID) (month.ID, error) {
	to := from.Next()
	err := s.update(ctx, userID, func(snap Snapshot) error {
		src := snap.ensure(from)
		next := src.Clone()
		next.Locked = false
		snap[to] = next
		return nil
	})
	return to, err
}

func (s *Store) AddIncome(ctx context.Context, userID int64, id month.ID, name string, amount float64) error {
	name = strings.TrimSpace(name)
	return s.update(ctx, userID, func(snap Snapshot) error {
		rec, err := mutable(snap, id)
		if err != nil {
			return err
		}
		if name == "" {
			return &customerr.InvalidInputError{Err: "income source name is empty"}
		}
		if !validAmount(amount) {
			return &customerr.InvalidInputError{Err: "income amount must be a positive number"}
		}
		rec.Income = append(rec.Income, month.IncomeEntry{Name: name, Amount: amount})
		snap[id] = rec
		return nil
	})
}

func (s *Store) EditIncome(ctx context.Context, userID int64, id month.ID, index int, name string, amount float64) error {
	name = strings.TrimSpace(name)
	return s.update(ctx, userID, func(snap Snapshot) error {
		rec, err := mutable(snap, id)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(rec.Income) {
			return &customerr.IndexError{Err: fmt.Sprintf("no income entry at %d", index)}
		}
		if name == "" {
			return &customerr.InvalidInputError{Err: "income source name is empty"}
		}
		if !validAmount(amount) {
			return &customerr.InvalidInputError{Err: "income amount must be a positive number"}
		}
		rec.Income[index] = month.IncomeEntry{Name: name, Amount: amount}
		snap[id] = rec
		return nil
	})
}

func (s *Store) DeleteIncome(ctx context.Context, userID int64, id month.ID, index int) error {
	return s.update(ctx, userID, func(snap Snapshot) error {
		rec, err := mutable(snap, id)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(rec.Income) {
			return &customerr.IndexError{Err: fmt.Sprintf("no income entry at %d", index)}
		}
		rec.Income = append(rec.Income[:index], rec.Income[index+1:]...)
		snap[id] = rec
		return nil
	})
}

// AddCategory appends a category to the month's list. An empty or already
// listed name is silently ignored, mirroring the form behavior it replaces.
func (s *Store) AddCategory(ctx context.Context, userID int64, id month.ID, name string) error {
	name = strings.TrimSpace(name)
	return s.update(ctx, userID, func(snap Snapshot) error {
		rec, err := mutable(snap, id)
		if err != nil {
			return err
		}
		if name == "" || utils.Contains(rec.Categories, name) {
			return nil
		}
		rec.Categories = append(rec.Categories, name)
		snap[id] = rec
		return nil
	})
}

// AddExpense does not require category to be on the month's category list:
// the chat surface normally constrains it, but the store must not assume
// that.
func (s *Store) AddExpense(ctx context.Context, userID int64, id month.ID, category, name string, amount float64) error {
	category = strings.TrimSpace(category)
	name = strings.TrimSpace(name)
	return s.update(ctx, userID, func(snap Snapshot) error {
		rec, err := mutable(snap, id)
		if err != nil {
			return err
		}
		if category == "" {
			return &customerr.InvalidInputError{Err: "expense category is empty"}
		}
		if !validAmount(amount) {
			return &customerr.InvalidInputError{Err: "expense amount must be a positive number"}
		}
		rec.Expenses = append(rec.Expenses, month.ExpenseEntry{Category: category, Name: name, Amount: amount})
		snap[id] = rec
		return nil
	})
}

func (s *Store) EditExpense(ctx context.Context, userID int64, id month.ID, index int, name string, amount float64) error {
	name = strings.TrimSpace(name)
	return s.update(ctx, userID, func(snap Snapshot) error {
		rec, err := mutable(snap, id)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(rec.Expenses) {
			return &customerr.IndexError{Err: fmt.Sprintf("no expense entry at %d", index)}
		}
		if !validAmount(amount) {
			return &customerr.InvalidInputError{Err: "expense amount must be a positive number"}
		}
		rec.Expenses[index].Name = name
		rec.Expenses[index].Amount = amount
		snap[id] = rec
		return nil
	})
}

func (s *Store) DeleteExpense(ctx context.Context, userID int64, id month.ID, index int) error {
	return s.update(ctx, userID, func(snap Snapshot) error {
		rec, err := mutable(snap, id)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(rec.Expenses) {
			return &customerr.IndexError{Err: fmt.Sprintf("no expense entry at %d", index)}
		}
		rec.Expenses = append(rec.Expenses[:index], rec.Expenses[index+1:]...)
		snap[id] = rec
		return nil
	})
}

// SetSavings keeps the lenient contract of the form it replaces: a
// non-finite value becomes zero and negative values are stored as-is.
func (s *Store) SetSavings(ctx context.Context, userID int64, id month.ID, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return s.update(ctx, userID, func(snap Snapshot) error {
		rec, err := mutable(snap, id)
		if err != nil {
			return err
		}
		rec.Savings = value
		snap[id] = rec
		return nil
	})
}

// mutable ensures the month exists and rejects the mutation when it is
// locked. A past month counts as locked from the moment it exists, even
// when this very call created it.
func mutable(snap Snapshot, id month.ID) (month.Record, error) {
	snap.ensure(id)
	lockBefore(snap, month.Current())
	rec := snap[id]
	if rec.Locked {
		return month.Record{}, &customerr.LockedMonthError{Month: id.String()}
	}
	return rec, nil
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0)
}
