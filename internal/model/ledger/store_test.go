package ledger

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/budget-bot/internal/entity/month"
	"max.ks1230/budget-bot/internal/model/customerr"
	"max.ks1230/budget-bot/internal/model/storage"
)

const testUser = int64(123)

func newTestStore() (*Store, *storage.InMemStorage) {
	mem := storage.NewInMemStorage()
	return NewStore(mem), mem
}

func Test_OnEnsureMonth_ShouldCreateDefaultRecord(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	rec, err := store.EnsureMonth(ctx, testUser, "2030-04")

	require.NoError(t, err)
	assert.Equal(t, month.DefaultCategories, rec.Categories)
	assert.Empty(t, rec.Income)
	assert.Empty(t, rec.Expenses)
	assert.Equal(t, 0.0, rec.Savings)
	assert.False(t, rec.Locked)
}

func Test_OnEnsureMonth_ShouldBeIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	_, err := store.EnsureMonth(ctx, testUser, "2030-04")
	require.NoError(t, err)
	require.NoError(t, store.AddIncome(ctx, testUser, "2030-04", "Salary", 3000))

	rec, err := store.EnsureMonth(ctx, testUser, "2030-04")
	require.NoError(t, err)
	require.Len(t, rec.Income, 1)
	assert.Equal(t, "Salary", rec.Income[0].Name)
}

func Test_OnLockPastMonths_ShouldLockStrictlyEarlierOnly(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	for _, id := range []month.ID{"2099-04", "2099-05", "2099-06", "2099-07"} {
		_, err := store.EnsureMonth(ctx, testUser, id)
		require.NoError(t, err)
	}

	ref := time.Date(2099, time.June, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.LockPastMonths(ctx, testUser, ref))
	// idempotent
	require.NoError(t, store.LockPastMonths(ctx, testUser, ref))

	locked := map[month.ID]bool{"2099-04": true, "2099-05": true, "2099-06": false, "2099-07": false}
	for id, want := range locked {
		rec, err := store.EnsureMonth(ctx, testUser, id)
		require.NoError(t, err)
		assert.Equal(t, want, rec.Locked, id)
	}
}

func Test_OnSetCurrentPastMonth_ShouldReassertLock(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	rec, err := store.SetCurrent(ctx, testUser, "2000-01")

	require.NoError(t, err)
	assert.True(t, rec.Locked)

	id, ok, err := store.CurrentMonth(ctx, testUser)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, month.ID("2000-01"), id)
}

func Test_OnMutatingLockedMonth_ShouldRejectAndKeepSnapshot(t *testing.T) {
	ctx := context.Background()
	store, mem := newTestStore()

	require.NoError(t, store.AddIncome(ctx, testUser, "2030-04", "Salary", 3000))
	require.NoError(t, store.AddExpense(ctx, testUser, "2030-04", "Rent", "", 1200))
	require.NoError(t, store.LockPastMonths(ctx, testUser, time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC)))

	before, err := mem.GetSnapshot(ctx, testUser)
	require.NoError(t, err)

	mutations := map[string]error{
		"addIncome":     store.AddIncome(ctx, testUser, "2030-04", "Bonus", 100),
		"editIncome":    store.EditIncome(ctx, testUser, "2030-04", 0, "Salary", 1),
		"deleteIncome":  store.DeleteIncome(ctx, testUser, "2030-04", 0),
		"addCategory":   store.AddCategory(ctx, testUser, "2030-04", "Pets"),
		"addExpense":    store.AddExpense(ctx, testUser, "2030-04", "Food", "", 10),
		"editExpense":   store.EditExpense(ctx, testUser, "2030-04", 0, "", 1),
		"deleteExpense": store.DeleteExpense(ctx, testUser, "2030-04", 0),
		"setSavings":    store.SetSavings(ctx, testUser, "2030-04", 100),
	}
	for name, mutErr := range mutations {
		var locked *customerr.LockedMonthError
		assert.ErrorAs(t, mutErr, &locked, name)
	}

	after, err := mem.GetSnapshot(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func Test_OnMutatingStalePastMonth_ShouldLockItOnLoad(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	// the month is long gone and was never locked explicitly
	var locked *customerr.LockedMonthError
	assert.ErrorAs(t, store.AddIncome(ctx, testUser, "2000-01", "Salary", 3000), &locked)

	rec, err := store.EnsureMonth(ctx, testUser, "2000-01")
	require.NoError(t, err)
	assert.True(t, rec.Locked)
	assert.Empty(t, rec.Income)
}

func Test_OnAddIncome_ShouldValidateInput(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	var invalid *customerr.InvalidInputError
	assert.ErrorAs(t, store.AddIncome(ctx, testUser, "2030-04", "  ", 100), &invalid)
	assert.ErrorAs(t, store.AddIncome(ctx, testUser, "2030-04", "Salary", 0), &invalid)
	assert.ErrorAs(t, store.AddIncome(ctx, testUser, "2030-04", "Salary", -5), &invalid)
	assert.ErrorAs(t, store.AddIncome(ctx, testUser, "2030-04", "Salary", math.NaN()), &invalid)
	assert.ErrorAs(t, store.AddIncome(ctx, testUser, "2030-04", "Salary", math.Inf(1)), &invalid)

	require.NoError(t, store.AddIncome(ctx, testUser, "2030-04", " Salary ", 3000))
	rec, err := store.EnsureMonth(ctx, testUser, "2030-04")
	require.NoError(t, err)
	require.Len(t, rec.Income, 1)
	assert.Equal(t, month.IncomeEntry{Name: "Salary", Amount: 3000}, rec.Income[0])
}

func Test_OnEditIncome_ShouldReplaceInPlace(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	require.NoError(t, store.AddIncome(ctx, testUser, "2030-04", "Salary", 3000))
	require.NoError(t, store.AddIncome(ctx, testUser, "2030-04", "Gig", 500))

	require.NoError(t, store.EditIncome(ctx, testUser, "2030-04", 1, "Freelance", 700))

	rec, err := store.EnsureMonth(ctx, testUser, "2030-04")
	require.NoError(t, err)
	assert.Equal(t, month.IncomeEntry{Name: "Salary", Amount: 3000}, rec.Income[0])
	assert.Equal(t, month.IncomeEntry{Name: "Freelance", Amount: 700}, rec.Income[1])

	var index *customerr.IndexError
	assert.ErrorAs(t, store.EditIncome(ctx, testUser, "2030-04", 2, "Nope", 1), &index)
	assert.ErrorAs(t, store.EditIncome(ctx, testUser, "2030-04", -1, "Nope", 1), &index)
}

func Test_OnDeleteExpense_ShouldShiftLaterEntries(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	require.NoError(t, store.AddExpense(ctx, testUser, "2030-04", "Rent", "", 1200))
	require.NoError(t, store.AddExpense(ctx, testUser, "2030-04", "Food", "groceries", 300))
	require.NoError(t, store.AddExpense(ctx, testUser, "2030-04", "Transport", "", 50))

	require.NoError(t, store.DeleteExpense(ctx, testUser, "2030-04", 1))

	rec, err := store.EnsureMonth(ctx, testUser, "2030-04")
	require.NoError(t, err)
	require.Len(t, rec.Expenses, 2)
	assert.Equal(t, "Rent", rec.Expenses[0].Category)
	assert.Equal(t, "Transport", rec.Expenses[1].Category)

	var index *customerr.IndexError
	assert.ErrorAs(t, store.DeleteExpense(ctx, testUser, "2030-04", 2), &index)

	rec, err = store.EnsureMonth(ctx, testUser, "2030-04")
	require.NoError(t, err)
	assert.Len(t, rec.Expenses, 2)
}

func Test_OnAddCategory_ShouldIgnoreDuplicatesAndEmpty(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	require.NoError(t, store.AddCategory(ctx, testUser, "2030-04", "Pets"))
	require.NoError(t, store.AddCategory(ctx, testUser, "2030-04", "Pets"))
	require.NoError(t, store.AddCategory(ctx, testUser, "2030-04", "  "))

	rec, err := store.EnsureMonth(ctx, testUser, "2030-04")
	require.NoError(t, err)
	assert.Equal(t, append(append([]string{}, month.DefaultCategories...), "Pets"), rec.Categories)
}

func Test_OnAddExpense_ShouldAllowUnlistedCategoryAndEmptyName(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	require.NoError(t, store.AddExpense(ctx, testUser, "2030-04", "Unlisted", "", 10))

	var invalid *customerr.InvalidInputError
	assert.ErrorAs(t, store.AddExpense(ctx, testUser, "2030-04", "", "thing", 10), &invalid)
	assert.ErrorAs(t, store.AddExpense(ctx, testUser, "2030-04", "Food", "", 0), &invalid)

	rec, err := store.EnsureMonth(ctx, testUser, "2030-04")
	require.NoError(t, err)
	require.Len(t, rec.Expenses, 1)
	assert.Equal(t, "Unlisted", rec.Expenses[0].Category)
}

func Test_OnSetSavings_ShouldKeepSourceLaxity(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	require.NoError(t, store.SetSavings(ctx, testUser, "2030-04", math.NaN()))
	rec, err := store.EnsureMonth(ctx, testUser, "2030-04")
	require.NoError(t, err)
	assert.Equal(t, 0.0, rec.Savings)

	// negatives pass through unclamped
	require.NoError(t, store.SetSavings(ctx, testUser, "2030-04", -50))
	rec, err = store.EnsureMonth(ctx, testUser, "2030-04")
	require.NoError(t, err)
	assert.Equal(t, -50.0, rec.Savings)
}

func Test_OnCarryForward_ShouldCloneUnlockedCopy(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	require.NoError(t, store.AddIncome(ctx, testUser, "2099-05", "A", 1))
	require.NoError(t, store.AddCategory(ctx, testUser, "2099-05", "Pets"))
	require.NoError(t, store.SetSavings(ctx, testUser, "2099-05", 200))
	require.NoError(t, store.LockPastMonths(ctx, testUser, time.Date(2099, time.June, 1, 0, 0, 0, 0, time.UTC)))

	to, err := store.CarryForward(ctx, testUser, "2099-05")
	require.NoError(t, err)
	assert.Equal(t, month.ID("2099-06"), to)

	src, err := store.EnsureMonth(ctx, testUser, "2099-05")
	require.NoError(t, err)
	assert.True(t, src.Locked)

	dst, err := store.EnsureMonth(ctx, testUser, "2099-06")
	require.NoError(t, err)
	assert.False(t, dst.Locked)
	assert.Equal(t, src.Income, dst.Income)
	assert.Equal(t, src.Expenses, dst.Expenses)
	assert.Equal(t, src.Categories, dst.Categories)
	assert.Equal(t, src.Savings, dst.Savings)
}

func Test_OnCarryForward_ShouldOverwriteExistingTarget(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	require.NoError(t, store.AddIncome(ctx, testUser, "2030-05", "Old", 10))
	require.NoError(t, store.AddIncome(ctx, testUser, "2030-04", "New", 20))

	_, err := store.CarryForward(ctx, testUser, "2030-04")
	require.NoError(t, err)

	rec, err := store.EnsureMonth(ctx, testUser, "2030-05")
	require.NoError(t, err)
	require.Len(t, rec.Income, 1)
	assert.Equal(t, "New", rec.Income[0].Name)
}

func Test_OnLockCurrent_ShouldLockActiveMonthOnly(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	// no active month: nothing happens
	require.NoError(t, store.LockCurrent(ctx, testUser))
	ids, err := store.MonthIDs(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = store.SetCurrent(ctx, testUser, "2099-01")
	require.NoError(t, err)
	require.NoError(t, store.LockCurrent(ctx, testUser))

	rec, err := store.EnsureMonth(ctx, testUser, "2099-01")
	require.NoError(t, err)
	assert.True(t, rec.Locked)
}

func Test_OnMonthIDs_ShouldSortChronologically(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	for _, id := range []month.ID{"2031-01", "2030-11", "2030-02"} {
		_, err := store.EnsureMonth(ctx, testUser, id)
		require.NoError(t, err)
	}

	ids, err := store.MonthIDs(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, []month.ID{"2030-02", "2030-11", "2031-01"}, ids)
}

func Test_OnMalformedSnapshot_ShouldFallBackToEmptyStore(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewInMemStorage()
	require.NoError(t, mem.SaveSnapshot(ctx, testUser, []byte("{not json")))
	store := NewStore(mem)

	ids, err := store.MonthIDs(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, ids)

	rec, err := store.EnsureMonth(ctx, testUser, "2030-04")
	require.NoError(t, err)
	assert.False(t, rec.Locked)
}

func Test_OnSnapshotRoundTrip_ShouldReproduceRandomStores(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		snap := randomSnapshot(rnd)

		raw, err := EncodeSnapshot(snap)
		require.NoError(t, err)
		assert.Equal(t, snap, DecodeSnapshot(raw))
	}
}

func randomSnapshot(rnd *rand.Rand) Snapshot {
	snap := make(Snapshot)
	categories := []string{"Rent", "Food", "Transport", "Utilities", "Pets"}

	for m := rnd.Intn(4); m > 0; m-- {
		id := month.ID(time.Date(2020+rnd.Intn(10), time.Month(1+rnd.Intn(12)), 1, 0, 0, 0, 0, time.UTC).Format(month.Layout))
		rec := month.NewRecord()
		for n := rnd.Intn(4); n > 0; n-- {
			rec.Income = append(rec.Income, month.IncomeEntry{
				Name:   categories[rnd.Intn(len(categories))],
				Amount: float64(rnd.Intn(10000)) / 4,
			})
		}
		for n := rnd.Intn(4); n > 0; n-- {
			rec.Expenses = append(rec.Expenses, month.ExpenseEntry{
				Category: categories[rnd.Intn(len(categories))],
				Name:     "entry",
				Amount:   float64(rnd.Intn(10000)) / 4,
			})
		}
		rec.Savings = float64(rnd.Intn(1000))
		rec.Locked = rnd.Intn(2) == 0
		snap[id] = rec
	}
	return snap
}
