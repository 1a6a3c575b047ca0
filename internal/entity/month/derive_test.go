package month

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	rec := NewRecord()
	rec.Income = []IncomeEntry{{Name: "Salary", Amount: 3000}}
	rec.Expenses = []ExpenseEntry{
		{Category: "Rent", Amount: 1200},
		{Category: "Food", Amount: 300},
	}
	rec.Savings = 200
	return rec
}

func Test_OnSampleRecord_ShouldDeriveDashboardFigures(t *testing.T) {
	rec := sampleRecord()

	assert.Equal(t, 3000.0, rec.TotalIncome())
	assert.Equal(t, 1500.0, rec.TotalExpenses())
	assert.Equal(t, 1300.0, rec.Balance())
}

func Test_OnCategoryTotals_ShouldGroupInFirstSeenOrder(t *testing.T) {
	rec := NewRecord()
	rec.Expenses = []ExpenseEntry{
		{Category: "Food", Amount: 100},
		{Category: "Rent", Amount: 1200},
		{Category: "Food", Amount: 200},
	}

	totals := rec.CategoryTotals()
	require.Len(t, totals, 2)
	assert.Equal(t, CategoryTotal{Category: "Food", Amount: 300}, totals[0])
	assert.Equal(t, CategoryTotal{Category: "Rent", Amount: 1200}, totals[1])
}

func Test_OnCategoryTotals_ShouldKeepOrphanedCategories(t *testing.T) {
	rec := NewRecord()
	rec.Categories = []string{"Rent"}
	rec.Expenses = []ExpenseEntry{
		{Category: "Gone", Amount: 50},
		{Category: "Rent", Amount: 100},
	}

	totals := rec.CategoryTotals()
	require.Len(t, totals, 2)
	assert.Equal(t, "Gone", totals[0].Category)
}

func Test_OnTopCategory_ShouldPickMaxTotal(t *testing.T) {
	rec := sampleRecord()

	top, ok := rec.TopCategory()
	require.True(t, ok)
	assert.Equal(t, CategoryTotal{Category: "Rent", Amount: 1200}, top)
}

func Test_OnTopCategoryTie_ShouldPickFirstSeen(t *testing.T) {
	rec := NewRecord()
	rec.Expenses = []ExpenseEntry{
		{Category: "Food", Amount: 500},
		{Category: "Rent", Amount: 500},
	}

	top, ok := rec.TopCategory()
	require.True(t, ok)
	assert.Equal(t, "Food", top.Category)
}

func Test_OnTopCategoryWithoutExpenses_ShouldReportNone(t *testing.T) {
	_, ok := NewRecord().TopCategory()
	assert.False(t, ok)
}

func Test_OnClone_ShouldNotAliasSource(t *testing.T) {
	rec := sampleRecord()
	rec.Locked = true

	clone := rec.Clone()
	clone.Income[0].Amount = 1
	clone.Categories[0] = "Other"

	assert.Equal(t, 3000.0, rec.Income[0].Amount)
	assert.Equal(t, "Rent", rec.Categories[0])
	assert.True(t, clone.Locked)
}

func Test_OnNext_ShouldRollOverYear(t *testing.T) {
	assert.Equal(t, ID("2024-06"), ID("2024-05").Next())
	assert.Equal(t, ID("2025-01"), ID("2024-12").Next())
}

func Test_OnParse_ShouldRejectGarbage(t *testing.T) {
	_, err := Parse("2024-13")
	assert.Error(t, err)

	_, err = Parse("June 2024")
	assert.Error(t, err)

	id, err := Parse("2024-06")
	assert.NoError(t, err)
	assert.Equal(t, ID("2024-06"), id)
}

func Test_OnFromTime_ShouldFormatMonthKey(t *testing.T) {
	ts := time.Date(2024, time.June, 17, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, ID("2024-06"), FromTime(ts))
}

func Test_OnBefore_ShouldOrderChronologically(t *testing.T) {
	assert.True(t, ID("2024-05").Before("2024-06"))
	assert.True(t, ID("2023-12").Before("2024-01"))
	assert.False(t, ID("2024-06").Before("2024-06"))
}
