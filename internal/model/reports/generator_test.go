package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/budget-bot/internal/entity/month"
	"max.ks1230/budget-bot/internal/model/ledger"
	"max.ks1230/budget-bot/internal/model/storage"
)

func seedSnapshot(t *testing.T, mem *storage.InMemStorage, userID int64, snap ledger.Snapshot) {
	t.Helper()
	raw, err := ledger.EncodeSnapshot(snap)
	require.NoError(t, err)
	require.NoError(t, mem.SaveSnapshot(context.Background(), userID, raw))
}

func Test_OnGenerateReport_ShouldOrderCategoriesByAmount(t *testing.T) {
	mem := storage.NewInMemStorage()
	rec := month.NewRecord()
	rec.Income = append(rec.Income, month.IncomeEntry{Name: "Salary", Amount: 3000})
	rec.Expenses = append(rec.Expenses,
		month.ExpenseEntry{Category: "Food", Name: "groceries", Amount: 300},
		month.ExpenseEntry{Category: "Rent", Name: "", Amount: 1200},
		month.ExpenseEntry{Category: "Food", Name: "cafe", Amount: 100},
		month.ExpenseEntry{Category: "Transport", Name: "", Amount: 100},
	)
	rec.Savings = 200
	seedSnapshot(t, mem, 123, ledger.Snapshot{"2030-04": rec})

	report, err := NewGenerator(mem).GenerateReport(context.Background(), 123, "2030-04")

	require.NoError(t, err)
	require.True(t, report.GetStatus().GetSuccess())
	assert.Equal(t, int64(123), report.GetUserID())
	assert.Equal(t, "2030-04", report.GetMonth())
	assert.Equal(t, 3000.0, report.GetTotalIncome())
	assert.Equal(t, 1700.0, report.GetTotalExpenses())
	assert.Equal(t, 200.0, report.GetSavings())
	assert.Equal(t, 1100.0, report.GetBalance())

	records := report.GetRecords()
	require.Len(t, records, 3)
	assert.Equal(t, "Rent", records[0].GetCategory())
	assert.Equal(t, 1200.0, records[0].GetAmount())
	assert.InDelta(t, 1200.0/1700.0, records[0].GetShare(), 1e-9)
	assert.Equal(t, "Food", records[1].GetCategory())
	assert.Equal(t, 400.0, records[1].GetAmount())
	assert.Equal(t, "Transport", records[2].GetCategory())

	insights := report.GetInsights()
	require.NotEmpty(t, insights)
	assert.Contains(t, insights, "Your spending stayed within your income. This reflects healthy awareness.")
	assert.Contains(t, insights, `Your highest spending category is "Rent". Reviewing it gently next month could help.`)
}

func Test_OnGenerateReportForUnknownMonth_ShouldReportEmptyMonth(t *testing.T) {
	mem := storage.NewInMemStorage()

	report, err := NewGenerator(mem).GenerateReport(context.Background(), 123, "2030-04")

	require.NoError(t, err)
	require.True(t, report.GetStatus().GetSuccess())
	assert.Empty(t, report.GetRecords())
	assert.Equal(t, 0.0, report.GetTotalIncome())
	assert.Equal(t, 0.0, report.GetTotalExpenses())
}

func Test_OnGenerateReportForBadMonth_ShouldFailStatus(t *testing.T) {
	mem := storage.NewInMemStorage()

	report, err := NewGenerator(mem).GenerateReport(context.Background(), 123, "April 2030")

	require.Error(t, err)
	require.NotNil(t, report)
	assert.False(t, report.GetStatus().GetSuccess())
	assert.NotEmpty(t, report.GetStatus().GetError())
	assert.Equal(t, "April 2030", report.GetMonth())
}
