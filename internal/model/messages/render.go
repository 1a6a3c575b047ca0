package messages

import (
	"fmt"
	"strings"

	apiv1 "max.ks1230/budget-bot/api/grpc"

	"max.ks1230/budget-bot/internal/entity/month"
)

const lockedMark = " 🔒"

func renderDashboard(id month.ID, rec month.Record) string {
	title := "Budget for " + id.String()
	if rec.Locked {
		title += lockedMark
	}
	return strings.Join([]string{
		title,
		"",
		fmt.Sprintf("Income: %.2f", rec.TotalIncome()),
		fmt.Sprintf("Expenses: %.2f", rec.TotalExpenses()),
		fmt.Sprintf("Savings: %.2f", rec.Savings),
		fmt.Sprintf("Balance: %.2f", rec.Balance()),
	}, "\n")
}

// renderLedgers prints both ledgers with 1-based row numbers, the numbers
// /editincome and friends take.
func renderLedgers(id month.ID, rec month.Record) string {
	res := make([]string, 0)

	title := "Ledgers for " + id.String()
	if rec.Locked {
		title += lockedMark
	}
	res = append(res, title, "", "Income:")

	if len(rec.Income) == 0 {
		res = append(res, "  (none)")
	}
	for i, in := range rec.Income {
		res = append(res, fmt.Sprintf("  %d. %s — %.2f", i+1, in.Name, in.Amount))
	}

	res = append(res, "", "Expenses:")
	if len(rec.Expenses) == 0 {
		res = append(res, "  (none)")
	}
	for i, exp := range rec.Expenses {
		name := exp.Name
		if name == "" {
			name = "-"
		}
		res = append(res, fmt.Sprintf("  %d. [%s] %s — %.2f", i+1, exp.Category, name, exp.Amount))
	}

	res = append(res, "", "Categories: "+strings.Join(rec.Categories, ", "))
	return strings.Join(res, "\n")
}

// formatReport renders the reporter's result: the dashboard block, the
// spending breakdown with shares (the textual pie chart), and the insight
// bullets.
func formatReport(report *apiv1.ReportResult) string {
	res := make([]string, 0)
	res = append(res,
		"Report for "+report.GetMonth(),
		"",
		fmt.Sprintf("Income: %.2f", report.GetTotalIncome()),
		fmt.Sprintf("Expenses: %.2f", report.GetTotalExpenses()),
		fmt.Sprintf("Savings: %.2f", report.GetSavings()),
		fmt.Sprintf("Balance: %.2f", report.GetBalance()),
	)

	if len(report.GetRecords()) > 0 {
		res = append(res, "", "Spending by category:")
		for _, rec := range report.GetRecords() {
			res = append(res, fmt.Sprintf("%s: %.2f (%.0f%%)",
				rec.GetCategory(), rec.GetAmount(), rec.GetShare()*100))
		}
	}

	if len(report.GetInsights()) > 0 {
		res = append(res, "")
		for _, insight := range report.GetInsights() {
			res = append(res, "• "+insight)
		}
	}

	return strings.Join(res, "\n")
}
