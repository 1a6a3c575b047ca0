package reports

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"max.ks1230/budget-bot/internal/logger"

	apiv1 "max.ks1230/budget-bot/api/grpc"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"max.ks1230/budget-bot/internal/entity/month"
	"max.ks1230/budget-bot/internal/model/ledger"
)

type snapshotStorage interface {
	GetSnapshot(ctx context.Context, userID int64) ([]byte, error)
}

// Generator builds the full month report: dashboard figures, the category
// breakdown with each category's share of spending, and the insight lines.
type Generator struct {
	storage snapshotStorage
}

func NewGenerator(storage snapshotStorage) *Generator {
	return &Generator{storage: storage}
}

func (g *Generator) GenerateReport(ctx context.Context, userID int64, monthID string) (report *apiv1.ReportResult, err error) {
	logger.Info("GenerateReport - start", zap.Int64("userID", userID), zap.String("month", monthID))
	defer logger.Info("GenerateReport - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()

	defer func() {
		if report == nil {
			report = &apiv1.ReportResult{}
		}
		if err == nil {
			report.Status = &apiv1.OperationStatus{Success: true}
		} else {
			report.Status = &apiv1.OperationStatus{Success: false, Error: err.Error()}
		}
		report.UserID = userID
		report.Month = monthID
	}()

	id, err := month.Parse(monthID)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	raw, err := g.storage.GetSnapshot(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}
	snap := ledger.DecodeSnapshot(raw)

	rec, ok := snap[id]
	if !ok {
		rec = month.NewRecord()
	}

	report = &apiv1.ReportResult{
		Records:       breakdown(rec),
		TotalIncome:   rec.TotalIncome(),
		TotalExpenses: rec.TotalExpenses(),
		Savings:       rec.Savings,
		Balance:       rec.Balance(),
		Insights:      rec.Insights(),
	}
	return report, nil
}

// breakdown orders categories by amount, largest first. The stable sort
// keeps first-seen order on ties, so the first record is always the top
// category.
func breakdown(rec month.Record) []*apiv1.ReportRecord {
	totals := rec.CategoryTotals()
	spent := rec.TotalExpenses()

	records := make([]*apiv1.ReportRecord, 0, len(totals))
	for _, ct := range totals {
		share := 0.0
		if spent > 0 {
			share = ct.Amount / spent
		}
		records = append(records, &apiv1.ReportRecord{
			Category: ct.Category,
			Amount:   ct.Amount,
			Share:    share,
		})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Amount > records[j].Amount
	})
	return records
}
