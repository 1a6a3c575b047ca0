package messages

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "max.ks1230/budget-bot/api/grpc"
	"max.ks1230/budget-bot/internal/entity/month"
	"max.ks1230/budget-bot/internal/model/ledger"
	"max.ks1230/budget-bot/internal/model/messages/mock"
	"max.ks1230/budget-bot/internal/model/storage"
)

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	cache := mock.NewReportCacheMock(m)
	requester := mock.NewReportRequesterMock(m)
	store := ledger.NewStore(storage.NewInMemStorage())

	sender.SendMessageMock.
		Expect(helloMessage, int64(123)).
		Return(nil)

	model := NewService(sender, store, cache, requester)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/start",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	cache := mock.NewReportCacheMock(m)
	requester := mock.NewReportRequesterMock(m)
	store := ledger.NewStore(storage.NewInMemStorage())

	sender.SendMessageMock.
		Expect(dontUnderstandMessage, int64(123)).
		Return(nil)

	model := NewService(sender, store, cache, requester)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/none",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnPlainText_ShouldAnswerWithSmallTalk(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	cache := mock.NewReportCacheMock(m)
	requester := mock.NewReportRequesterMock(m)
	store := ledger.NewStore(storage.NewInMemStorage())

	sender.SendMessageMock.
		Expect(loveToTalkMessage, int64(123)).
		Return(nil)

	model := NewService(sender, store, cache, requester)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "how are you",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnIncomeCommand_ShouldRecordAndConfirm(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	cache := mock.NewReportCacheMock(m)
	requester := mock.NewReportRequesterMock(m)
	store := ledger.NewStore(storage.NewInMemStorage())

	sender.SendMessageMock.
		Expect(okMessage, int64(123)).
		Return(nil)
	cache.InvalidateReportsMock.Return(nil)

	model := NewService(sender, store, cache, requester)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/income Salary 3000",
		UserID: 123,
	})
	require.NoError(t, err)

	rec, err := store.EnsureMonth(context.Background(), 123, month.Current())
	require.NoError(t, err)
	require.Len(t, rec.Income, 1)
	assert.Equal(t, month.IncomeEntry{Name: "Salary", Amount: 3000}, rec.Income[0])
}

func Test_OnIncomeCommand_ShouldRejectBadAmount(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	cache := mock.NewReportCacheMock(m)
	requester := mock.NewReportRequesterMock(m)
	store := ledger.NewStore(storage.NewInMemStorage())

	sender.SendMessageMock.
		Expect(incorrectAmountMessage, int64(123)).
		Return(nil)

	model := NewService(sender, store, cache, requester)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/income Salary lots",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnMutatingLockedMonth_ShouldAnswerWithLockedNotice(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	cache := mock.NewReportCacheMock(m)
	requester := mock.NewReportRequesterMock(m)
	store := ledger.NewStore(storage.NewInMemStorage())

	var sent []string
	sender.SendMessageMock.Set(func(text string, _ int64) error {
		sent = append(sent, text)
		return nil
	})

	model := NewService(sender, store, cache, requester)
	ctx := context.Background()

	// a month in the past is locked the moment it is opened
	require.NoError(t, model.HandleIncomingMessage(ctx, Message{Text: "/month 2000-01", UserID: 123}))
	require.NoError(t, model.HandleIncomingMessage(ctx, Message{Text: "/expense Food 25", UserID: 123}))

	require.Len(t, sent, 2)
	assert.Contains(t, sent[0], lockedMark)
	assert.Equal(t, lockedMonthMessage, sent[1])
}

func Test_OnReportCommand_ShouldServeCachedReport(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	cache := mock.NewReportCacheMock(m)
	requester := mock.NewReportRequesterMock(m)
	store := ledger.NewStore(storage.NewInMemStorage())

	cache.GetReportMock.
		Expect(int64(123), "2030-04").
		Return("cached report text", nil)
	sender.SendMessageMock.
		Expect("cached report text", int64(123)).
		Return(nil)

	model := NewService(sender, store, cache, requester)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/report 2030-04",
		UserID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnReportCommandCacheMiss_ShouldRequestReport(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	cache := mock.NewReportCacheMock(m)
	requester := mock.NewReportRequesterMock(m)
	store := ledger.NewStore(storage.NewInMemStorage())

	cache.GetReportMock.
		Expect(int64(123), "2030-04").
		Return("", assert.AnError)

	var requested []string
	requester.RequestReportMock.Set(func(_ context.Context, userID int64, monthID string) error {
		assert.Equal(t, int64(123), userID)
		requested = append(requested, monthID)
		return nil
	})
	sender.SendMessageMock.
		Expect(preparingReportMsg, int64(123)).
		Return(nil)

	model := NewService(sender, store, cache, requester)
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/report 2030-04",
		UserID: 123,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"2030-04"}, requested)
}

func Test_OnAcceptReport_ShouldFormatCacheAndSend(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	cache := mock.NewReportCacheMock(m)
	requester := mock.NewReportRequesterMock(m)
	store := ledger.NewStore(storage.NewInMemStorage())

	report := &pb.ReportResult{
		UserID: 123,
		Month:  "2030-04",
		Records: []*pb.ReportRecord{
			{Category: "Rent", Amount: 1200, Share: 0.8},
			{Category: "Food", Amount: 300, Share: 0.2},
		},
		TotalIncome:   3000,
		TotalExpenses: 1500,
		Savings:       200,
		Balance:       1300,
		Insights:      []string{"Your spending stayed within your income. This reflects healthy awareness."},
		Status:        &pb.OperationStatus{Success: true},
	}

	var sent, cached string
	sender.SendMessageMock.Set(func(text string, _ int64) error {
		sent = text
		return nil
	})
	cache.CacheReportMock.Set(func(userID int64, monthID, text string) error {
		assert.Equal(t, int64(123), userID)
		assert.Equal(t, "2030-04", monthID)
		cached = text
		return nil
	})

	model := NewService(sender, store, cache, requester)
	err := model.AcceptReport(context.Background(), report)

	require.NoError(t, err)
	assert.Equal(t, sent, cached)
	assert.Contains(t, sent, "Report for 2030-04")
	assert.Contains(t, sent, "Rent: 1200.00 (80%)")
	assert.Contains(t, sent, "• Your spending stayed within your income.")
}

func Test_OnAcceptFailedReport_ShouldApologize(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	cache := mock.NewReportCacheMock(m)
	requester := mock.NewReportRequesterMock(m)
	store := ledger.NewStore(storage.NewInMemStorage())

	sender.SendMessageMock.
		Expect(cannotReportMessage, int64(123)).
		Return(nil)

	model := NewService(sender, store, cache, requester)
	err := model.AcceptReport(context.Background(), &pb.ReportResult{
		UserID: 123,
		Month:  "2030-04",
		Status: &pb.OperationStatus{Success: false, Error: "no data"},
	})

	assert.EqualError(t, err, "no data")
}
