package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"

	pb "max.ks1230/budget-bot/api/grpc"
)

type messageSender interface {
	SendMessage(text string, userID int64) error
}

type Service struct {
	tgClient messageSender
	cache    reportCache
	handler  *HandlerService
}

func NewService(tgClient messageSender, store ledgerStore, cache reportCache, requester reportRequester) *Service {
	return &Service{
		tgClient: tgClient,
		cache:    cache,
		handler:  newHandler(store, cache, requester),
	}
}

type Message struct {
	Text   string
	UserID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	if err != nil {
		_ = s.tgClient.SendMessage("Sorry, something wrong happened...\n"+resp, msg.UserID)
		return err
	}
	return s.tgClient.SendMessage(resp, msg.UserID)
}

// AcceptReport delivers a finished month report to its user and keeps the
// rendered text around for the next /report.
func (s *Service) AcceptReport(_ context.Context, report *pb.ReportResult) error {
	if !report.GetStatus().GetSuccess() {
		_ = s.tgClient.SendMessage(cannotReportMessage, report.GetUserID())
		return errors.New(report.GetStatus().GetError())
	}

	text := formatReport(report)
	_ = s.cache.CacheReport(report.GetUserID(), report.GetMonth(), text)
	return errors.Wrap(s.tgClient.SendMessage(text, report.GetUserID()), "accept report")
}
