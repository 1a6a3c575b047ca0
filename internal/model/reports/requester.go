package reports

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	apikafka "max.ks1230/budget-bot/api/kafka"
)

type msgProducer interface {
	ProduceMessage(message []byte) error
}

// Requester publishes report requests for the reporter to pick up.
type Requester struct {
	producer msgProducer
}

func NewRequester(producer msgProducer) *Requester {
	return &Requester{producer: producer}
}

func (r *Requester) RequestReport(_ context.Context, userID int64, monthID string) error {
	raw, err := proto.Marshal(&apikafka.ReportRequest{
		UserID: userID,
		Month:  monthID,
	})
	if err != nil {
		return errors.Wrap(err, "request report")
	}
	return errors.Wrap(r.producer.ProduceMessage(raw), "request report")
}
