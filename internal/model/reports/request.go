package reports

import (
	"context"
	"encoding/json"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
)

// Request is the report-generation job published to kafka by the bot and
// consumed by the reporter.
type Request struct {
	UserID int64  `json:"user_id"`
	Period string `json:"period"`
}

type messageProducer interface {
	ProduceMessage(message []byte) error
}

type Requester struct {
	producer messageProducer
}

func NewRequester(producer messageProducer) *Requester {
	return &Requester{producer: producer}
}

func (r *Requester) RequestReport(ctx context.Context, userID int64, period string) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "requestReport")
	defer span.Finish()

	payload, err := json.Marshal(Request{UserID: userID, Period: period})
	if err != nil {
		return errors.Wrap(err, "request report")
	}
	return errors.Wrap(r.producer.ProduceMessage(payload), "request report")
}
