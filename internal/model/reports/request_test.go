package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type producerStub struct {
	lastMessage []byte
}

func (p *producerStub) ProduceMessage(message []byte) error {
	p.lastMessage = message
	return nil
}

func Test_OnRequestReport_ShouldProduceJSONRequest(t *testing.T) {
	producer := &producerStub{}
	requester := NewRequester(producer)

	err := requester.RequestReport(context.Background(), 123, "week")

	assert.NoError(t, err)
	assert.JSONEq(t, `{"user_id": 123, "period": "week"}`, string(producer.lastMessage))
}
