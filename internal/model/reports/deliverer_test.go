package reports

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type senderStub struct {
	lastText   string
	lastUserID int64
}

func (s *senderStub) SendMessage(text string, userID int64) error {
	s.lastText = text
	s.lastUserID = userID
	return nil
}

type cacheStub struct {
	lastKeyUser   int64
	lastKeyPeriod string
	lastReport    string
	err           error
}

func (c *cacheStub) CacheReport(userID int64, period string, report string) error {
	c.lastKeyUser = userID
	c.lastKeyPeriod = period
	c.lastReport = report
	return c.err
}

func testReport() *Report {
	return &Report{
		UserID:   123,
		Period:   "week",
		Currency: "USD",
		Items: []Item{
			{Category: "Shopping", Amount: decimal.NewFromInt(160)},
			{Category: "Food & Dining", Amount: decimal.NewFromInt(100)},
		},
		Total: decimal.NewFromInt(260),
	}
}

func Test_OnFormat_ShouldRenderCategoriesAndTotal(t *testing.T) {
	text := Format(testReport())

	assert.Equal(t, "Shopping: 160.00\nFood & Dining: 100.00\n\nTotal: 260.00 USD", text)
}

func Test_OnFormat_ShouldAnswerWhenReportIsEmpty(t *testing.T) {
	text := Format(&Report{UserID: 123, Currency: "USD"})

	assert.Equal(t, noExpensesMessage, text)
}

func Test_OnDeliverReport_ShouldCacheAndSendFormattedReport(t *testing.T) {
	sender := &senderStub{}
	cache := &cacheStub{}
	deliverer := NewDeliverer(sender, cache)

	err := deliverer.DeliverReport(context.Background(), testReport())

	assert.NoError(t, err)
	assert.Equal(t, int64(123), sender.lastUserID)
	assert.Equal(t, sender.lastText, cache.lastReport)
	assert.Equal(t, int64(123), cache.lastKeyUser)
	assert.Equal(t, "week", cache.lastKeyPeriod)
}

func Test_OnDeliverReport_ShouldSendEvenWhenCacheFails(t *testing.T) {
	sender := &senderStub{}
	cache := &cacheStub{err: errors.New("memcache is down")}
	deliverer := NewDeliverer(sender, cache)

	err := deliverer.DeliverReport(context.Background(), testReport())

	assert.NoError(t, err)
	assert.Contains(t, sender.lastText, "Total: 260.00 USD")
}
