package reports

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expenses-bot/internal/logger"
)

const noExpensesMessage = "You have no expenses yet"

type messageSender interface {
	SendMessage(text string, userID int64) error
}

type reportCache interface {
	CacheReport(userID int64, period string, report string) error
}

// Deliverer formats a generated report, caches the rendered text and sends
// it to the user. Cache failures are logged, not fatal: delivery matters
// more than the cache.
type Deliverer struct {
	sender messageSender
	cache  reportCache
}

func NewDeliverer(sender messageSender, cache reportCache) *Deliverer {
	return &Deliverer{sender: sender, cache: cache}
}

func (d *Deliverer) DeliverReport(ctx context.Context, report *Report) error {
	logger.Info("DeliverReport - start", zap.Int64("userID", report.UserID))
	defer logger.Info("DeliverReport - end")

	text := Format(report)
	if err := d.cache.CacheReport(report.UserID, report.Period, text); err != nil {
		logger.Error("failed to cache report", zap.Error(err), zap.Int64("userID", report.UserID))
	}
	return errors.Wrap(d.sender.SendMessage(text, report.UserID), "deliver report")
}

// Format renders a report as the message text shown to the user.
func Format(report *Report) string {
	if len(report.Items) == 0 {
		return noExpensesMessage
	}

	res := make([]string, 0, len(report.Items)+2)
	for _, item := range report.Items {
		res = append(res, fmt.Sprintf("%s: %s", item.Category, item.Amount.StringFixed(2)))
	}
	res = append(res, "", fmt.Sprintf("Total: %s %s", report.Total.StringFixed(2), report.Currency))
	return strings.Join(res, "\n")
}
