package reports

import (
	"context"
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/expenses-bot/internal/entity/currency"
	"max.ks1230/expenses-bot/internal/entity/expense"
	"max.ks1230/expenses-bot/internal/entity/user"
	"max.ks1230/expenses-bot/internal/logger"
)

// Item is one category line of a report.
type Item struct {
	Category string
	Amount   decimal.Decimal
}

// Report is a per-category expense summary converted to the user's
// preferred display currency.
type Report struct {
	UserID   int64
	Period   string
	Currency string
	Items    []Item
	Total    decimal.Decimal
}

type expensesStorage interface {
	GetUserExpenses(ctx context.Context, userID int64) ([]expense.Record, error)
	GetUserByID(ctx context.Context, userID int64) (user.Record, error)
	GetRate(ctx context.Context, name string) (currency.Rate, error)
}

type config interface {
	BaseCurrency() string
}

type Generator struct {
	storage         expensesStorage
	defaultCurrency string
}

func NewGenerator(config config, storage expensesStorage) *Generator {
	return &Generator{
		storage:         storage,
		defaultCurrency: config.BaseCurrency(),
	}
}

// Periods lists the supported report periods; the empty period means all
// time.
func Periods() []string {
	return []string{"", "week", "month", "year"}
}

func periodStart(period string) (time.Time, bool) {
	switch period {
	case "":
		return time.Time{}, true
	case "week":
		return now.BeginningOfWeek(), true
	case "month":
		return now.BeginningOfMonth(), true
	case "year":
		return now.BeginningOfYear(), true
	}
	return time.Time{}, false
}

func (g *Generator) GenerateReport(ctx context.Context, userID int64, period string) (*Report, error) {
	logger.Info("GenerateReport - start", zap.Int64("userID", userID), zap.String("period", period))
	defer logger.Info("GenerateReport - end")

	start, ok := periodStart(period)
	if !ok {
		return nil, errors.Errorf("report period %q is not supported", period)
	}

	userRec, err := g.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}
	curr := userRec.PreferredCurrencyOrDefault(g.defaultCurrency)

	report := &Report{
		UserID:   userID,
		Period:   period,
		Currency: curr,
	}

	expenses, err := g.storage.GetUserExpenses(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}
	expenses = filterExpensesAfter(expenses, start)
	if len(expenses) == 0 {
		return report, nil
	}

	rate, err := g.storage.GetRate(ctx, curr)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}

	report.Items, report.Total = groupExpenses(expenses, decimal.NewFromFloat(rate.BaseRate))
	return report, nil
}

func filterExpensesAfter(exps []expense.Record, after time.Time) []expense.Record {
	res := make([]expense.Record, 0, len(exps))
	for _, exp := range exps {
		if after.Before(exp.Date) {
			res = append(res, exp)
		}
	}
	return res
}

// groupExpenses sums per category in display currency; amounts are stored in
// the base currency, so each is multiplied by the preferred currency's rate.
func groupExpenses(exps []expense.Record, rate decimal.Decimal) ([]Item, decimal.Decimal) {
	m := make(map[string]decimal.Decimal)
	for _, exp := range exps {
		m[exp.Category] = m[exp.Category].Add(exp.Amount.Mul(rate))
	}

	items := make([]Item, 0, len(m))
	total := decimal.Zero
	for cat, amount := range m {
		items = append(items, Item{Category: cat, Amount: amount})
		total = total.Add(amount)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Amount.GreaterThan(items[j].Amount)
	})
	return items, total
}
