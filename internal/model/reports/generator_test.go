package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"max.ks1230/expenses-bot/internal/entity/currency"
	"max.ks1230/expenses-bot/internal/entity/expense"
	"max.ks1230/expenses-bot/internal/entity/user"
)

type storageStub struct {
	expenses []expense.Record
	user     user.Record
	rate     currency.Rate

	requestedRate string
}

func (s *storageStub) GetUserExpenses(_ context.Context, _ int64) ([]expense.Record, error) {
	return s.expenses, nil
}

func (s *storageStub) GetUserByID(_ context.Context, _ int64) (user.Record, error) {
	return s.user, nil
}

func (s *storageStub) GetRate(_ context.Context, name string) (currency.Rate, error) {
	s.requestedRate = name
	return s.rate, nil
}

type configStub struct{}

func (configStub) BaseCurrency() string {
	return "USD"
}

func testExpenses() []expense.Record {
	return []expense.Record{
		{
			Amount:   decimal.NewFromInt(1000),
			Category: "Food & Dining",
			Date:     time.Now(),
		},
		{
			Amount:   decimal.NewFromInt(1500),
			Category: "Shopping",
			Date:     time.Now(),
		},
		{
			Amount:   decimal.NewFromInt(100),
			Category: "Shopping",
			Date:     time.Now(),
		},
	}
}

func Test_OnGenerateReport_ShouldReturnReportInPreferredCurrency(t *testing.T) {
	ctx := context.Background()

	u := user.Record{}
	u.SetPreferredCurrency("INR")
	storage := &storageStub{
		expenses: testExpenses(),
		user:     u,
		rate:     currency.Rate{Name: "INR", BaseRate: 0.1, Set: true},
	}

	generator := NewGenerator(configStub{}, storage)
	report, err := generator.GenerateReport(ctx, 123, "")

	assert.NoError(t, err)
	assert.Equal(t, "INR", storage.requestedRate)
	assert.Equal(t, "INR", report.Currency)
	assert.Equal(t, "260.00", report.Total.StringFixed(2))
	assert.Equal(t, "Shopping", report.Items[0].Category)
	assert.Equal(t, "160.00", report.Items[0].Amount.StringFixed(2))
	assert.Equal(t, "Food & Dining", report.Items[1].Category)
	assert.Equal(t, "100.00", report.Items[1].Amount.StringFixed(2))
}

func Test_OnGenerateReport_ShouldFallBackToBaseCurrency(t *testing.T) {
	ctx := context.Background()

	storage := &storageStub{
		expenses: testExpenses(),
		rate:     currency.Rate{Name: "USD", BaseRate: 1, Set: true},
	}

	generator := NewGenerator(configStub{}, storage)
	report, err := generator.GenerateReport(ctx, 123, "")

	assert.NoError(t, err)
	assert.Equal(t, "USD", storage.requestedRate)
	assert.Equal(t, "2600.00", report.Total.StringFixed(2))
	assert.Equal(t, "Shopping", report.Items[0].Category)
	assert.Equal(t, "1600.00", report.Items[0].Amount.StringFixed(2))
}

func Test_OnGenerateReport_ShouldFilterExpensesOutsidePeriod(t *testing.T) {
	ctx := context.Background()

	expenses := testExpenses()
	expenses[0].Date = time.Now().AddDate(-1, 0, 0)
	storage := &storageStub{
		expenses: expenses,
		rate:     currency.Rate{Name: "USD", BaseRate: 1, Set: true},
	}

	generator := NewGenerator(configStub{}, storage)
	report, err := generator.GenerateReport(ctx, 123, "year")

	assert.NoError(t, err)
	assert.Equal(t, "1600.00", report.Total.StringFixed(2))
	assert.Len(t, report.Items, 1)
	assert.Equal(t, "Shopping", report.Items[0].Category)
}

func Test_OnGenerateReport_ShouldRejectUnknownPeriod(t *testing.T) {
	generator := NewGenerator(configStub{}, &storageStub{})

	report, err := generator.GenerateReport(context.Background(), 123, "decade")

	assert.Error(t, err)
	assert.Nil(t, report)
}

func Test_OnGenerateReport_ShouldSkipRateLookupWhenNoExpenses(t *testing.T) {
	storage := &storageStub{}

	generator := NewGenerator(configStub{}, storage)
	report, err := generator.GenerateReport(context.Background(), 123, "")

	assert.NoError(t, err)
	assert.Empty(t, report.Items)
	assert.Empty(t, storage.requestedRate)
}
