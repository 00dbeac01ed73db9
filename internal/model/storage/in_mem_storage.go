package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"max.ks1230/expenses-bot/internal/entity/currency"
	"max.ks1230/expenses-bot/internal/entity/expense"
	"max.ks1230/expenses-bot/internal/entity/user"
	"max.ks1230/expenses-bot/internal/model/customerr"
)

// InMemStorage keeps everything in maps. Used in tests and for running the
// bot without a database; not safe for concurrent use.
type InMemStorage struct {
	users    map[int64]user.Record
	expenses map[int64][]expense.Record
	rates    map[string]currency.Rate
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		users:    make(map[int64]user.Record),
		expenses: make(map[int64][]expense.Record),
		rates:    make(map[string]currency.Rate),
	}
}

func (s *InMemStorage) GetUserByID(_ context.Context, id int64) (user.Record, error) {
	return s.users[id], nil
}

func (s *InMemStorage) SaveUserByID(_ context.Context, id int64, rec user.Record) error {
	s.users[id] = rec
	return nil
}

func (s *InMemStorage) SaveExpense(_ context.Context, userID int64, rec expense.Record) error {
	limit := s.users[userID].MonthLimit
	if limit > 0 {
		total := decimal.Zero
		for _, e := range append(s.expenses[userID], rec) {
			if e.Date.Month() == time.Now().Month() && e.Date.Year() == time.Now().Year() {
				total = total.Add(e.Amount)
			}
		}
		if total.GreaterThan(decimal.NewFromFloat(limit)) {
			return &customerr.LimitError{Err: "user limit exceeded"}
		}
	}

	s.expenses[userID] = append(s.expenses[userID], rec)
	return nil
}

func (s *InMemStorage) GetUserExpenses(_ context.Context, userID int64) ([]expense.Record, error) {
	return s.expenses[userID], nil
}

func (s *InMemStorage) GetRate(_ context.Context, name string) (currency.Rate, error) {
	rate, ok := s.rates[name]
	if !ok || !rate.Set {
		return currency.Rate{}, fmt.Errorf("rate %s is not set yet", name)
	}
	return rate, nil
}

func (s *InMemStorage) NewRate(_ context.Context, name string) error {
	if _, ok := s.rates[name]; !ok {
		s.rates[name] = currency.Rate{Name: name}
	}
	return nil
}

func (s *InMemStorage) UpdateRateValue(_ context.Context, name string, val float64) error {
	s.rates[name] = currency.Rate{Name: name, BaseRate: val, Set: true, UpdatedAt: time.Now()}
	return nil
}
