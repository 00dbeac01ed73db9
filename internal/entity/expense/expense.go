package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is a persisted expense. Identity and creation timestamp are
// assigned by New; the amount is stored in the application base currency.
type Record struct {
	ID            string
	Amount        decimal.Decimal
	Category      string
	Description   string
	Date          time.Time
	PaymentMethod string
	CreatedAt     time.Time
}

func New(amount decimal.Decimal, category, description string, date time.Time, paymentMethod string) Record {
	return Record{
		ID:            uuid.NewString(),
		Amount:        amount,
		Category:      category,
		Description:   description,
		Date:          date,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now(),
	}
}
