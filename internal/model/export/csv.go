// Package export serializes finalized expenses to a delimited text format
// for download.
package export

import (
	"encoding/csv"
	"strings"

	"github.com/pkg/errors"

	"max.ks1230/expenses-bot/internal/entity/expense"
)

var header = []string{"Date", "Category", "Description", "Amount", "Payment Method"}

// CSV renders the expenses one row per record, amounts in the base currency
// with two decimal places.
func CSV(expenses []expense.Record) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(header); err != nil {
		return "", errors.Wrap(err, "export csv")
	}
	for _, e := range expenses {
		row := []string{
			e.Date.Format("2006-01-02"),
			e.Category,
			e.Description,
			e.Amount.StringFixed(2),
			e.PaymentMethod,
		}
		if err := w.Write(row); err != nil {
			return "", errors.Wrap(err, "export csv")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "export csv")
	}
	return b.String(), nil
}
