package currency

import "time"

const (
	USD = "USD"
	INR = "INR"
	EUR = "EUR"
)

var Currencies = []string{USD, INR, EUR}

type Rate struct {
	Name      string
	BaseRate  float64
	Set       bool
	UpdatedAt time.Time
}
