package user

// Record holds per-user settings. Expenses themselves live in their own
// storage table and are not embedded here.
type Record struct {
	MonthLimit        float64
	preferredCurrency string
}

func (r *Record) PreferredCurrencyOrDefault(def string) string {
	if r.preferredCurrency != "" {
		return r.preferredCurrency
	}
	return def
}

func (r *Record) PreferredCurrency() string {
	return r.preferredCurrency
}

func (r *Record) SetPreferredCurrency(curr string) {
	r.preferredCurrency = curr
}
