package customerr

// LimitError signals that saving an expense would push the user past their
// configured month limit.
type LimitError struct {
	Err string
}

func (e *LimitError) Error() string {
	return e.Err
}
