package finances

// Budget is a spending limit for a category. The spent amount is never
// stored: it is always derived by filtering expense transactions of the
// category within a period.
type Budget struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Limit    Money  `json:"limit"`
}

// Validate checks the budget for correctness.
func (b Budget) Validate() error {
	if b.ID == "" {
		return invalidf("budget has no id")
	}
	if b.Category == "" {
		return invalidf("budget has no category")
	}
	if !b.Limit.IsPositive() {
		return invalidf("budget limit must be positive, got %s", b.Limit)
	}
	return nil
}
