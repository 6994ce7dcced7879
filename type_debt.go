package finances

import "fmt"

// DebtDirection tells who owes whom.
type DebtDirection string

const (
	IOwe     DebtDirection = "i-owe"
	OwedToMe DebtDirection = "owed-to-me"
)

// ParseDebtDirection parses a string into a DebtDirection.
func ParseDebtDirection(s string) (DebtDirection, error) {
	switch DebtDirection(s) {
	case IOwe:
		return IOwe, nil
	case OwedToMe:
		return OwedToMe, nil
	default:
		return "", fmt.Errorf("unknown debt direction %q", s)
	}
}

// Debt is an informal debt between the user and a person. Settling a
// debt is all-or-nothing: it deletes the debt and appends exactly one
// transaction. There is no partial settlement.
type Debt struct {
	ID          string        `json:"id"`
	Direction   DebtDirection `json:"direction"`
	Amount      Money         `json:"amount"`
	Person      string        `json:"person"`
	Description string        `json:"description,omitempty"`
	Date        Date          `json:"date"`
}

// Validate checks the debt for correctness.
func (d Debt) Validate() error {
	if d.ID == "" {
		return invalidf("debt has no id")
	}
	if _, err := ParseDebtDirection(string(d.Direction)); err != nil {
		return invalidf("%v", err)
	}
	if !d.Amount.IsPositive() {
		return invalidf("debt amount must be positive, got %s", d.Amount)
	}
	if d.Person == "" {
		return invalidf("debt has no person")
	}
	return nil
}
