package finances

import (
	"errors"
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	valid := NewTransaction(Expense, EUR(42), "groceries", "main", NewDate(2025, time.March, 3), "")
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() rejected a valid transaction: %v", err)
	}

	testCases := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"no id", func(tx *Transaction) { tx.ID = "" }},
		{"bad type", func(tx *Transaction) { tx.Type = "transfer" }},
		{"zero amount", func(tx *Transaction) { tx.Amount = EUR(0) }},
		{"negative amount", func(tx *Transaction) { tx.Amount = EUR(-1) }},
		{"no category", func(tx *Transaction) { tx.Category = "" }},
		{"no account", func(tx *Transaction) { tx.Account = "" }},
		{"no date", func(tx *Transaction) { tx.Date = Date{} }},
		{"bad kind", func(tx *Transaction) { tx.Kind = "wire" }},
		{"linked without item", func(tx *Transaction) { tx.Kind = LinkLoanRepayment }},
		{"settlement without debt", func(tx *Transaction) { tx.Kind = LinkDebtSettlement }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := valid
			tc.mutate(&tx)
			if err := tx.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseLinkKind(t *testing.T) {
	for _, s := range []string{"", "loan-repayment", "deposit-top-up", "deposit-withdrawal",
		"debt-settlement", "goal-contribution", "goal-withdrawal"} {
		if _, err := ParseLinkKind(s); err != nil {
			t.Errorf("ParseLinkKind(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseLinkKind("wire"); err == nil {
		t.Errorf("ParseLinkKind accepted an unknown kind")
	}
}
