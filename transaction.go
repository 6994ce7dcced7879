package finances

import (
	"fmt"

	"github.com/google/uuid"
)

// TxType is the direction of a transaction. Amounts are always stored
// positive; the direction is conveyed by the type.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// LinkKind tags the side effect a transaction carries on a financial
// product. Mutation dispatch depends on this tag only; the display
// category stays free-form.
type LinkKind string

const (
	LinkNone              LinkKind = ""
	LinkLoanRepayment     LinkKind = "loan-repayment"
	LinkDepositTopUp      LinkKind = "deposit-top-up"
	LinkDepositWithdrawal LinkKind = "deposit-withdrawal"
	LinkDebtSettlement    LinkKind = "debt-settlement"
	LinkGoalContribution  LinkKind = "goal-contribution"
	LinkGoalWithdrawal    LinkKind = "goal-withdrawal"
)

// ParseLinkKind parses a string into a LinkKind.
func ParseLinkKind(s string) (LinkKind, error) {
	switch k := LinkKind(s); k {
	case LinkNone, LinkLoanRepayment, LinkDepositTopUp, LinkDepositWithdrawal,
		LinkDebtSettlement, LinkGoalContribution, LinkGoalWithdrawal:
		return k, nil
	default:
		return LinkNone, fmt.Errorf("unknown link kind %q", s)
	}
}

// linksItem reports whether the kind requires a FinancialItemID.
func (k LinkKind) linksItem() bool {
	switch k {
	case LinkLoanRepayment, LinkDepositTopUp, LinkDepositWithdrawal,
		LinkGoalContribution, LinkGoalWithdrawal:
		return true
	default:
		return false
	}
}

// Transaction is a single ledger movement. It is immutable once appended
// except through Ledger.Edit, which replaces it atomically together with
// its side effects.
type Transaction struct {
	ID              string   `json:"id"`
	Type            TxType   `json:"type"`
	Amount          Money    `json:"amount"`
	Category        string   `json:"category"`
	Account         string   `json:"account"`
	Date            Date     `json:"date"`
	Description     string   `json:"description,omitempty"`
	Kind            LinkKind `json:"kind,omitempty"`
	FinancialItemID string   `json:"financialItemId,omitempty"`
	DebtID          string   `json:"debtId,omitempty"`
}

// NewTransaction creates an unlinked transaction with a fresh id.
func NewTransaction(t TxType, amount Money, category, account string, on Date, description string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Type:        t,
		Amount:      amount,
		Category:    category,
		Account:     account,
		Date:        on,
		Description: description,
	}
}

// WithLink returns a copy of the transaction linked to a financial item.
func (t Transaction) WithLink(kind LinkKind, itemID string) Transaction {
	t.Kind = kind
	t.FinancialItemID = itemID
	return t
}

// Validate checks the transaction for correctness.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return invalidf("transaction has no id")
	}
	if t.Type != Income && t.Type != Expense {
		return invalidf("transaction type must be %q or %q, got %q", Income, Expense, t.Type)
	}
	if !t.Amount.IsPositive() {
		return invalidf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Category == "" {
		return invalidf("transaction has no category")
	}
	if t.Account == "" {
		return invalidf("transaction has no account")
	}
	if t.Date.IsZero() {
		return invalidf("transaction has no date")
	}
	if _, err := ParseLinkKind(string(t.Kind)); err != nil {
		return invalidf("%v", err)
	}
	if t.Kind.linksItem() && t.FinancialItemID == "" {
		return invalidf("%s transaction has no financial item", t.Kind)
	}
	if t.Kind == LinkDebtSettlement && t.DebtID == "" {
		return invalidf("debt settlement has no debt id")
	}
	return nil
}

// Equal reports whether two transactions are identical.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Type == o.Type &&
		t.Amount.Equal(o.Amount) &&
		t.Category == o.Category &&
		t.Account == o.Account &&
		t.Date == o.Date &&
		t.Description == o.Description &&
		t.Kind == o.Kind &&
		t.FinancialItemID == o.FinancialItemID &&
		t.DebtID == o.DebtID
}
