package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/finances"
)

func money(v float64) finances.Money { return finances.M(v, "EUR") }

func testLedger(t *testing.T) (*finances.Ledger, *finances.Loan) {
	t.Helper()
	l := finances.NewLedger()
	loan, err := l.AddLoan("car", money(120000), 12, 12, finances.Annuity, finances.NewDate(2025, time.January, 1))
	if err != nil {
		t.Fatalf("AddLoan() failed: %v", err)
	}
	if _, err := l.SetBudget("groceries", money(500)); err != nil {
		t.Fatalf("SetBudget() failed: %v", err)
	}
	txs := []finances.Transaction{
		finances.NewTransaction(finances.Income, money(3000), "salary", "main", finances.NewDate(2025, time.March, 1), ""),
		finances.NewTransaction(finances.Expense, money(120), "groceries", "main", finances.NewDate(2025, time.March, 3), "market"),
	}
	for _, tx := range txs {
		if err := l.Append(tx); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}
	return l, loan
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	l, _ := testLedger(t)
	s := finances.NewSummary(l, finances.Range{})
	got := SummaryMarkdown(s)
	assertContains(t, got, "# Summary", "Total Income", "Total Expenses", "Budget")
}

func TestBudgetMarkdown(t *testing.T) {
	l, _ := testLedger(t)
	r := finances.NewBudgetReport(l, finances.Range{})
	got := BudgetMarkdown(r)
	assertContains(t, got, "# Budgets", "groceries", "Remaining", "Total")
}

func TestScheduleMarkdown(t *testing.T) {
	_, loan := testLedger(t)
	got := ScheduleMarkdown(loan)
	assertContains(t, got, "# Repayment Schedule for car", "Monthly Payment", "10661.85", "2025-02-01")
	if rows := strings.Count(got, "| 2025-"); rows < 11 {
		t.Errorf("schedule table has %d rows for 2025, want 11", rows)
	}
}

func TestProductsMarkdown(t *testing.T) {
	l, loan := testLedger(t)
	got := ProductsMarkdown(l)
	assertContains(t, got, "## Loans", loan.ID, "car", "Outstanding")
	if strings.Contains(got, "## Deposits") {
		t.Errorf("empty deposit section rendered:\n%s", got)
	}
}

func TestDebtsMarkdown(t *testing.T) {
	l, _ := testLedger(t)
	if got := DebtsMarkdown(l.Debts()); !strings.Contains(got, "No open debts.") {
		t.Errorf("empty debts = %q, want placeholder", got)
	}
	debt, err := l.AddDebt(finances.IOwe, money(50), "alice", "", finances.NewDate(2025, time.March, 1))
	if err != nil {
		t.Fatalf("AddDebt() failed: %v", err)
	}
	assertContains(t, DebtsMarkdown(l.Debts()), debt.ID, "alice", "i-owe")
}

func TestTransactionStrings(t *testing.T) {
	plain := finances.NewTransaction(finances.Expense, money(42), "groceries", "main", finances.NewDate(2025, time.March, 3), "market")
	assertContains(t, Transaction(plain), "Spent", "groceries", "market", "2025-03-03")

	repay := finances.NewTransaction(finances.Expense, money(1000), "loan", "main", finances.NewDate(2025, time.March, 4), "").
		WithLink(finances.LinkLoanRepayment, "loan-1")
	assertContains(t, Transaction(repay), "Repaid", "loan-1")
}
