package finances

import (
	"testing"
	"time"
)

func reportLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	txs := []Transaction{
		NewTransaction(Income, EUR(3000), "salary", "main", NewDate(2025, time.March, 1), ""),
		NewTransaction(Expense, EUR(120), "groceries", "main", NewDate(2025, time.March, 3), ""),
		NewTransaction(Expense, EUR(80), "groceries", "main", NewDate(2025, time.March, 20), ""),
		NewTransaction(Expense, EUR(60), "transport", "main", NewDate(2025, time.March, 25), ""),
		NewTransaction(Expense, EUR(200), "groceries", "main", NewDate(2025, time.April, 2), ""),
	}
	for _, tx := range txs {
		if err := l.Append(tx); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}
	return l
}

func TestFilterByPeriod(t *testing.T) {
	l := reportLedger(t)
	all := l.Transactions(AcceptAll)

	march := NewRange(NewDate(2025, time.March, 1), NewDate(2025, time.March, 31))
	if got := FilterByPeriod(all, march); len(got) != 4 {
		t.Errorf("march filter kept %d transactions, want 4", len(got))
	}

	// Boundaries are included.
	day := NewRange(NewDate(2025, time.March, 3), NewDate(2025, time.March, 3))
	if got := FilterByPeriod(all, day); len(got) != 1 {
		t.Errorf("single-day filter kept %d transactions, want 1", len(got))
	}

	// A zero range keeps everything.
	if got := FilterByPeriod(all, Range{}); len(got) != len(all) {
		t.Errorf("zero range kept %d transactions, want %d", len(got), len(all))
	}
}

func TestNewSummary(t *testing.T) {
	l := reportLedger(t)
	s := NewSummary(l, Monthly.Since(NewDate(2025, time.March, 31)))

	if want := EUR(3000); !s.TotalIncome.Equal(want) {
		t.Errorf("TotalIncome = %s, want %s", s.TotalIncome, want)
	}
	if want := EUR(260); !s.TotalExpenses.Equal(want) {
		t.Errorf("TotalExpenses = %s, want %s", s.TotalExpenses, want)
	}
	if want := EUR(2740); !s.TotalBudget.Equal(want) {
		t.Errorf("TotalBudget = %s, want %s", s.TotalBudget, want)
	}
}

func TestSpentForCategory(t *testing.T) {
	l := reportLedger(t)
	all := l.Transactions(AcceptAll)
	march := NewRange(NewDate(2025, time.March, 1), NewDate(2025, time.March, 31))

	if want := EUR(200); !SpentForCategory(all, "groceries", march).Equal(want) {
		t.Errorf("SpentForCategory(groceries, march) = %s, want %s", SpentForCategory(all, "groceries", march), want)
	}
	// Income never counts as spending, even in a matching category.
	if got := SpentForCategory(all, "salary", march); !got.IsZero() {
		t.Errorf("SpentForCategory(salary) = %s, want zero", got)
	}
	if want := EUR(400); !SpentForCategory(all, "groceries", Range{}).Equal(want) {
		t.Errorf("SpentForCategory(groceries, all) = %s, want %s", SpentForCategory(all, "groceries", Range{}), want)
	}
}

func TestNewBudgetReport(t *testing.T) {
	l := reportLedger(t)
	if _, err := l.SetBudget("groceries", EUR(500)); err != nil {
		t.Fatalf("SetBudget() failed: %v", err)
	}
	if _, err := l.SetBudget("transport", EUR(50)); err != nil {
		t.Fatalf("SetBudget() failed: %v", err)
	}

	march := NewRange(NewDate(2025, time.March, 1), NewDate(2025, time.March, 31))
	report := NewBudgetReport(l, march)

	if len(report.Lines) != 2 {
		t.Fatalf("report has %d lines, want 2", len(report.Lines))
	}
	groceries, transport := report.Lines[0], report.Lines[1]
	if !groceries.Spent.Equal(EUR(200)) || !groceries.Remaining.Equal(EUR(300)) {
		t.Errorf("groceries line = spent %s remaining %s, want 200/300", groceries.Spent, groceries.Remaining)
	}
	// Overspending yields a negative remaining.
	if !transport.Spent.Equal(EUR(60)) || !transport.Remaining.Equal(EUR(-10)) {
		t.Errorf("transport line = spent %s remaining %s, want 60/-10", transport.Spent, transport.Remaining)
	}
	if want := EUR(550); !report.TotalPlanned.Equal(want) {
		t.Errorf("TotalPlanned = %s, want %s", report.TotalPlanned, want)
	}
	if want := EUR(260); !report.TotalSpent.Equal(want) {
		t.Errorf("TotalSpent = %s, want %s", report.TotalSpent, want)
	}
}
