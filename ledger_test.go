package finances

import (
	"errors"
	"testing"
	"time"
)

// setupLedger creates a ledger with one loan, one deposit, one goal and
// one budget, ready for mutation tests.
func setupLedger(t *testing.T) (*Ledger, *Loan, *Deposit, *SavingsGoal) {
	t.Helper()
	l := NewLedger()

	loan, err := l.AddLoan("car", EUR(120000), 12, 12, Annuity, NewDate(2025, time.January, 1))
	if err != nil {
		t.Fatalf("AddLoan() failed: %v", err)
	}
	deposit, err := l.AddDeposit("rainy day", EUR(100000), 10, 12, Compound, CapMonthly, NewDate(2025, time.January, 1))
	if err != nil {
		t.Fatalf("AddDeposit() failed: %v", err)
	}
	goal, err := l.AddGoal("vacation", EUR(3000), NewDate(2025, time.December, 31))
	if err != nil {
		t.Fatalf("AddGoal() failed: %v", err)
	}
	if _, err := l.SetBudget("groceries", EUR(500)); err != nil {
		t.Fatalf("SetBudget() failed: %v", err)
	}
	return l, loan, deposit, goal
}

// checkInvariants verifies that every cached balance equals its derived
// value.
func checkInvariants(t *testing.T, l *Ledger) {
	t.Helper()
	for _, loan := range l.Loans() {
		if !loan.CurrentBalance().Equal(loan.Balance()) {
			t.Fatalf("loan %q: cached balance %s, derived %s", loan.Name, loan.CurrentBalance(), loan.Balance())
		}
	}
	for _, d := range l.Deposits() {
		if !d.CurrentAmount().Equal(d.Amount()) {
			t.Fatalf("deposit %q: cached amount %s, derived %s", d.Name, d.CurrentAmount(), d.Amount())
		}
	}
	for _, g := range l.Goals() {
		if !g.Current().Equal(g.Amount()) {
			t.Fatalf("goal %q: cached amount %s, derived %s", g.Title, g.Current(), g.Amount())
		}
	}
}

func TestAppendUnlinked(t *testing.T) {
	l, _, _, _ := setupLedger(t)
	tx := NewTransaction(Expense, EUR(42), "groceries", "main", NewDate(2025, time.March, 3), "")
	if err := l.Append(tx); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	got, ok := l.Transaction(tx.ID)
	if !ok {
		t.Fatalf("transaction %q not found after Append", tx.ID)
	}
	if !got.Equal(tx) {
		t.Errorf("stored transaction differs: got %+v, want %+v", got, tx)
	}
}

func TestAppendRejectsMalformed(t *testing.T) {
	l, loan, _, _ := setupLedger(t)
	on := NewDate(2025, time.March, 3)

	testCases := []struct {
		name string
		tx   Transaction
	}{
		{"zero amount", NewTransaction(Expense, EUR(0), "misc", "main", on, "")},
		{"negative amount", NewTransaction(Expense, EUR(-5), "misc", "main", on, "")},
		{"missing category", NewTransaction(Expense, EUR(5), "", "main", on, "")},
		{"missing account", NewTransaction(Expense, EUR(5), "misc", "", on, "")},
		{"missing date", NewTransaction(Expense, EUR(5), "misc", "main", Date{}, "")},
		{"bad type", Transaction{ID: "x", Type: "transfer", Amount: EUR(5), Category: "misc", Account: "main", Date: on}},
		{"linked without item", NewTransaction(Expense, EUR(5), "loan", "main", on, "").WithLink(LinkLoanRepayment, "")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := l.Append(tc.tx)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Append() = %v, want ErrInvalid", err)
			}
			if n := len(l.Transactions(AcceptAll)); n != 0 {
				t.Errorf("ledger mutated on invalid input: %d transactions", n)
			}
		})
	}

	// An unknown product id is NotFound, not Invalid.
	tx := NewTransaction(Expense, EUR(5), "loan", "main", on, "").WithLink(LinkLoanRepayment, "nope")
	if err := l.Append(tx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Append() = %v, want ErrNotFound", err)
	}
	if !loan.CurrentBalance().Equal(EUR(120000)) {
		t.Errorf("loan balance mutated on failed append: %s", loan.CurrentBalance())
	}
}

func TestLoanRepaymentKeepsInvariant(t *testing.T) {
	l, loan, _, _ := setupLedger(t)
	on := NewDate(2025, time.February, 1)

	// One repayment of the monthly payment.
	repay := NewTransaction(Expense, EUR(10661.85), "loan", "main", on, "").WithLink(LinkLoanRepayment, loan.ID)
	if err := l.Append(repay); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	checkInvariants(t, l)
	if want := EUR(120000).Sub(EUR(10661.85)); !loan.CurrentBalance().Equal(want) {
		t.Errorf("balance after repayment = %s, want %s", loan.CurrentBalance(), want)
	}

	// A second repayment, then edit the first, then delete the second.
	repay2 := NewTransaction(Expense, EUR(5000), "loan", "main", on.Add(30), "").WithLink(LinkLoanRepayment, loan.ID)
	if err := l.Append(repay2); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	checkInvariants(t, l)

	edited := repay
	edited.Amount = EUR(12000)
	if err := l.Edit(repay.ID, edited); err != nil {
		t.Fatalf("Edit() failed: %v", err)
	}
	checkInvariants(t, l)

	if err := l.Delete(repay2.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	checkInvariants(t, l)

	if want := EUR(120000).Sub(EUR(12000)); !loan.CurrentBalance().Equal(want) {
		t.Errorf("final balance = %s, want %s", loan.CurrentBalance(), want)
	}
	if entries := loan.Entries(); len(entries) != 1 {
		t.Errorf("sub-ledger has %d entries, want 1", len(entries))
	}
}

func TestEditChangesBalanceByDifference(t *testing.T) {
	l, loan, _, _ := setupLedger(t)
	on := NewDate(2025, time.February, 1)

	repay := NewTransaction(Expense, EUR(1000), "loan", "main", on, "").WithLink(LinkLoanRepayment, loan.ID)
	if err := l.Append(repay); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	before := loan.CurrentBalance()

	edited := repay
	edited.Amount = EUR(1300)
	if err := l.Edit(repay.ID, edited); err != nil {
		t.Fatalf("Edit() failed: %v", err)
	}

	// Editing A to B changes the balance by exactly A-B.
	if want := before.Add(EUR(1000)).Sub(EUR(1300)); !loan.CurrentBalance().Equal(want) {
		t.Errorf("balance after edit = %s, want %s", loan.CurrentBalance(), want)
	}
}

func TestEditMovesRepaymentBetweenLoans(t *testing.T) {
	l, loanX, _, _ := setupLedger(t)
	loanY, err := l.AddLoan("bike", EUR(5000), 8, 6, Differentiated, NewDate(2025, time.January, 1))
	if err != nil {
		t.Fatalf("AddLoan() failed: %v", err)
	}

	repay := NewTransaction(Expense, EUR(1000), "loan", "main", NewDate(2025, time.February, 1), "").
		WithLink(LinkLoanRepayment, loanX.ID)
	if err := l.Append(repay); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	moved := repay
	moved.FinancialItemID = loanY.ID
	if err := l.Edit(repay.ID, moved); err != nil {
		t.Fatalf("Edit() failed: %v", err)
	}

	// The full effect moved from X to Y with no leakage.
	if !loanX.CurrentBalance().Equal(EUR(120000)) {
		t.Errorf("loan X balance = %s, want untouched principal", loanX.CurrentBalance())
	}
	if want := EUR(5000).Sub(EUR(1000)); !loanY.CurrentBalance().Equal(want) {
		t.Errorf("loan Y balance = %s, want %s", loanY.CurrentBalance(), want)
	}
	if n := len(loanX.Entries()); n != 0 {
		t.Errorf("loan X sub-ledger has %d entries, want 0", n)
	}
	if n := len(loanY.Entries()); n != 1 {
		t.Errorf("loan Y sub-ledger has %d entries, want 1", n)
	}
	checkInvariants(t, l)
}

func TestDepositTopUpAndWithdrawal(t *testing.T) {
	l, _, deposit, _ := setupLedger(t)
	on := NewDate(2025, time.April, 1)

	topup := NewTransaction(Expense, EUR(1000), "deposit", "main", on, "").WithLink(LinkDepositTopUp, deposit.ID)
	if err := l.Append(topup); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	// One user action produces two records: the main transaction is an
	// expense (cash leaving the account), the sub-ledger entry an income
	// (the deposit's own perspective).
	main, _ := l.Transaction(topup.ID)
	if main.Type != Expense {
		t.Errorf("main record type = %s, want expense", main.Type)
	}
	entries := deposit.Entries()
	if len(entries) != 1 || entries[0].Type != Income {
		t.Fatalf("sub-ledger = %+v, want one income entry", entries)
	}
	if want := EUR(101000); !deposit.CurrentAmount().Equal(want) {
		t.Errorf("amount after top-up = %s, want %s", deposit.CurrentAmount(), want)
	}

	withdraw := NewTransaction(Income, EUR(400), "deposit", "main", on.Add(10), "").WithLink(LinkDepositWithdrawal, deposit.ID)
	if err := l.Append(withdraw); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	main, _ = l.Transaction(withdraw.ID)
	if main.Type != Income {
		t.Errorf("main record type = %s, want income", main.Type)
	}
	if want := EUR(100600); !deposit.CurrentAmount().Equal(want) {
		t.Errorf("amount after withdrawal = %s, want %s", deposit.CurrentAmount(), want)
	}
	checkInvariants(t, l)
}

func TestDepositTopUpEdit(t *testing.T) {
	l, _, deposit, _ := setupLedger(t)
	on := NewDate(2025, time.April, 1)

	topup := NewTransaction(Expense, EUR(1000), "deposit", "main", on, "").WithLink(LinkDepositTopUp, deposit.ID)
	if err := l.Append(topup); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	before := deposit.CurrentAmount()

	edited := topup
	edited.Amount = EUR(1500)
	if err := l.Edit(topup.ID, edited); err != nil {
		t.Fatalf("Edit() failed: %v", err)
	}

	if want := before.Add(EUR(500)); !deposit.CurrentAmount().Equal(want) {
		t.Errorf("amount after edit = %s, want %s", deposit.CurrentAmount(), want)
	}
	var count int
	for _, e := range deposit.Entries() {
		if e.ID == topup.ID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("sub-ledger has %d entries for %q, want exactly 1", count, topup.ID)
	}
	checkInvariants(t, l)
}

func TestGoalContributions(t *testing.T) {
	l, _, _, goal := setupLedger(t)
	on := NewDate(2025, time.May, 1)

	put := NewTransaction(Expense, EUR(200), "savings", "main", on, "").WithLink(LinkGoalContribution, goal.ID)
	if err := l.Append(put); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	take := NewTransaction(Income, EUR(50), "savings", "main", on.Add(5), "").WithLink(LinkGoalWithdrawal, goal.ID)
	if err := l.Append(take); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	if want := EUR(150); !goal.Current().Equal(want) {
		t.Errorf("goal amount = %s, want %s", goal.Current(), want)
	}
	checkInvariants(t, l)
}

func TestSettleDebt(t *testing.T) {
	l, _, _, _ := setupLedger(t)
	debt, err := l.AddDebt(IOwe, EUR(5000), "alice", "lunch money", NewDate(2025, time.January, 20))
	if err != nil {
		t.Fatalf("AddDebt() failed: %v", err)
	}

	tx, err := l.SettleDebt(debt.ID, "main", NewDate(2025, time.June, 1))
	if err != nil {
		t.Fatalf("SettleDebt() failed: %v", err)
	}

	// Exactly one expense transaction of the full amount, and the debt
	// record is gone.
	if tx.Type != Expense {
		t.Errorf("settlement type = %s, want expense", tx.Type)
	}
	if !tx.Amount.Equal(EUR(5000)) {
		t.Errorf("settlement amount = %s, want %s", tx.Amount, EUR(5000))
	}
	if _, ok := l.Debt(debt.ID); ok {
		t.Errorf("debt %q still present after settlement", debt.ID)
	}
	settlements := l.Transactions(func(tx Transaction) bool { return tx.Kind == LinkDebtSettlement })
	if len(settlements) != 1 {
		t.Errorf("found %d settlement transactions, want 1", len(settlements))
	}

	// Settling an owed-to-me debt produces an income.
	owed, err := l.AddDebt(OwedToMe, EUR(300), "bob", "", NewDate(2025, time.February, 2))
	if err != nil {
		t.Fatalf("AddDebt() failed: %v", err)
	}
	tx, err = l.SettleDebt(owed.ID, "main", NewDate(2025, time.June, 2))
	if err != nil {
		t.Fatalf("SettleDebt() failed: %v", err)
	}
	if tx.Type != Income {
		t.Errorf("settlement type = %s, want income", tx.Type)
	}
}

func TestDeleteCascades(t *testing.T) {
	l, loan, deposit, _ := setupLedger(t)
	on := NewDate(2025, time.February, 1)

	repay := NewTransaction(Expense, EUR(1000), "loan", "main", on, "").WithLink(LinkLoanRepayment, loan.ID)
	topup := NewTransaction(Expense, EUR(500), "deposit", "main", on, "").WithLink(LinkDepositTopUp, deposit.ID)
	plain := NewTransaction(Expense, EUR(42), "groceries", "main", on, "")
	for _, tx := range []Transaction{repay, topup, plain} {
		if err := l.Append(tx); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}

	if err := l.DeleteLoan(loan.ID); err != nil {
		t.Fatalf("DeleteLoan() failed: %v", err)
	}
	if _, ok := l.Loan(loan.ID); ok {
		t.Errorf("loan still present after delete")
	}
	// The linked transaction is gone from the main collection; the
	// others stay.
	if _, ok := l.Transaction(repay.ID); ok {
		t.Errorf("linked transaction %q survived the cascade", repay.ID)
	}
	if _, ok := l.Transaction(topup.ID); !ok {
		t.Errorf("unrelated linked transaction was removed")
	}
	if _, ok := l.Transaction(plain.ID); !ok {
		t.Errorf("plain transaction was removed")
	}
	checkInvariants(t, l)
}

func TestEditAndDeleteNotFound(t *testing.T) {
	l, _, _, _ := setupLedger(t)
	tx := NewTransaction(Expense, EUR(42), "groceries", "main", NewDate(2025, time.March, 3), "")
	if err := l.Append(tx); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	if err := l.Edit("nope", tx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Edit(unknown) = %v, want ErrNotFound", err)
	}
	if err := l.Delete("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(unknown) = %v, want ErrNotFound", err)
	}
	if n := len(l.Transactions(AcceptAll)); n != 1 {
		t.Errorf("collections touched by failed operations: %d transactions", n)
	}
}

func TestEditLoanRegeneratesSchedule(t *testing.T) {
	l, loan, _, _ := setupLedger(t)

	repay := NewTransaction(Expense, EUR(1000), "loan", "main", NewDate(2025, time.February, 1), "").
		WithLink(LinkLoanRepayment, loan.ID)
	if err := l.Append(repay); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	edited, err := l.EditLoan(loan.ID, "car", EUR(60000), 6, 24, Annuity, NewDate(2025, time.January, 1))
	if err != nil {
		t.Fatalf("EditLoan() failed: %v", err)
	}
	if len(edited.Schedule) != 24 {
		t.Errorf("schedule has %d rows after edit, want 24", len(edited.Schedule))
	}
	// The cached balance is re-derived against the new principal, the
	// sub-ledger is kept.
	if want := EUR(60000).Sub(EUR(1000)); !edited.CurrentBalance().Equal(want) {
		t.Errorf("balance after edit = %s, want %s", edited.CurrentBalance(), want)
	}

	// An invalid edit changes nothing.
	if _, err := l.EditLoan(loan.ID, "car", EUR(-1), 6, 24, Annuity, NewDate(2025, time.January, 1)); !errors.Is(err, ErrInvalid) {
		t.Errorf("EditLoan(invalid) = %v, want ErrInvalid", err)
	}
	if !loan.Principal.Equal(EUR(60000)) {
		t.Errorf("loan mutated by failed edit: principal %s", loan.Principal)
	}
}

func TestSetBudgetReplacesByCategory(t *testing.T) {
	l, _, _, _ := setupLedger(t)
	if _, err := l.SetBudget("groceries", EUR(800)); err != nil {
		t.Fatalf("SetBudget() failed: %v", err)
	}
	budgets := l.Budgets()
	if len(budgets) != 1 {
		t.Fatalf("found %d budgets, want 1", len(budgets))
	}
	if !budgets[0].Limit.Equal(EUR(800)) {
		t.Errorf("budget limit = %s, want %s", budgets[0].Limit, EUR(800))
	}
}
