package finances

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l, loan, deposit, goal := setupLedger(t)
	if _, err := l.AddDebt(IOwe, EUR(5000), "alice", "lunch money", NewDate(2025, time.January, 20)); err != nil {
		t.Fatalf("AddDebt() failed: %v", err)
	}
	on := NewDate(2025, time.February, 1)
	txs := []Transaction{
		NewTransaction(Income, EUR(3000), "salary", "main", on, "payday"),
		NewTransaction(Expense, EUR(1000), "loan", "main", on.Add(1), "").WithLink(LinkLoanRepayment, loan.ID),
		NewTransaction(Expense, EUR(500), "deposit", "main", on.Add(2), "").WithLink(LinkDepositTopUp, deposit.ID),
		NewTransaction(Expense, EUR(200), "savings", "main", on.Add(3), "").WithLink(LinkGoalContribution, goal.ID),
	}
	for _, tx := range txs {
		if err := l.Append(tx); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() failed: %v", err)
	}

	got, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}

	// Every transaction survives the round trip.
	want := l.Transactions(AcceptAll)
	back := got.Transactions(AcceptAll)
	if len(back) != len(want) {
		t.Fatalf("decoded %d transactions, want %d", len(back), len(want))
	}
	for i := range want {
		if !back[i].Equal(want[i]) {
			t.Errorf("transaction %d differs:\ngot  %+v\nwant %+v", i, back[i], want[i])
		}
	}

	// Schedules, sub-ledgers and cached balances are not persisted; they
	// must come back re-derived.
	gotLoan, ok := got.Loan(loan.ID)
	if !ok {
		t.Fatalf("loan %q lost in round trip", loan.ID)
	}
	if len(gotLoan.Schedule) != 12 {
		t.Errorf("decoded schedule has %d rows, want 12", len(gotLoan.Schedule))
	}
	if !gotLoan.CurrentBalance().Equal(loan.CurrentBalance()) {
		t.Errorf("decoded loan balance = %s, want %s", gotLoan.CurrentBalance(), loan.CurrentBalance())
	}
	if len(gotLoan.Entries()) != 1 {
		t.Errorf("decoded loan sub-ledger has %d entries, want 1", len(gotLoan.Entries()))
	}

	gotDeposit, ok := got.Deposit(deposit.ID)
	if !ok {
		t.Fatalf("deposit %q lost in round trip", deposit.ID)
	}
	if !gotDeposit.CurrentAmount().Equal(EUR(100500)) {
		t.Errorf("decoded deposit amount = %s, want %s", gotDeposit.CurrentAmount(), EUR(100500))
	}

	gotGoal, ok := got.Goal(goal.ID)
	if !ok {
		t.Fatalf("goal %q lost in round trip", goal.ID)
	}
	if !gotGoal.Current().Equal(EUR(200)) {
		t.Errorf("decoded goal amount = %s, want %s", gotGoal.Current(), EUR(200))
	}

	if len(got.Debts()) != 1 || len(got.Budgets()) != 1 {
		t.Errorf("decoded %d debts and %d budgets, want 1 and 1", len(got.Debts()), len(got.Budgets()))
	}
	checkInvariants(t, got)
}

func TestEncodeProductsFirst(t *testing.T) {
	l, loan, _, _ := setupLedger(t)
	repay := NewTransaction(Expense, EUR(1000), "loan", "main", NewDate(2025, time.February, 1), "").
		WithLink(LinkLoanRepayment, loan.ID)
	if err := l.Append(repay); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() failed: %v", err)
	}

	// Transactions reference products by id, so product lines must come
	// first for the decode replay to resolve them.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	seenTransaction := false
	for _, line := range lines {
		isTransaction := strings.Contains(line, `"record":"transaction"`)
		if seenTransaction && !isTransaction {
			t.Fatalf("product line after a transaction line:\n%s", buf.String())
		}
		seenTransaction = seenTransaction || isTransaction
	}
	if !seenTransaction {
		t.Fatalf("no transaction line in output:\n%s", buf.String())
	}
}

func TestDecodeSkipsEmptyLines(t *testing.T) {
	l, _, _, _ := setupLedger(t)
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() failed: %v", err)
	}
	withBlanks := strings.ReplaceAll(buf.String(), "\n", "\n\n")
	if _, err := DecodeLedger(strings.NewReader(withBlanks)); err != nil {
		t.Errorf("DecodeLedger() failed on blank lines: %v", err)
	}
}

func TestDecodeRejects(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"unknown record", `{"record":"wire-transfer","id":"x"}`},
		{"not json", `this is not json`},
		{"dangling link", `{"record":"transaction","id":"t1","type":"expense","amount":{"currency":"EUR","amount":10},"category":"loan","account":"main","date":"2025-02-01","kind":"loan-repayment","financialItemId":"nope"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.in)); err == nil {
				t.Errorf("DecodeLedger() accepted %q", tc.in)
			}
		})
	}

	// The dangling link surfaces as NotFound through the replay.
	_, err := DecodeLedger(strings.NewReader(testCases[2].in))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("DecodeLedger(dangling link) = %v, want ErrNotFound", err)
	}
}
