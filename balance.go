package finances

// Balance derivation. The cached fields maintained incrementally by the
// mutator are a memoization; the functions here re-derive the same
// values from the sub-ledgers and are the source of truth for integrity
// checks.

// LoanBalance derives a loan's outstanding balance: the principal minus
// the sum of linked repayments. An empty sub-ledger means no movement
// yet and returns the untouched principal. The derived value is never
// clamped; only schedule rows floor at zero for display.
func LoanBalance(loan *Loan) Money {
	balance := loan.Principal
	for _, e := range loan.entries {
		balance = balance.Sub(e.Amount)
	}
	return balance
}

// DepositAmount derives a deposit's current amount: the principal plus
// contributions minus withdrawals, read from the sub-ledger where
// entries carry the deposit's own perspective (income for a top-up,
// expense for a withdrawal).
func DepositAmount(d *Deposit) Money {
	amount := d.Principal
	for _, e := range d.entries {
		if e.Type == Income {
			amount = amount.Add(e.Amount)
		} else {
			amount = amount.Sub(e.Amount)
		}
	}
	return amount
}

// GoalAmount derives a goal's saved amount from its sub-ledger. Goals
// have no principal; the amount starts at zero.
func GoalAmount(g *SavingsGoal) Money {
	var amount Money
	for _, e := range g.entries {
		if e.Type == Income {
			amount = amount.Add(e.Amount)
		} else {
			amount = amount.Sub(e.Amount)
		}
	}
	return amount
}

// Balance re-derives the loan's outstanding balance from its sub-ledger.
func (l *Loan) Balance() Money { return LoanBalance(l) }

// Amount re-derives the deposit's current amount from its sub-ledger.
func (d *Deposit) Amount() Money { return DepositAmount(d) }

// Amount re-derives the goal's saved amount from its sub-ledger.
func (g *SavingsGoal) Amount() Money { return GoalAmount(g) }

// RecomputeBalances re-derives every cached balance from the
// sub-ledgers, replacing whatever the incremental updates produced.
func (l *Ledger) RecomputeBalances() {
	for _, loan := range l.loans {
		loan.balance = LoanBalance(loan)
	}
	for _, d := range l.deposits {
		d.amount = DepositAmount(d)
	}
	for _, g := range l.goals {
		g.current = GoalAmount(g)
	}
}
