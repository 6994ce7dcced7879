package finances

// Period filtering and aggregates, derived on read from the transaction
// collection. Nothing here is stored.

// FilterByPeriod returns the subsequence of transactions whose date
// falls within the range, boundaries included. A zero range keeps every
// transaction.
func FilterByPeriod(txs []Transaction, r Range) []Transaction {
	if r.IsZero() {
		return txs
	}
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if r.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	return out
}

// Summary holds the income/expense aggregates over a period.
type Summary struct {
	Range         Range
	TotalIncome   Money
	TotalExpenses Money
	// TotalBudget is what remains of the period's income after its
	// expenses.
	TotalBudget Money
}

// NewSummary computes the income/expense aggregates over the range.
func NewSummary(l *Ledger, r Range) *Summary {
	s := &Summary{Range: r}
	for _, tx := range FilterByPeriod(l.transactions, r) {
		switch tx.Type {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		case Expense:
			s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
		}
	}
	s.TotalBudget = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// SpentForCategory sums the expense amounts of the category within the
// range.
func SpentForCategory(txs []Transaction, category string, r Range) Money {
	var spent Money
	for _, tx := range FilterByPeriod(txs, r) {
		if tx.Type == Expense && tx.Category == category {
			spent = spent.Add(tx.Amount)
		}
	}
	return spent
}

// BudgetLine is one budget with its derived spending for the period.
type BudgetLine struct {
	Budget    Budget
	Spent     Money
	Remaining Money // Limit - Spent; negative when overspent
}

// BudgetReport aggregates every budget over a period.
type BudgetReport struct {
	Range        Range
	Lines        []BudgetLine
	TotalPlanned Money // sum of limits
	TotalSpent   Money // sum of per-category spending in the period
}

// NewBudgetReport derives the spending of every budget's category over
// the range.
func NewBudgetReport(l *Ledger, r Range) *BudgetReport {
	report := &BudgetReport{Range: r}
	for _, b := range l.budgets {
		spent := SpentForCategory(l.transactions, b.Category, r)
		report.Lines = append(report.Lines, BudgetLine{
			Budget:    *b,
			Spent:     spent,
			Remaining: b.Limit.Sub(spent),
		})
		report.TotalPlanned = report.TotalPlanned.Add(b.Limit)
		report.TotalSpent = report.TotalSpent.Add(spent)
	}
	return report
}
