package finances

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Ledger is the full in-memory state tree of the tracker: the main
// transaction collection and the entity collections it can reference.
//
// In a Ledger transactions are always in chronological order. There is
// exactly one logical writer; all operations are synchronous and either
// complete or fail before any mutation (validate-then-commit).
type Ledger struct {
	name string

	transactions []Transaction
	loans        []*Loan
	deposits     []*Deposit
	debts        []*Debt
	budgets      []*Budget
	goals        []*SavingsGoal

	loanIndex    map[string]*Loan
	depositIndex map[string]*Deposit
	goalIndex    map[string]*SavingsGoal
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		loanIndex:    make(map[string]*Loan),
		depositIndex: make(map[string]*Deposit),
		goalIndex:    make(map[string]*SavingsGoal),
	}
}

// Name returns the ledger name, set by the loader from its file path.
func (l *Ledger) Name() string { return l.name }

// AcceptAll is a transaction filter that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// Transactions returns the transactions accepted by the filter, in
// chronological order.
func (l *Ledger) Transactions(accept func(Transaction) bool) []Transaction {
	out := make([]Transaction, 0, len(l.transactions))
	for _, tx := range l.transactions {
		if accept(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// Transaction returns the transaction with this id.
func (l *Ledger) Transaction(id string) (Transaction, bool) {
	if i := l.txIndex(id); i >= 0 {
		return l.transactions[i], true
	}
	return Transaction{}, false
}

func (l *Ledger) txIndex(id string) int {
	return slices.IndexFunc(l.transactions, func(tx Transaction) bool { return tx.ID == id })
}

// Loan returns the loan with this id.
func (l *Ledger) Loan(id string) (*Loan, bool) { loan, ok := l.loanIndex[id]; return loan, ok }

// Deposit returns the deposit with this id.
func (l *Ledger) Deposit(id string) (*Deposit, bool) { d, ok := l.depositIndex[id]; return d, ok }

// Goal returns the savings goal with this id.
func (l *Ledger) Goal(id string) (*SavingsGoal, bool) { g, ok := l.goalIndex[id]; return g, ok }

// Debt returns the debt with this id.
func (l *Ledger) Debt(id string) (*Debt, bool) {
	for _, d := range l.debts {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

func (l *Ledger) Loans() []*Loan        { return slices.Clone(l.loans) }
func (l *Ledger) Deposits() []*Deposit  { return slices.Clone(l.deposits) }
func (l *Ledger) Debts() []*Debt        { return slices.Clone(l.debts) }
func (l *Ledger) Budgets() []*Budget    { return slices.Clone(l.budgets) }
func (l *Ledger) Goals() []*SavingsGoal { return slices.Clone(l.goals) }

func (l *Ledger) stableSort() {
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
}

// normalize forces the main-record direction implied by the link kind: a
// deposit top-up is cash leaving the primary account, a withdrawal is
// cash entering it. Goals mirror deposits.
func normalize(tx Transaction) Transaction {
	switch tx.Kind {
	case LinkDepositTopUp, LinkGoalContribution:
		tx.Type = Expense
	case LinkDepositWithdrawal, LinkGoalWithdrawal:
		tx.Type = Income
	}
	return tx
}

// subEntry returns the record appended to the product's sub-ledger for
// this main transaction. Deposit and goal entries carry the opposite
// direction: the product's own perspective of the movement. Loan entries
// keep the original type.
func subEntry(tx Transaction) Transaction {
	switch tx.Kind {
	case LinkDepositTopUp, LinkGoalContribution:
		tx.Type = Income
	case LinkDepositWithdrawal, LinkGoalWithdrawal:
		tx.Type = Expense
	}
	return tx
}

// checkLink verifies that the product referenced by the transaction
// exists. It is called before any mutation.
func (l *Ledger) checkLink(tx Transaction) error {
	switch tx.Kind {
	case LinkLoanRepayment:
		if _, ok := l.loanIndex[tx.FinancialItemID]; !ok {
			return notFoundf("loan %q", tx.FinancialItemID)
		}
	case LinkDepositTopUp, LinkDepositWithdrawal:
		if _, ok := l.depositIndex[tx.FinancialItemID]; !ok {
			return notFoundf("deposit %q", tx.FinancialItemID)
		}
	case LinkGoalContribution, LinkGoalWithdrawal:
		if _, ok := l.goalIndex[tx.FinancialItemID]; !ok {
			return notFoundf("savings goal %q", tx.FinancialItemID)
		}
	}
	return nil
}

// applyEffect applies the transaction's side effect on the linked
// product: appends to its sub-ledger and adjusts its cached balance.
// The link has been checked; applyEffect cannot fail.
func (l *Ledger) applyEffect(tx Transaction) {
	switch tx.Kind {
	case LinkLoanRepayment:
		loan := l.loanIndex[tx.FinancialItemID]
		loan.entries = append(loan.entries, subEntry(tx))
		loan.balance = loan.balance.Sub(tx.Amount)
	case LinkDepositTopUp:
		d := l.depositIndex[tx.FinancialItemID]
		d.entries = append(d.entries, subEntry(tx))
		d.amount = d.amount.Add(tx.Amount)
	case LinkDepositWithdrawal:
		d := l.depositIndex[tx.FinancialItemID]
		d.entries = append(d.entries, subEntry(tx))
		d.amount = d.amount.Sub(tx.Amount)
	case LinkGoalContribution:
		g := l.goalIndex[tx.FinancialItemID]
		g.entries = append(g.entries, subEntry(tx))
		g.current = g.current.Add(tx.Amount)
	case LinkGoalWithdrawal:
		g := l.goalIndex[tx.FinancialItemID]
		g.entries = append(g.entries, subEntry(tx))
		g.current = g.current.Sub(tx.Amount)
	}
}

// reverseEffect undoes the transaction's side effect on the linked
// product, using the transaction's own (old) kind, amount and item id.
func (l *Ledger) reverseEffect(tx Transaction) {
	remove := func(entries []Transaction) []Transaction {
		return slices.DeleteFunc(entries, func(e Transaction) bool { return e.ID == tx.ID })
	}
	switch tx.Kind {
	case LinkLoanRepayment:
		loan := l.loanIndex[tx.FinancialItemID]
		loan.entries = remove(loan.entries)
		loan.balance = loan.balance.Add(tx.Amount)
	case LinkDepositTopUp:
		d := l.depositIndex[tx.FinancialItemID]
		d.entries = remove(d.entries)
		d.amount = d.amount.Sub(tx.Amount)
	case LinkDepositWithdrawal:
		d := l.depositIndex[tx.FinancialItemID]
		d.entries = remove(d.entries)
		d.amount = d.amount.Add(tx.Amount)
	case LinkGoalContribution:
		g := l.goalIndex[tx.FinancialItemID]
		g.entries = remove(g.entries)
		g.current = g.current.Sub(tx.Amount)
	case LinkGoalWithdrawal:
		g := l.goalIndex[tx.FinancialItemID]
		g.entries = remove(g.entries)
		g.current = g.current.Add(tx.Amount)
	}
}

// Append validates a transaction and appends it to the ledger, applying
// its side effect on the linked product if any. The record's direction
// is normalized from its link kind first.
func (l *Ledger) Append(tx Transaction) error {
	tx = normalize(tx)
	if err := tx.Validate(); err != nil {
		return err
	}
	if _, ok := l.Transaction(tx.ID); ok {
		return invalidf("transaction %q already exists", tx.ID)
	}
	if err := l.checkLink(tx); err != nil {
		return err
	}
	l.transactions = append(l.transactions, tx)
	l.applyEffect(tx)
	l.stableSort()
	return nil
}

// Edit replaces the transaction with this id. It reverses the old
// record's effect using its old kind, amount and item id, then applies
// the new record's effect onto the already-reversed balance, then
// replaces the record in the main collection and the sub-ledgers.
//
// Reversing with the old values before applying the new ones is what
// keeps both products correct when the edit moves the transaction to
// another loan or deposit.
func (l *Ledger) Edit(id string, replacement Transaction) error {
	i := l.txIndex(id)
	if i < 0 {
		return notFoundf("transaction %q", id)
	}
	old := l.transactions[i]

	replacement.ID = id
	replacement = normalize(replacement)
	if err := replacement.Validate(); err != nil {
		return err
	}
	// Both the old and the new link must resolve before any mutation.
	if err := l.checkLink(old); err != nil {
		return err
	}
	if err := l.checkLink(replacement); err != nil {
		return err
	}

	l.reverseEffect(old)
	l.applyEffect(replacement)
	l.transactions[i] = replacement
	l.stableSort()
	return nil
}

// Delete removes the transaction with this id, reversing its effect on
// the linked product and removing it from the product's sub-ledger.
func (l *Ledger) Delete(id string) error {
	i := l.txIndex(id)
	if i < 0 {
		return notFoundf("transaction %q", id)
	}
	old := l.transactions[i]
	if err := l.checkLink(old); err != nil {
		return err
	}
	l.reverseEffect(old)
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return nil
}

// AddLoan creates a loan from its parameters. The schedule and summary
// are computed first; an invalid calculation creates nothing.
func (l *Ledger) AddLoan(name string, principal Money, annualRatePercent float64, termMonths int, paymentType PaymentType, start Date) (*Loan, error) {
	if name == "" {
		return nil, invalidf("loan has no name")
	}
	if _, err := ParsePaymentType(string(paymentType)); err != nil {
		return nil, invalidf("%v", err)
	}
	loan := &Loan{
		ID:           uuid.NewString(),
		Name:         name,
		Principal:    principal,
		InterestRate: annualRatePercent,
		TermMonths:   termMonths,
		PaymentType:  paymentType,
		Start:        start,
		balance:      principal,
	}
	if err := loan.recalculate(); err != nil {
		return nil, err
	}
	l.loans = append(l.loans, loan)
	l.loanIndex[loan.ID] = loan
	return loan, nil
}

// EditLoan replaces the loan's parameters and regenerates its schedule
// wholesale. The sub-ledger is kept and the cached balance re-derived.
func (l *Ledger) EditLoan(id, name string, principal Money, annualRatePercent float64, termMonths int, paymentType PaymentType, start Date) (*Loan, error) {
	loan, ok := l.loanIndex[id]
	if !ok {
		return nil, notFoundf("loan %q", id)
	}
	if name == "" {
		return nil, invalidf("loan has no name")
	}
	if _, err := ParsePaymentType(string(paymentType)); err != nil {
		return nil, invalidf("%v", err)
	}
	candidate := *loan
	candidate.Name = name
	candidate.Principal = principal
	candidate.InterestRate = annualRatePercent
	candidate.TermMonths = termMonths
	candidate.PaymentType = paymentType
	candidate.Start = start
	if err := candidate.recalculate(); err != nil {
		return nil, err
	}
	*loan = candidate
	loan.balance = LoanBalance(loan)
	return loan, nil
}

// DeleteLoan removes the loan and cascades: every transaction linked to
// it is removed from the main collection together with the sub-ledger.
func (l *Ledger) DeleteLoan(id string) error {
	if _, ok := l.loanIndex[id]; !ok {
		return notFoundf("loan %q", id)
	}
	l.dropItem(id)
	delete(l.loanIndex, id)
	l.loans = slices.DeleteFunc(l.loans, func(loan *Loan) bool { return loan.ID == id })
	return nil
}

// AddDeposit creates a deposit from its parameters. The maturity summary
// is computed first; an invalid calculation creates nothing.
func (l *Ledger) AddDeposit(name string, principal Money, annualRatePercent float64, termMonths int, depositType DepositType, capitalization Capitalization, start Date) (*Deposit, error) {
	if name == "" {
		return nil, invalidf("deposit has no name")
	}
	if _, err := ParseDepositType(string(depositType)); err != nil {
		return nil, invalidf("%v", err)
	}
	d := &Deposit{
		ID:             uuid.NewString(),
		Name:           name,
		Principal:      principal,
		InterestRate:   annualRatePercent,
		TermMonths:     termMonths,
		DepositType:    depositType,
		Capitalization: capitalization,
		Start:          start,
		amount:         principal,
	}
	if err := d.recalculate(); err != nil {
		return nil, err
	}
	l.deposits = append(l.deposits, d)
	l.depositIndex[d.ID] = d
	return d, nil
}

// EditDeposit replaces the deposit's parameters and regenerates its
// maturity summary wholesale.
func (l *Ledger) EditDeposit(id, name string, principal Money, annualRatePercent float64, termMonths int, depositType DepositType, capitalization Capitalization, start Date) (*Deposit, error) {
	d, ok := l.depositIndex[id]
	if !ok {
		return nil, notFoundf("deposit %q", id)
	}
	if name == "" {
		return nil, invalidf("deposit has no name")
	}
	if _, err := ParseDepositType(string(depositType)); err != nil {
		return nil, invalidf("%v", err)
	}
	candidate := *d
	candidate.Name = name
	candidate.Principal = principal
	candidate.InterestRate = annualRatePercent
	candidate.TermMonths = termMonths
	candidate.DepositType = depositType
	candidate.Capitalization = capitalization
	candidate.Start = start
	if err := candidate.recalculate(); err != nil {
		return nil, err
	}
	*d = candidate
	d.amount = DepositAmount(d)
	return d, nil
}

// DeleteDeposit removes the deposit and cascades like DeleteLoan.
func (l *Ledger) DeleteDeposit(id string) error {
	if _, ok := l.depositIndex[id]; !ok {
		return notFoundf("deposit %q", id)
	}
	l.dropItem(id)
	delete(l.depositIndex, id)
	l.deposits = slices.DeleteFunc(l.deposits, func(d *Deposit) bool { return d.ID == id })
	return nil
}

// AddDebt records an informal debt.
func (l *Ledger) AddDebt(direction DebtDirection, amount Money, person, description string, on Date) (*Debt, error) {
	d := &Debt{
		ID:          uuid.NewString(),
		Direction:   direction,
		Amount:      amount,
		Person:      person,
		Description: description,
		Date:        on,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	l.debts = append(l.debts, d)
	return d, nil
}

// SettleDebt settles a debt in full: it appends exactly one transaction
// (expense when the user owed the money, income when it was owed to
// them) and deletes the debt unconditionally.
func (l *Ledger) SettleDebt(debtID, account string, on Date) (Transaction, error) {
	debt, ok := l.Debt(debtID)
	if !ok {
		return Transaction{}, notFoundf("debt %q", debtID)
	}
	t := Expense
	if debt.Direction == OwedToMe {
		t = Income
	}
	tx := NewTransaction(t, debt.Amount, "debt", account, on, fmt.Sprintf("settled with %s", debt.Person))
	tx.Kind = LinkDebtSettlement
	tx.DebtID = debtID
	if err := l.Append(tx); err != nil {
		return Transaction{}, err
	}
	l.debts = slices.DeleteFunc(l.debts, func(d *Debt) bool { return d.ID == debtID })
	return tx, nil
}

// SetBudget creates or replaces the budget for a category.
func (l *Ledger) SetBudget(category string, limit Money) (*Budget, error) {
	b := &Budget{ID: uuid.NewString(), Category: category, Limit: limit}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	for i, old := range l.budgets {
		if old.Category == category {
			b.ID = old.ID
			l.budgets[i] = b
			return b, nil
		}
	}
	l.budgets = append(l.budgets, b)
	return b, nil
}

// DeleteBudget removes the budget with this id.
func (l *Ledger) DeleteBudget(id string) error {
	n := len(l.budgets)
	l.budgets = slices.DeleteFunc(l.budgets, func(b *Budget) bool { return b.ID == id })
	if len(l.budgets) == n {
		return notFoundf("budget %q", id)
	}
	return nil
}

// AddGoal creates a savings goal. The saved amount starts at zero and is
// derived from linked transactions afterwards.
func (l *Ledger) AddGoal(title string, target Money, deadline Date) (*SavingsGoal, error) {
	if title == "" {
		return nil, invalidf("savings goal has no title")
	}
	if !target.IsPositive() {
		return nil, invalidf("savings goal target must be positive, got %s", target)
	}
	g := &SavingsGoal{
		ID:       uuid.NewString(),
		Title:    title,
		Target:   target,
		Deadline: deadline,
	}
	l.goals = append(l.goals, g)
	l.goalIndex[g.ID] = g
	return g, nil
}

// DeleteGoal removes the goal and cascades like DeleteLoan.
func (l *Ledger) DeleteGoal(id string) error {
	if _, ok := l.goalIndex[id]; !ok {
		return notFoundf("savings goal %q", id)
	}
	l.dropItem(id)
	delete(l.goalIndex, id)
	l.goals = slices.DeleteFunc(l.goals, func(g *SavingsGoal) bool { return g.ID == id })
	return nil
}

// dropItem removes every main-ledger transaction linked to the financial
// item. The sub-ledger dies with the entity, so no reversal is needed.
func (l *Ledger) dropItem(itemID string) {
	l.transactions = slices.DeleteFunc(l.transactions, func(tx Transaction) bool {
		return tx.FinancialItemID == itemID
	})
}
