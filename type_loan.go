package finances

import "slices"

// Loan is a borrowed financial product. Repayments are transactions
// linked to it with LinkLoanRepayment; the outstanding balance is the
// principal minus the sum of linked repayments.
type Loan struct {
	ID           string
	Name         string
	Principal    Money
	InterestRate float64 // annual percent
	TermMonths   int
	PaymentType  PaymentType
	Start        Date

	// Summary and schedule, regenerated wholesale from the parameters
	// above whenever they change.
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
	Schedule       []PaymentRow

	balance Money         // cached outstanding balance, maintained by the mutator
	entries []Transaction // sub-ledger of linked repayments
}

// amortizationInput returns the calculator input for the loan parameters.
func (l *Loan) amortizationInput() AmortizationInput {
	kind := LoanAnnuity
	if l.PaymentType == Differentiated {
		kind = LoanDifferentiated
	}
	return AmortizationInput{
		Kind:              kind,
		Principal:         l.Principal.AsFloat(),
		AnnualRatePercent: l.InterestRate,
		TermMonths:        l.TermMonths,
		Start:             l.Start,
	}
}

// recalculate regenerates the schedule and summary from the parameters.
func (l *Loan) recalculate() error {
	a, err := ComputeAmortization(l.amortizationInput())
	if err != nil {
		return err
	}
	l.MonthlyPayment = a.MonthlyPayment
	l.TotalPayment = a.TotalPayment
	l.TotalInterest = a.TotalInterest
	l.Schedule = a.Schedule
	return nil
}

// CurrentBalance returns the cached outstanding balance. It is kept in
// sync by every mutation; Balance re-derives it from the sub-ledger.
func (l *Loan) CurrentBalance() Money { return l.balance }

// Entries returns a copy of the loan's transaction sub-ledger.
func (l *Loan) Entries() []Transaction { return slices.Clone(l.entries) }
