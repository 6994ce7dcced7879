package finances

import "slices"

// Deposit is a savings financial product. Top-ups and withdrawals are
// transactions linked to it; the current amount is the principal plus
// contributions minus withdrawals.
type Deposit struct {
	ID             string
	Name           string
	Principal      Money
	InterestRate   float64 // annual percent
	TermMonths     int
	DepositType    DepositType
	Capitalization Capitalization // compound only
	Start          Date

	// Maturity summary, regenerated wholesale from the parameters above.
	TotalAtMaturity float64
	TotalInterest   float64

	amount  Money         // cached current amount, maintained by the mutator
	entries []Transaction // sub-ledger, recorded from the deposit's own perspective
}

func (d *Deposit) amortizationInput() AmortizationInput {
	kind := DepositSimple
	if d.DepositType == Compound {
		kind = DepositCompound
	}
	return AmortizationInput{
		Kind:              kind,
		Principal:         d.Principal.AsFloat(),
		AnnualRatePercent: d.InterestRate,
		TermMonths:        d.TermMonths,
		Capitalization:    d.Capitalization,
		Start:             d.Start,
	}
}

// recalculate regenerates the maturity summary from the parameters.
func (d *Deposit) recalculate() error {
	a, err := ComputeAmortization(d.amortizationInput())
	if err != nil {
		return err
	}
	d.TotalAtMaturity = a.TotalPayment
	d.TotalInterest = a.TotalInterest
	return nil
}

// CurrentAmount returns the cached current amount. It is kept in sync by
// every mutation; Amount re-derives it from the sub-ledger.
func (d *Deposit) CurrentAmount() Money { return d.amount }

// Entries returns a copy of the deposit's transaction sub-ledger.
func (d *Deposit) Entries() []Transaction { return slices.Clone(d.entries) }
