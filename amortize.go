package finances

import (
	"fmt"
	"math"
	"time"
)

// PaymentType selects how a loan is repaid.
type PaymentType string

const (
	// Annuity keeps the total monthly payment constant over the term; the
	// interest/principal split shifts over time.
	Annuity PaymentType = "annuity"
	// Differentiated keeps the principal portion constant; the total
	// payment decreases over time.
	Differentiated PaymentType = "differentiated"
)

// ParsePaymentType parses a string into a PaymentType.
func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case Annuity:
		return Annuity, nil
	case Differentiated:
		return Differentiated, nil
	default:
		return "", fmt.Errorf("unknown payment type %q", s)
	}
}

// DepositType selects how a deposit earns interest.
type DepositType string

const (
	Simple   DepositType = "simple"
	Compound DepositType = "compound"
)

// ParseDepositType parses a string into a DepositType.
func ParseDepositType(s string) (DepositType, error) {
	switch DepositType(s) {
	case Simple:
		return Simple, nil
	case Compound:
		return Compound, nil
	default:
		return "", fmt.Errorf("unknown deposit type %q", s)
	}
}

// Capitalization is how often compound interest is added to the principal.
type Capitalization string

const (
	CapDaily     Capitalization = "daily"
	CapMonthly   Capitalization = "monthly"
	CapQuarterly Capitalization = "quarterly"
)

// ParseCapitalization parses a string into a Capitalization.
func ParseCapitalization(s string) (Capitalization, error) {
	switch Capitalization(s) {
	case CapDaily:
		return CapDaily, nil
	case CapMonthly:
		return CapMonthly, nil
	case CapQuarterly:
		return CapQuarterly, nil
	default:
		return "", fmt.Errorf("unknown capitalization period %q", s)
	}
}

// AmortizationKind selects the formula used by ComputeAmortization.
type AmortizationKind string

const (
	LoanAnnuity        AmortizationKind = "loan-annuity"
	LoanDifferentiated AmortizationKind = "loan-differentiated"
	DepositSimple      AmortizationKind = "deposit-simple"
	DepositCompound    AmortizationKind = "deposit-compound"
)

// daysPerMonth is the calendar approximation used for deposit day counts.
const daysPerMonth = 365.0 / 12.0

// AmortizationInput holds the product parameters of a schedule computation.
type AmortizationInput struct {
	Kind              AmortizationKind
	Principal         float64
	AnnualRatePercent float64
	TermMonths        int
	Capitalization    Capitalization // compound deposits only
	Start             Date           // schedule dates are first-of-month offsets from here
}

// Validate checks the input. A product must not be persisted without a
// successful calculation.
func (in AmortizationInput) Validate() error {
	if math.IsNaN(in.Principal) || math.IsInf(in.Principal, 0) || in.Principal <= 0 {
		return invalidf("principal must be positive, got %v", in.Principal)
	}
	if math.IsNaN(in.AnnualRatePercent) || math.IsInf(in.AnnualRatePercent, 0) || in.AnnualRatePercent < 0 {
		return invalidf("annual rate must not be negative, got %v", in.AnnualRatePercent)
	}
	if in.TermMonths <= 0 {
		return invalidf("term must be a positive number of months, got %d", in.TermMonths)
	}
	switch in.Kind {
	case LoanAnnuity, LoanDifferentiated, DepositSimple:
	case DepositCompound:
		if _, err := ParseCapitalization(string(in.Capitalization)); err != nil {
			return invalidf("%v", err)
		}
	default:
		return invalidf("unknown amortization kind %q", in.Kind)
	}
	return nil
}

// PaymentRow is one schedule entry. Rows are generated wholesale at
// product creation or edit time, never patched incrementally.
type PaymentRow struct {
	Month            int     `json:"month"` // 1..term
	Payment          float64 `json:"payment"`
	PrincipalPortion float64 `json:"principal"`
	InterestPortion  float64 `json:"interest"`
	RemainingBalance float64 `json:"balance"` // floored at 0 for display
	Date             Date    `json:"date"`
}

// Amortization is the result of a schedule computation. Values are plain
// floating-point; rounding is a display concern.
type Amortization struct {
	// MonthlyPayment is 0 for deposits. For differentiated loans it is
	// the first row's payment, a representative value only.
	MonthlyPayment float64
	// TotalPayment is the total paid over a loan's term, or the total at
	// maturity for a deposit.
	TotalPayment  float64
	TotalInterest float64
	Schedule      []PaymentRow // empty for deposits
}

// ComputeAmortization turns product parameters into a schedule and
// summary totals. It is pure: identical inputs yield identical results.
func ComputeAmortization(in AmortizationInput) (*Amortization, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	switch in.Kind {
	case LoanAnnuity:
		return annuitySchedule(in), nil
	case LoanDifferentiated:
		return differentiatedSchedule(in), nil
	case DepositSimple:
		return simpleInterest(in), nil
	default:
		return compoundInterest(in), nil
	}
}

// rowDate returns the date of the k-th schedule row: the first of the
// month, k months after the schedule creation date.
func rowDate(start Date, k int) Date {
	return NewDate(start.Year(), start.Month()+time.Month(k), 1)
}

func annuitySchedule(in AmortizationInput) *Amortization {
	n := in.TermMonths
	i := in.AnnualRatePercent / 100 / 12

	var payment float64
	if i > 0 {
		pow := math.Pow(1+i, float64(n))
		payment = in.Principal * i * pow / (pow - 1)
	} else {
		payment = in.Principal / float64(n)
	}

	schedule := make([]PaymentRow, 0, n)
	balance := in.Principal
	for k := 1; k <= n; k++ {
		interest := balance * i
		principal := payment - interest
		balance -= principal
		schedule = append(schedule, PaymentRow{
			Month:            k,
			Payment:          payment,
			PrincipalPortion: principal,
			InterestPortion:  interest,
			RemainingBalance: math.Max(balance, 0),
			Date:             rowDate(in.Start, k),
		})
	}

	total := payment * float64(n)
	return &Amortization{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - in.Principal,
		Schedule:       schedule,
	}
}

func differentiatedSchedule(in AmortizationInput) *Amortization {
	n := in.TermMonths
	i := in.AnnualRatePercent / 100 / 12
	principal := in.Principal / float64(n)

	schedule := make([]PaymentRow, 0, n)
	balance := in.Principal
	var total float64
	for k := 1; k <= n; k++ {
		interest := balance * i
		payment := principal + interest
		balance -= principal
		total += payment
		schedule = append(schedule, PaymentRow{
			Month:            k,
			Payment:          payment,
			PrincipalPortion: principal,
			InterestPortion:  interest,
			RemainingBalance: math.Max(balance, 0),
			Date:             rowDate(in.Start, k),
		})
	}

	return &Amortization{
		MonthlyPayment: schedule[0].Payment,
		TotalPayment:   total,
		TotalInterest:  total - in.Principal,
		Schedule:       schedule,
	}
}

func simpleInterest(in AmortizationInput) *Amortization {
	days := float64(in.TermMonths) * daysPerMonth
	interest := in.Principal * in.AnnualRatePercent * days / 365 / 100
	return &Amortization{
		TotalPayment:  in.Principal + interest,
		TotalInterest: interest,
	}
}

func compoundInterest(in AmortizationInput) *Amortization {
	rate := in.AnnualRatePercent / 100
	var value float64
	switch in.Capitalization {
	case CapDaily:
		days := float64(in.TermMonths) * daysPerMonth
		value = in.Principal * math.Pow(1+rate/365, days)
	case CapMonthly:
		value = in.Principal * math.Pow(1+rate/12, float64(in.TermMonths))
	case CapQuarterly:
		value = in.Principal * math.Pow(1+rate/4, float64(in.TermMonths)/3)
	}
	return &Amortization{
		TotalPayment:  value,
		TotalInterest: value - in.Principal,
	}
}
