package finances

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger file is JSONL: one record per line, tagged with a "record"
// field. Products come first so that transactions can link to them on
// decode. Schedules, sub-ledgers and cached balances are not persisted:
// they are derived again wholesale when the file is read back.

// record tags used to identify JSONL lines.
const (
	recLoan        = "loan"
	recDeposit     = "deposit"
	recDebt        = "debt"
	recBudget      = "budget"
	recGoal        = "goal"
	recTransaction = "transaction"
)

// loanRecord is a specialized struct for the loan product line.
type loanRecord struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Principal    Money       `json:"principal"`
	InterestRate float64     `json:"rate"`
	TermMonths   int         `json:"term"`
	PaymentType  PaymentType `json:"paymentType"`
	Start        Date        `json:"start"`
}

// depositRecord is a specialized struct for the deposit product line.
type depositRecord struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Principal      Money          `json:"principal"`
	InterestRate   float64        `json:"rate"`
	TermMonths     int            `json:"term"`
	DepositType    DepositType    `json:"depositType"`
	Capitalization Capitalization `json:"capitalization,omitempty"`
	Start          Date           `json:"start"`
}

// goalRecord is a specialized struct for the savings goal line.
type goalRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Target   Money  `json:"target"`
	Deadline Date   `json:"deadline"`
}

func writeRecord(w io.Writer, tag string, payload any) error {
	var obj jsonObjectWriter
	obj.Append("record", tag)
	obj.EmbedFrom(payload)
	data, err := obj.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// EncodeLedger writes the ledger to a stream of JSONL data in canonical
// form: products first, then transactions in chronological order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()

	for _, loan := range ledger.loans {
		rec := loanRecord{loan.ID, loan.Name, loan.Principal, loan.InterestRate, loan.TermMonths, loan.PaymentType, loan.Start}
		if err := writeRecord(w, recLoan, rec); err != nil {
			return err
		}
	}
	for _, d := range ledger.deposits {
		rec := depositRecord{d.ID, d.Name, d.Principal, d.InterestRate, d.TermMonths, d.DepositType, d.Capitalization, d.Start}
		if err := writeRecord(w, recDeposit, rec); err != nil {
			return err
		}
	}
	for _, g := range ledger.goals {
		rec := goalRecord{g.ID, g.Title, g.Target, g.Deadline}
		if err := writeRecord(w, recGoal, rec); err != nil {
			return err
		}
	}
	for _, d := range ledger.debts {
		if err := writeRecord(w, recDebt, d); err != nil {
			return err
		}
	}
	for _, b := range ledger.budgets {
		if err := writeRecord(w, recBudget, b); err != nil {
			return err
		}
	}
	for _, tx := range ledger.transactions {
		if err := writeRecord(w, recTransaction, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger decodes records from a stream of JSONL data, rebuilds the
// product schedules and sub-ledgers, and returns a sorted Ledger with
// every cached balance re-derived.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		switch identifier.Record {
		case recLoan:
			var rec loanRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			loan := &Loan{
				ID:           rec.ID,
				Name:         rec.Name,
				Principal:    rec.Principal,
				InterestRate: rec.InterestRate,
				TermMonths:   rec.TermMonths,
				PaymentType:  rec.PaymentType,
				Start:        rec.Start,
				balance:      rec.Principal,
			}
			if err := loan.recalculate(); err != nil {
				return nil, fmt.Errorf("invalid loan %q: %w", rec.Name, err)
			}
			ledger.loans = append(ledger.loans, loan)
			ledger.loanIndex[loan.ID] = loan
		case recDeposit:
			var rec depositRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			d := &Deposit{
				ID:             rec.ID,
				Name:           rec.Name,
				Principal:      rec.Principal,
				InterestRate:   rec.InterestRate,
				TermMonths:     rec.TermMonths,
				DepositType:    rec.DepositType,
				Capitalization: rec.Capitalization,
				Start:          rec.Start,
				amount:         rec.Principal,
			}
			if err := d.recalculate(); err != nil {
				return nil, fmt.Errorf("invalid deposit %q: %w", rec.Name, err)
			}
			ledger.deposits = append(ledger.deposits, d)
			ledger.depositIndex[d.ID] = d
		case recGoal:
			var rec goalRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			g := &SavingsGoal{ID: rec.ID, Title: rec.Title, Target: rec.Target, Deadline: rec.Deadline}
			ledger.goals = append(ledger.goals, g)
			ledger.goalIndex[g.ID] = g
		case recDebt:
			var d Debt
			if err := json.Unmarshal(line, &d); err != nil {
				return nil, err
			}
			ledger.debts = append(ledger.debts, &d)
		case recBudget:
			var b Budget
			if err := json.Unmarshal(line, &b); err != nil {
				return nil, err
			}
			ledger.budgets = append(ledger.budgets, &b)
		case recTransaction:
			var tx Transaction
			if err := json.Unmarshal(line, &tx); err != nil {
				return nil, err
			}
			if err := ledger.Append(tx); err != nil {
				return nil, fmt.Errorf("invalid transaction line %q: %w", string(line), err)
			}
		default:
			return nil, fmt.Errorf("unknown record %q in line %q", identifier.Record, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	ledger.stableSort()
	return ledger, nil
}
