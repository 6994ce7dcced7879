// Package renderer turns ledger data into markdown reports.
package renderer

import (
	"fmt"

	"github.com/etnz/finances"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx finances.Transaction) string {
	switch tx.Kind {
	case finances.LinkLoanRepayment:
		return fmt.Sprintf("%s Repaid %s on loan %s", tx.Date, tx.Amount, tx.FinancialItemID)
	case finances.LinkDepositTopUp:
		return fmt.Sprintf("%s Topped up deposit %s with %s", tx.Date, tx.FinancialItemID, tx.Amount)
	case finances.LinkDepositWithdrawal:
		return fmt.Sprintf("%s Withdrew %s from deposit %s", tx.Date, tx.Amount, tx.FinancialItemID)
	case finances.LinkDebtSettlement:
		return fmt.Sprintf("%s Settled debt %s with %s", tx.Date, tx.DebtID, tx.Amount)
	case finances.LinkGoalContribution:
		return fmt.Sprintf("%s Contributed %s to goal %s", tx.Date, tx.Amount, tx.FinancialItemID)
	case finances.LinkGoalWithdrawal:
		return fmt.Sprintf("%s Took %s back from goal %s", tx.Date, tx.Amount, tx.FinancialItemID)
	}
	verb := "Received"
	if tx.Type == finances.Expense {
		verb = "Spent"
	}
	if tx.Description != "" {
		return fmt.Sprintf("%s %s %s on %s (%s)", tx.Date, verb, tx.Amount, tx.Category, tx.Description)
	}
	return fmt.Sprintf("%s %s %s on %s", tx.Date, verb, tx.Amount, tx.Category)
}
