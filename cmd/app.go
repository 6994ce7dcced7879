// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finances"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addLoanCmd{}, "products")
	c.Register(&addDepositCmd{}, "products")
	c.Register(&addGoalCmd{}, "products")
	c.Register(&productsCmd{}, "products")
	c.Register(&deleteProductCmd{}, "products")
	c.Register(&scheduleCmd{}, "products")

	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&delCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&debtCmd{}, "debts")
	c.Register(&settleCmd{}, "debts")
	c.Register(&debtsCmd{}, "debts")

	c.Register(&budgetCmd{}, "reports")
	c.Register(&budgetsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&ratesCmd{}, "")
	c.Register(&topicCmd{}, "")
	c.Register(&assistCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var trackerPath = flag.String("ledger-path", ".", "Path to the folder containing ledger files")
var ledgerName = flag.String("ledger", "", "Ledger to use. Defaults to the only ledger if one exists.")

// decodeLedger loads the application ledger.
func decodeLedger() (*finances.Ledger, error) {
	return finances.FindLedger(*trackerPath, *ledgerName)
}

// saveLedger writes the ledger back to its file.
func saveLedger(ledger *finances.Ledger) error {
	return finances.SaveLedger(*trackerPath, ledger)
}

// printMarkdown renders markdown for the terminal. On rendering errors
// the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
