package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finances/renderer"
	"github.com/google/subcommands"
)

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list loans, deposits and savings goals" }
func (*productsCmd) Usage() string {
	return `fin products

  Lists every loan, deposit and savings goal with its current derived
  state.
`
}

func (*productsCmd) SetFlags(f *flag.FlagSet) {}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProductsMarkdown(ledger))
	return subcommands.ExitSuccess
}

type deleteProductCmd struct {
	id string
}

func (*deleteProductCmd) Name() string     { return "delete-product" }
func (*deleteProductCmd) Synopsis() string { return "delete a loan, deposit or savings goal" }
func (*deleteProductCmd) Usage() string {
	return `fin delete-product -id <id>

  Deletes a product and every transaction linked to it.
`
}

func (c *deleteProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the product to delete.")
}

func (c *deleteProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Try every product collection; ids are unique across them.
	switch {
	case deleteOk(ledger.DeleteLoan(c.id)):
	case deleteOk(ledger.DeleteDeposit(c.id)):
	case deleteOk(ledger.DeleteGoal(c.id)):
	default:
		fmt.Fprintf(os.Stderr, "Error: no product with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted product %s and its linked transactions\n", c.id)
	return subcommands.ExitSuccess
}

func deleteOk(err error) bool { return err == nil }
