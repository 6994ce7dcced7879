package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finances"
	"github.com/google/subcommands"
)

type addGoalCmd struct {
	title    string
	target   string
	deadline string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a savings goal" }
func (*addGoalCmd) Usage() string {
	return `fin add-goal -title <title> -target <amount> [-deadline <date>]

  Creates a savings goal. The saved amount starts at zero and grows
  with goal-contribution transactions.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Title of the goal.")
	f.StringVar(&c.target, "target", "", "Target amount, like \"3000 EUR\".")
	f.StringVar(&c.deadline, "deadline", "", "Deadline date, optional.")
}

func (c *addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := finances.ParseMoney(c.target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing target: %v\n", err)
		return subcommands.ExitUsageError
	}
	var deadline finances.Date
	if c.deadline != "" {
		deadline, err = finances.ParseDate(c.deadline)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing deadline: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	g, err := ledger.AddGoal(c.title, target, deadline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating goal: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created goal %q (%s) with target %s\n", g.Title, g.ID, g.Target)
	return subcommands.ExitSuccess
}
