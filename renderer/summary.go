package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finances"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the period's income/expense aggregates.
func SummaryMarkdown(s *finances.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if s.Range.IsZero() {
		doc.H1("Summary")
	} else {
		doc.H1(fmt.Sprintf("Summary %s", s.Range))
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Budget"),
			md.Bold(s.TotalBudget.SignedString()),
		},
		Rows: [][]string{
			{"Total Income", s.TotalIncome.String()},
			{"Total Expenses", s.TotalExpenses.String()},
		},
	})

	return doc.String()
}

// BudgetMarkdown renders the per-category budget report.
func BudgetMarkdown(r *finances.BudgetReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if r.Range.IsZero() {
		doc.H1("Budgets")
	} else {
		doc.H1(fmt.Sprintf("Budgets %s", r.Range))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Category", "Limit", "Spent", "Remaining"},
	}
	for _, line := range r.Lines {
		table.Rows = append(table.Rows, []string{
			line.Budget.Category,
			line.Budget.Limit.String(),
			line.Spent.String(),
			line.Remaining.SignedString(),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(r.TotalPlanned.String()),
		md.Bold(r.TotalSpent.String()),
		md.Bold(r.TotalPlanned.Sub(r.TotalSpent).SignedString()),
	})
	doc.Table(table)

	return doc.String()
}

// TransactionsMarkdown renders a transaction listing.
func TransactionsMarkdown(title string, txs []finances.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}
	var lines []string
	for _, tx := range txs {
		lines = append(lines, Transaction(tx))
	}
	doc.OrderedList(lines...)

	return doc.String()
}
