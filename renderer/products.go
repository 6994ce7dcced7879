package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finances"
	md "github.com/nao1215/markdown"
)

// ProductsMarkdown renders every loan, deposit and goal with its current
// derived state.
func ProductsMarkdown(ledger *finances.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Products")

	if loans := ledger.Loans(); len(loans) > 0 {
		doc.H2("Loans")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Id", "Name", "Principal", "Monthly", "Outstanding"},
		}
		for _, loan := range loans {
			table.Rows = append(table.Rows, []string{
				loan.ID,
				loan.Name,
				loan.Principal.String(),
				fmt.Sprintf("%.2f", loan.MonthlyPayment),
				loan.CurrentBalance().String(),
			})
		}
		doc.Table(table)
	}

	if deposits := ledger.Deposits(); len(deposits) > 0 {
		doc.H2("Deposits")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Id", "Name", "Principal", "At Maturity", "Current"},
		}
		for _, d := range deposits {
			table.Rows = append(table.Rows, []string{
				d.ID,
				d.Name,
				d.Principal.String(),
				fmt.Sprintf("%.2f", d.TotalAtMaturity),
				d.CurrentAmount().String(),
			})
		}
		doc.Table(table)
	}

	if goals := ledger.Goals(); len(goals) > 0 {
		doc.H2("Savings Goals")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{"Id", "Title", "Target", "Saved", "Deadline"},
		}
		for _, g := range goals {
			table.Rows = append(table.Rows, []string{
				g.ID,
				g.Title,
				g.Target.String(),
				g.Current().String(),
				g.Deadline.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// DebtsMarkdown renders the open informal debts.
func DebtsMarkdown(debts []*finances.Debt) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Debts")
	if len(debts) == 0 {
		doc.PlainText("No open debts.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Id", "Direction", "Person", "Amount", "Since"},
	}
	for _, d := range debts {
		table.Rows = append(table.Rows, []string{
			d.ID,
			string(d.Direction),
			d.Person,
			d.Amount.String(),
			d.Date.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
