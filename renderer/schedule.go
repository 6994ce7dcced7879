package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finances"
	md "github.com/nao1215/markdown"
)

// ScheduleMarkdown renders a loan's repayment plan month by month.
func ScheduleMarkdown(loan *finances.Loan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Repayment Schedule for %s", loan.Name))
	doc.PlainText(fmt.Sprintf("%s over %d months at %.2f%% (%s)",
		loan.Principal, loan.TermMonths, loan.InterestRate, loan.PaymentType))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Monthly Payment"),
			md.Bold(fmt.Sprintf("%.2f", loan.MonthlyPayment)),
		},
		Rows: [][]string{
			{"Total Payment", fmt.Sprintf("%.2f", loan.TotalPayment)},
			{"Total Interest", fmt.Sprintf("%.2f", loan.TotalInterest)},
		},
	})

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Date", "Payment", "Principal", "Interest", "Balance"},
	}
	for _, row := range loan.Schedule {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", row.Month),
			row.Date.String(),
			fmt.Sprintf("%.2f", row.Payment),
			fmt.Sprintf("%.2f", row.PrincipalPortion),
			fmt.Sprintf("%.2f", row.InterestPortion),
			fmt.Sprintf("%.2f", row.RemainingBalance),
		})
	}
	doc.Table(table)

	return doc.String()
}
