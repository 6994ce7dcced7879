package finances

import "slices"

// SavingsGoal is a target amount to save by a deadline. Contributions
// and withdrawals are transactions linked to it, and the current amount
// is derived from them like for loans and deposits.
type SavingsGoal struct {
	ID       string
	Title    string
	Target   Money
	Deadline Date

	current Money         // cached saved amount, maintained by the mutator
	entries []Transaction // sub-ledger of linked contributions and withdrawals
}

// Current returns the cached saved amount. It is kept in sync by every
// mutation; Amount re-derives it from the sub-ledger.
func (g *SavingsGoal) Current() Money { return g.current }

// Entries returns a copy of the goal's transaction sub-ledger.
func (g *SavingsGoal) Entries() []Transaction { return slices.Clone(g.entries) }
