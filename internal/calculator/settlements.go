// Package calculator holds the pure money computations behind the settle-up
// screen: allocating transfers between creditors and debtors, and splitting an
// expense between participants.
package calculator

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitdesk/internal/models"
)

// Tolerance is the distance from zero under which a balance counts as settled.
// Half a cent: anything smaller cannot be paid.
var Tolerance = decimal.New(5, -3)

// IsSettled reports whether amount is within Tolerance of zero.
func IsSettled(amount decimal.Decimal) bool {
	return amount.Abs().LessThanOrEqual(Tolerance)
}

// Partition splits balances into creditors (owed money) and debtors (owing
// money). Settled members are dropped. Input order is preserved.
func Partition(balances []models.Balance) (creditors, debtors []models.Balance) {
	for _, b := range balances {
		switch {
		case IsSettled(b.NetBalance):
			continue
		case b.NetBalance.IsPositive():
			creditors = append(creditors, b)
		default:
			debtors = append(debtors, b)
		}
	}
	return creditors, debtors
}

// ComputeSettlements returns the transfers that zero out every balance.
//
// Algorithm (greedy, largest first):
//   - creditors sorted by balance descending, debtors by balance ascending
//     (largest debt first); ties keep input order
//   - two cursors; each step moves min(credit, |debt|) from the current debtor
//     to the current creditor
//   - a cursor advances once its member is within Tolerance of zero
//   - stops when either side runs out
//
// The input is not modified. A non-zero-sum input leaves the residue
// unmatched; that is not an error.
func ComputeSettlements(balances []models.Balance) []models.Settlement {
	creditors, debtors := Partition(balances)

	slices.SortStableFunc(creditors, func(a, b models.Balance) int {
		return b.NetBalance.Cmp(a.NetBalance)
	})
	slices.SortStableFunc(debtors, func(a, b models.Balance) int {
		return a.NetBalance.Cmp(b.NetBalance)
	})

	// Remaining amounts, both kept positive
	credit := make([]decimal.Decimal, len(creditors))
	for i, c := range creditors {
		credit[i] = c.NetBalance
	}
	debt := make([]decimal.Decimal, len(debtors))
	for i, d := range debtors {
		debt[i] = d.NetBalance.Neg()
	}

	var settlements []models.Settlement
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		amount := decimal.Min(credit[i], debt[j])

		if amount.GreaterThan(Tolerance) {
			settlements = append(settlements, models.Settlement{
				FromUserID: debtors[j].UserID,
				ToUserID:   creditors[i].UserID,
				Amount:     amount,
			})
		}

		credit[i] = credit[i].Sub(amount)
		debt[j] = debt[j].Sub(amount)

		if IsSettled(credit[i]) {
			i++
		}
		if IsSettled(debt[j]) {
			j++
		}
	}

	return settlements
}

// ApplySettlements returns a copy of balances with the transfers applied:
// the payer's balance rises and the receiver's falls by each amount.
// Settlements naming unknown users are ignored.
func ApplySettlements(balances []models.Balance, settlements []models.Settlement) []models.Balance {
	out := slices.Clone(balances)
	index := make(map[int64]int, len(out))
	for i, b := range out {
		index[b.UserID] = i
	}

	for _, s := range settlements {
		from, okFrom := index[s.FromUserID]
		to, okTo := index[s.ToUserID]
		if !okFrom || !okTo {
			continue
		}
		out[from].NetBalance = out[from].NetBalance.Add(s.Amount)
		out[to].NetBalance = out[to].NetBalance.Sub(s.Amount)
	}
	return out
}

// Summary describes a group's balances at a glance.
type Summary struct {
	Creditors int
	Debtors   int
	Settled   int

	// Outstanding is the total amount owed by debtors.
	Outstanding decimal.Decimal
}

// AllSettled reports whether nobody owes anything.
func (s Summary) AllSettled() bool {
	return s.Debtors == 0
}

// Summarize counts creditors, debtors and settled members.
func Summarize(balances []models.Balance) Summary {
	var s Summary
	for _, b := range balances {
		switch {
		case IsSettled(b.NetBalance):
			s.Settled++
		case b.NetBalance.IsPositive():
			s.Creditors++
		default:
			s.Debtors++
			s.Outstanding = s.Outstanding.Add(b.NetBalance.Neg())
		}
	}
	return s
}
