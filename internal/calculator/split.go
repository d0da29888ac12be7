package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNoParticipants  = errors.New("must have at least one participant")
	ErrNonPositiveBill = errors.New("amount must be greater than zero")
)

// cents is the precision shares are rounded to.
const cents = 2

// SplitEqually divides amount between participants in whole cents.
// The pennies left over after rounding down go one each to the first
// participants in order, so the shares always add up to amount.
func SplitEqually(amount decimal.Decimal, participants []int64) (map[int64]decimal.Decimal, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveBill
	}

	seen := make(map[int64]bool, len(participants))
	for _, p := range participants {
		if seen[p] {
			return nil, fmt.Errorf("participant %d listed twice", p)
		}
		seen[p] = true
	}

	total := amount.Round(cents)
	count := decimal.NewFromInt(int64(len(participants)))
	base := total.Div(count).RoundDown(cents)

	// Leftover in whole cents, always less than len(participants)
	penny := decimal.New(1, -cents)
	leftover := total.Sub(base.Mul(count)).Div(penny).IntPart()

	shares := make(map[int64]decimal.Decimal, len(participants))
	for i, p := range participants {
		share := base
		if int64(i) < leftover {
			share = share.Add(penny)
		}
		shares[p] = share
	}

	return shares, nil
}

// SumShares adds up a share map.
func SumShares(shares map[int64]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s)
	}
	return total
}
