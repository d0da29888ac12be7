// Package settleform builds the manual settle-up form: one row per
// debtor/creditor pair, each capped at what the pair can still move, and
// turns the amounts a user typed back into settlements.
package settleform

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitdesk/internal/calculator"
	"github.com/mmynk/splitdesk/internal/models"
)

// cents is the precision amounts are entered in.
const cents = 2

var (
	ErrAllSettled = errors.New("No one owes money - all balances are settled!")
	ErrNoAmounts  = errors.New("Please enter at least one settlement amount.")
)

// Row is one "debtor pays creditor" input.
type Row struct {
	From models.Balance
	To   models.Balance

	// Max is min(|debt|, credit) rounded to cents.
	Max decimal.Decimal

	// Suggested is the allocator's amount for this pair rounded to cents;
	// zero when the allocator does not pair them.
	Suggested decimal.Decimal
}

// Key identifies a row.
type Key struct {
	FromUserID int64
	ToUserID   int64
}

// Key returns the row's key.
func (r Row) Key() Key {
	return Key{FromUserID: r.From.UserID, ToUserID: r.To.UserID}
}

// Form is the populated settle-up form for one group.
type Form struct {
	GroupID   int64
	Debtors   []models.Balance
	Creditors []models.Balance
	Rows      []Row
}

// Build lays out the form from fresh balances. It returns ErrAllSettled when
// nobody owes anything.
func Build(groupID int64, balances []models.Balance) (*Form, error) {
	creditors, debtors := calculator.Partition(balances)
	if len(debtors) == 0 {
		return nil, ErrAllSettled
	}

	suggested := make(map[Key]decimal.Decimal)
	for _, s := range calculator.ComputeSettlements(balances) {
		suggested[Key{FromUserID: s.FromUserID, ToUserID: s.ToUserID}] = s.Amount
	}

	form := &Form{
		GroupID:   groupID,
		Debtors:   debtors,
		Creditors: creditors,
	}
	for _, d := range debtors {
		for _, c := range creditors {
			row := Row{
				From: d,
				To:   c,
				Max:  decimal.Min(d.NetBalance.Neg(), c.NetBalance).Round(cents),
			}
			row.Suggested = suggested[row.Key()].Round(cents)
			form.Rows = append(form.Rows, row)
		}
	}
	return form, nil
}

// Row looks up a row by key.
func (f *Form) Row(key Key) (Row, bool) {
	for _, r := range f.Rows {
		if r.Key() == key {
			return r, true
		}
	}
	return Row{}, false
}

// Suggestions returns every row's suggested amount, keyed by row.
// Rows without a suggestion are omitted.
func (f *Form) Suggestions() map[Key]decimal.Decimal {
	out := make(map[Key]decimal.Decimal)
	for _, r := range f.Rows {
		if r.Suggested.IsPositive() {
			out[r.Key()] = r.Suggested
		}
	}
	return out
}

// Entry is what the user typed into one row.
type Entry struct {
	Key
	Amount decimal.Decimal
}

// Collect converts entries into settlements, one per row in form order.
// Amounts that round to zero cents are skipped like blank inputs; amounts
// with fractions of a cent are rejected. Entries for the same row add up, and
// a row's total above its Max, or an entry for a pair that is not on the
// form, is an error. ErrNoAmounts is returned when nothing positive remains.
func (f *Form) Collect(entries []Entry) ([]models.Settlement, error) {
	totals := make(map[Key]decimal.Decimal)
	for _, e := range entries {
		if !e.Amount.Round(cents).IsPositive() {
			continue
		}
		if !e.Amount.Equal(e.Amount.Round(cents)) {
			return nil, fmt.Errorf("amount %s has fractions of a cent", e.Amount.String())
		}
		if _, ok := f.Row(e.Key); !ok {
			return nil, fmt.Errorf("user %d has nothing to settle with user %d", e.FromUserID, e.ToUserID)
		}
		totals[e.Key] = totals[e.Key].Add(e.Amount)
	}

	var settlements []models.Settlement
	for _, row := range f.Rows {
		total, ok := totals[row.Key()]
		if !ok {
			continue
		}
		if total.GreaterThan(row.Max) {
			return nil, fmt.Errorf("%s cannot pay %s more than %s", row.From.UserName, row.To.UserName, row.Max.StringFixed(cents))
		}
		settlements = append(settlements, models.Settlement{
			FromUserID: row.From.UserID,
			ToUserID:   row.To.UserID,
			Amount:     total,
		})
	}

	if len(settlements) == 0 {
		return nil, ErrNoAmounts
	}
	return settlements, nil
}

// Balances returns the members on the form, debtors first.
func (f *Form) Balances() []models.Balance {
	out := make([]models.Balance, 0, len(f.Debtors)+len(f.Creditors))
	out = append(out, f.Debtors...)
	return append(out, f.Creditors...)
}
