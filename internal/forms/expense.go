package forms

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitdesk/internal/calculator"
	"github.com/mmynk/splitdesk/internal/models"
)

// MinExpenseAmount is the smallest amount an expense can have.
var MinExpenseAmount = decimal.New(1, -2)

type expenseForm struct {
	GroupID      int64   `label:"Group" validate:"required"`
	PaidByUserID int64   `label:"Paid by" validate:"required"`
	Description  string  `label:"Description" validate:"required,max=200"`
	Participants []int64 `label:"Participant" validate:"min=1,unique"`
}

// ValidateExpense checks a new expense. Custom shares, when present, must
// name selected participants only and add up to the amount.
func ValidateExpense(req models.ExpenseRequest) error {
	verr := check(expenseForm{
		GroupID:      req.GroupID,
		PaidByUserID: req.PaidByUserID,
		Description:  strings.TrimSpace(req.Description),
		Participants: req.ParticipantUserIDs,
	})

	if req.Amount.LessThan(MinExpenseAmount) {
		verr.add("Amount", "Amount must be greater than 0")
	}

	if len(req.ParticipantShareAmounts) > 0 {
		for userID, share := range req.ParticipantShareAmounts {
			if !slices.Contains(req.ParticipantUserIDs, userID) {
				verr.add("Shares", fmt.Sprintf("Share given for user %d who is not a participant", userID))
			}
			if share.IsNegative() {
				verr.add("Shares", fmt.Sprintf("Share for user %d must not be negative", userID))
			}
		}
		if total := calculator.SumShares(req.ParticipantShareAmounts); !total.Equal(req.Amount) {
			verr.add("Shares", fmt.Sprintf("Shares add up to %s, expected %s", total.StringFixed(2), req.Amount.StringFixed(2)))
		}
	}

	return verr.errOrNil()
}
