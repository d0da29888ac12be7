package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/splitdesk/internal/calculator"
	"github.com/mmynk/splitdesk/internal/client"
	"github.com/mmynk/splitdesk/internal/format"
	"github.com/mmynk/splitdesk/internal/forms"
	"github.com/mmynk/splitdesk/internal/models"
)

// DeleteExpense asks for confirmation, deletes the expense and opens the
// group it belonged to.
func (a *Actions) DeleteExpense(ctx context.Context, expenseID, groupID int64) error {
	if !a.dialog.Confirm("Are you sure you want to delete this expense? This action cannot be undone.") {
		return ErrCancelled
	}

	if err := a.backend.DeleteExpense(ctx, expenseID); err != nil {
		slog.ErrorContext(ctx, "DeleteExpense failed", "expense_id", expenseID, "error", err)
		a.dialog.Alert("Error deleting expense. Please try again.")
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}

	slog.InfoContext(ctx, "Expense deleted", "expense_id", expenseID, "group_id", groupID)
	a.dialog.Alert("Expense deleted successfully!")
	a.openGroup(ctx, groupID)
	return nil
}

// CreateExpense validates the request, shows how the amount will be split
// and, once confirmed, creates the expense and opens its group.
func (a *Actions) CreateExpense(ctx context.Context, req models.ExpenseRequest) (*models.Expense, error) {
	if err := forms.ValidateExpense(req); err != nil {
		a.dialog.Alert(err.Error())
		return nil, err
	}

	preview, err := a.splitPreview(ctx, req)
	if err != nil {
		a.dialog.Alert(err.Error())
		return nil, err
	}
	if !a.dialog.Confirm(preview) {
		return nil, ErrCancelled
	}

	expense, err := a.backend.CreateExpense(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "CreateExpense failed", "group_id", req.GroupID, "error", err)
		a.dialog.Alert("Error creating expense: " + client.MessageOf(err))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense created",
		"expense_id", expense.ExpenseID,
		"group_id", req.GroupID,
		"amount", req.Amount.StringFixed(2),
		"participants", len(req.ParticipantUserIDs),
	)
	a.dialog.Alert("Expense created successfully!")
	a.openGroup(ctx, req.GroupID)
	return expense, nil
}

// splitPreview describes who pays what. Names come from the group when it
// can be fetched, otherwise users are shown by id.
func (a *Actions) splitPreview(ctx context.Context, req models.ExpenseRequest) (string, error) {
	shares := req.ParticipantShareAmounts
	if len(shares) == 0 {
		var err error
		shares, err = calculator.SplitEqually(req.Amount, req.ParticipantUserIDs)
		if err != nil {
			return "", fmt.Errorf("failed to split expense: %w", err)
		}
	}

	group, err := a.backend.GetGroup(ctx, req.GroupID)
	if err != nil {
		slog.WarnContext(ctx, "Group lookup for preview failed", "group_id", req.GroupID, "error", err)
		group = &models.Group{GroupID: req.GroupID}
	}
	name := func(userID int64) string {
		if m := group.Member(userID); m != nil {
			return m.Name
		}
		return fmt.Sprintf("User #%d", userID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create %q for %s paid by %s?\n", req.Description, format.Currency(req.Amount), name(req.PaidByUserID))
	for _, userID := range req.ParticipantUserIDs {
		fmt.Fprintf(&b, "  %s owes %s\n", name(userID), format.Currency(shares[userID]))
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
