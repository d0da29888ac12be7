package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/splitdesk/internal/settleform"
)

// ErrRejected is returned when the backend refused a settlement batch.
var ErrRejected = errors.New("settlements rejected")

// ShowSettlement fetches the group's balances and lays out the settle-up
// form. When nobody owes anything the user is told so and
// settleform.ErrAllSettled is returned.
func (a *Actions) ShowSettlement(ctx context.Context, groupID int64) (*settleform.Form, error) {
	if groupID == 0 {
		a.dialog.Alert(ErrNoGroup.Error())
		return nil, ErrNoGroup
	}

	balances, err := a.backend.GroupBalances(ctx, groupID)
	if err != nil {
		slog.ErrorContext(ctx, "GroupBalances failed", "group_id", groupID, "error", err)
		a.dialog.Alert("Error loading balances. Please try again.")
		return nil, fmt.Errorf("failed to load balances for group %d: %w", groupID, err)
	}

	form, err := settleform.Build(groupID, balances)
	if err != nil {
		a.dialog.Alert(err.Error())
		return nil, err
	}

	slog.DebugContext(ctx, "Settlement form built",
		"group_id", groupID,
		"debtors", len(form.Debtors),
		"creditors", len(form.Creditors),
	)
	return form, nil
}

// ConfirmSettlements records what the user entered on the form for groupID.
func (a *Actions) ConfirmSettlements(ctx context.Context, groupID int64, form *settleform.Form, entries []settleform.Entry) error {
	if groupID == 0 {
		a.dialog.Alert(ErrNoGroup.Error())
		return ErrNoGroup
	}

	settlements, err := form.Collect(entries)
	if err != nil {
		a.dialog.Alert(err.Error())
		return err
	}

	result, err := a.backend.RecordSettlements(ctx, groupID, settlements)
	if err != nil {
		slog.ErrorContext(ctx, "RecordSettlements failed", "group_id", groupID, "error", err)
		a.dialog.Alert("Error recording settlements. Please try again.")
		return fmt.Errorf("failed to record settlements for group %d: %w", groupID, err)
	}
	if !result.OK() {
		slog.WarnContext(ctx, "Settlements rejected", "group_id", groupID, "message", result.Message)
		a.dialog.Alert("Error: " + result.Message)
		return fmt.Errorf("%w: %s", ErrRejected, result.Message)
	}

	slog.InfoContext(ctx, "Settlements recorded", "group_id", groupID, "count", len(settlements))
	a.dialog.Alert("Settlements recorded successfully!")
	a.reload(ctx)
	return nil
}
