// Package service implements the user-facing action flows: each one asks the
// user through a Dialog, calls the backend, reports the outcome and moves the
// user on through a Navigator.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/splitdesk/internal/dialog"
	"github.com/mmynk/splitdesk/internal/models"
)

var (
	// ErrCancelled is returned when the user declines a confirmation or
	// cancels a prompt. Nothing was sent to the backend.
	ErrCancelled = errors.New("cancelled by user")

	ErrNoGroup = errors.New("No group selected.")
)

// Backend is the subset of the REST client the flows need.
type Backend interface {
	CreateExpense(ctx context.Context, req models.ExpenseRequest) (*models.Expense, error)
	DeleteExpense(ctx context.Context, expenseID int64) error
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	GetGroup(ctx context.Context, groupID int64) (*models.Group, error)
	RemoveGroupMember(ctx context.Context, groupID, userID int64) error
	GroupBalances(ctx context.Context, groupID int64) ([]models.Balance, error)
	RecordSettlements(ctx context.Context, groupID int64, settlements []models.Settlement) (*models.SettleResult, error)
}

// Navigator moves the user on after a successful action.
type Navigator interface {
	// Reload refreshes whatever the user is looking at.
	Reload(ctx context.Context) error

	// OpenGroup shows a group's page.
	OpenGroup(ctx context.Context, groupID int64) error
}

// Actions runs the flows. One flow runs at a time.
type Actions struct {
	backend Backend
	dialog  dialog.Dialog
	nav     Navigator
}

// NewActions creates the action flows.
func NewActions(backend Backend, dlg dialog.Dialog, nav Navigator) *Actions {
	return &Actions{backend: backend, dialog: dlg, nav: nav}
}

func (a *Actions) reload(ctx context.Context) {
	if err := a.nav.Reload(ctx); err != nil {
		slog.WarnContext(ctx, "Reload failed", "error", err)
	}
}

func (a *Actions) openGroup(ctx context.Context, groupID int64) {
	if err := a.nav.OpenGroup(ctx, groupID); err != nil {
		slog.WarnContext(ctx, "Opening group failed", "group_id", groupID, "error", err)
	}
}
