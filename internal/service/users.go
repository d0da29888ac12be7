package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/splitdesk/internal/client"
	"github.com/mmynk/splitdesk/internal/forms"
	"github.com/mmynk/splitdesk/internal/models"
)

// EditUser prompts for a new name, email and contact number and saves them.
// Cancelling the name or email prompt aborts. A blank contact number keeps
// the user's current one.
func (a *Actions) EditUser(ctx context.Context, userID int64) error {
	name, ok := a.dialog.Prompt("Enter new name for the user:")
	if !ok {
		return ErrCancelled
	}
	email, ok := a.dialog.Prompt("Enter new email for the user:")
	if !ok {
		return ErrCancelled
	}
	contact, _ := a.dialog.Prompt("Enter new contact number (optional):")

	current, err := a.backend.GetUser(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "GetUser failed", "user_id", userID, "error", err)
		a.dialog.Alert("Error fetching user details.")
		return fmt.Errorf("failed to fetch user %d: %w", userID, err)
	}

	update := models.UserUpdate{
		Name:      name,
		Email:     email,
		ContactNo: current.ContactNo,
	}
	if contact != "" {
		update.ContactNo = &contact
	}

	if err := forms.ValidateUser(update); err != nil {
		a.dialog.Alert(err.Error())
		return err
	}

	if _, err := a.backend.UpdateUser(ctx, userID, update); err != nil {
		slog.ErrorContext(ctx, "UpdateUser failed", "user_id", userID, "error", err)
		a.dialog.Alert("Error updating user. Please try again.")
		return fmt.Errorf("failed to update user %d: %w", userID, err)
	}

	slog.InfoContext(ctx, "User updated", "user_id", userID)
	a.dialog.Alert("User updated successfully!")
	a.reload(ctx)
	return nil
}

// DeleteUser asks for confirmation and deletes the user.
func (a *Actions) DeleteUser(ctx context.Context, userID int64) error {
	if !a.dialog.Confirm("Are you sure you want to delete this user? This action cannot be undone.") {
		return ErrCancelled
	}

	if err := a.backend.DeleteUser(ctx, userID); err != nil {
		slog.ErrorContext(ctx, "DeleteUser failed", "user_id", userID, "error", err)
		a.dialog.Alert("Error deleting user: " + client.MessageOf(err))
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}

	slog.InfoContext(ctx, "User deleted", "user_id", userID)
	a.dialog.Alert("User deleted successfully!")
	a.reload(ctx)
	return nil
}
