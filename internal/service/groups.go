package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/splitdesk/internal/client"
)

// RemoveMember asks for confirmation and takes the user out of the group.
func (a *Actions) RemoveMember(ctx context.Context, groupID, userID int64, userName string) error {
	if !a.dialog.Confirm("Are you sure you want to remove " + userName + " from this group?") {
		return ErrCancelled
	}

	if err := a.backend.RemoveGroupMember(ctx, groupID, userID); err != nil {
		slog.ErrorContext(ctx, "RemoveGroupMember failed", "group_id", groupID, "user_id", userID, "error", err)
		a.dialog.Alert("Error removing member: " + client.MessageOf(err))
		return fmt.Errorf("failed to remove user %d from group %d: %w", userID, groupID, err)
	}

	slog.InfoContext(ctx, "Member removed", "group_id", groupID, "user_id", userID)
	a.dialog.Alert("Member removed successfully!")
	a.reload(ctx)
	return nil
}
