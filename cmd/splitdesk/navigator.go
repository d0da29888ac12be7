package main

import (
	"context"
	"fmt"
	"io"

	"github.com/mmynk/splitdesk/internal/client"
	"github.com/mmynk/splitdesk/internal/format"
)

// consoleNavigator stands in for page navigation: it prints the group the
// user is working in.
type consoleNavigator struct {
	backend *client.Client
	out     io.Writer

	// groupID is the group the current command works in; zero when the
	// command has no group.
	groupID int64
}

// Reload reprints the current group's balances.
func (n *consoleNavigator) Reload(ctx context.Context) error {
	if n.groupID == 0 {
		return nil
	}
	balances, err := n.backend.GroupBalances(ctx, n.groupID)
	if err != nil {
		return fmt.Errorf("failed to load balances: %w", err)
	}
	printBalances(n.out, balances)
	return nil
}

// OpenGroup prints the group, its recent expenses and its balances.
func (n *consoleNavigator) OpenGroup(ctx context.Context, groupID int64) error {
	n.groupID = groupID

	group, err := n.backend.GetGroup(ctx, groupID)
	if client.IsNotFound(err) {
		return fmt.Errorf("group %d does not exist: %w", groupID, err)
	}
	if err != nil {
		return fmt.Errorf("failed to load group %d: %w", groupID, err)
	}
	fmt.Fprintf(n.out, "%s (%d members)\n", group.Name, len(group.Members))

	expenses, err := n.backend.ListExpenses(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}
	if len(expenses) > 0 {
		fmt.Fprintln(n.out, "Expenses:")
		for _, e := range expenses {
			fmt.Fprintf(n.out, "  #%-5d %-12s %-30s %12s  paid by %s\n",
				e.ExpenseID, format.Date(e.ExpenseDate.Time), e.Description, format.Currency(e.Amount), e.PaidBy.Name)
		}
	}

	fmt.Fprintln(n.out, "Balances:")
	return n.Reload(ctx)
}
