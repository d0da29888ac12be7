package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitdesk/internal/calculator"
	"github.com/mmynk/splitdesk/internal/client"
	"github.com/mmynk/splitdesk/internal/dialog"
	"github.com/mmynk/splitdesk/internal/format"
	"github.com/mmynk/splitdesk/internal/forms"
	"github.com/mmynk/splitdesk/internal/models"
	"github.com/mmynk/splitdesk/internal/service"
	"github.com/mmynk/splitdesk/internal/settleform"
)

var errUsage = errors.New("usage")

const usage = `usage: splitdesk <command> [arguments]

commands:
  balances <group>                 show balances and suggested settlements
  settle <group>                   record settlements for a group
  add-expense [flags] <group>      create an expense (-paid-by, -amount, -desc, -participants, -shares)
  delete-expense <expense> <group> delete an expense
  edit-user <user>                 change a user's name, email and contact number
  delete-user <user>               delete a user
  remove-member <group> <user>     remove a user from a group

environment:
  SPLITDESK_BASE_URL, SPLITDESK_TIMEOUT, SPLITDESK_TOKEN, SPLITDESK_METRICS, LOG_LEVEL
`

type app struct {
	backend *client.Client
	actions *service.Actions
	dialog  dialog.Dialog
	nav     *consoleNavigator
	out     io.Writer
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "balances":
		ids, err := parseIDs(rest, "group")
		if err != nil {
			return err
		}
		return a.nav.OpenGroup(ctx, ids[0])

	case "settle":
		ids, err := parseIDs(rest, "group")
		if err != nil {
			return err
		}
		return a.settle(ctx, ids[0])

	case "add-expense":
		return a.addExpense(ctx, rest)

	case "delete-expense":
		ids, err := parseIDs(rest, "expense", "group")
		if err != nil {
			return err
		}
		a.nav.groupID = ids[1]
		return a.actions.DeleteExpense(ctx, ids[0], ids[1])

	case "edit-user":
		ids, err := parseIDs(rest, "user")
		if err != nil {
			return err
		}
		return a.actions.EditUser(ctx, ids[0])

	case "delete-user":
		ids, err := parseIDs(rest, "user")
		if err != nil {
			return err
		}
		return a.actions.DeleteUser(ctx, ids[0])

	case "remove-member":
		ids, err := parseIDs(rest, "group", "user")
		if err != nil {
			return err
		}
		a.nav.groupID = ids[0]
		return a.actions.RemoveMember(ctx, ids[0], ids[1], a.memberName(ctx, ids[0], ids[1]))

	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// parseIDs reads one positive id per name from args.
func parseIDs(args []string, names ...string) ([]int64, error) {
	if len(args) != len(names) {
		return nil, fmt.Errorf("%w: expected <%s>", errUsage, strings.Join(names, "> <"))
	}
	ids := make([]int64, len(args))
	for i, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid %s id %q", names[i], arg)
		}
		ids[i] = id
	}
	return ids, nil
}

func (a *app) memberName(ctx context.Context, groupID, userID int64) string {
	if group, err := a.backend.GetGroup(ctx, groupID); err == nil {
		if m := group.Member(userID); m != nil {
			return m.Name
		}
	}
	return fmt.Sprintf("User #%d", userID)
}

// settle walks the settle-up form row by row. A blank answer takes the
// suggested amount, 0 skips the row.
func (a *app) settle(ctx context.Context, groupID int64) error {
	a.nav.groupID = groupID

	form, err := a.actions.ShowSettlement(ctx, groupID)
	if errors.Is(err, settleform.ErrAllSettled) {
		return nil
	}
	if err != nil {
		return err
	}

	var entries []settleform.Entry
	for _, row := range form.Rows {
		question := fmt.Sprintf("%s pays %s (max %s) [%s]:",
			row.From.UserName, row.To.UserName, format.Currency(row.Max), row.Suggested.StringFixed(2))
		answer, ok := a.dialog.Prompt(question)
		if !ok {
			return service.ErrCancelled
		}

		amount := row.Suggested
		if answer != "" {
			amount, err = parseAmount(answer)
			if err != nil {
				a.dialog.Alert(err.Error())
				return err
			}
		}
		entries = append(entries, settleform.Entry{Key: row.Key(), Amount: amount})
	}

	// Invalid entries are reported by ConfirmSettlements.
	if settlements, err := form.Collect(entries); err == nil {
		fmt.Fprintln(a.out, "After these payments:")
		printBalanceTable(a.out, calculator.ApplySettlements(form.Balances(), settlements))
	}

	return a.actions.ConfirmSettlements(ctx, groupID, form, entries)
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

func (a *app) addExpense(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-expense", flag.ContinueOnError)
	fs.SetOutput(a.out)
	paidBy := fs.Int64("paid-by", 0, "id of the user who paid")
	amountFlag := fs.String("amount", "", "total amount, e.g. 42.50")
	desc := fs.String("desc", "", "description")
	participants := fs.String("participants", "", "comma-separated user ids (default: every member)")
	sharesFlag := fs.String("shares", "", "custom shares as id=amount pairs, e.g. 1=10,2=32.50")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	ids, err := parseIDs(fs.Args(), "group")
	if err != nil {
		return err
	}
	groupID := ids[0]

	amount, err := parseAmount(*amountFlag)
	if err != nil {
		return err
	}

	group, err := a.backend.GetGroup(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to load group %d: %w", groupID, err)
	}

	memberIDs := make([]int64, len(group.Members))
	for i, m := range group.Members {
		memberIDs[i] = m.UserID
	}
	selection := forms.NewParticipantSelection(memberIDs)
	if *participants == "" {
		selection.SelectAll(true)
	} else {
		for _, field := range strings.Split(*participants, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid participant %q", field)
			}
			if group.Member(id) == nil {
				return fmt.Errorf("user %d is not a member of %s", id, group.Name)
			}
			selection.Toggle(id)
		}
	}
	if ok, hint := selection.SubmitState(); !ok {
		a.dialog.Alert(hint)
		return errors.New(hint)
	}

	shares, err := parseShares(*sharesFlag)
	if err != nil {
		return err
	}

	_, err = a.actions.CreateExpense(ctx, models.ExpenseRequest{
		GroupID:                 groupID,
		PaidByUserID:            *paidBy,
		Amount:                  amount,
		Description:             *desc,
		ParticipantUserIDs:      selection.Selected(),
		ParticipantShareAmounts: shares,
	})
	return err
}

func parseShares(s string) (map[int64]decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	shares := make(map[int64]decimal.Decimal)
	for _, pair := range strings.Split(s, ",") {
		idPart, amountPart, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid share %q, want id=amount", pair)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid share user %q", idPart)
		}
		amount, err := parseAmount(amountPart)
		if err != nil {
			return nil, err
		}
		shares[id] = amount
	}
	return shares, nil
}

// printBalances writes the balance table followed by the suggested plan.
func printBalances(w io.Writer, balances []models.Balance) {
	printBalanceTable(w, balances)

	names := make(map[int64]string, len(balances))
	for _, b := range balances {
		names[b.UserID] = b.UserName
	}

	summary := calculator.Summarize(balances)
	if summary.AllSettled() {
		fmt.Fprintln(w, "All balances are settled.")
		return
	}

	fmt.Fprintf(w, "Outstanding: %s\nSuggested settlements:\n", format.Currency(summary.Outstanding))
	for _, s := range calculator.ComputeSettlements(balances) {
		fmt.Fprintf(w, "  %s pays %s %s\n", names[s.FromUserID], names[s.ToUserID], format.Currency(s.Amount))
	}
}

func printBalanceTable(w io.Writer, balances []models.Balance) {
	for _, b := range balances {
		status := "settled"
		switch {
		case b.NetBalance.GreaterThan(calculator.Tolerance):
			status = "is owed"
		case b.NetBalance.LessThan(calculator.Tolerance.Neg()):
			status = "owes"
		}
		fmt.Fprintf(w, "  %-20s %12s  %s\n", b.UserName, format.Currency(b.NetBalance), status)
	}
}
