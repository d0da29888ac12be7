package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mmynk/splitdesk/internal/models"
)

// CreateExpense posts a new expense: POST /api/expenses.
func (c *Client) CreateExpense(ctx context.Context, req models.ExpenseRequest) (*models.Expense, error) {
	expense := &models.Expense{}
	if err := c.do(ctx, http.MethodPost, "/api/expenses", toExpensePayload(req), expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses returns a group's expenses: GET /api/expenses/group/{groupId}.
func (c *Client) ListExpenses(ctx context.Context, groupID int64) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/expenses/group/%d", groupID), nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// DeleteExpense removes an expense: DELETE /api/expenses/{expenseId}.
func (c *Client) DeleteExpense(ctx context.Context, expenseID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/expenses/%d", expenseID), nil, nil)
}

// GetUser fetches a user's current fields: GET /api/users/{userId}.
func (c *Client) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user := &models.User{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", userID), nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces a user's fields: PUT /api/users/{userId}. The returned
// user is nil when the backend answers without a body.
func (c *Client) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (*models.User, error) {
	var user *models.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", userID), update, &user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user: DELETE /api/users/{userId}.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", userID), nil, nil)
}

// GetGroup fetches a group with its members: GET /api/groups/{groupId}.
func (c *Client) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	group := &models.Group{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/groups/%d", groupID), nil, group); err != nil {
		return nil, err
	}
	return group, nil
}

// RemoveGroupMember takes a user out of a group:
// DELETE /groups/{groupId}/members/{userId}.
func (c *Client) RemoveGroupMember(ctx context.Context, groupID, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/groups/%d/members/%d", groupID, userID), nil, nil)
}

// GroupBalances returns every member's balance:
// GET /api/balances/group/{groupId}.
func (c *Client) GroupBalances(ctx context.Context, groupID int64) ([]models.Balance, error) {
	var balances []models.Balance
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/balances/group/%d", groupID), nil, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// RecordSettlements posts a batch of payments: POST /settle/{groupId}.
//
// The backend reports the outcome in the body ({status, message}), whatever
// the HTTP status, so a decodable result is always returned without error and
// the caller checks result.OK(). An error means no result could be read.
func (c *Client) RecordSettlements(ctx context.Context, groupID int64, settlements []models.Settlement) (*models.SettleResult, error) {
	path := fmt.Sprintf("/settle/%d", groupID)

	resp, err := c.send(ctx, http.MethodPost, path, toSettlementPayloads(settlements))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	result := &models.SettleResult{}
	if json.Unmarshal(data, result) == nil && result.Status != "" {
		return result, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Method:     http.MethodPost,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    extractMessage(resp.StatusCode, data),
		}
	}
	return nil, fmt.Errorf("failed to decode %s response: %q", path, data)
}
