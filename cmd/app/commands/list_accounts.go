package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	stateUseCase "github.com/allisson/passvault/internal/state/usecase"
)

type accountRow struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// RunListAccounts prints every authenticated account with its lock status.
func RunListAccounts(
	ctx context.Context,
	state stateUseCase.StateUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	statuses, err := state.AccountStatuses(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute account statuses: %w", err)
	}

	rows := make([]accountRow, 0, len(statuses))
	for _, userID := range state.Accounts() {
		account, err := state.GetAccount(ctx, userID)
		if err != nil {
			return err
		}
		rows = append(rows, accountRow{
			UserID: userID,
			Email:  account.Profile.Email,
			Status: statuses[userID].String(),
		})
	}

	logger.Debug("accounts listed", slog.Int("count", len(rows)))

	if format == "json" {
		return writeJSON(writer, rows)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(writer, "No accounts")
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(writer, "%s\t%s\t%s\n", row.UserID, row.Email, row.Status); err != nil {
			return err
		}
	}
	return nil
}
