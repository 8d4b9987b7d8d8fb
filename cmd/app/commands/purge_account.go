package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	cryptoUseCase "github.com/allisson/passvault/internal/crypto/usecase"
	stateDomain "github.com/allisson/passvault/internal/state/domain"
	stateUseCase "github.com/allisson/passvault/internal/state/usecase"
)

// RunPurgeAccount removes every key and every stored field of userID from
// memory, disk and secure storage.
func RunPurgeAccount(
	ctx context.Context,
	state stateUseCase.StateUseCase,
	keys cryptoUseCase.KeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	userID string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	if _, err := state.GetAccount(ctx, userID); err != nil {
		if errors.Is(err, stateDomain.ErrAccountNotFound) {
			return fmt.Errorf("account %s not found: %w", userID, err)
		}
		return err
	}

	if err := keys.ClearKeys(ctx, false, userID); err != nil {
		return fmt.Errorf("failed to clear keys: %w", err)
	}
	if err := state.Purge(ctx, userID); err != nil {
		return fmt.Errorf("failed to purge account: %w", err)
	}

	logger.Info("account purged", slog.String("user_id", userID))

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"user_id":        userID,
			"purged":         true,
			"active_user_id": state.ActiveUserID(),
		})
	}
	_, err := fmt.Fprintf(writer, "Successfully purged account %s\n", userID)
	return err
}
