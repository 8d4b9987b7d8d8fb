package commands

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"strings"

	cryptoService "github.com/allisson/passvault/internal/crypto/service"
)

// RunFingerprint prints the fingerprint phrase that binds userID to a
// base64-encoded SPKI public key, so two parties can compare it out of band.
func RunFingerprint(
	keyManager cryptoService.KeyManager,
	logger *slog.Logger,
	writer io.Writer,
	userID string,
	publicKeyB64 string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	publicKey, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return fmt.Errorf("failed to decode public key: %w", err)
	}

	words, err := keyManager.Fingerprint(userID, publicKey)
	if err != nil {
		return fmt.Errorf("failed to compute fingerprint: %w", err)
	}

	logger.Debug("fingerprint computed", slog.String("user_id", userID), slog.Int("words", len(words)))

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"user_id":     userID,
			"fingerprint": words,
		})
	}
	_, err = fmt.Fprintln(writer, strings.Join(words, "-"))
	return err
}
