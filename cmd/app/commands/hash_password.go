package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
	cryptoService "github.com/allisson/passvault/internal/crypto/service"
)

// RunHashPassword derives the master key of email/password and prints the
// server and local authorization hashes. iterations of 0 uses the default
// KDF configuration.
//
// The password itself is never printed or logged.
func RunHashPassword(
	kdf cryptoService.KdfService,
	logger *slog.Logger,
	writer io.Writer,
	email string,
	password string,
	iterations int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is required (set PASSVAULT_PASSWORD)")
	}

	kdfConfig := cryptoDomain.DefaultKdfConfig()
	if iterations > 0 {
		kdfConfig.Iterations = &iterations
	}

	email = strings.ToLower(strings.TrimSpace(email))
	masterKey, err := kdf.DeriveMasterKey(password, email, kdfConfig)
	if err != nil {
		return fmt.Errorf("failed to derive master key: %w", err)
	}
	defer masterKey.Destroy()

	serverHash, err := kdf.HashPassword(password, masterKey, cryptoDomain.HashPurposeServerAuthorization)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	localHash, err := kdf.HashPassword(password, masterKey, cryptoDomain.HashPurposeLocalAuthorization)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	logger.Info("password hashes derived", slog.String("email", email))

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"email":       email,
			"server_hash": serverHash,
			"local_hash":  localHash,
		})
	}
	_, err = fmt.Fprintf(writer, "SERVER_HASH=%q\nLOCAL_HASH=%q\n", serverHash, localHash)
	return err
}
