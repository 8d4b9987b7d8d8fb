package service

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
)

type kdfService struct{}

// NewKdfService creates a KdfService using PBKDF2-HMAC-SHA256 and HKDF-SHA256.
func NewKdfService() KdfService {
	return &kdfService{}
}

// DeriveMasterKey derives the 32-byte master key with the normalized email as salt.
func (s *kdfService) DeriveMasterKey(
	password, email string,
	kdf cryptoDomain.KdfConfig,
) (*cryptoDomain.SymmetricKey, error) {
	return s.makeKey(password, strings.ToLower(strings.TrimSpace(email)), kdf)
}

func (s *kdfService) makeKey(password, salt string, kdf cryptoDomain.KdfConfig) (*cryptoDomain.SymmetricKey, error) {
	if err := kdf.Validate(); err != nil {
		return nil, err
	}

	raw := pbkdf2.Key([]byte(password), []byte(salt), kdf.EffectiveIterations(), 32, sha256.New)
	defer cryptoDomain.Zero(raw)

	return cryptoDomain.NewSymmetricKey(raw)
}

// Stretch expands a 32-byte key into a 64-byte enc/mac pair with HKDF-Expand.
// A 64-byte key is returned unchanged.
func (s *kdfService) Stretch(key *cryptoDomain.SymmetricKey) (*cryptoDomain.SymmetricKey, error) {
	if key == nil {
		return nil, cryptoDomain.ErrKeyUnresolved
	}
	if key.Len() == 64 {
		return key, nil
	}
	if key.Len() != 32 {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	prk := key.Key()
	defer cryptoDomain.Zero(prk)

	stretched := make([]byte, 64)
	defer cryptoDomain.Zero(stretched)

	if err := hkdfExpand(prk, []byte("enc"), stretched[:32]); err != nil {
		return nil, err
	}
	if err := hkdfExpand(prk, []byte("mac"), stretched[32:]); err != nil {
		return nil, err
	}

	return cryptoDomain.NewSymmetricKey(stretched)
}

// HashPassword computes the password verifier. The key bytes are the PBKDF2
// password and the plaintext password is the salt.
func (s *kdfService) HashPassword(
	password string,
	key *cryptoDomain.SymmetricKey,
	purpose cryptoDomain.HashPurpose,
) (string, error) {
	if key == nil {
		return "", cryptoDomain.ErrKeyUnresolved
	}

	iterations := 1
	if purpose == cryptoDomain.HashPurposeLocalAuthorization {
		iterations = 2
	}

	raw := key.Key()
	defer cryptoDomain.Zero(raw)

	hash := pbkdf2.Key(raw, []byte(password), iterations, 32, sha256.New)
	return base64.StdEncoding.EncodeToString(hash), nil
}

// MakePinKey derives the stretched key that protects the PIN-encrypted master key.
func (s *kdfService) MakePinKey(pin, salt string, kdf cryptoDomain.KdfConfig) (*cryptoDomain.SymmetricKey, error) {
	pinKey, err := s.makeKey(pin, salt, kdf)
	if err != nil {
		return nil, err
	}
	defer pinKey.Destroy()
	return s.Stretch(pinKey)
}

func hkdfExpand(prk, info, out []byte) error {
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), out); err != nil {
		return fmt.Errorf("failed to expand key: %w", err)
	}
	return nil
}
