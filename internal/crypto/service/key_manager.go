package service

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"io"
	"math"
	"math/big"
	"math/bits"

	cryptoDomain "github.com/allisson/passvault/internal/crypto/domain"
)

const (
	rsaKeySize             = 2048
	fingerprintMinEntropy  = 64
	randomNumberMaxBitSize = 53
)

// KeyManagerService generates vault keys, RSA key pairs and fingerprints.
type KeyManagerService struct {
	envelope EnvelopeService
	kdf      KdfService
	rand     io.Reader
}

// NewKeyManager creates a KeyManagerService.
func NewKeyManager(envelope EnvelopeService, kdf KdfService, rand io.Reader) *KeyManagerService {
	return &KeyManagerService{envelope: envelope, kdf: kdf, rand: rand}
}

func (km *KeyManagerService) MakeEncKey(
	masterKey *cryptoDomain.SymmetricKey,
) (*cryptoDomain.SymmetricKey, *cryptoDomain.EncString, error) {
	raw, err := km.RandomBytes(64)
	if err != nil {
		return nil, nil, err
	}
	defer cryptoDomain.Zero(raw)

	encKey, err := cryptoDomain.NewSymmetricKey(raw)
	if err != nil {
		return nil, nil, err
	}

	wrapped, err := km.RewrapEncKey(encKey, masterKey)
	if err != nil {
		return nil, nil, err
	}

	return encKey, wrapped, nil
}

func (km *KeyManagerService) RewrapEncKey(
	encKey, masterKey *cryptoDomain.SymmetricKey,
) (*cryptoDomain.EncString, error) {
	if encKey == nil || masterKey == nil {
		return nil, cryptoDomain.ErrKeyUnresolved
	}

	wrappingKey, err := km.kdf.Stretch(masterKey)
	if err != nil {
		return nil, err
	}

	raw := encKey.Key()
	defer cryptoDomain.Zero(raw)

	return km.envelope.Encrypt(raw, wrappingKey)
}

func (km *KeyManagerService) MakeKeyPair(
	encKey *cryptoDomain.SymmetricKey,
) ([]byte, *cryptoDomain.EncString, error) {
	if encKey == nil {
		return nil, nil, cryptoDomain.ErrKeyUnresolved
	}

	priv, err := rsa.GenerateKey(km.rand, rsaKeySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate rsa key: %w", err)
	}

	publicKey, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal public key: %w", err)
	}

	privateKey, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	defer cryptoDomain.Zero(privateKey)

	wrapped, err := km.envelope.Encrypt(privateKey, encKey)
	if err != nil {
		return nil, nil, err
	}

	return publicKey, wrapped, nil
}

func (km *KeyManagerService) PublicKeyFromPrivate(privateKey []byte) ([]byte, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return x509.MarshalPKIXPublicKey(&priv.PublicKey)
}

// Fingerprint renders a deterministic word phrase for (fingerprintMaterial, publicKey).
//
// The public key is hashed with SHA-256, expanded with HKDF using the
// material as info, and the resulting integer is consumed word by word with
// repeated division by the word list size.
func (km *KeyManagerService) Fingerprint(fingerprintMaterial string, publicKey []byte) ([]string, error) {
	keyFingerprint := sha256.Sum256(publicKey)

	userFingerprint := make([]byte, 32)
	if err := hkdfExpand(keyFingerprint[:], []byte(fingerprintMaterial), userFingerprint); err != nil {
		return nil, err
	}

	return hashPhrase(userFingerprint, wordList)
}

func hashPhrase(hash []byte, words []string) ([]string, error) {
	entropyPerWord := math.Log2(float64(len(words)))
	numWords := int(math.Ceil(fingerprintMinEntropy / entropyPerWord))

	entropyAvailable := float64(len(hash) * 4)
	if float64(numWords)*entropyPerWord > entropyAvailable {
		return nil, fmt.Errorf("output hash of %d bytes is too small", len(hash))
	}

	n := new(big.Int).SetBytes(hash)
	size := big.NewInt(int64(len(words)))
	rem := new(big.Int)

	phrase := make([]string, 0, numWords)
	for range numWords {
		n.DivMod(n, size, rem)
		phrase = append(phrase, words[rem.Int64()])
	}

	return phrase, nil
}

// RandomNumber returns a uniform integer in [min, max] using rejection sampling
// over the fewest random bytes that cover the range.
func (km *KeyManagerService) RandomNumber(min, max int) (int, error) {
	if max < min {
		return 0, cryptoDomain.ErrInvalidRange
	}

	rangeSize := uint64(max-min) + 1
	bitsNeeded := bits.Len64(rangeSize - 1)
	if bitsNeeded > randomNumberMaxBitSize {
		return 0, cryptoDomain.ErrInvalidRange
	}
	bytesNeeded := (bitsNeeded + 7) / 8
	mask := uint64(1)<<bitsNeeded - 1

	buf := make([]byte, bytesNeeded)
	for {
		if _, err := io.ReadFull(km.rand, buf); err != nil {
			return 0, fmt.Errorf("failed to read random bytes: %w", err)
		}

		var rval uint64
		for _, b := range buf {
			rval = rval<<8 | uint64(b)
		}
		rval &= mask

		if rval < rangeSize {
			return min + int(rval), nil
		}
	}
}

func (km *KeyManagerService) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(km.rand, b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
