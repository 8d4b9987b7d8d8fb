package domain

import "context"

// KMSKeeper wraps and unwraps data keys with an external key management service.
//
// Implemented by *secrets.Keeper from gocloud.dev/secrets. The secure storage
// backend uses it to protect the data key that seals values at rest.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}
