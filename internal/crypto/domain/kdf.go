package domain

import (
	validation "github.com/jellydator/validation"
)

// KdfConfig holds the key derivation parameters an account declares.
//
// A nil Iterations means the account did not specify one and
// DefaultPbkdf2Iterations applies.
type KdfConfig struct {
	Type       KdfType
	Iterations *int
}

// DefaultKdfConfig returns PBKDF2-SHA256 with no declared iteration count.
func DefaultKdfConfig() KdfConfig {
	return KdfConfig{Type: PBKDF2_SHA256}
}

// EffectiveIterations returns the declared count or the default.
func (k KdfConfig) EffectiveIterations() int {
	if k.Iterations == nil {
		return DefaultPbkdf2Iterations
	}
	return *k.Iterations
}

// Validate checks the KDF type and the iteration floor.
func (k KdfConfig) Validate() error {
	if k.Type != PBKDF2_SHA256 {
		return ErrUnsupportedKdf
	}
	err := validation.Validate(k.EffectiveIterations(), validation.Min(MinPbkdf2Iterations))
	if err != nil {
		return ErrKdfIterationsTooLow
	}
	return nil
}
