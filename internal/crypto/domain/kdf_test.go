package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKdfConfig_Validate(t *testing.T) {
	iter := func(n int) *int { return &n }

	tests := []struct {
		name    string
		cfg     KdfConfig
		wantErr error
	}{
		{"default iterations", DefaultKdfConfig(), nil},
		{"at minimum", KdfConfig{Type: PBKDF2_SHA256, Iterations: iter(5000)}, nil},
		{"above minimum", KdfConfig{Type: PBKDF2_SHA256, Iterations: iter(100000)}, nil},
		{"below minimum", KdfConfig{Type: PBKDF2_SHA256, Iterations: iter(4999)}, ErrKdfIterationsTooLow},
		{"unsupported type", KdfConfig{Type: KdfType(1)}, ErrUnsupportedKdf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestKdfConfig_EffectiveIterations(t *testing.T) {
	n := 600000
	assert.Equal(t, DefaultPbkdf2Iterations, DefaultKdfConfig().EffectiveIterations())
	assert.Equal(t, 600000, KdfConfig{Iterations: &n}.EffectiveIterations())
}
