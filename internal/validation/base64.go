package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"
)

func base64Rule(enc *base64.Encoding, code, message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return validation.NewError("validation_base64_type", "must be a string")
		}
		if s == "" {
			return nil // Let Required handle empty strings
		}
		if _, err := enc.DecodeString(s); err != nil {
			return validation.NewError(code, message)
		}
		return nil
	})
}

// Base64 validates that a string is valid standard base64-encoded data.
var Base64 = base64Rule(base64.StdEncoding, "validation_base64", "must be valid base64-encoded data")

// Base64URL validates unpadded URL-safe base64, the encoding used for PKCE verifiers.
var Base64URL = base64Rule(base64.RawURLEncoding, "validation_base64url", "must be valid base64url-encoded data")
