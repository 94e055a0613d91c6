package vault

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/rohits-web03/passvault/internal/apperr"
)

const (
	DefaultLength = 16
	MinLength     = 8
	MaxLength     = 128
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+-=[]{}|;:,.<>?"

// Generate returns a random password of the given length drawn uniformly
// from charset.
func Generate(length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("%w: length must be between %d and %d", apperr.ErrValidation, MinLength, MaxLength)
	}

	limit := big.NewInt(int64(len(charset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("%w: read random: %v", apperr.ErrInternal, err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}
