package otp

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

const (
	numericDigits = 6
	numericSpace  = 1000000 // 10^numericDigits
	tokenBytes    = 32
)

// Generator produces challenge secrets from a cryptographically secure source.
type Generator struct{}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{}
}

// Numeric returns a fixed-width 6-digit decimal code, uniformly distributed
// over the full range including leading zeros.
func (*Generator) Numeric() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(numericSpace))
	if err != nil {
		return "", fmt.Errorf("generate numeric code: %w", err)
	}

	return fmt.Sprintf("%0*d", numericDigits, n.Int64()), nil
}

// Token returns a 256-bit opaque token encoded as 64 hex characters, used for
// reset credentials where brute force must be infeasible.
func (*Generator) Token() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return hex.EncodeToString(b), nil
}
