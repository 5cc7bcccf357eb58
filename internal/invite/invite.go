// Package invite issues team enrollment codes from a cryptographically
// strong random source.
package invite

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

// DefaultAlphabet is uppercase letters plus digits.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultLength is the code length used when none is configured.
const DefaultLength = 8

// ExistsFunc reports whether a code is already held by some team.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generate draws a random code of the given length from the alphabet.
func Generate(alphabet string, length int) (string, error) {
	if alphabet == "" || length <= 0 {
		return "", fmt.Errorf("invite: alphabet and length must be non-empty")
	}

	buf := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("invite: read random: %w", err)
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf), nil
}

// GenerateUnique draws codes until exists reports a free one. Uniqueness is
// guaranteed only at generation time; the persisting transaction must also
// hold a uniqueness constraint to close the check-then-insert window.
func GenerateUnique(ctx context.Context, alphabet string, length int, exists ExistsFunc) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code, err := Generate(alphabet, length)
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("invite: existence check: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
}
