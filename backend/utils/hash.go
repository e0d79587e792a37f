package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// HashPassword returns the hex SHA-256 digest of the plaintext. The
// digest is deterministic and unsalted: it serves as an opaque
// comparison key only and does not resist offline brute force.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// GenerateSessionToken derives a session token from 256 bits of
// randomness and the owning user id. The digest step keeps the token
// opaque: it cannot be mapped back to the user without the sessions
// table.
func GenerateSessionToken(userID uint) (string, error) {
	random := make([]byte, 32)
	if _, err := rand.Read(random); err != nil {
		return "", fmt.Errorf("could not read random bytes: %w", err)
	}

	seed := fmt.Sprintf("%d-%s", userID, hex.EncodeToString(random))
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:]), nil
}

const paymentIDSuffixLen = 7

// GeneratePaymentID produces ids like PAY1735689600000K3F9Q2A: a unix
// millisecond timestamp plus a random base-36 suffix.
func GeneratePaymentID() (string, error) {
	var sb strings.Builder
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for i := 0; i < paymentIDSuffixLen; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("could not read random bytes: %w", err)
		}
		sb.WriteByte(alphabet[n.Int64()])
	}
	return fmt.Sprintf("PAY%d%s", time.Now().UnixMilli(), sb.String()), nil
}
