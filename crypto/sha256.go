package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/opd-ai/cryptokit/password"
)

// SHA256 returns the lowercase hex SHA-256 digest of value.
func SHA256(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// SHA256Salted returns the digest of the salted plaintext value:salt.
func SHA256Salted(value, salt string) string {
	return SHA256(password.New(value, salt).Salted())
}
