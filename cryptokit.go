package cryptokit

import (
	"github.com/opd-ai/cryptokit/crypto"
	"github.com/opd-ai/cryptokit/password"
)

// Argon2Config holds the Argon2id tunables.
type Argon2Config = crypto.Argon2Config

// Keypair is an RSA private key and the public key derived from it.
type Keypair = crypto.RSAKeypair

// Connection is an encrypt-only handle on a peer's RSA public key.
type Connection = crypto.RSAConnection

// BuildArgon2Config builds an Argon2id config. Parameters are checked when hashing.
func BuildArgon2Config(hashLength, lanes, memCost, timeCost uint32) Argon2Config {
	return crypto.NewArgon2Config(hashLength, lanes, memCost, timeCost)
}

// Argon2Hash hashes value with the fixed salt "xxxxxxxx".
// The result is deterministic; do not use it to store credentials.
func Argon2Hash(value string, cfg Argon2Config) (string, error) {
	return crypto.Argon2Hash(value, cfg)
}

// Argon2HashSalted hashes value with the raw bytes of salt.
func Argon2HashSalted(value, salt string, cfg Argon2Config) (string, error) {
	return crypto.Argon2HashSalted(value, salt, cfg)
}

// Argon2Verify reports whether candidate matches an encoded Argon2id hash.
func Argon2Verify(encoded, candidate string) (bool, error) {
	return crypto.Argon2Verify(encoded, candidate)
}

// SHA256 returns the lowercase hex SHA-256 digest of value.
func SHA256(value string) string {
	return crypto.SHA256(value)
}

// SHA256Salted returns SHA256(value + ":" + salt).
func SHA256Salted(value, salt string) string {
	return crypto.SHA256Salted(value, salt)
}

// Salt builds the secret:salt framing used by SHA256Salted.
func Salt(secret, salt string) password.SaltedPlaintext {
	return password.New(secret, salt)
}

// NewRSA generates a keypair. bits <= 0 selects 2048.
func NewRSA(bits int) (*Keypair, error) {
	return crypto.GenerateRSAKeypair(bits)
}

// LoadRSA reads a keypair from PKCS#1 PEM files. Empty paths select
// private.key and public.key.
func LoadRSA(privPath, pubPath string) (*Keypair, error) {
	return crypto.LoadRSAKeypair(privPath, pubPath)
}

// ConnFromPEM parses a peer's PKCS#1 PEM public key.
func ConnFromPEM(publicPEM string) (*Connection, error) {
	return crypto.NewRSAConnection(publicPEM)
}

// ConnFromFile reads a peer's PKCS#1 PEM public key from path.
func ConnFromFile(path string) (*Connection, error) {
	return crypto.RSAConnectionFromFile(path)
}
