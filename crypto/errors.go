package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPEM is returned when a PEM block is missing, has the wrong
	// type, or does not hold a valid PKCS#1 RSA key.
	ErrInvalidPEM = errors.New("invalid PKCS#1 PEM")

	// ErrKeyMismatch is returned when a loaded public key was not derived
	// from the loaded private key.
	ErrKeyMismatch = errors.New("public key does not match private key")

	// ErrKeyGeneration is returned when RSA key generation fails.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrKeyDestroyed is returned by private-key operations after Destroy.
	ErrKeyDestroyed = errors.New("private key destroyed")

	// ErrEncryptionFailed is returned when PKCS#1 v1.5 encryption fails.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned when PKCS#1 v1.5 decryption fails.
	// No detail about the padding failure is exposed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidArgon2Config is returned when Argon2 parameters violate the
	// KDF's preconditions.
	ErrInvalidArgon2Config = errors.New("invalid argon2 config")

	// ErrInvalidArgon2Encoding is returned when an encoded Argon2 hash cannot
	// be parsed.
	ErrInvalidArgon2Encoding = errors.New("invalid argon2 encoding")
)

// KeyFileError records a failed key file operation and the path that caused it.
type KeyFileError struct {
	Op   string
	Path string
	Err  error
}

func (e *KeyFileError) Error() string {
	return fmt.Sprintf("%s key file %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *KeyFileError) Unwrap() error { return e.Err }
