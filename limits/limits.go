// Package limits provides centralized RSA size limits for PKCS#1 v1.5 encryption.
// This ensures consistent validation across different components of the system.
package limits

import (
	"errors"
	"fmt"
)

const (
	// PKCS1v15Overhead is the number of bytes PKCS#1 v1.5 encryption padding
	// consumes out of every modulus-sized block.
	PKCS1v15Overhead = 11

	// DefaultRSABits is the key size used when the caller does not pick one.
	DefaultRSABits = 2048

	// MinRSABits is the smallest accepted key size. Smaller moduli are
	// factorable and are refused by crypto/rsa on recent Go releases.
	MinRSABits = 1024

	// MaxRSABits bounds key generation time and memory.
	MaxRSABits = 16384
)

var (
	// ErrMessageTooLarge indicates a plaintext exceeds the PKCS#1 v1.5 limit
	ErrMessageTooLarge = errors.New("message too large")

	// ErrInvalidCiphertextSize indicates a ciphertext is not exactly one modulus long
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrInvalidKeySize indicates a key size outside [MinRSABits, MaxRSABits]
	ErrInvalidKeySize = errors.New("invalid key size")
)

// ModulusBytes returns the modulus length in bytes for a key of the given bit size.
func ModulusBytes(bits int) int {
	return bits / 8
}

// MaxPKCS1v15Plaintext returns the largest plaintext that fits a modulus of
// modulusBytes bytes. The result is never negative.
func MaxPKCS1v15Plaintext(modulusBytes int) int {
	if modulusBytes <= PKCS1v15Overhead {
		return 0
	}
	return modulusBytes - PKCS1v15Overhead
}

// ValidatePKCS1v15Plaintext validates a plaintext against the modulus size.
// Empty plaintexts are valid; PKCS#1 v1.5 pads them like any other message.
func ValidatePKCS1v15Plaintext(message []byte, modulusBytes int) error {
	maxSize := MaxPKCS1v15Plaintext(modulusBytes)
	if len(message) > maxSize {
		return fmt.Errorf("%w: plaintext size %d exceeds limit %d", ErrMessageTooLarge, len(message), maxSize)
	}
	return nil
}

// ValidatePKCS1v15Ciphertext validates that a ciphertext is exactly one modulus long.
func ValidatePKCS1v15Ciphertext(ciphertext []byte, modulusBytes int) error {
	if len(ciphertext) != modulusBytes {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidCiphertextSize, len(ciphertext), modulusBytes)
	}
	return nil
}

// ValidateRSABits validates a requested key size.
func ValidateRSABits(bits int) error {
	if bits < MinRSABits || bits > MaxRSABits {
		return fmt.Errorf("%w: %d bits (supported %d..%d)", ErrInvalidKeySize, bits, MinRSABits, MaxRSABits)
	}
	return nil
}
