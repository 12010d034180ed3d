// Package limits provides centralized RSA size constants and validation functions
// for PKCS#1 v1.5 encryption. Keeping them in one place ensures the keypair and
// the public-only connection enforce exactly the same bounds.
//
// # Size Rules
//
// For a modulus of k bytes (k = ⌊bits/8⌋ for the usual byte-aligned key sizes):
//
//   - Plaintext: at most k - PKCS1v15Overhead bytes. The 11 byte overhead is the
//     0x00 0x02 header, at least eight non-zero random padding bytes and the 0x00
//     separator.
//
//   - Ciphertext: exactly k bytes.
//
//   - Key size: between MinRSABits and MaxRSABits inclusive.
//
// # Validation Functions
//
//	err := limits.ValidatePKCS1v15Plaintext(message, pub.Size())
//	if errors.Is(err, limits.ErrMessageTooLarge) {
//	    // split the message or switch to a bigger key
//	}
//
// # Error Types
//
//   - ErrMessageTooLarge: plaintext exceeds the padding-adjusted modulus size
//   - ErrInvalidCiphertextSize: ciphertext length differs from the modulus size
//   - ErrInvalidKeySize: key size outside the supported range
package limits
