package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"

	"github.com/opd-ai/cryptokit/limits"
)

// randReader is the entropy source for key generation and encryption padding.
// Tests may swap it to exercise RNG failures.
var randReader io.Reader = rand.Reader

// encryptPKCS1v15 encrypts message for pub using PKCS#1 v1.5 padding. Every
// call draws fresh padding from randReader, so equal plaintexts produce
// different ciphertexts.
func encryptPKCS1v15(pub *rsa.PublicKey, message []byte) ([]byte, error) {
	if err := limits.ValidatePKCS1v15Plaintext(message, pub.Size()); err != nil {
		return nil, err
	}

	ciphertext, err := rsa.EncryptPKCS1v15(randReader, pub, message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}
	return ciphertext, nil
}
