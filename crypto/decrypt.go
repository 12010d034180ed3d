package crypto

import (
	"crypto/rsa"

	"github.com/opd-ai/cryptokit/limits"
)

// decryptPKCS1v15 removes PKCS#1 v1.5 padding with priv. The ciphertext must
// be exactly one modulus long.
func decryptPKCS1v15(priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	if err := limits.ValidatePKCS1v15Ciphertext(ciphertext, priv.Size()); err != nil {
		return nil, err
	}

	plaintext, err := rsa.DecryptPKCS1v15(nil, priv, ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
