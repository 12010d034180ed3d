package crypto

import (
	"crypto/rsa"

	"github.com/sirupsen/logrus"
)

// RSAConnection holds only a peer's RSA public key and can encrypt data for
// that peer. It carries no private material, so it has no Decrypt.
type RSAConnection struct {
	public *rsa.PublicKey
}

// NewRSAConnection parses a PKCS#1 PEM public key.
func NewRSAConnection(publicPEM string) (*RSAConnection, error) {
	pub, err := parsePublicKeyPEM([]byte(publicPEM))
	if err != nil {
		NewLogger("NewRSAConnection").WithError(err, "parse_error", "parse_public").Error("Failed to parse peer public key")
		return nil, err
	}
	return &RSAConnection{public: pub}, nil
}

// RSAConnectionFromFile reads a PKCS#1 PEM public key from path.
func RSAConnectionFromFile(path string) (*RSAConnection, error) {
	data, err := readKeyFile(path)
	if err != nil {
		NewLogger("RSAConnectionFromFile").
			WithField("path", path).
			WithError(err, "io_error", "read_public").
			Error("Failed to read peer public key")
		return nil, err
	}
	return NewRSAConnection(string(data))
}

// Bits returns the modulus size in bits.
func (c *RSAConnection) Bits() int {
	return c.public.N.BitLen()
}

// PublicPEM returns the peer key as PKCS#1 PEM with LF line endings.
func (c *RSAConnection) PublicPEM() string {
	return encodePublicKeyPEM(c.public)
}

// Encrypt encrypts plaintext for the peer using PKCS#1 v1.5 padding, with the
// same size limit as RSAKeypair.Encrypt.
func (c *RSAConnection) Encrypt(plaintext []byte) ([]byte, error) {
	return encryptPKCS1v15(c.public, plaintext)
}

// Save writes the peer key to path as PKCS#1 PEM, truncating any existing file.
func (c *RSAConnection) Save(path string) error {
	if err := writeKeyFile(path, []byte(c.PublicPEM()), publicKeyFileMode); err != nil {
		NewLogger("RSAConnection.Save").
			WithFields(logrus.Fields{"path": path}).
			WithError(err, "io_error", "write_public").
			Error("Failed to save peer public key")
		return err
	}
	return nil
}
