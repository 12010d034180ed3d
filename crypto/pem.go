package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

const (
	// PrivateKeyPEMType is the PEM block type of a PKCS#1 private key.
	PrivateKeyPEMType = "RSA PRIVATE KEY"
	// PublicKeyPEMType is the PEM block type of a PKCS#1 public key.
	PublicKeyPEMType = "RSA PUBLIC KEY"

	// DefaultPrivateKeyPath is used by Load and Save when no private key path is given.
	DefaultPrivateKeyPath = "private.key"
	// DefaultPublicKeyPath is used by Load and Save when no public key path is given.
	DefaultPublicKeyPath = "public.key"

	privateKeyFileMode os.FileMode = 0o600
	publicKeyFileMode  os.FileMode = 0o644
)

// encodePEM armors der under blockType. encoding/pem always emits LF line endings.
func encodePEM(blockType string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}

// encodePublicKeyPEM returns the PKCS#1 PEM encoding of pub.
func encodePublicKeyPEM(pub *rsa.PublicKey) string {
	return string(encodePEM(PublicKeyPEMType, x509.MarshalPKCS1PublicKey(pub)))
}

// decodePEMBlock extracts the first PEM block and checks its type.
func decodePEMBlock(data []byte, blockType string) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidPEM)
	}
	if block.Type != blockType {
		return nil, fmt.Errorf("%w: block type %q, want %q", ErrInvalidPEM, block.Type, blockType)
	}
	return block, nil
}

// parsePrivateKeyPEM parses a PKCS#1 private key. The returned DER slice
// aliases the decoded block and must be wiped by the caller.
func parsePrivateKeyPEM(data []byte) ([]byte, *rsa.PrivateKey, error) {
	block, err := decodePEMBlock(data, PrivateKeyPEMType)
	if err != nil {
		return nil, nil, err
	}

	priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		ZeroBytes(block.Bytes)
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidPEM, err)
	}
	return block.Bytes, priv, nil
}

// parsePublicKeyPEM parses a PKCS#1 public key.
func parsePublicKeyPEM(data []byte) (*rsa.PublicKey, error) {
	block, err := decodePEMBlock(data, PublicKeyPEMType)
	if err != nil {
		return nil, err
	}

	pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPEM, err)
	}
	return pub, nil
}

// readKeyFile reads a whole key file. Errors carry the path as *KeyFileError.
func readKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &KeyFileError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// writeKeyFile creates or truncates path and writes data to it. The file is
// closed on every path; a close error is reported when the write succeeded.
func writeKeyFile(path string, data []byte, perm os.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return &KeyFileError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &KeyFileError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if _, err := f.Write(data); err != nil {
		return &KeyFileError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// IsNotExist reports whether err was caused by a missing key file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
