package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"math/big"
	"sync"

	"github.com/awnumar/memguard"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/cryptokit/limits"
)

// RSAKeypair owns one RSA private key and the public key derived from it.
//
// The private key is kept as PKCS#1 DER sealed in a memguard enclave and is
// only decrypted into locked memory for the duration of a private operation.
// All methods are safe for concurrent use.
type RSAKeypair struct {
	mu      sync.RWMutex
	private *memguard.Enclave
	public  *rsa.PublicKey
}

// GenerateRSAKeypair creates a new random keypair of the given size.
// A bits value of zero or less selects limits.DefaultRSABits.
func GenerateRSAKeypair(bits int) (*RSAKeypair, error) {
	if bits <= 0 {
		bits = limits.DefaultRSABits
	}

	logger := NewLogger("GenerateRSAKeypair").WithField("bits", bits)
	logger.Entry("generating RSA keypair")
	defer logger.Exit()

	if err := limits.ValidateRSABits(bits); err != nil {
		logger.WithError(err, "validation_error", "validate_bits").Error("Rejected key size")
		return nil, err
	}

	priv, err := rsa.GenerateKey(randReader, bits)
	if err != nil {
		logger.WithError(err, "rng_error", "generate_key").Error("RSA key generation failed")
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}

	kp := newRSAKeypair(priv, x509.MarshalPKCS1PrivateKey(priv))
	logger.WithFields(PublicKeyFields(kp.public)).Debug("RSA keypair generated")
	return kp, nil
}

// LoadRSAKeypair reads a PKCS#1 PEM private key and public key from disk.
// Empty paths select DefaultPrivateKeyPath and DefaultPublicKeyPath.
//
// File errors are returned as *KeyFileError; malformed PEM as ErrInvalidPEM;
// a public key that does not belong to the private key as ErrKeyMismatch.
func LoadRSAKeypair(privPath, pubPath string) (*RSAKeypair, error) {
	privPath, pubPath = keyPaths(privPath, pubPath)
	logger := NewLogger("LoadRSAKeypair").WithFields(logrus.Fields{
		"private_path": privPath,
		"public_path":  pubPath,
	})

	privPEM, err := readKeyFile(privPath)
	if err != nil {
		logger.WithError(err, "io_error", "read_private").Error("Failed to read private key")
		return nil, err
	}
	der, priv, err := parsePrivateKeyPEM(privPEM)
	ZeroBytes(privPEM)
	if err != nil {
		logger.WithError(err, "parse_error", "parse_private").Error("Failed to parse private key")
		return nil, err
	}

	pubPEM, err := readKeyFile(pubPath)
	if err != nil {
		wipeLoaded(der, priv)
		logger.WithError(err, "io_error", "read_public").Error("Failed to read public key")
		return nil, err
	}
	pub, err := parsePublicKeyPEM(pubPEM)
	if err != nil {
		wipeLoaded(der, priv)
		logger.WithError(err, "parse_error", "parse_public").Error("Failed to parse public key")
		return nil, err
	}

	if pub.E != priv.E || pub.N.Cmp(priv.N) != 0 {
		wipeLoaded(der, priv)
		logger.WithFields(PublicKeyFields(pub)).Warn("Public key does not belong to private key")
		return nil, ErrKeyMismatch
	}

	kp := newRSAKeypair(priv, der)
	logger.WithFields(OperationFields("load", "success", PublicKeyFields(kp.public))).Debug("RSA keypair loaded")
	return kp, nil
}

// newRSAKeypair seals der into an enclave, which wipes der, and wipes the
// secret parts of priv once the public key has been copied out.
func newRSAKeypair(priv *rsa.PrivateKey, der []byte) *RSAKeypair {
	pub := &rsa.PublicKey{N: new(big.Int).Set(priv.N), E: priv.E}
	enclave := memguard.NewEnclave(der)
	_ = WipeRSAPrivateKey(priv)

	return &RSAKeypair{
		private: enclave,
		public:  pub,
	}
}

func wipeLoaded(der []byte, priv *rsa.PrivateKey) {
	ZeroBytes(der)
	_ = WipeRSAPrivateKey(priv)
}

func keyPaths(privPath, pubPath string) (string, string) {
	if privPath == "" {
		privPath = DefaultPrivateKeyPath
	}
	if pubPath == "" {
		pubPath = DefaultPublicKeyPath
	}
	return privPath, pubPath
}

// withPrivateKey opens the enclave, parses the key and hands it to fn. The
// locked buffer and the parsed key are wiped before returning.
func (k *RSAKeypair) withPrivateKey(fn func(priv *rsa.PrivateKey, der []byte) error) error {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.private == nil {
		return ErrKeyDestroyed
	}

	buf, err := k.private.Open()
	if err != nil {
		return fmt.Errorf("open private key enclave: %w", err)
	}
	defer buf.Destroy()

	priv, err := x509.ParsePKCS1PrivateKey(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPEM, err)
	}
	defer WipeRSAPrivateKey(priv)

	return fn(priv, buf.Bytes())
}

// Bits returns the modulus size in bits.
func (k *RSAKeypair) Bits() int {
	return k.public.N.BitLen()
}

// PublicKey returns a copy of the public key.
func (k *RSAKeypair) PublicKey() *rsa.PublicKey {
	return &rsa.PublicKey{N: new(big.Int).Set(k.public.N), E: k.public.E}
}

// PublicPEM returns the public key as PKCS#1 PEM with LF line endings.
func (k *RSAKeypair) PublicPEM() string {
	return encodePublicKeyPEM(k.public)
}

// PrivatePEM returns the private key as PKCS#1 PEM with LF line endings.
// The returned string cannot be wiped; prefer Save when the key only needs
// to reach disk.
func (k *RSAKeypair) PrivatePEM() (string, error) {
	var out string
	err := k.withPrivateKey(func(_ *rsa.PrivateKey, der []byte) error {
		block := encodePEM(PrivateKeyPEMType, der)
		out = string(block)
		ZeroBytes(block)
		return nil
	})
	return out, err
}

// Connection returns a public-only handle for the keypair's public key.
func (k *RSAKeypair) Connection() *RSAConnection {
	return &RSAConnection{public: k.PublicKey()}
}

// Encrypt encrypts plaintext with the public key using PKCS#1 v1.5 padding.
// Plaintexts longer than Bits()/8 - 11 bytes fail with limits.ErrMessageTooLarge.
func (k *RSAKeypair) Encrypt(plaintext []byte) ([]byte, error) {
	return encryptPKCS1v15(k.public, plaintext)
}

// Decrypt decrypts a PKCS#1 v1.5 ciphertext with the private key.
func (k *RSAKeypair) Decrypt(ciphertext []byte) ([]byte, error) {
	var plaintext []byte
	err := k.withPrivateKey(func(priv *rsa.PrivateKey, _ []byte) error {
		var err error
		plaintext, err = decryptPKCS1v15(priv, ciphertext)
		return err
	})
	return plaintext, err
}

// Save writes the private key and then the public key as PKCS#1 PEM files,
// truncating existing files. Empty paths select the default file names.
//
// The writes are not atomic as a pair: if the public key write fails the
// private key file has already been replaced.
func (k *RSAKeypair) Save(privPath, pubPath string) error {
	privPath, pubPath = keyPaths(privPath, pubPath)
	logger := NewLogger("Save").WithFields(logrus.Fields{
		"private_path": privPath,
		"public_path":  pubPath,
	})

	err := k.withPrivateKey(func(_ *rsa.PrivateKey, der []byte) error {
		block := encodePEM(PrivateKeyPEMType, der)
		defer ZeroBytes(block)
		return writeKeyFile(privPath, block, privateKeyFileMode)
	})
	if err != nil {
		logger.WithError(err, "io_error", "write_private").Error("Failed to save private key")
		return err
	}

	if err := writeKeyFile(pubPath, []byte(k.PublicPEM()), publicKeyFileMode); err != nil {
		logger.WithError(err, "io_error", "write_public").Error("Failed to save public key")
		return err
	}

	logger.WithFields(OperationFields("save", "success")).Info("RSA keypair saved")
	return nil
}

// Destroy drops the sealed private key. Public operations keep working;
// Decrypt, PrivatePEM and Save return ErrKeyDestroyed afterwards.
func (k *RSAKeypair) Destroy() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.private = nil
}
