// Package crypto implements the cryptographic facade of cryptokit.
//
// The package composes three standard primitives behind a small set of value
// objects: Argon2id password hashing, SHA-256 digesting, and RSA PKCS#1 v1.5
// key management and encryption. The primitives themselves come from the Go
// standard library and golang.org/x/crypto; this package only fixes policy
// (variant, version, padding, file format) and lifecycle.
//
// # Core Types
//
//   - [Argon2Config]: Argon2id tunables (hash length, lanes, memory, passes)
//   - [RSAKeypair]: a private key and the public key derived from it
//   - [RSAConnection]: a peer's public key, encrypt-only
//   - [KeyFileError]: a failed key file read or write
//
// # Hashing
//
// SHA-256 digests are lowercase hex. The salted form hashes value:salt:
//
//	crypto.SHA256Salted("hello", "world") == crypto.SHA256("hello:world")
//
// Argon2id hashes are returned in the self-describing encoded form:
//
//	cfg := crypto.NewArgon2Config(32, 4, 64*1024, 3)
//	encoded, err := crypto.Argon2HashSalted(password, salt, cfg)
//	// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<hash>
//	ok, err := crypto.Argon2Verify(encoded, candidate)
//
// [Argon2Hash] uses the fixed salt [FixedArgon2Salt]. Its output is
// deterministic and must not be used to store credentials.
//
// # RSA
//
//	kp, err := crypto.GenerateRSAKeypair(0) // 2048 bits
//	ct, err := kp.Encrypt([]byte("payload"))
//	pt, err := kp.Decrypt(ct)
//	err = kp.Save("", "") // private.key, public.key
//
//	peer, err := crypto.NewRSAConnection(kp.PublicPEM())
//	ct, err = peer.Encrypt([]byte("for the key owner"))
//
// Keys are stored as PKCS#1 PEM ("RSA PRIVATE KEY" / "RSA PUBLIC KEY") with
// LF line endings. Plaintexts may be at most Bits()/8 - 11 bytes.
//
// # Error Handling
//
// Every failure is returned. File failures are *KeyFileError and unwrap to
// the underlying os error; malformed keys are [ErrInvalidPEM]; size
// violations come from the limits package.
//
// # Secure Memory Handling
//
// RSA private keys are sealed in a memguard enclave and only decrypted into
// locked memory while a private operation runs. Parsed keys and intermediate
// buffers are wiped with [SecureWipe] and [WipeRSAPrivateKey]. Call
// [RSAKeypair.Destroy] to drop the sealed key early.
//
// # Thread Safety
//
// [RSAKeypair] and [RSAConnection] are safe for concurrent use. All other
// functions are pure.
package crypto
