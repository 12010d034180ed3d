// Package cryptokit is a small, uniform facade over Argon2id password
// hashing, SHA-256 digesting, and RSA PKCS#1 v1.5 key management.
//
// The heavy lifting lives in the [crypto] subpackage; this package exposes
// the stable entry points so that callers need a single import for the
// common cases.
//
// # Getting Started
//
//	// SHA-256
//	digest := cryptokit.SHA256Salted("hello", "world") // == SHA256("hello:world")
//
//	// Argon2id
//	cfg := cryptokit.BuildArgon2Config(32, 4, 64*1024, 3)
//	encoded, err := cryptokit.Argon2HashSalted("hunter2", "per-user-salt", cfg)
//	ok, err := cryptokit.Argon2Verify(encoded, "hunter2")
//
//	// RSA
//	kp, err := cryptokit.NewRSA(0) // 2048 bits
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer kp.Destroy()
//
//	if err := kp.Save("", ""); err != nil { // private.key, public.key
//	    log.Fatal(err)
//	}
//
//	peer, err := cryptokit.ConnFromPEM(kp.PublicPEM())
//	ct, err := peer.Encrypt([]byte("payload"))
//	pt, err := kp.Decrypt(ct)
//
// # Core Types
//
//   - [Argon2Config]: Argon2id tunables; variant and version are fixed
//   - [Keypair]: an RSA private key and its derived public key
//   - [Connection]: a peer's RSA public key, encrypt-only
//   - [password.SaltedPlaintext]: the secret:salt framing used by SHA256Salted
//
// # Fixed Salt
//
// [Argon2Hash] hashes with the constant salt "xxxxxxxx". Its output is
// deterministic and identical for every user sharing a password. It exists
// for reproducible comparisons only; store credentials with
// [Argon2HashSalted] and a random per-user salt.
//
// # Files
//
// Keys are written as PKCS#1 PEM with LF line endings. When a path is empty,
// private.key and public.key in the working directory are used. Saving a
// keypair writes the private file first; if the public write fails the
// private file is left in place.
//
// # Logging
//
// Operations log through logrus at debug level on success and error level
// on failure. Key material is identified by a public-key fingerprint only.
//
// # Thread Safety
//
// All functions are safe for concurrent use, and so are [Keypair] and
// [Connection] values.
package cryptokit
