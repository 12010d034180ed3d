package crypto

import (
	"crypto/rsa"
	"crypto/subtle"
	"errors"
	"math/big"
	"runtime"
)

// SecureWipe attempts to securely erase the contents of a byte slice
// containing sensitive data. It returns an error if the byte slice is nil.
func SecureWipe(data []byte) error {
	if data == nil {
		return errors.New("cannot wipe nil data")
	}

	// Overwrite the data with zeros
	// Using subtle.ConstantTimeCompare's byteXor operation to avoid
	// potential compiler optimizations that might remove the overwrite
	zeros := make([]byte, len(data))
	subtle.ConstantTimeCompare(data, zeros)
	copy(data, zeros)

	// Attempt to prevent the compiler from optimizing out the zeroing
	runtime.KeepAlive(data)
	runtime.KeepAlive(zeros)

	return nil
}

// ZeroBytes erases the contents of a byte slice containing sensitive data.
// This is a convenience function that ignores the error from SecureWipe.
func ZeroBytes(data []byte) {
	_ = SecureWipe(data)
}

// WipeRSAPrivateKey zeroes the secret integers of a parsed RSA private key.
// The key must not be used afterwards. Internal copies kept by crypto/rsa's
// precomputation cannot be reached and are left to the garbage collector.
func WipeRSAPrivateKey(priv *rsa.PrivateKey) error {
	if priv == nil {
		return errors.New("cannot wipe nil private key")
	}

	wipeBigInt(priv.D)
	for _, p := range priv.Primes {
		wipeBigInt(p)
	}
	wipeBigInt(priv.Precomputed.Dp)
	wipeBigInt(priv.Precomputed.Dq)
	wipeBigInt(priv.Precomputed.Qinv)

	return nil
}

// wipeBigInt overwrites the words backing n and sets it to zero.
func wipeBigInt(n *big.Int) {
	if n == nil {
		return
	}
	words := n.Bits()
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(words)
	n.SetInt64(0)
}
