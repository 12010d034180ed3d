package crypto

import (
	"testing"
)

// BenchmarkGenerateRSAKeypair measures 2048-bit key generation performance
func BenchmarkGenerateRSAKeypair(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := GenerateRSAKeypair(0)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncrypt measures PKCS#1 v1.5 encryption performance
func BenchmarkEncrypt(b *testing.B) {
	kp := testKeypair(b)
	message := []byte("This is a benchmark test message for encryption performance")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := kp.Encrypt(message)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecrypt measures decryption including the enclave open
func BenchmarkDecrypt(b *testing.B) {
	kp := testKeypair(b)
	ciphertext, err := kp.Encrypt([]byte("This is a benchmark test message for decryption performance"))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := kp.Decrypt(ciphertext)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSHA256Salted measures salted digest performance
func BenchmarkSHA256Salted(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SHA256Salted("benchmark-password", "benchmark-salt")
	}
}

// BenchmarkArgon2Hash measures Argon2id with interactive-login parameters
func BenchmarkArgon2Hash(b *testing.B) {
	cfg := NewArgon2Config(32, 4, 64*1024, 3)
	for i := 0; i < b.N; i++ {
		_, err := Argon2Hash("benchmark-password", cfg)
		if err != nil {
			b.Fatal(err)
		}
	}
}
