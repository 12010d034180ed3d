package crypto

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceConfig mirrors the parameters used across the Argon2 scenarios.
var referenceConfig = NewArgon2Config(2048, 4, 8192, 12)

// cheapConfig keeps parameterised tests fast.
var cheapConfig = NewArgon2Config(32, 1, 64, 1)

func TestNewArgon2Config(t *testing.T) {
	cfg := NewArgon2Config(32, 2, 1024, 3)

	assert.Equal(t, uint32(32), cfg.HashLength)
	assert.Equal(t, uint32(2), cfg.Lanes)
	assert.Equal(t, uint32(1024), cfg.MemCost)
	assert.Equal(t, uint32(3), cfg.TimeCost)
	assert.Equal(t, "argon2id", cfg.Variant())
	assert.Equal(t, 0x13, cfg.Version())
}

func TestArgon2ConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Argon2Config
		wantErr bool
	}{
		{"reference", referenceConfig, false},
		{"minimal", NewArgon2Config(4, 1, 8, 1), false},
		{"max lanes", NewArgon2Config(32, 255, 8*255, 1), false},
		{"zero lanes", NewArgon2Config(32, 0, 64, 1), true},
		{"lanes overflow uint8", NewArgon2Config(32, 256, 8*256, 1), true},
		{"memory below 8 per lane", NewArgon2Config(32, 4, 31, 1), true},
		{"zero time cost", NewArgon2Config(32, 1, 64, 0), true},
		{"hash too short", NewArgon2Config(3, 1, 64, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgon2Config)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArgon2HashDeterministic(t *testing.T) {
	first, err := Argon2Hash("Test", referenceConfig)
	require.NoError(t, err)
	second, err := Argon2Hash("Test", referenceConfig)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "$argon2id$v=19$m=8192,t=12,p=4$eHh4eHh4eHg$"), first)
	assert.Equal(t, first, second)

	_, _, hash, err := ParseArgon2Encoded(first)
	require.NoError(t, err)
	assert.Len(t, hash, 2048)
}

func TestArgon2HashKnownAnswer(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "argon2id_test_2048_4_8192_12.txt"))
	require.NoError(t, err)
	want := strings.TrimSpace(string(raw))

	got, err := Argon2Hash("Test", referenceConfig)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	ok, err := Argon2Verify(want, "Test")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon2HashSaltedCustomSalt(t *testing.T) {
	fixed, err := Argon2Hash("Test", referenceConfig)
	require.NoError(t, err)
	salted, err := Argon2HashSalted("Test", "abcdefgh", referenceConfig)
	require.NoError(t, err)

	prefix := "$argon2id$v=19$m=8192,t=12,p=4$YWJjZGVmZ2g$"
	require.True(t, strings.HasPrefix(salted, prefix), salted)

	fixedHash := fixed[strings.LastIndex(fixed, "$")+1:]
	saltedHash := salted[strings.LastIndex(salted, "$")+1:]
	assert.NotEqual(t, fixedHash, saltedHash)
}

func TestArgon2HashMatchesFixedSalt(t *testing.T) {
	a, err := Argon2Hash("secret", cheapConfig)
	require.NoError(t, err)
	b, err := Argon2HashSalted("secret", FixedArgon2Salt, cheapConfig)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestArgon2HashPrefixReflectsConfig(t *testing.T) {
	configs := []Argon2Config{
		cheapConfig,
		NewArgon2Config(16, 2, 128, 2),
		NewArgon2Config(64, 3, 300, 1),
	}

	for _, cfg := range configs {
		got, err := Argon2Hash("value", cfg)
		require.NoError(t, err)

		want := "$argon2id$v=19$m=" + itoa(cfg.MemCost) + ",t=" + itoa(cfg.TimeCost) + ",p=" + itoa(cfg.Lanes) + "$"
		assert.True(t, strings.HasPrefix(got, want), "got %s want prefix %s", got, want)
	}
}

func TestArgon2HashInvalidConfig(t *testing.T) {
	_, err := Argon2Hash("value", NewArgon2Config(32, 0, 64, 1))
	assert.ErrorIs(t, err, ErrInvalidArgon2Config)

	_, err = Argon2HashSalted("value", "short", cheapConfig)
	assert.ErrorIs(t, err, ErrInvalidArgon2Config)
}

func TestArgon2Verify(t *testing.T) {
	encoded, err := Argon2HashSalted("correct horse", "battery-staple", cheapConfig)
	require.NoError(t, err)

	ok, err := Argon2Verify(encoded, "correct horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Argon2Verify(encoded, "wrong horse")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2VerifyRejectsExcessiveCost(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"memory at uint32 max", "$argon2id$v=19$m=4294967295,t=1,p=1$YWJjZGVmZ2g$YWJjZA"},
		{"memory one over cap", "$argon2id$v=19$m=" + itoa(MaxArgon2VerifyMemCost+1) + ",t=1,p=1$YWJjZGVmZ2g$YWJjZA"},
		{"time cost 2000", "$argon2id$v=19$m=64,t=2000,p=1$YWJjZGVmZ2g$YWJjZA"},
		{"time cost one over cap", "$argon2id$v=19$m=64,t=" + itoa(MaxArgon2VerifyTimeCost+1) + ",p=1$YWJjZGVmZ2g$YWJjZA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := ParseArgon2Encoded(tt.encoded)
			require.NoError(t, err)

			ok, err := Argon2Verify(tt.encoded, "pw")
			assert.ErrorIs(t, err, ErrInvalidArgon2Config)
			assert.False(t, ok)
		})
	}
}

func TestArgon2VerifyAcceptsCostAtCap(t *testing.T) {
	cfg := NewArgon2Config(16, 1, 64, MaxArgon2VerifyTimeCost)
	encoded, err := Argon2HashSalted("pw", "abcdefgh", cfg)
	require.NoError(t, err)

	ok, err := Argon2Verify(encoded, "pw")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParseArgon2Encoded(t *testing.T) {
	encoded, err := Argon2HashSalted("pw", "abcdefgh", NewArgon2Config(24, 2, 256, 3))
	require.NoError(t, err)

	cfg, salt, hash, err := ParseArgon2Encoded(encoded)
	require.NoError(t, err)
	assert.Equal(t, NewArgon2Config(24, 2, 256, 3), cfg)
	assert.Equal(t, []byte("abcdefgh"), salt)
	assert.Len(t, hash, 24)
}

func TestParseArgon2EncodedRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"too few fields", "$argon2id$v=19$m=64,t=1,p=1$YWJjZGVmZ2g"},
		{"wrong variant", "$argon2i$v=19$m=64,t=1,p=1$YWJjZGVmZ2g$YWJjZA"},
		{"wrong version", "$argon2id$v=16$m=64,t=1,p=1$YWJjZGVmZ2g$YWJjZA"},
		{"missing version prefix", "$argon2id$19$m=64,t=1,p=1$YWJjZGVmZ2g$YWJjZA"},
		{"params out of order", "$argon2id$v=19$t=1,m=64,p=1$YWJjZGVmZ2g$YWJjZA"},
		{"non-numeric param", "$argon2id$v=19$m=lots,t=1,p=1$YWJjZGVmZ2g$YWJjZA"},
		{"bad salt encoding", "$argon2id$v=19$m=64,t=1,p=1$!!!$YWJjZA"},
		{"bad hash encoding", "$argon2id$v=19$m=64,t=1,p=1$YWJjZGVmZ2g$!!!"},
		{"leading garbage", "x$argon2id$v=19$m=64,t=1,p=1$YWJjZGVmZ2g$YWJjZA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := ParseArgon2Encoded(tt.encoded)
			assert.ErrorIs(t, err, ErrInvalidArgon2Encoding)

			ok, err := Argon2Verify(tt.encoded, "pw")
			assert.Error(t, err)
			assert.False(t, ok)
		})
	}
}

func itoa(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
