package crypto

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/argon2"
)

const (
	// Argon2Variant is the only Argon2 variant this package produces.
	Argon2Variant = "argon2id"

	// Argon2Version is the Argon2 version this package produces (0x13).
	Argon2Version = argon2.Version

	// FixedArgon2Salt is the salt used by Argon2Hash.
	//
	// It is NOT a security feature. Hashes made with it are deterministic
	// and identical for every user with the same password. Use
	// Argon2HashSalted with a per-user random salt for stored credentials.
	FixedArgon2Salt = "xxxxxxxx"

	// MinArgon2SaltLength is the shortest salt the reference Argon2
	// implementation accepts.
	MinArgon2SaltLength = 8

	// MinArgon2HashLength is the shortest output Argon2 can produce.
	MinArgon2HashLength = 4

	// MaxArgon2VerifyMemCost caps the memory cost, in KiB, that
	// Argon2Verify accepts from an encoded string (1 GiB).
	MaxArgon2VerifyMemCost = 1 << 20

	// MaxArgon2VerifyTimeCost caps the number of passes Argon2Verify
	// accepts from an encoded string.
	MaxArgon2VerifyTimeCost = 256
)

// argon2Encoding is unpadded standard base64, as in the reference encoder.
var argon2Encoding = base64.RawStdEncoding

// Argon2Config holds the tunable Argon2id parameters. The variant, version,
// associated data and secret are fixed and cannot be selected.
type Argon2Config struct {
	// HashLength is the output length in bytes.
	HashLength uint32
	// Lanes is the degree of parallelism.
	Lanes uint32
	// MemCost is the memory cost in KiB.
	MemCost uint32
	// TimeCost is the number of passes over memory.
	TimeCost uint32
}

// NewArgon2Config builds a config from all four tunables. No validation
// happens here; invalid parameters are reported when hashing.
func NewArgon2Config(hashLength, lanes, memCost, timeCost uint32) Argon2Config {
	return Argon2Config{
		HashLength: hashLength,
		Lanes:      lanes,
		MemCost:    memCost,
		TimeCost:   timeCost,
	}
}

// Variant returns the Argon2 variant name, always "argon2id".
func (c Argon2Config) Variant() string { return Argon2Variant }

// Version returns the Argon2 version, always 0x13.
func (c Argon2Config) Version() int { return Argon2Version }

// Validate checks the KDF preconditions: 1 <= lanes <= 255,
// mem_cost >= 8*lanes, time_cost >= 1 and hash_length >= 4.
func (c Argon2Config) Validate() error {
	if c.Lanes < 1 {
		return fmt.Errorf("%w: lanes must be at least 1", ErrInvalidArgon2Config)
	}
	if _, err := safeUint32ToUint8(c.Lanes); err != nil {
		return fmt.Errorf("%w: lanes: %v", ErrInvalidArgon2Config, err)
	}
	if uint64(c.MemCost) < 8*uint64(c.Lanes) {
		return fmt.Errorf("%w: mem_cost %d KiB below 8*lanes (%d)", ErrInvalidArgon2Config, c.MemCost, 8*c.Lanes)
	}
	if c.TimeCost < 1 {
		return fmt.Errorf("%w: time_cost must be at least 1", ErrInvalidArgon2Config)
	}
	if c.HashLength < MinArgon2HashLength {
		return fmt.Errorf("%w: hash_length %d below %d", ErrInvalidArgon2Config, c.HashLength, MinArgon2HashLength)
	}
	return nil
}

// Argon2Hash hashes value with the fixed salt FixedArgon2Salt and returns
// the encoded $argon2id$ string. The result is deterministic; see
// FixedArgon2Salt before using it for anything stored.
func Argon2Hash(value string, cfg Argon2Config) (string, error) {
	return Argon2HashSalted(value, FixedArgon2Salt, cfg)
}

// Argon2HashSalted hashes value with the raw bytes of salt and returns
// $argon2id$v=19$m=<M>,t=<T>,p=<P>$<salt>$<hash>.
func Argon2HashSalted(value, salt string, cfg Argon2Config) (string, error) {
	logger := NewLogger("Argon2HashSalted").WithFields(logrus.Fields{
		"mem_cost":  cfg.MemCost,
		"time_cost": cfg.TimeCost,
		"lanes":     cfg.Lanes,
	})

	if err := cfg.Validate(); err != nil {
		logger.WithError(err, "validation_error", "validate_config").Error("Rejected Argon2 parameters")
		return "", err
	}
	if len(salt) < MinArgon2SaltLength {
		err := fmt.Errorf("%w: salt length %d below %d", ErrInvalidArgon2Config, len(salt), MinArgon2SaltLength)
		logger.WithError(err, "validation_error", "validate_salt").Error("Rejected Argon2 salt")
		return "", err
	}

	saltBytes := []byte(salt)
	hash := deriveArgon2(value, saltBytes, cfg)
	defer ZeroBytes(hash)

	return encodeArgon2(cfg, saltBytes, hash), nil
}

// Argon2Verify reports whether candidate hashes to encoded under the
// parameters and salt embedded in encoded. The comparison runs in constant
// time.
//
// Costs above MaxArgon2VerifyMemCost or MaxArgon2VerifyTimeCost are
// rejected before any work is done, so encoded may come from an untrusted
// source.
func Argon2Verify(encoded, candidate string) (bool, error) {
	cfg, salt, want, err := ParseArgon2Encoded(encoded)
	if err != nil {
		return false, err
	}
	if err := cfg.Validate(); err != nil {
		return false, err
	}
	if err := checkArgon2VerifyCost(cfg); err != nil {
		NewLogger("Argon2Verify").WithFields(logrus.Fields{
			"mem_cost":  cfg.MemCost,
			"time_cost": cfg.TimeCost,
		}).WithError(err, "validation_error", "check_cost").Warn("Rejected encoded Argon2 cost")
		return false, err
	}

	got := deriveArgon2(candidate, salt, cfg)
	defer ZeroBytes(got)

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// ParseArgon2Encoded splits an encoded $argon2id$ string into its config,
// salt and hash. Only argon2id version 19 is accepted.
func ParseArgon2Encoded(encoded string) (Argon2Config, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return Argon2Config{}, nil, nil, fmt.Errorf("%w: expected 5 '$'-separated fields", ErrInvalidArgon2Encoding)
	}
	if parts[1] != Argon2Variant {
		return Argon2Config{}, nil, nil, fmt.Errorf("%w: unsupported variant %q", ErrInvalidArgon2Encoding, parts[1])
	}

	version, ok := strings.CutPrefix(parts[2], "v=")
	if !ok || version != strconv.Itoa(Argon2Version) {
		return Argon2Config{}, nil, nil, fmt.Errorf("%w: unsupported version %q", ErrInvalidArgon2Encoding, parts[2])
	}

	var cfg Argon2Config
	params := strings.Split(parts[3], ",")
	if len(params) != 3 {
		return Argon2Config{}, nil, nil, fmt.Errorf("%w: malformed parameters %q", ErrInvalidArgon2Encoding, parts[3])
	}
	for i, target := range []struct {
		key string
		dst *uint32
	}{
		{"m", &cfg.MemCost},
		{"t", &cfg.TimeCost},
		{"p", &cfg.Lanes},
	} {
		raw, ok := strings.CutPrefix(params[i], target.key+"=")
		if !ok {
			return Argon2Config{}, nil, nil, fmt.Errorf("%w: expected %s= in %q", ErrInvalidArgon2Encoding, target.key, params[i])
		}
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return Argon2Config{}, nil, nil, fmt.Errorf("%w: parameter %s: %v", ErrInvalidArgon2Encoding, target.key, err)
		}
		*target.dst = uint32(n)
	}

	salt, err := argon2Encoding.DecodeString(parts[4])
	if err != nil {
		return Argon2Config{}, nil, nil, fmt.Errorf("%w: salt: %v", ErrInvalidArgon2Encoding, err)
	}
	hash, err := argon2Encoding.DecodeString(parts[5])
	if err != nil {
		return Argon2Config{}, nil, nil, fmt.Errorf("%w: hash: %v", ErrInvalidArgon2Encoding, err)
	}

	cfg.HashLength, err = safeIntToUint32(len(hash))
	if err != nil {
		return Argon2Config{}, nil, nil, fmt.Errorf("%w: hash: %v", ErrInvalidArgon2Encoding, err)
	}
	return cfg, salt, hash, nil
}

func checkArgon2VerifyCost(cfg Argon2Config) error {
	if cfg.MemCost > MaxArgon2VerifyMemCost {
		return fmt.Errorf("%w: mem_cost %d KiB above %d", ErrInvalidArgon2Config, cfg.MemCost, MaxArgon2VerifyMemCost)
	}
	if cfg.TimeCost > MaxArgon2VerifyTimeCost {
		return fmt.Errorf("%w: time_cost %d above %d", ErrInvalidArgon2Config, cfg.TimeCost, MaxArgon2VerifyTimeCost)
	}
	return nil
}

// deriveArgon2 runs Argon2id. cfg must already be validated.
func deriveArgon2(value string, salt []byte, cfg Argon2Config) []byte {
	pw := []byte(value)
	defer ZeroBytes(pw)

	lanes, _ := safeUint32ToUint8(cfg.Lanes)
	return argon2.IDKey(pw, salt, cfg.TimeCost, cfg.MemCost, lanes, cfg.HashLength)
}

func encodeArgon2(cfg Argon2Config, salt, hash []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		Argon2Variant, Argon2Version,
		cfg.MemCost, cfg.TimeCost, cfg.Lanes,
		argon2Encoding.EncodeToString(salt),
		argon2Encoding.EncodeToString(hash))
}
