package crypto

import (
	"fmt"
	"math"
)

// safeUint32ToUint8 safely converts uint32 to uint8, checking for overflow.
// golang.org/x/crypto/argon2 takes the lane count as uint8 while the Argon2
// config carries it as uint32.
//
// CWE-190: Integer Overflow or Wraparound
// gosec G115: Integer overflow check
func safeUint32ToUint8(val uint32) (uint8, error) {
	if val > math.MaxUint8 {
		return 0, fmt.Errorf("uint32 value exceeds uint8 max: %d (max: %d)", val, math.MaxUint8)
	}
	return uint8(val), nil
}

// safeIntToUint32 safely converts int to uint32, checking both bounds.
// Used for decoded hash lengths, which arrive as int from len().
//
// CWE-190: Integer Overflow or Wraparound
func safeIntToUint32(val int) (uint32, error) {
	if val < 0 {
		return 0, fmt.Errorf("cannot convert negative int to uint32: %d", val)
	}
	if uint64(val) > math.MaxUint32 {
		return 0, fmt.Errorf("int value exceeds uint32 max: %d (max: %d)", val, uint32(math.MaxUint32))
	}
	return uint32(val), nil
}
