// Package password builds salted plaintexts for digest-based hashing.
//
// A salted plaintext joins a secret and a salt with a single ':' byte,
// secret first:
//
//	sp := password.New("hello", "world")
//	fmt.Println(sp.Salted()) // hello:world
//
// The framing is byte-deterministic, so two callers that build the same
// (secret, salt) pair always hash the same bytes. The delimiter is not
// escaped; a salt that itself contains ':' can collide with a different
// (secret, salt) split.
package password
