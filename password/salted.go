package password

// Delimiter separates the secret from the salt in a salted plaintext.
const Delimiter = ':'

// SaltedPlaintext is an immutable (secret, salt, secret:salt) triple.
type SaltedPlaintext struct {
	secret string
	salt   string
	salted string
}

// New joins secret and salt under the fixed framing secret || ':' || salt.
func New(secret, salt string) SaltedPlaintext {
	buf := make([]byte, 0, len(secret)+1+len(salt))
	buf = append(buf, secret...)
	buf = append(buf, Delimiter)
	buf = append(buf, salt...)

	return SaltedPlaintext{
		secret: secret,
		salt:   salt,
		salted: string(buf),
	}
}

// Secret returns the secret the plaintext was built from.
func (p SaltedPlaintext) Secret() string { return p.secret }

// Salt returns the salt the plaintext was built from.
func (p SaltedPlaintext) Salt() string { return p.salt }

// Salted returns the framed value.
func (p SaltedPlaintext) Salted() string { return p.salted }

// Bytes returns a fresh copy of the framed value.
func (p SaltedPlaintext) Bytes() []byte { return []byte(p.salted) }
