package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMismatch indicates the supplied password does not match the stored hash.
var ErrMismatch = errors.New("password does not match")

// ErrCorruptHash indicates the stored hash string could not be decoded.
// Distinct from ErrMismatch: this signals data corruption, not a wrong password.
var ErrCorruptHash = errors.New("corrupt password hash")

// params holds the Argon2id cost parameters embedded in every hash string.
type params struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// defaultParams match the OWASP-recommended Argon2id configuration.
var defaultParams = params{
	memory:      19456,
	iterations:  2,
	parallelism: 1,
	saltLength:  16,
	keyLength:   32,
}

// hash derives an Argon2id hash with a fresh random salt and returns it in
// PHC string format: $argon2id$v=19$m=...,t=...,p=...$<salt>$<digest>
func hash(password string) (string, error) {
	p := defaultParams

	salt := make([]byte, p.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, p.iterations, p.memory, p.parallelism, p.keyLength)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memory,
		p.iterations,
		p.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// verify re-derives the key using the parameters embedded in the encoded
// hash and compares in constant time.
func verify(password, encoded string) error {
	p, salt, key, err := decodeHash(encoded)
	if err != nil {
		return err
	}

	candidate := argon2.IDKey([]byte(password), salt, p.iterations, p.memory, p.parallelism, p.keyLength)

	if subtle.ConstantTimeCompare(key, candidate) != 1 {
		return ErrMismatch
	}
	return nil
}

// decodeHash parses a PHC-formatted Argon2id hash string. Any structural
// problem maps to ErrCorruptHash.
func decodeHash(encoded string) (params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return params{}, nil, nil, ErrCorruptHash
	}
	if parts[1] != "argon2id" {
		return params{}, nil, nil, fmt.Errorf("%w: unsupported algorithm %q", ErrCorruptHash, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params{}, nil, nil, ErrCorruptHash
	}
	if version != argon2.Version {
		return params{}, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptHash, version)
	}

	var p params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return params{}, nil, nil, ErrCorruptHash
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil {
		return params{}, nil, nil, ErrCorruptHash
	}
	p.saltLength = uint32(len(salt))

	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil {
		return params{}, nil, nil, ErrCorruptHash
	}
	p.keyLength = uint32(len(key))

	return p, salt, key, nil
}
