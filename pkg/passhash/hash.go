package passhash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Tunables — adjust to your performance budget.
// OWASP-recommended defaults for Argon2id.
const (
	DefaultMemory      = 64 * 1024 // 64 MiB
	DefaultIterations  = 3
	DefaultParallelism = 2
	SaltLen            = 16
	KeyLen             = 32
)

var ErrMalformedHash = errors.New("malformed argon2 hash")

// HashPassword creates a salted Argon2id hash, returning an encoded string:
// $argon2id$v=19$m=<mem>,t=<iters>,p=<par>$<saltB64>$<dkB64>
//
// The same plaintext yields a different encoding on every call because the
// salt is random.
func HashPassword(password string) (string, error) {
	salt := make([]byte, SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("rand.Read: %w", err)
	}

	dk := argon2.IDKey([]byte(password), salt, DefaultIterations, DefaultMemory, DefaultParallelism, KeyLen)

	enc := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		DefaultMemory,
		DefaultIterations,
		DefaultParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(dk),
	)

	// Best-effort wipe dk
	for i := range dk {
		dk[i] = 0
	}
	return enc, nil
}

// VerifyPassword compares a plaintext password with an encoded Argon2id hash.
// Returns true on match (constant-time). A structurally broken encoding is an
// error; a well-formed encoding that does not match is (false, nil).
func VerifyPassword(password, encoded string) (bool, error) {
	mem, iters, par, salt, want, err := decode(encoded)
	if err != nil {
		return false, err
	}

	got := argon2.IDKey([]byte(password), salt, iters, mem, par, uint32(len(want)))
	ok := subtle.ConstantTimeCompare(got, want) == 1

	// Best-effort wipe got
	for i := range got {
		got[i] = 0
	}
	return ok, nil
}

func decode(encoded string) (mem uint32, iters uint32, par uint8, salt, dk []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}
	if mem == 0 || iters == 0 || par == 0 {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}
	dk, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(dk) == 0 {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	return mem, iters, par, salt, dk, nil
}
