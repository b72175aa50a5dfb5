// Package passhash turns plaintext passwords into salted, irreversible
// secrets and verifies passwords against them.
//
// New secrets are argon2id hashes in PHC string format. Secrets produced by
// bcrypt ($2a$, $2b$, $2y$) are still verified so accounts imported from the
// previous deployment keep working.
package passhash

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ideae/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Parameters tuned for interactive logins.
const (
	memory      uint32 = 64 * 1024
	iterations  uint32 = 3
	parallelism uint8  = 2
	saltLength         = 16
	hashLength  uint32 = 32
)

var (
	ErrEmptyHash     = errors.New("passhash: empty hash")
	ErrInvalidFormat = errors.New("passhash: invalid hash format")
	ErrIncompatible  = errors.New("passhash: incompatible argon2 version")
)

// Hash returns a PHC formatted argon2id secret for password using a fresh
// random salt, so hashing the same password twice yields different secrets.
func Hash(password string) (string, error) {
	salt := common.GenerateRandByteArray(saltLength)

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	key := argon2.IDKey(pw, salt, iterations, memory, parallelism, hashLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memory, iterations, parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password reproduces encoded. Comparison of the
// derived key is constant time. A malformed secret returns an error.
func Verify(password, encoded string) (bool, error) {
	switch {
	case encoded == "":
		return false, ErrEmptyHash
	case strings.HasPrefix(encoded, "$argon2id$"):
		return verifyArgon2(password, encoded)
	case strings.HasPrefix(encoded, "$2a$"), strings.HasPrefix(encoded, "$2b$"), strings.HasPrefix(encoded, "$2y$"):
		err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return err == nil, err
	default:
		return false, ErrInvalidFormat
	}
}

func verifyArgon2(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false, ErrInvalidFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, ErrInvalidFormat
	}
	if version != argon2.Version {
		return false, ErrIncompatible
	}

	var m, t uint32
	var p uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false, ErrInvalidFormat
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrInvalidFormat
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false, ErrInvalidFormat
	}

	got := argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
