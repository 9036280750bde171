package datapath

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// HashAlgo names a supported hashing algorithm.
type HashAlgo string

const (
	// HashSHA256 is deterministic; use it for fingerprints, not passwords.
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 is deterministic; use it for fingerprints, not passwords.
	HashSHA512 HashAlgo = "sha512"

	// HashArgon2 is Argon2id with a random salt.
	HashArgon2 HashAlgo = "argon2"

	// HashBcrypt is bcrypt at the default cost.
	HashBcrypt HashAlgo = "bcrypt"
)

// Hasher hashes a value one way.
type Hasher interface {
	Hash(plaintext []byte) (string, error)
}

// HasherFunc adapts a function to Hasher.
type HasherFunc func([]byte) (string, error)

// Hash calls f.
func (f HasherFunc) Hash(plaintext []byte) (string, error) { return f(plaintext) }

var hashers = map[HashAlgo]Hasher{
	HashSHA256: HasherFunc(hashSHA256),
	HashSHA512: HasherFunc(hashSHA512),
	HashArgon2: HasherFunc(hashArgon2),
	HashBcrypt: HasherFunc(hashBcrypt),
}

// HasherFor returns the built-in hasher for algo.
func HasherFor(algo HashAlgo) (Hasher, bool) {
	h, ok := hashers[algo]
	return h, ok
}

func hashSHA256(plaintext []byte) (string, error) {
	sum := sha256.Sum256(plaintext)
	return hex.EncodeToString(sum[:]), nil
}

func hashSHA512(plaintext []byte) (string, error) {
	sum := sha512.Sum512(plaintext)
	return hex.EncodeToString(sum[:]), nil
}

// Argon2id parameters.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// hashArgon2 encodes as $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>.
func hashArgon2(plaintext []byte) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	key := argon2.IDKey(plaintext, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func hashBcrypt(plaintext []byte) (string, error) {
	out, err := bcrypt.GenerateFromPassword(plaintext, bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash failed: %w", err)
	}
	return string(out), nil
}
