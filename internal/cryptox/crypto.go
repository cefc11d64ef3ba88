// Package cryptox provides the key-derivation primitives behind the hashed
// credential encoding.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// DeriveKey stretches a password with argon2id under the given salt.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier reduces a derived key to the value that is actually stored.
// Storing the verifier rather than the key keeps the key itself out of the
// store.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// GenerateSalt returns n cryptographically random bytes.
func GenerateSalt(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failure means the platform RNG is broken;
		// nothing sensible to do but stop.
		panic(err)
	}
	return b
}

// WipeBytes overwrites the slice with zeros. Use it on password buffers
// once they are no longer needed. Nil slices are ignored.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
