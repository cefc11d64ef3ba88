package session

import (
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/cryptox"
)

// Codec turns a password into the value stored in the credential map and
// verifies a password candidate against a stored value.
type Codec interface {
	Encode(password string) (string, error)
	Verify(stored, password string) bool
}

// PlainCodec stores the password as-is and verifies by exact comparison
// (case-sensitive, no trimming). Use HashedCodec anywhere the store could
// leak.
type PlainCodec struct{}

func (PlainCodec) Encode(password string) (string, error) {
	return password, nil
}

func (PlainCodec) Verify(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// HashedCodec stores "hex(salt)$hex(verifier)" where the verifier is
// derived from the password with argon2id under a fresh random salt.
type HashedCodec struct{}

func (HashedCodec) Encode(password string) (string, error) {
	salt := cryptox.GenerateSalt(16)
	key := cryptox.DeriveKey([]byte(password), salt)
	verifier := cryptox.MakeVerifier(key)
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(verifier), nil
}

func (HashedCodec) Verify(stored, password string) bool {
	salt, verifier, ok := splitEncoded(stored)
	if !ok {
		return false
	}
	key := cryptox.DeriveKey([]byte(password), salt)
	candidate := cryptox.MakeVerifier(key)
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}

func splitEncoded(stored string) (salt, verifier []byte, ok bool) {
	parts := strings.SplitN(stored, "$", 2)
	if len(parts) != 2 {
		return nil, nil, false
	}
	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, nil, false
	}
	verifier, err = hex.DecodeString(parts[1])
	if err != nil {
		return nil, nil, false
	}
	return salt, verifier, true
}
