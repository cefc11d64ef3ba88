package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_DeterministicPerSalt(t *testing.T) {
	salt := GenerateSalt(16)

	k1 := DeriveKey([]byte("secret1"), salt)
	k2 := DeriveKey([]byte("secret1"), salt)
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 32)

	other := DeriveKey([]byte("secret2"), salt)
	assert.NotEqual(t, k1, other)

	otherSalt := DeriveKey([]byte("secret1"), GenerateSalt(16))
	assert.NotEqual(t, k1, otherSalt)
}

func TestMakeVerifier_StableAndDistinctFromKey(t *testing.T) {
	key := DeriveKey([]byte("secret1"), GenerateSalt(16))

	v1 := MakeVerifier(key)
	v2 := MakeVerifier(key)
	assert.Equal(t, v1, v2)
	assert.NotEqual(t, key, v1)
}

func TestGenerateSalt_LengthAndUniqueness(t *testing.T) {
	a := GenerateSalt(32)
	b := GenerateSalt(32)

	require.Len(t, a, 32)
	require.Len(t, b, 32)
	assert.NotEqual(t, a, b)
}

func TestWipeBytes(t *testing.T) {
	b := []byte("password")
	WipeBytes(b)
	assert.Equal(t, make([]byte, len(b)), b)

	WipeBytes(nil)
}
