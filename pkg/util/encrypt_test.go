package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2HashRoundTrip(t *testing.T) {
	hash, err := CreateArgon2Hash("my_secure_password")
	require.NoError(t, err)
	assert.True(t, IsArgon2Hash(hash))

	other, err := CreateArgon2Hash("my_secure_password")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salt is random")

	cases := map[string]bool{
		"my_secure_password":  true,
		"wrong_password":      false,
		"my_secure_password ": false,
		"":                    false,
	}
	for candidate, want := range cases {
		ok, err := ComparePasswordAndHash(candidate, hash)
		require.NoError(t, err)
		assert.Equal(t, want, ok, "candidate %q", candidate)
	}
}

func TestArgon2RejectsForeignEncodings(t *testing.T) {
	for _, encoded := range []string{"not-a-hash", "plain", "$argon2i$v=19$m=65536,t=1,p=2$c2FsdA$aGFzaA"} {
		assert.False(t, IsArgon2Hash(encoded), encoded)
	}
	_, err := ComparePasswordAndHash("pw", "not-a-hash")
	assert.Error(t, err)
}
