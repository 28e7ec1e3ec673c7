package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTempPassword(t *testing.T) {
	pw, err := GenerateTempPassword()
	require.NoError(t, err)
	assert.Len(t, pw, TempPasswordLength)

	for _, r := range pw {
		assert.Contains(t, tempPasswordChars, string(r))
	}
	assert.NotContains(t, pw, "0")
	assert.NotContains(t, pw, "O")
	assert.NotContains(t, pw, "1")
	assert.NotContains(t, pw, "l")
	assert.NotContains(t, pw, "I")
}

func TestGenerateTempPasswordVaries(t *testing.T) {
	a, err := GenerateTempPassword()
	require.NoError(t, err)
	b, err := GenerateTempPassword()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestTempPasswordAlphabetHasNoAmbiguousGlyphs(t *testing.T) {
	for _, bad := range "0O1lIi" {
		assert.False(t, strings.ContainsRune(tempPasswordChars, bad), "alphabet contains %q", bad)
	}
}

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("mynewpassword")
	require.NoError(t, err)
	assert.NotEqual(t, "mynewpassword", hash)

	assert.NoError(t, ComparePasswords(hash, "mynewpassword"))
	assert.Error(t, ComparePasswords(hash, "Mynewpassword"))
}
