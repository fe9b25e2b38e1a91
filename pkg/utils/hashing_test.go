package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	assert.NoError(t, ComparePasswords(hash, "s3cret"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}

func TestGenerateTempPassword(t *testing.T) {
	pw, err := GenerateTempPassword(10)
	require.NoError(t, err)
	assert.Len(t, pw, 10)

	_, err = GenerateTempPassword(0)
	assert.Error(t, err)
}
