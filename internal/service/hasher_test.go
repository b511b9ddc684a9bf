package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_DigestAndMatch(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Digest("Str0ngPwd!")
	require.NoError(t, err)

	assert.NotContains(t, string(digest), "Str0ngPwd!")
	assert.True(t, hasher.Matches(digest, "Str0ngPwd!"))
	assert.False(t, hasher.Matches(digest, "str0ngPwd!"))
}

func TestBcryptHasher_Salted(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Digest("1234")
	require.NoError(t, err)
	second, err := hasher.Digest("1234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Matches(second, "1234"))
}

func TestBcryptHasher_GarbageDigest(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	assert.False(t, hasher.Matches([]byte("not-a-digest"), "1234"))
	assert.False(t, hasher.Matches(nil, ""))
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).Cost)
	assert.Equal(t, 6, NewBcryptHasher(6).Cost)
}

func TestBcryptHasher_LongSecrets(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	long := "Str0ngPwd!" + strings.Repeat("a", 70)

	digest, err := hasher.Digest(long)
	require.NoError(t, err)

	assert.True(t, hasher.Matches(digest, long))
	assert.False(t, hasher.Matches(digest, long+"b"))
	assert.False(t, hasher.Matches(digest, long[:72]), "bytes past 72 still count")
}
