package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2HashService_HashAndVerify(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := svc.Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2HashService_SaltsDiffer(t *testing.T) {
	svc := NewArgon2HashService()

	h1, err := svc.Hash("same password")
	require.NoError(t, err)
	h2, err := svc.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestArgon2HashService_Verify_MalformedHash(t *testing.T) {
	svc := NewArgon2HashService()

	ok, err := svc.Verify("password", "$bcrypt$whatever")
	assert.False(t, ok)
	assert.Error(t, err)

	ok, err = svc.Verify("password", "not even close")
	assert.False(t, ok)
	assert.Error(t, err)
}
