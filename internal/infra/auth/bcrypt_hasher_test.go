package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "pw123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Digests are salted: hashing the same password twice yields two
	// different digests that both verify.
	secondHash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEqual(t, hash, secondHash)
	assert.True(t, hasher.Check(password, hash))
	assert.True(t, hasher.Check(password, secondHash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "correct horse battery staple"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("", hash))

	// A corrupted digest from storage reports a mismatch, never a panic.
	assert.False(t, hasher.Check(password, "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_CrossPasswordMismatch(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hashA, err := hasher.Hash("password-a")
	assert.NoError(t, err)
	hashB, err := hasher.Hash("password-b")
	assert.NoError(t, err)

	assert.False(t, hasher.Check("password-a", hashB))
	assert.False(t, hasher.Check("password-b", hashA))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("pw123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	hash, err := hasher.Hash("pw123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
