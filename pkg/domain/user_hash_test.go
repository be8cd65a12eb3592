package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHashUserID(t *testing.T) {
	hash := HashUserID("user-42")

	// sha256 hex digest, stable for the same input
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashUserID("user-42"))
	assert.Equal(t, hash, HashUserID("  user-42  "))
	assert.NotEqual(t, hash, HashUserID("user-43"))
	assert.NotContains(t, hash, "user-42")
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("violation", uuid.New())

	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(ErrPatternAlreadyReviewed))
	assert.Contains(t, err.Error(), "violation")
}
