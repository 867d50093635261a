package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		notFound  bool
		duplicate bool
	}{
		{"nil", nil, false, false},
		{"unrelated", errors.New("some error"), false, false},
		{"user not found", ErrUserNotFound, true, false},
		{"wrapped bookmark not found", fmt.Errorf("delete: %w", ErrBookmarkNotFound), true, false},
		{"email exists", ErrEmailExists, false, true},
		{"store error around not found", NewStoreError("bookmark", "update", "no rows affected", ErrBookmarkNotFound),
			true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.notFound, IsNotFoundError(tc.err))
			assert.Equal(t, tc.duplicate, errors.Is(tc.err, ErrDuplicate))
		})
	}

	assert.False(t, errors.Is(ErrUserNotFound, ErrBookmarkNotFound))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("user", "create", "insert failed", cause)
	assert.Equal(t, "create operation on user failed: insert failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("bookmark", "list_by_user", "scan failed", nil)
	assert.Equal(t, "list_by_user operation on bookmark failed: scan failed", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
