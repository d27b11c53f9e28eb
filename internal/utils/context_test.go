// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	t.Run("value present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

		userID, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("value missing", func(t *testing.T) {
		_, ok := GetUserIDFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

		_, ok := GetUserIDFromContext(ctx)
		assert.False(t, ok)
	})
}

func TestGetUserRoleFromContext(t *testing.T) {
	t.Run("value present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserRoleCtxKey, "ADMIN")

		role, ok := GetUserRoleFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "ADMIN", role)
	})

	t.Run("value missing", func(t *testing.T) {
		_, ok := GetUserRoleFromContext(context.Background())
		assert.False(t, ok)
	})
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "userRole", UserRoleCtxKey.String())
}
