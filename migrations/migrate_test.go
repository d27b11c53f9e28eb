// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"io/fs"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations_Present(t *testing.T) {
	entries, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	sort.Strings(entries)
	assert.Equal(t, []string{
		"00001_create_users.sql",
		"00002_create_catalog.sql",
		"00003_create_stock_movements.sql",
	}, entries)
}

func TestEmbeddedMigrations_HaveUpAndDown(t *testing.T) {
	entries, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)

	for _, name := range entries {
		contents, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)

		assert.Contains(t, string(contents), "-- +goose Up", name)
		assert.Contains(t, string(contents), "-- +goose Down", name)
	}
}
