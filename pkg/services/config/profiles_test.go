package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilesFile = `
[pipeline]
path  = /var/lib/reports/pipeline.db
limit = 5000

[archive]
path = /var/lib/reports/archive.db

[broken]
limit = 10
`

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	registry, err := NewRegistry(writeFile(t, "profiles.ini", profilesFile))
	require.NoError(t, err)

	t.Run("lists profiles with keys", func(t *testing.T) {
		profiles, err := registry.GetProfiles(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"pipeline", "archive", "broken"}, profiles)
	})

	t.Run("profile with limit", func(t *testing.T) {
		profile, err := registry.GetProfile(ctx, "pipeline")
		require.NoError(t, err)
		assert.Equal(t, domain.DataSourceProfile{Name: "pipeline", Path: "/var/lib/reports/pipeline.db", Limit: 5000}, profile)
		assert.Equal(t, "pipeline:/var/lib/reports/pipeline.db", profile.String())
	})

	t.Run("profile without limit", func(t *testing.T) {
		profile, err := registry.GetProfile(ctx, "archive")
		require.NoError(t, err)
		assert.Equal(t, 0, profile.Limit)
	})

	t.Run("profile without path", func(t *testing.T) {
		_, err := registry.GetProfile(ctx, "broken")
		assert.ErrorContains(t, err, "has no path")
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := registry.GetProfile(ctx, "staging")
		assert.ErrorContains(t, err, "not found")
	})
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
