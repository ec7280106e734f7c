package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpennells/stakeholder-map-go/internal/database"
	"github.com/jpennells/stakeholder-map-go/internal/models"
)

func testRepo(t *testing.T) *GeocodeRepository {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewGeocodeRepository(db)
}

func TestUpsertAndLoadCache(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Upsert("Paris, France", &models.Coordinate{Latitude: 48.85, Longitude: 2.35}))
	require.NoError(t, repo.Upsert("Atlantis", nil)) // unresolved

	cache, err := repo.LoadCache()
	require.NoError(t, err)
	require.Len(t, cache, 1)
	assert.Equal(t, models.Coordinate{Latitude: 48.85, Longitude: 2.35}, cache["Paris, France"])

	_, ok := cache["Atlantis"]
	assert.False(t, ok)
}

func TestUpsertReplacesExistingEntry(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Upsert("Paris, France", nil))
	require.NoError(t, repo.Upsert("Paris, France", &models.Coordinate{Latitude: 48.85, Longitude: 2.35}))

	cache, err := repo.LoadCache()
	require.NoError(t, err)
	assert.Len(t, cache, 1)
}

func TestLocationsIncludeUnresolved(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Upsert("Paris, France", &models.Coordinate{Latitude: 48.85, Longitude: 2.35}))
	require.NoError(t, repo.Upsert("Atlantis", nil))

	known, err := repo.Locations()
	require.NoError(t, err)
	assert.True(t, known["Paris, France"])
	assert.True(t, known["Atlantis"])
	assert.False(t, known["Oslo, Norway"])
}

func TestAll(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.Upsert("Paris, France", &models.Coordinate{Latitude: 48.85, Longitude: 2.35}))
	require.NoError(t, repo.Upsert("Atlantis", nil))

	entries, err := repo.All()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.NotNil(t, entries["Paris, France"])
	assert.Equal(t, 48.85, entries["Paris, France"].Latitude)
	assert.Nil(t, entries["Atlantis"])
}
