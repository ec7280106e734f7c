package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpennells/stakeholder-map-go/internal/models"
)

func TestLoadJSONCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"Canberra, Australia": [-35.28, 149.13],
		"Atlantis": [null, null],
		"Broken": [1.0]
	}`), 0o644))

	cache, err := LoadJSONCache(path)
	require.NoError(t, err)
	require.Len(t, cache, 1)
	assert.Equal(t, models.Coordinate{Latitude: -35.28, Longitude: 149.13}, cache["Canberra, Australia"])
}

func TestJSONCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	entries := map[string]*models.Coordinate{
		"Paris, France": {Latitude: 48.85, Longitude: 2.35},
		"Atlantis":      nil,
	}
	require.NoError(t, WriteJSONCache(path, entries))

	cache, err := LoadJSONCache(path)
	require.NoError(t, err)
	require.Len(t, cache, 1)
	assert.Equal(t, models.Coordinate{Latitude: 48.85, Longitude: 2.35}, cache["Paris, France"])
}

func TestLoadJSONCacheMissingFile(t *testing.T) {
	_, err := LoadJSONCache(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
