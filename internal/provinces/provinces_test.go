package provinces_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leohylee/tes-companion/internal/entities"
	"github.com/leohylee/tes-companion/internal/provinces"
)

func TestDefault(t *testing.T) {
	catalog, err := provinces.Default()
	require.NoError(t, err)

	assert.Len(t, catalog.Maps, 7)
	assert.Len(t, catalog.TokenIcons, 8)

	cyrodiil, ok := catalog.Map(entities.MapCyrodiil)
	require.True(t, ok)
	assert.Equal(t, "/maps/cyrodiil.jpg", cyrodiil.ImagePath)
	assert.Len(t, cyrodiil.ReferenceImages, 2)

	_, ok = catalog.Map("atlantis")
	assert.False(t, ok)
}

func TestDayColor(t *testing.T) {
	catalog, err := provinces.Default()
	require.NoError(t, err)

	assert.Equal(t, "#3B82F6", catalog.DayColor(1))
	assert.Equal(t, "#F59E0B", catalog.DayColor(10))
	assert.Equal(t, "#3B82F6", catalog.DayColor(11))
	assert.Equal(t, "#3B82F6", catalog.DayColor(0))
}

func TestParse_Rejects(t *testing.T) {
	_, err := provinces.Parse([]byte("maps:\n  - id: atlantis\n    image_path: /x.jpg\n"))
	assert.ErrorContains(t, err, "unknown map id")

	_, err = provinces.Parse([]byte("maps: ["))
	assert.ErrorContains(t, err, "provinces.yaml")

	_, err = provinces.Parse([]byte("maps:\n  - id: cyrodiil\n    image_path: /c.jpg\nday_colors: ['#fff']\n"))
	assert.ErrorContains(t, err, "missing")
}

func TestLoad(t *testing.T) {
	_, err := provinces.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	raw, err := os.ReadFile("provinces.yaml")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "provinces.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	catalog, err := provinces.Load(path)
	require.NoError(t, err)
	assert.Len(t, catalog.Maps, 7)
}
