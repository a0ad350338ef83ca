package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"aircraft-production-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cat := Default()
	assert.Equal(t, []string{"TB2", "TB3", "AKINCI", "KIZILELMA"}, cat.AircraftModels)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cat, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().AircraftModels, cat.AircraftModels)
}

func TestLoad_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aircraft_models:\n  - TB2\n  - TESTBIRD\n"), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"TB2", "TESTBIRD"}, cat.AircraftModels)
}

func TestLoad_EmptyModelsFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aircraft_models: []\n"), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().AircraftModels, cat.AircraftModels)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aircraft_models: {not: [valid"), 0o644))

	cat, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cat)
}

func TestSlotCategoriesOrder(t *testing.T) {
	assert.Equal(t, []models.PartCategory{
		models.PartCategoryWing,
		models.PartCategoryFuselage,
		models.PartCategoryTail,
		models.PartCategoryAvionics,
	}, SlotCategories)
}

func TestProducibleCategory(t *testing.T) {
	cases := map[models.TeamType]models.PartCategory{
		models.TeamTypeWing:     models.PartCategoryWing,
		models.TeamTypeFuselage: models.PartCategoryFuselage,
		models.TeamTypeTail:     models.PartCategoryTail,
		models.TeamTypeAvionics: models.PartCategoryAvionics,
	}
	for teamType, want := range cases {
		got, ok := ProducibleCategory(teamType)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := ProducibleCategory(models.TeamTypeAssembly)
	assert.False(t, ok)
}

func TestCanPerformAssembly(t *testing.T) {
	assert.True(t, CanPerformAssembly(models.TeamTypeAssembly))
	assert.False(t, CanPerformAssembly(models.TeamTypeWing))
	assert.False(t, CanPerformAssembly(models.TeamType("UNKNOWN")))
}

func TestAbbreviation(t *testing.T) {
	assert.Equal(t, "AVY", Abbreviation(models.PartCategoryAvionics))
	assert.Equal(t, "KNT", Abbreviation(models.PartCategoryWing))
	assert.Equal(t, "GVD", Abbreviation(models.PartCategoryFuselage))
	assert.Equal(t, "KYR", Abbreviation(models.PartCategoryTail))
	assert.Equal(t, "XXX", Abbreviation(models.PartCategory("PROPELLER")))
}
