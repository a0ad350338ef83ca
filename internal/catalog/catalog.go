package catalog

import (
	"fmt"
	"os"

	"aircraft-production-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// Catalog holds the fixed reference enumerations of the production system.
// It is loaded once at startup and never mutated afterwards.
type Catalog struct {
	AircraftModels []string `yaml:"aircraft_models"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		AircraftModels: []string{"TB2", "TB3", "AKINCI", "KIZILELMA"},
	}
}

// Load reads a catalog override file. A missing file falls back to the
// built-in defaults; a malformed file is an error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(cat.AircraftModels) == 0 {
		cat.AircraftModels = Default().AircraftModels
	}
	return &cat, nil
}

// SlotCategories lists the four aircraft slots in assembly order. Every
// aircraft requires one compatible part per category.
var SlotCategories = []models.PartCategory{
	models.PartCategoryWing,
	models.PartCategoryFuselage,
	models.PartCategoryTail,
	models.PartCategoryAvionics,
}

// producibleCategories maps a team type to the single part category that
// team type is permitted to manufacture. Assembly teams have no entry.
var producibleCategories = map[models.TeamType]models.PartCategory{
	models.TeamTypeWing:     models.PartCategoryWing,
	models.TeamTypeFuselage: models.PartCategoryFuselage,
	models.TeamTypeTail:     models.PartCategoryTail,
	models.TeamTypeAvionics: models.PartCategoryAvionics,
}

// ProducibleCategory returns the part category a team type may produce.
// The second return value is false for assembly teams and unknown types.
func ProducibleCategory(t models.TeamType) (models.PartCategory, bool) {
	c, ok := producibleCategories[t]
	return c, ok
}

// CanPerformAssembly reports whether a team type is allowed to assemble
// aircraft.
func CanPerformAssembly(t models.TeamType) bool {
	return t == models.TeamTypeAssembly
}

// serialAbbreviations are the fixed three-letter codes embedded in part
// serial numbers. These are an external contract and must not change.
var serialAbbreviations = map[models.PartCategory]string{
	models.PartCategoryAvionics: "AVY",
	models.PartCategoryWing:     "KNT",
	models.PartCategoryFuselage: "GVD",
	models.PartCategoryTail:     "KYR",
}

// Abbreviation returns the serial-number code for a part category, or
// "XXX" for an unknown category.
func Abbreviation(c models.PartCategory) string {
	if abbr, ok := serialAbbreviations[c]; ok {
		return abbr
	}
	return "XXX"
}
