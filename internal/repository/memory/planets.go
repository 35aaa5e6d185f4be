package memory

import (
	"time"

	"github.com/maxviazov/swapi-mock/internal/generator"
	"github.com/maxviazov/swapi-mock/internal/model"
)

// PlanetsEndpoint names the planets resource in routes, URLs and logs.
const PlanetsEndpoint = "planets"

var (
	validDiameters       = []string{"5000", "10000", "15000", "20000", "25000", "30000"}
	validRotationPeriods = []string{"21", "22", "23", "24", "25", "26", "27"}
	validOrbitalPeriods  = []string{"350", "355", "360", "365", "370", "375", "380"}
	validGravities       = []string{"0.5 G", "1 G", "1.5 G", "2 G"}
	validPopulations     = []string{"5B", "7B", "7.5B", "8B", "10B"}
	validClimates        = []string{"dry", "wet", "tropical"}
	validTerrains        = []string{"mountain", "beach", "lake", "ocean"}
	validSurfaceWater    = []string{"0%", "25%", "50%", "75%", "100%"}
)

// BuildPlanets generates n planets, seeding every field with the record's own index.
func BuildPlanets(base time.Time, n int) []model.Planet {
	out := make([]model.Planet, 0, n)
	for i := 0; i < n; i++ {
		date := generator.OffsetDate(base, i)
		out = append(out, model.Planet{
			Name:           generator.LabelWithIndex("Name", i),
			Diameter:       generator.PickElement(validDiameters, i),
			RotationPeriod: generator.PickElement(validRotationPeriods, i),
			OrbitalPeriod:  generator.PickElement(validOrbitalPeriods, i),
			Gravity:        generator.PickElement(validGravities, i),
			Population:     generator.PickElement(validPopulations, i),
			Climate:        generator.PickElement(validClimates, i),
			Terrain:        generator.PickElement(validTerrains, i),
			SurfaceWater:   generator.PickElement(validSurfaceWater, i),
			URL:            generator.LabelWithIndex(PlanetsEndpoint, i),
			Created:        date,
			Edited:         date,
		})
	}
	return out
}
