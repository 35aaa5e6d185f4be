package memory

import (
	"time"

	"github.com/maxviazov/swapi-mock/internal/generator"
	"github.com/maxviazov/swapi-mock/internal/model"
)

// PeopleEndpoint names the people resource in routes, URLs and logs.
const PeopleEndpoint = "people"

var (
	validColors  = []string{"brown", "blue", "green", "black"}
	validGenders = []string{"male", "female", "unknown"}
	validHeights = []string{"160", "165", "170", "175", "180", "185", "190", "195", "200"}
	validMasses  = []string{"60", "65", "70", "75", "80", "85", "90", "95", "100"}
)

// BuildPeople generates n people, seeding every field with the record's own index.
func BuildPeople(base time.Time, n int) []model.Person {
	out := make([]model.Person, 0, n)
	for i := 0; i < n; i++ {
		date := generator.OffsetDate(base, i)
		out = append(out, model.Person{
			Name:      generator.LabelWithIndex("Name", i),
			BirthYear: date,
			EyeColor:  generator.PickElement(validColors, i),
			Gender:    generator.PickElement(validGenders, i),
			HairColor: generator.PickElement(validColors, i),
			Height:    generator.PickElement(validHeights, i),
			Mass:      generator.PickElement(validMasses, i),
			SkinColor: generator.PickElement(validColors, i),
			URL:       generator.LabelWithIndex(PeopleEndpoint, i),
			Created:   date,
			Edited:    date,
		})
	}
	return out
}
