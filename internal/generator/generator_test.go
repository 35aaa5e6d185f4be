package generator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/swapi-mock/internal/generator"
)

func TestPickElement(t *testing.T) {
	colors := []string{"brown", "blue", "green", "black"}
	cases := []struct {
		name  string
		index int
		want  string
	}{
		{"first", 0, "brown"},
		{"in range", 2, "green"},
		{"wraps", 4, "brown"},
		{"wraps twice", 9, "blue"},
		{"negative wraps", -1, "black"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, generator.PickElement(colors, tc.index))
		})
	}
}

func TestPickElement_EmptyVocabularyPanics(t *testing.T) {
	assert.Panics(t, func() { generator.PickElement([]string{}, 3) })
}

func TestLabelWithIndex(t *testing.T) {
	assert.Equal(t, "Name-3", generator.LabelWithIndex("Name", 3))
	assert.Equal(t, "people-54", generator.LabelWithIndex("people", 54))
}

func TestOffsetDate(t *testing.T) {
	base := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)
	assert.True(t, generator.OffsetDate(base, 0).Equal(base))
	assert.Equal(t, base.Add(3*time.Hour), generator.OffsetDate(base, 3))
	// same inputs, same output
	assert.Equal(t, generator.OffsetDate(base, 10), generator.OffsetDate(base, 10))
}
