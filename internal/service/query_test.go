package service_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/swapi-mock/internal/model"
	"github.com/maxviazov/swapi-mock/internal/repository/memory"
	"github.com/maxviazov/swapi-mock/internal/service"
)

const baseURL = "http://localhost:3000"

var seedBase = time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func people() []model.Person  { return memory.BuildPeople(seedBase, memory.NumElements) }
func planets() []model.Planet { return memory.BuildPlanets(seedBase, memory.NumElements) }

func TestApply_Scenarios(t *testing.T) {
	t.Run("people page 1", func(t *testing.T) {
		env := service.Apply(baseURL, "people", people(), service.Query{Page: 1})
		assert.Equal(t, 55, env.Count)
		assert.Len(t, env.Results, 10)
		require.NotNil(t, env.Next)
		assert.Equal(t, "http://localhost:3000/people?page=2", *env.Next)
		assert.Equal(t, "Name-0", env.Results[0].Name)
	})

	t.Run("people page 6 is the short tail", func(t *testing.T) {
		env := service.Apply(baseURL, "people", people(), service.Query{Page: 6})
		assert.Equal(t, 55, env.Count)
		require.Len(t, env.Results, 5)
		assert.Equal(t, "Name-50", env.Results[0].Name)
		assert.Nil(t, env.Next)
	})

	t.Run("people page 7 is past the end", func(t *testing.T) {
		env := service.Apply(baseURL, "people", people(), service.Query{Page: 7})
		assert.Equal(t, 0, env.Count)
		assert.Empty(t, env.Results)
		assert.NotNil(t, env.Results)
		assert.Nil(t, env.Next)
	})

	t.Run("planets search Name-3", func(t *testing.T) {
		env := service.Apply(baseURL, "planets", planets(), service.Query{Page: 1, Search: strPtr("Name-3")})
		// Name-3 and Name-30..Name-39 all contain the substring
		assert.Equal(t, 11, env.Count)
		assert.Len(t, env.Results, 10)
		require.NotNil(t, env.Next)
		assert.Equal(t, "http://localhost:3000/planets?page=2&search=Name-3", *env.Next)
	})

	t.Run("planets search exact match", func(t *testing.T) {
		env := service.Apply(baseURL, "planets", planets(), service.Query{Page: 1, Search: strPtr("Name-54")})
		assert.Equal(t, 1, env.Count)
		require.Len(t, env.Results, 1)
		assert.Equal(t, "planets-54", env.Results[0].URL)
		assert.Nil(t, env.Next)
	})
}

func TestApply_ResultLengthWithoutSearch(t *testing.T) {
	table := people()
	for page := 1; page <= 8; page++ {
		env := service.Apply(baseURL, "people", table, service.Query{Page: page})
		want := min(10, max(0, len(table)-(page-1)*10))
		assert.Len(t, env.Results, want, "page %d", page)
	}
}

func TestApply_SearchIsCaseInsensitiveAndExclusive(t *testing.T) {
	for _, term := range []string{"name-1", "NAME-2", "e-4", "zzz", "Name"} {
		t.Run(term, func(t *testing.T) {
			for page := 1; page <= 6; page++ {
				env := service.Apply(baseURL, "people", people(), service.Query{Page: page, Search: strPtr(term)})
				for _, p := range env.Results {
					assert.Contains(t, strings.ToLower(p.Name), strings.ToLower(term))
				}
			}
		})
	}
}

func TestApply_ZeroCountQuirk(t *testing.T) {
	// 11 matches fit in two pages, so page 3 is empty and count drops to zero
	env := service.Apply(baseURL, "people", people(), service.Query{Page: 3, Search: strPtr("Name-1")})
	assert.Empty(t, env.Results)
	assert.Equal(t, 0, env.Count)
	assert.Nil(t, env.Next)
}

func TestApply_NextPresentIffCountExceedsDelivered(t *testing.T) {
	table := planets()
	for page := 1; page <= 8; page++ {
		env := service.Apply(baseURL, "planets", table, service.Query{Page: page})
		assert.Equal(t, env.Count > page*10, env.Next != nil, "page %d", page)
	}
}

func TestApply_NonPositiveAndHugePages(t *testing.T) {
	for _, page := range []int{0, -1, -6, math.MinInt, math.MaxInt} {
		env := service.Apply(baseURL, "people", people(), service.Query{Page: page})
		assert.Empty(t, env.Results, "page %d", page)
		assert.Equal(t, 0, env.Count, "page %d", page)
		assert.Nil(t, env.Next, "page %d", page)
	}
}

func TestApply_EmptySearchDoesNotFilterButIsEchoed(t *testing.T) {
	env := service.Apply(baseURL, "people", people(), service.Query{Page: 1, Search: strPtr("")})
	assert.Equal(t, 55, env.Count)
	require.NotNil(t, env.Next)
	assert.Equal(t, "http://localhost:3000/people?page=2&search=", *env.Next)
}

func TestApply_SearchIsEscapedInNext(t *testing.T) {
	table := []model.Person{}
	for i := 0; i < 12; i++ {
		table = append(table, model.Person{Name: "Luke & Leia"})
	}
	env := service.Apply(baseURL+"/", "people", table, service.Query{Page: 1, Search: strPtr("luke & leia")})
	require.NotNil(t, env.Next)
	assert.Equal(t, "http://localhost:3000/people?page=2&search=luke+%26+leia", *env.Next)
}

func TestApply_Idempotent(t *testing.T) {
	table := planets()
	q := service.Query{Page: 2, Search: strPtr("name")}
	first, err := json.Marshal(service.Apply(baseURL, "planets", table, q))
	require.NoError(t, err)
	second, err := json.Marshal(service.Apply(baseURL, "planets", table, q))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestApply_DoesNotAliasTable(t *testing.T) {
	table := people()
	env := service.Apply(baseURL, "people", table, service.DefaultQuery())
	env.Results[0].Name = "mutated"
	assert.Equal(t, "Name-0", table[0].Name)
}

func TestApply_NextIsNullInJSON(t *testing.T) {
	env := service.Apply(baseURL, "people", people(), service.Query{Page: 6})
	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"next":null`)
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"2", 2},
		{" 3", 3},
		{"4abc", 4},
		{"+5", 5},
		{"0", 0},
		{"-2", -2},
		{"-", 1},
		{"99999999999999999999999", math.MaxInt},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, service.ParsePage(tc.in))
		})
	}
}
