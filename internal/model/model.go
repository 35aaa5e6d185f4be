// Package model contains the resource shapes served by the mock and the list envelope.
// I keep it lean and focused on data shapes; field names follow the SWAPI JSON contract.
package model

import "time"

// Resource is the constraint every servable record satisfies.
// Search matches against the value returned by GetName.
type Resource interface {
	Person | Planet
	GetName() string
}

// Person mirrors a SWAPI people record with synthetic values.
type Person struct {
	Name      string    `json:"name"`
	BirthYear time.Time `json:"birth_year"`
	EyeColor  string    `json:"eye_color"`
	Gender    string    `json:"gender"`
	HairColor string    `json:"hair_color"`
	Height    string    `json:"height"`
	Mass      string    `json:"mass"`
	SkinColor string    `json:"skin_color"`
	URL       string    `json:"url"`
	Created   time.Time `json:"created"`
	Edited    time.Time `json:"edited"`
}

// GetName returns the searchable name of the person.
func (p Person) GetName() string { return p.Name }

// Planet mirrors a SWAPI planets record with synthetic values.
type Planet struct {
	Name           string    `json:"name"`
	Diameter       string    `json:"diameter"`
	RotationPeriod string    `json:"rotation_period"`
	OrbitalPeriod  string    `json:"orbital_period"`
	Gravity        string    `json:"gravity"`
	Population     string    `json:"population"`
	Climate        string    `json:"climate"`
	Terrain        string    `json:"terrain"`
	SurfaceWater   string    `json:"surface_water"`
	URL            string    `json:"url"`
	Created        time.Time `json:"created"`
	Edited         time.Time `json:"edited"`
}

// GetName returns the searchable name of the planet.
func (p Planet) GetName() string { return p.Name }

// Envelope is the SWAPI list response wrapper.
// Next is serialized as null when there is no further page.
type Envelope[T Resource] struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}
