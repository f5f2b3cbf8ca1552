package core

import (
	"math"
)

const (
	// DefaultEncounterChance applies outside all regions.
	DefaultEncounterChance = 0.1
)

// Position is a point on the world map.
type Position struct {
	X float64
	Y float64
}

// Region is a circular area of the world map with its own encounter chance.
type Region struct {
	Code            string
	Name            string
	Center          Position
	Radius          float64
	EncounterChance float64
}

// Regions is the static world map. Earlier entries win when regions overlap.
var Regions = []Region{
	{Code: "haven", Name: "Haven", Center: Position{X: 0, Y: 0}, Radius: 15, EncounterChance: 0},
	{Code: "greenwood", Name: "Greenwood", Center: Position{X: 40, Y: 10}, Radius: 30, EncounterChance: 0.2},
	{Code: "ashlands", Name: "Ashlands", Center: Position{X: -50, Y: -40}, Radius: 35, EncounterChance: 0.45},
}

// SpawnPosition is where new characters enter the world.
var SpawnPosition = Position{X: 0, Y: 0}

// Roller produces random numbers in [0.0, 1.0). *rand.Rand from math/rand/v2 satisfies it.
type Roller interface {
	Float64() float64
}

// Distance returns the euclidean distance between two positions.
func Distance(a, b Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// CanTravel reports whether the distance between from and to can be covered in one step.
func CanTravel(from, to Position, maxStep float64) bool {
	return Distance(from, to) <= maxStep
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p Position) bool {
	return Distance(r.Center, p) <= r.Radius
}

// RegionAt returns the first region containing p.
func RegionAt(p Position) (Region, bool) {
	for _, r := range Regions {
		if r.Contains(p) {
			return r, true
		}
	}

	return Region{}, false
}

// EncounterChanceAt returns the encounter chance at p.
func EncounterChanceAt(p Position) float64 {
	if r, ok := RegionAt(p); ok {
		return r.EncounterChance
	}

	return DefaultEncounterChance
}

// RollEncounter rolls once against chance. A chance of zero never triggers, a chance of one always does.
func RollEncounter(roller Roller, chance float64) bool {
	if chance <= 0 {
		return false
	}

	return roller.Float64() < chance
}
