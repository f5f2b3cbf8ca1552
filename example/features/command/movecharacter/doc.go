// Package movecharacter implements the Move Character use case.
//
// A character travels to a new position on the world map, at most a configured distance per
// step. Arriving in a region rolls once against the region's encounter chance; the result
// reports the reached position, the region and whether an encounter was triggered.
// Moving onto the current position changes nothing and never triggers an encounter.
package movecharacter
