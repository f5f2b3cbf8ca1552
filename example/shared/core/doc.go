// Package core contains the domain model for the example:
// A small online game platform with accounts, characters, inventories and a world map.
//
// Everything in this package is pure: entities, value types, rule functions and
// decision results. Nothing here talks to a database, a clock or a random source
// directly; randomness is injected through the Roller interface.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
