// Package shell provides the infrastructure for the example game platform:
// repository contracts, password hashing and the JSON codec used for JSONB columns.
//
// The repository implementations live in the memory and sqlstore subpackages,
// process configuration lives in config.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
