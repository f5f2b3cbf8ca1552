// Package memory provides an in-process implementation of the game platform repositories.
// It is used by tests and as the default store of the gamectl CLI.
package memory
