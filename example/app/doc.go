// Package app wires the game platform: it opens the configured store and registers every
// feature slice and the cross-cutting pipeline behaviors with one command bus and one query bus.
package app
