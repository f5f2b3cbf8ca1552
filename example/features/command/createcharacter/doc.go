// Package createcharacter implements the Create Character use case.
//
// An account creates a new level one character of one of the playable classes. The character
// spawns at the world's spawn position with the starting attributes of its class.
// An account can own at most five characters and character names are unique platform-wide.
package createcharacter
