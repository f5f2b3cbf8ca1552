// Package charactersbyaccount implements the Characters By Account query use case.
//
// The query lists all characters of an account, oldest first, including the region each one
// currently stands in. An unknown account simply owns no characters.
// The query validates itself: a missing account id is rejected by the validation behavior.
package charactersbyaccount
