// Package accountbyid implements the Account By ID query use case.
//
// The query returns the public profile of an account. The password hash never leaves the store.
package accountbyid
