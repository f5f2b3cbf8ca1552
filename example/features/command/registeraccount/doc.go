// Package registeraccount implements the Register Account use case.
//
// A player registers with a username, an email address and a password. The request is validated
// declaratively before the handler runs; the handler then checks that the username is still free,
// hashes the password and stores the account. The new account ID is the command's result.
//
// A taken username is a business failure, not an error: the caller gets a failure outcome with
// the reason "username already exists", also when two registrations race for the same name.
package registeraccount
