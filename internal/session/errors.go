package session

import "errors"

// Sentinel errors returned by the store to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoSession is returned by Load when no session has been saved yet
	// or the last one was cleared. It is the signal to fall back to an
	// interactive sign-in.
	ErrNoSession = errors.New("no saved session")

	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails before it reaches the database.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
