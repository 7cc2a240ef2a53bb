package session

import (
	"context"

	"github.com/grustnolabs/go-grustnogram/models"
)

// Store is the persistence boundary for the local session.
type Store interface {
	// Save persists sess, replacing any previously saved session, and
	// returns it with the assigned row identifier.
	Save(ctx context.Context, sess models.Session) (models.Session, error)

	// Load returns the saved session, or [ErrNoSession] when there is none.
	Load(ctx context.Context) (models.Session, error)

	// Clear removes the saved session. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}
