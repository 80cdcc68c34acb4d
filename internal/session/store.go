package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get and Update for unknown session ids.
var ErrNotFound = errors.New("session not found")

// Store persists interview sessions. The host serialises access per session
// id; implementations only need to make individual operations safe for
// concurrent use.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, s *Session) error
}
