package interfaces

import (
	"context"

	"rockstar_services/internal/domain/entities"
)

// ISessionStore holds in-progress wizard sessions keyed by session id.
//
// Semantics:
//   - Get returns a zero-value session (empty ID) when the id is unknown;
//     absence is not an error.
//   - Put overwrites unconditionally; the wizard is single-actor so there is
//     no concurrent-writer contract to honor.
type ISessionStore interface {
	Put(ctx context.Context, s entities.WizardSession) error
	Get(ctx context.Context, id string) (entities.WizardSession, error)
	Delete(ctx context.Context, id string) error
}
