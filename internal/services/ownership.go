package services

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrMissingActor means no actor id was supplied on a mutating call.
	// Distinct from ErrNotOwner so the API layer can answer 401 vs 403.
	ErrMissingActor = errors.New("actor id is required")

	// ErrNotOwner means the actor does not own the target entity.
	ErrNotOwner = errors.New("entity does not belong to the requesting user")

	// ErrInvalidRequest covers malformed member sequences and empty
	// required fields. Wrapped with detail at the call site.
	ErrInvalidRequest = errors.New("invalid request")
)

// authorize allows a mutating operation iff the actor owns the entity.
// Pure check; every mutating service entry point calls it before touching
// the store.
func authorize(actorID, ownerID uuid.UUID) error {
	if actorID == uuid.Nil {
		return ErrMissingActor
	}
	if actorID != ownerID {
		return ErrNotOwner
	}
	return nil
}
