package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestAuthorize(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name    string
		actorID uuid.UUID
		ownerID uuid.UUID
		want    error
	}{
		{"owner allowed", owner, owner, nil},
		{"stranger rejected", stranger, owner, ErrNotOwner},
		{"nil actor rejected", uuid.Nil, owner, ErrMissingActor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorize(tt.actorID, tt.ownerID)
			if !errors.Is(err, tt.want) {
				t.Errorf("authorize(%s, %s) = %v, want %v", tt.actorID, tt.ownerID, err, tt.want)
			}
		})
	}
}
