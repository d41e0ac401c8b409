package usecase

import (
	"context"

	"dorakingdom/internal/infrastructure/firebase"
)

// IdentityProvider is the slice of the auth infrastructure the use cases
// need: token-holder lookup for profile snapshots.
type IdentityProvider interface {
	GetUser(ctx context.Context, uid string) (*firebase.IdentitySnapshot, error)
}

// TextGenerator is the completion endpoint contract for the assist bridge.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
