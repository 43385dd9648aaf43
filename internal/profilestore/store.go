// Package profilestore persists user travel profiles: saved preferences and
// the latest raw travel input. The planning core never touches it; only the
// HTTP boundary reads and writes profiles.
package profilestore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/travel-planner/internal/types"
)

// Store provides access to user travel profiles.
type Store interface {
	GetPreferences(ctx context.Context, profileID uuid.UUID) (types.TravelPreferences, error)
	PutPreferences(ctx context.Context, profileID uuid.UUID, prefs types.TravelPreferences) error
	GetTravelInput(ctx context.Context, profileID uuid.UUID) (types.TravelInputData, error)
	PutTravelInput(ctx context.Context, profileID uuid.UUID, input types.TravelInputData) error
	Close()
}

// NotFoundError indicates a profile (or the requested part of it) does not exist.
type NotFoundError struct {
	ProfileID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.ProfileID)
}
