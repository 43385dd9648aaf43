// Package profilestore persists user travel profiles.
package profilestore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/travel-planner/internal/types"
)

// Memory is the default in-process Store. Contents are lost on restart;
// durability is out of scope.
type Memory struct {
	mu          sync.RWMutex
	preferences map[uuid.UUID]types.TravelPreferences
	inputs      map[uuid.UUID]types.TravelInputData
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		preferences: make(map[uuid.UUID]types.TravelPreferences),
		inputs:      make(map[uuid.UUID]types.TravelInputData),
	}
}

// GetPreferences returns the saved preferences for a profile.
func (m *Memory) GetPreferences(_ context.Context, profileID uuid.UUID) (types.TravelPreferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefs, ok := m.preferences[profileID]
	if !ok {
		return types.TravelPreferences{}, &NotFoundError{ProfileID: profileID}
	}
	return prefs, nil
}

// PutPreferences stores preferences for a profile, replacing any previous value.
func (m *Memory) PutPreferences(_ context.Context, profileID uuid.UUID, prefs types.TravelPreferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.preferences[profileID] = prefs
	return nil
}

// GetTravelInput returns the latest raw travel input for a profile.
func (m *Memory) GetTravelInput(_ context.Context, profileID uuid.UUID) (types.TravelInputData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	input, ok := m.inputs[profileID]
	if !ok {
		return types.TravelInputData{}, &NotFoundError{ProfileID: profileID}
	}
	return input, nil
}

// PutTravelInput stores the latest raw travel input for a profile.
func (m *Memory) PutTravelInput(_ context.Context, profileID uuid.UUID, input types.TravelInputData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inputs[profileID] = input
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() {}
