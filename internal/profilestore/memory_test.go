package profilestore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/travel-planner/internal/types"
)

func TestMemory_PreferencesRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	id := uuid.New()

	prefs := types.TravelPreferences{
		TravelStyle: types.StyleBudget,
		Interests:   []string{"hiking"},
		GroupSize:   2,
	}
	require.NoError(t, store.PutPreferences(ctx, id, prefs))

	got, err := store.GetPreferences(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, prefs, got)
}

func TestMemory_NotFound(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	id := uuid.New()

	_, err := store.GetPreferences(ctx, id)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, id, notFound.ProfileID)

	_, err = store.GetTravelInput(ctx, id)
	require.ErrorAs(t, err, &notFound)
}

func TestMemory_TravelInputRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	id := uuid.New()

	input := types.TravelInputData{
		Destinations: []string{"Lisbon, Portugal"},
		Experiences:  []string{"food markets"},
	}
	require.NoError(t, store.PutTravelInput(ctx, id, input))

	got, err := store.GetTravelInput(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, input, got)

	// Writes replace.
	input.Destinations = []string{"Porto, Portugal"}
	require.NoError(t, store.PutTravelInput(ctx, id, input))
	got, err = store.GetTravelInput(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Porto, Portugal"}, got.Destinations)
}
