// Package profilestore persists user travel profiles.
package profilestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/travel-planner/internal/types"
)

// Postgres is a Store backed by a PostgreSQL connection pool. Profiles are
// stored as JSONB documents in the travel_profiles table.
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// GetPreferences returns the saved preferences for a profile.
func (p *Postgres) GetPreferences(ctx context.Context, profileID uuid.UUID) (types.TravelPreferences, error) {
	var payload []byte
	err := p.pool.QueryRow(ctx,
		`SELECT preferences FROM travel_profiles WHERE profile_id = $1 AND preferences IS NOT NULL`,
		profileID,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return types.TravelPreferences{}, &NotFoundError{ProfileID: profileID}
	}
	if err != nil {
		return types.TravelPreferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}

	var prefs types.TravelPreferences
	if err := json.Unmarshal(payload, &prefs); err != nil {
		return types.TravelPreferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return prefs, nil
}

// PutPreferences stores preferences for a profile, replacing any previous value.
func (p *Postgres) PutPreferences(ctx context.Context, profileID uuid.UUID, prefs types.TravelPreferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO travel_profiles (profile_id, preferences, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (profile_id) DO UPDATE SET preferences = $2, updated_at = NOW()`,
		profileID, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// GetTravelInput returns the latest raw travel input for a profile.
func (p *Postgres) GetTravelInput(ctx context.Context, profileID uuid.UUID) (types.TravelInputData, error) {
	var payload []byte
	err := p.pool.QueryRow(ctx,
		`SELECT travel_input FROM travel_profiles WHERE profile_id = $1 AND travel_input IS NOT NULL`,
		profileID,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return types.TravelInputData{}, &NotFoundError{ProfileID: profileID}
	}
	if err != nil {
		return types.TravelInputData{}, fmt.Errorf("failed to load travel input: %w", err)
	}

	var input types.TravelInputData
	if err := json.Unmarshal(payload, &input); err != nil {
		return types.TravelInputData{}, fmt.Errorf("failed to decode travel input: %w", err)
	}
	return input, nil
}

// PutTravelInput stores the latest raw travel input for a profile.
func (p *Postgres) PutTravelInput(ctx context.Context, profileID uuid.UUID, input types.TravelInputData) error {
	payload, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to encode travel input: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO travel_profiles (profile_id, travel_input, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (profile_id) DO UPDATE SET travel_input = $2, updated_at = NOW()`,
		profileID, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save travel input: %w", err)
	}
	return nil
}
