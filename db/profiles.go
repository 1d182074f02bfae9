package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/SujayCh07/codelinc10-sub000/models"
)

// Profiles are stored as a single JSONB document per user. JSONB keeps the
// tri-state booleans intact: an unanswered question round-trips as null
// instead of collapsing to false.

func UpsertProfile(ctx context.Context, p *models.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("error encoding profile for user %s: %v", p.UserID, err)
	}

	query := `
		INSERT INTO profiles (user_id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET data = $2, updated_at = now()
	`
	_, err = DB.ExecContext(ctx, query, p.UserID, data)
	if err != nil {
		return fmt.Errorf("error upserting profile for user %s: %v", p.UserID, err)
	}
	return nil
}

func GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT data FROM profiles WHERE user_id = $1
	`
	var data []byte
	err := DB.QueryRowContext(ctx, query, userID).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting profile for user %s: %v", userID, err)
	}

	profile := &models.Profile{}
	if err := json.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("error decoding profile for user %s: %v", userID, err)
	}
	return profile, nil
}

func DeleteProfile(ctx context.Context, userID string) error {
	query := `
		DELETE FROM profiles WHERE user_id = $1
	`
	_, err := DB.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("error deleting profile for user %s: %v", userID, err)
	}
	return nil
}
