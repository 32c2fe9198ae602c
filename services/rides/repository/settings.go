package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/spinr-app/dispatch/internal/pkg/models"
)

// SettingsRepo implements the dispatch settings repository interface
type SettingsRepo struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sqlx.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// DispatchSettings reads the single settings row, falling back to
// defaults when none exists
func (r *SettingsRepo) DispatchSettings(ctx context.Context) (*models.DispatchSettings, error) {
	query := `
		SELECT driver_matching_algorithm, min_driver_rating, search_radius_km,
		       cancellation_fee_admin, cancellation_fee_driver
		FROM dispatch_settings
		LIMIT 1
	`
	var settings models.DispatchSettings
	err := r.db.GetContext(ctx, &settings, query)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultDispatchSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query dispatch settings: %w", err)
	}
	return &settings, nil
}
