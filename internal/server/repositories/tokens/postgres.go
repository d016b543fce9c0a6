// Package tokens provides a PostgreSQL-backed repository for the token pairs
// used in the server's authentication flow.
package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/realtyhub/internal/common"
	"github.com/dmitrijs2005/realtyhub/internal/dbx"
	"github.com/dmitrijs2005/realtyhub/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save upserts the token pair for userID. The ON CONFLICT clause enforces the
// one-live-pair-per-user model.
func (r *PostgresRepository) Save(ctx context.Context, userID, accessToken, refreshToken string) error {
	query := `
		INSERT INTO token_pairs (user_id, access_token, refresh_token, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE
		SET access_token = EXCLUDED.access_token,
		    refresh_token = EXCLUDED.refresh_token,
		    updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, userID, accessToken, refreshToken); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindByPair returns the pair matching both token values exactly.
// If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) FindByPair(ctx context.Context, accessToken, refreshToken string) (*models.TokenPair, error) {
	query := `
		SELECT user_id, access_token, refresh_token, updated_at
		FROM token_pairs
		WHERE access_token = $1 AND refresh_token = $2
	`
	pair := &models.TokenPair{}
	if err := r.db.QueryRowContext(ctx, query, accessToken, refreshToken).
		Scan(&pair.UserID, &pair.AccessToken, &pair.RefreshToken, &pair.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return pair, nil
}

// DeleteMatchingPair deletes the pair only while both values are still
// current. The row count makes "was this pair still live" atomic, so two
// concurrent refreshes with the same pair cannot both win.
func (r *PostgresRepository) DeleteMatchingPair(ctx context.Context, userID, accessToken, refreshToken string) (bool, error) {
	query := `
		DELETE FROM token_pairs
		WHERE user_id = $1 AND access_token = $2 AND refresh_token = $3
	`
	res, err := r.db.ExecContext(ctx, query, userID, accessToken, refreshToken)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected > 0, nil
}
