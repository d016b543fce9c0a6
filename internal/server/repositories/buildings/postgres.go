package buildings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/realtyhub/internal/common"
	"github.com/dmitrijs2005/realtyhub/internal/dbx"
	"github.com/dmitrijs2005/realtyhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, building *models.Building) (*models.Building, error) {

	imageKeys, err := json.Marshal(building.ImageKeys)
	if err != nil {
		return nil, fmt.Errorf("marshalling image keys: %w", err)
	}

	query :=
		`INSERT INTO buildings (company_id, name, address, city, latitude, longitude, image_keys)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		building.CompanyID, building.Name, building.Address, building.City,
		building.Latitude, building.Longitude, imageKeys).
		Scan(&building.ID, &building.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return building, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Building, error) {
	query :=
		`SELECT id, company_id, name, address, city, latitude, longitude, image_keys, created_at FROM buildings
		 WHERE id = $1
		 `

	building := &models.Building{}
	var imageKeys []byte
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&building.ID, &building.CompanyID, &building.Name, &building.Address, &building.City,
			&building.Latitude, &building.Longitude, &imageKeys, &building.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(imageKeys, &building.ImageKeys); err != nil {
		return nil, fmt.Errorf("unmarshalling image keys: %w", err)
	}

	return building, nil
}

func (r *PostgresRepository) List(ctx context.Context, companyID string) ([]*models.Building, error) {
	query :=
		`SELECT id, company_id, name, address, city, latitude, longitude, image_keys, created_at FROM buildings
		 WHERE ($1 = '' OR company_id::text = $1)
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Building
	for rows.Next() {
		building := &models.Building{}
		var imageKeys []byte
		if err := rows.Scan(&building.ID, &building.CompanyID, &building.Name, &building.Address, &building.City,
			&building.Latitude, &building.Longitude, &imageKeys, &building.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(imageKeys, &building.ImageKeys); err != nil {
			return nil, fmt.Errorf("unmarshalling image keys: %w", err)
		}
		result = append(result, building)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, building *models.Building) error {

	imageKeys, err := json.Marshal(building.ImageKeys)
	if err != nil {
		return fmt.Errorf("marshalling image keys: %w", err)
	}

	query :=
		`UPDATE buildings SET company_id = $2, name = $3, address = $4, city = $5, latitude = $6, longitude = $7, image_keys = $8
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		building.ID, building.CompanyID, building.Name, building.Address, building.City,
		building.Latitude, building.Longitude, imageKeys)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM buildings
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
