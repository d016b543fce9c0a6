package properties

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

const selectColumns = `p.id, p.building_id, p.title, p.description, p.price, p.area_m2, p.rooms, p.floor, p.status, p.image_keys, p.model3d_key, p.created_at, p.updated_at`

func (r *PostgresRepository) Create(ctx context.Context, property *models.Property) (*models.Property, error) {

	imageKeys, err := json.Marshal(property.ImageKeys)
	if err != nil {
		return nil, fmt.Errorf("marshalling image keys: %w", err)
	}

	query :=
		`INSERT INTO properties (building_id, title, description, price, area_m2, rooms, floor, status, image_keys, model3d_key)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		property.BuildingID, property.Title, property.Description, property.Price,
		property.AreaM2, property.Rooms, property.Floor, property.Status,
		imageKeys, property.Model3DKey).
		Scan(&property.ID, &property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return property, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Property, error) {
	query := `SELECT ` + selectColumns + ` FROM properties p WHERE p.id = $1`

	property, err := scanProperty(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return property, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (*models.Property, error) {
	property := &models.Property{}
	var imageKeys []byte

	err := row.Scan(&property.ID, &property.BuildingID, &property.Title, &property.Description,
		&property.Price, &property.AreaM2, &property.Rooms, &property.Floor, &property.Status,
		&imageKeys, &property.Model3DKey, &property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(imageKeys, &property.ImageKeys); err != nil {
		return nil, fmt.Errorf("unmarshalling image keys: %w", err)
	}

	return property, nil
}

// List builds the WHERE clause dynamically from the filter; zero values add
// no condition.
func (r *PostgresRepository) List(ctx context.Context, filter models.PropertyFilter) ([]*models.Property, error) {

	query := `SELECT ` + selectColumns + ` FROM properties p`
	var conditions []string
	var args []any

	addCondition := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.BuildingID != "" {
		addCondition("p.building_id::text = $%d", filter.BuildingID)
	}
	if filter.City != "" {
		query += ` JOIN buildings b ON b.id = p.building_id`
		addCondition("b.city = $%d", filter.City)
	}
	if filter.MinPrice > 0 {
		addCondition("p.price >= $%d", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		addCondition("p.price <= $%d", filter.MaxPrice)
	}
	if filter.Rooms > 0 {
		addCondition("p.rooms = $%d", filter.Rooms)
	}
	if filter.Status != "" {
		addCondition("p.status = $%d", filter.Status)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, property)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, property *models.Property) error {

	imageKeys, err := json.Marshal(property.ImageKeys)
	if err != nil {
		return fmt.Errorf("marshalling image keys: %w", err)
	}

	query :=
		`UPDATE properties
		 SET building_id = $2, title = $3, description = $4, price = $5, area_m2 = $6,
		     rooms = $7, floor = $8, status = $9, image_keys = $10, model3d_key = $11,
		     updated_at = now()
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		property.ID, property.BuildingID, property.Title, property.Description, property.Price,
		property.AreaM2, property.Rooms, property.Floor, property.Status, imageKeys, property.Model3DKey)
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
		`DELETE FROM properties
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
