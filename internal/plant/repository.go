// AngelaMos | 2026
// repository.go

package plant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/urbangreen-dev/plantstore/internal/core"
)

type Repository interface {
	Create(ctx context.Context, plant *Plant) error
	GetByID(ctx context.Context, id string) (*Plant, error)
	Update(ctx context.Context, plant *Plant) error
	Delete(ctx context.Context, id string) (string, error)
	List(ctx context.Context, params ListPlantsParams) ([]Plant, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const plantColumns = `
	id, name, price, categories, available, profile_url, created_by,
	created_at, updated_at`

func (r *repository) Create(ctx context.Context, plant *Plant) error {
	query := `
		INSERT INTO plants (
			id, name, price, categories, available, profile_url, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, plant, query,
		plant.ID,
		plant.Name,
		plant.Price,
		plant.Categories,
		plant.Available,
		plant.ProfileURL,
		plant.CreatedBy,
	)
	if err != nil {
		if isCheckViolationError(err) {
			return fmt.Errorf("create plant: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create plant: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE id = $1`

	var plant Plant
	err := r.db.GetContext(ctx, &plant, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get plant: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get plant: %w", err)
	}

	return &plant, nil
}

func (r *repository) Update(ctx context.Context, plant *Plant) error {
	query := `
		UPDATE plants
		SET name = $2, price = $3, categories = $4, available = $5,
		    profile_url = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &plant.UpdatedAt, query,
		plant.ID,
		plant.Name,
		plant.Price,
		plant.Categories,
		plant.Available,
		plant.ProfileURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update plant: %w", core.ErrNotFound)
	}
	if err != nil {
		if isCheckViolationError(err) {
			return fmt.Errorf("update plant: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("update plant: %w", err)
	}

	return nil
}

// Delete removes the row and returns the deleted plant's name for the
// confirmation message.
func (r *repository) Delete(ctx context.Context, id string) (string, error) {
	query := `DELETE FROM plants WHERE id = $1 RETURNING name`

	var name string
	err := r.db.GetContext(ctx, &name, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("delete plant: %w", core.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("delete plant: %w", err)
	}

	return name, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListPlantsParams,
) ([]Plant, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Name != "" {
		conditions = append(conditions,
			fmt.Sprintf("name ILIKE $%d", argIdx))
		args = append(args, "%"+escapeLike(params.Name)+"%")
		argIdx++
	}

	if params.Categories != "" {
		conditions = append(conditions, fmt.Sprintf(
			"categories_text(categories) ILIKE $%d", argIdx))
		args = append(args, "%"+escapeLike(params.Categories)+"%")
		argIdx++
	}

	query := `SELECT ` + plantColumns + ` FROM plants`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	var plants []Plant
	if err := r.db.SelectContext(ctx, &plants, query, args...); err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}

	return plants, nil
}

func isCheckViolationError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514"
	}
	return false
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
