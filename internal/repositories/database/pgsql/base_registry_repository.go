package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	portsrepo "github.com/milassets/asset_command_app/internal/core/ports/repositories"
	"github.com/milassets/asset_command_app/internal/models"
	"github.com/milassets/asset_command_app/internal/utils/mapping"
)

type PgxBaseRegistryRepository struct {
	BaseRepository
}

// newPgxBaseRegistryRepository creates a new repository for base reference data.
func newPgxBaseRegistryRepository(pool *pgxpool.Pool) portsrepo.BaseRegistryRepositoryFacade {
	return &PgxBaseRegistryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BaseRegistryRepositoryFacade = (*PgxBaseRegistryRepository)(nil)

// SaveBase inserts a new base.
func (r *PgxBaseRegistryRepository) SaveBase(ctx context.Context, base domain.Base) error {
	modelBase := mapping.ToModelBase(base)

	query := `
		INSERT INTO bases (base_id, name, location, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelBase.BaseID,
		modelBase.Name,
		modelBase.Location,
		modelBase.IsActive,
		modelBase.CreatedAt,
		modelBase.CreatedBy,
		modelBase.LastUpdatedAt,
		modelBase.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("base name %s already registered: %w", modelBase.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save base %s: %w", modelBase.BaseID, err)
	}
	return nil
}

// FindBaseByID retrieves a base by its ID.
func (r *PgxBaseRegistryRepository) FindBaseByID(ctx context.Context, baseID string) (*domain.Base, error) {
	query := `
		SELECT base_id, name, location, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM bases
		WHERE base_id = $1;
	`
	var modelBase models.Base
	err := r.Pool.QueryRow(ctx, query, baseID).Scan(
		&modelBase.BaseID,
		&modelBase.Name,
		&modelBase.Location,
		&modelBase.IsActive,
		&modelBase.CreatedAt,
		&modelBase.CreatedBy,
		&modelBase.LastUpdatedAt,
		&modelBase.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find base by ID %s: %w", baseID, err)
	}

	domainBase := mapping.ToDomainBase(modelBase)
	return &domainBase, nil
}

// ListBases retrieves all registered bases.
func (r *PgxBaseRegistryRepository) ListBases(ctx context.Context) ([]domain.Base, error) {
	query := `
		SELECT base_id, name, location, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM bases
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bases: %w", err)
	}
	defer rows.Close()

	modelBases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Base, error) {
		var base models.Base
		err := row.Scan(
			&base.BaseID,
			&base.Name,
			&base.Location,
			&base.IsActive,
			&base.CreatedAt,
			&base.CreatedBy,
			&base.LastUpdatedAt,
			&base.LastUpdatedBy,
		)
		return base, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan bases: %w", err)
	}

	domainBases := make([]domain.Base, len(modelBases))
	for i, m := range modelBases {
		domainBases[i] = mapping.ToDomainBase(m)
	}
	return domainBases, nil
}

// UpdateBase updates an existing base's details.
func (r *PgxBaseRegistryRepository) UpdateBase(ctx context.Context, base domain.Base) error {
	modelBase := mapping.ToModelBase(base)
	query := `
		UPDATE bases
		SET name = $2, location = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE base_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelBase.BaseID,
		modelBase.Name,
		modelBase.Location,
		modelBase.IsActive,
		modelBase.LastUpdatedAt,
		modelBase.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update base %s: %w", modelBase.BaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("base " + modelBase.BaseID + " not found for update")
	}
	return nil
}
