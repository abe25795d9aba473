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

type PgxAssetTypeRepository struct {
	BaseRepository
}

// newPgxAssetTypeRepository creates a new repository for asset type reference data.
func newPgxAssetTypeRepository(pool *pgxpool.Pool) portsrepo.AssetTypeRepositoryFacade {
	return &PgxAssetTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AssetTypeRepositoryFacade = (*PgxAssetTypeRepository)(nil)

// SaveAssetType inserts a new asset type.
func (r *PgxAssetTypeRepository) SaveAssetType(ctx context.Context, assetType domain.AssetType) error {
	modelAT := mapping.ToModelAssetType(assetType)

	query := `
		INSERT INTO asset_types (asset_type_id, name, category, unit, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelAT.AssetTypeID,
		modelAT.Name,
		modelAT.Category,
		modelAT.Unit,
		modelAT.CreatedAt,
		modelAT.CreatedBy,
		modelAT.LastUpdatedAt,
		modelAT.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("asset type name %s already registered: %w", modelAT.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save asset type %s: %w", modelAT.AssetTypeID, err)
	}
	return nil
}

// FindAssetTypeByID retrieves an asset type by its ID.
func (r *PgxAssetTypeRepository) FindAssetTypeByID(ctx context.Context, assetTypeID string) (*domain.AssetType, error) {
	query := `
		SELECT asset_type_id, name, category, unit, created_at, created_by, last_updated_at, last_updated_by
		FROM asset_types
		WHERE asset_type_id = $1;
	`
	var modelAT models.AssetType
	err := r.Pool.QueryRow(ctx, query, assetTypeID).Scan(
		&modelAT.AssetTypeID,
		&modelAT.Name,
		&modelAT.Category,
		&modelAT.Unit,
		&modelAT.CreatedAt,
		&modelAT.CreatedBy,
		&modelAT.LastUpdatedAt,
		&modelAT.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset type by ID %s: %w", assetTypeID, err)
	}

	domainAT := mapping.ToDomainAssetType(modelAT)
	return &domainAT, nil
}

// ListAssetTypes retrieves all registered asset types.
func (r *PgxAssetTypeRepository) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	query := `
		SELECT asset_type_id, name, category, unit, created_at, created_by, last_updated_at, last_updated_by
		FROM asset_types
		ORDER BY category, name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset types: %w", err)
	}
	defer rows.Close()

	modelATs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AssetType, error) {
		var at models.AssetType
		err := row.Scan(
			&at.AssetTypeID,
			&at.Name,
			&at.Category,
			&at.Unit,
			&at.CreatedAt,
			&at.CreatedBy,
			&at.LastUpdatedAt,
			&at.LastUpdatedBy,
		)
		return at, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan asset types: %w", err)
	}

	domainATs := make([]domain.AssetType, len(modelATs))
	for i, m := range modelATs {
		domainATs[i] = mapping.ToDomainAssetType(m)
	}
	return domainATs, nil
}

// UpdateAssetType updates an existing asset type's details. Category is
// immutable once registered.
func (r *PgxAssetTypeRepository) UpdateAssetType(ctx context.Context, assetType domain.AssetType) error {
	modelAT := mapping.ToModelAssetType(assetType)
	query := `
		UPDATE asset_types
		SET name = $2, unit = $3, last_updated_at = $4, last_updated_by = $5
		WHERE asset_type_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelAT.AssetTypeID,
		modelAT.Name,
		modelAT.Unit,
		modelAT.LastUpdatedAt,
		modelAT.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset type %s: %w", modelAT.AssetTypeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("asset type " + modelAT.AssetTypeID + " not found for update")
	}
	return nil
}
