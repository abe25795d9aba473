package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/milassets/asset_command_app/internal/core/domain"
	portsrepo "github.com/milassets/asset_command_app/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// scopeFilter renders the optional scope dimensions into SQL conditions.
// The assignee filter joins through assignment references, so it only ever
// matches assignment and expenditure events; other kinds aggregate to
// nothing under a personnel scope, which is exactly the required slice.
func scopeFilter(scope domain.SummaryScope, args []interface{}) (string, []interface{}) {
	clause := ""
	if scope.BaseID != "" {
		args = append(args, scope.BaseID)
		clause += ` AND e.base_id = $` + strconv.Itoa(len(args))
	}
	if scope.AssetTypeID != "" {
		args = append(args, scope.AssetTypeID)
		clause += ` AND e.asset_type_id = $` + strconv.Itoa(len(args))
	}
	if scope.AssignedTo != "" {
		args = append(args, scope.AssignedTo)
		clause += ` AND s.assigned_to = $` + strconv.Itoa(len(args))
	}
	if scope.StartDate != nil {
		args = append(args, *scope.StartDate)
		clause += ` AND e.occurred_at >= $` + strconv.Itoa(len(args))
	}
	if scope.EndDate != nil {
		args = append(args, *scope.EndDate)
		clause += ` AND e.occurred_at <= $` + strconv.Itoa(len(args))
	}
	return clause, args
}

// GetMovementSummary aggregates per-asset-type totals for every movement kind
// in the scope with a single GROUP BY query, then derives the net movement
// and closing balance from the kind weights.
func (r *reportingRepository) GetMovementSummary(ctx context.Context, scope domain.SummaryScope) (*domain.SummaryReport, error) {
	query := `
		SELECT
			e.kind,
			e.asset_type_id,
			a.name AS asset_type_name,
			SUM(e.quantity) AS total
		FROM movement_events e
		JOIN asset_types a ON e.asset_type_id = a.asset_type_id
		LEFT JOIN assignments s ON e.reference_kind = 'ASSIGNMENT' AND e.reference_id = s.assignment_id
		WHERE 1=1
	`

	args := []interface{}{}
	clause, args := scopeFilter(scope, args)
	query += clause + `
		GROUP BY e.kind, e.asset_type_id, a.name
		ORDER BY a.name;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying movement summary: %w", err)
	}
	defer rows.Close()

	report := domain.SummaryReport{
		Purchases:    []domain.AssetTotal{},
		TransfersIn:  []domain.AssetTotal{},
		TransfersOut: []domain.AssetTotal{},
		Assigned:     []domain.AssetTotal{},
		Expended:     []domain.AssetTotal{},
	}

	for rows.Next() {
		var kind string
		var total domain.AssetTotal
		if err := rows.Scan(&kind, &total.AssetTypeID, &total.AssetTypeName, &total.Total); err != nil {
			return nil, fmt.Errorf("error scanning movement summary row: %w", err)
		}

		switch domain.MovementKind(kind) {
		case domain.KindPurchase:
			report.Purchases = append(report.Purchases, total)
		case domain.KindTransferIn:
			report.TransfersIn = append(report.TransfersIn, total)
		case domain.KindTransferOut:
			report.TransfersOut = append(report.TransfersOut, total)
		case domain.KindAssignment:
			report.Assigned = append(report.Assigned, total)
		case domain.KindExpenditure:
			report.Expended = append(report.Expended, total)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement summary rows: %w", err)
	}

	purchases := domain.SumTotals(report.Purchases)
	transfersIn := domain.SumTotals(report.TransfersIn)
	transfersOut := domain.SumTotals(report.TransfersOut)
	report.NetMovement = purchases + transfersIn - transfersOut
	report.ClosingBalance = report.NetMovement - domain.SumTotals(report.Assigned) - domain.SumTotals(report.Expended)

	return &report, nil
}

// GetNetQuantitiesByBase aggregates the signed net quantity per asset type at
// a base, keeping only asset types with a positive net position.
func (r *reportingRepository) GetNetQuantitiesByBase(ctx context.Context, baseID string, scope domain.SummaryScope) ([]domain.AssetNetQuantity, error) {
	query := `
		SELECT
			e.asset_type_id,
			a.name AS asset_type_name,
			SUM(CASE
				WHEN e.kind IN ('purchase', 'transfer-in') THEN e.quantity
				ELSE -e.quantity
			END) AS net_quantity
		FROM movement_events e
		JOIN asset_types a ON e.asset_type_id = a.asset_type_id
		LEFT JOIN assignments s ON e.reference_kind = 'ASSIGNMENT' AND e.reference_id = s.assignment_id
		WHERE e.base_id = $1
	`

	args := []interface{}{baseID}
	clause, args := scopeFilter(scope, args)
	query += clause + `
		GROUP BY e.asset_type_id, a.name
		HAVING SUM(CASE
			WHEN e.kind IN ('purchase', 'transfer-in') THEN e.quantity
			ELSE -e.quantity
		END) > 0
		ORDER BY a.name;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying net quantities for base %s: %w", baseID, err)
	}
	defer rows.Close()

	result := []domain.AssetNetQuantity{}
	for rows.Next() {
		var q domain.AssetNetQuantity
		if err := rows.Scan(&q.AssetTypeID, &q.AssetTypeName, &q.NetQuantity); err != nil {
			return nil, fmt.Errorf("error scanning net quantity row: %w", err)
		}
		result = append(result, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating net quantity rows: %w", err)
	}

	return result, nil
}
