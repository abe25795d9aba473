package services

import (
	"fmt"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
)

// Policy is the single authorization policy consumed by every movement
// service. Role checks and base pinning live here rather than being
// scattered across handlers, so a rule change lands in exactly one place.
type Policy struct {
	// AllowLogisticsAssignment extends assignment and expenditure rights to
	// logistics officers when enabled. Off by default.
	AllowLogisticsAssignment bool
}

// CanInitiate reports whether a role may initiate movements of the given kind.
// Personnel can never initiate movements; they are read-only actors.
func (p Policy) CanInitiate(role domain.Role, kind domain.MovementKind) bool {
	switch kind {
	case domain.KindPurchase, domain.KindTransferIn, domain.KindTransferOut:
		return role == domain.RoleAdmin || role == domain.RoleLogisticsOfficer
	case domain.KindAssignment, domain.KindExpenditure:
		if role == domain.RoleAdmin || role == domain.RoleBaseCommander {
			return true
		}
		return role == domain.RoleLogisticsOfficer && p.AllowLogisticsAssignment
	default:
		return false
	}
}

// EffectiveBase resolves the base a movement acts on. Admins may act on any
// base; every other role is pinned to its own base affiliation regardless of
// what the request asked for.
func (p Policy) EffectiveBase(actor domain.Actor, requestedBase string) (string, error) {
	if actor.Role == domain.RoleAdmin {
		return requestedBase, nil
	}
	home := actor.HomeBase()
	if home == "" {
		return "", fmt.Errorf("%w: actor %s has no base affiliation", apperrors.ErrForbidden, actor.UserID)
	}
	return home, nil
}

// CanReadBase reports whether an actor may read data scoped to a base.
func (p Policy) CanReadBase(actor domain.Actor, baseID string) bool {
	if actor.Role == domain.RoleAdmin {
		return true
	}
	return actor.HomeBase() == baseID
}

// RequireInitiate converts a failed CanInitiate check into a forbidden error.
func (p Policy) RequireInitiate(actor domain.Actor, kind domain.MovementKind) error {
	if !p.CanInitiate(actor.Role, kind) {
		return fmt.Errorf("%w: role %s may not initiate %s movements", apperrors.ErrForbidden, actor.Role, kind)
	}
	return nil
}
