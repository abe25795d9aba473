package mapping

import (
	"github.com/milassets/asset_command_app/internal/core/domain"
	"github.com/milassets/asset_command_app/internal/models"
)

// ToModelMovementEvent converts a domain MovementEvent to a model MovementEvent
func ToModelMovementEvent(d domain.MovementEvent) models.MovementEvent {
	return models.MovementEvent{
		EventID:       d.EventID,
		AssetTypeID:   d.AssetTypeID,
		BaseID:        d.BaseID,
		Quantity:      d.Quantity,
		Kind:          models.MovementKind(d.Kind),
		ReferenceKind: string(d.Reference.Kind),
		ReferenceID:   d.Reference.ID,
		ActorID:       d.ActorID,
		UnitCost:      d.UnitCost,
		OccurredAt:    d.OccurredAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovementEvent converts a model MovementEvent to a domain MovementEvent
func ToDomainMovementEvent(m models.MovementEvent) domain.MovementEvent {
	return domain.MovementEvent{
		EventID:     m.EventID,
		AssetTypeID: m.AssetTypeID,
		BaseID:      m.BaseID,
		Quantity:    m.Quantity,
		Kind:        domain.MovementKind(m.Kind),
		Reference: domain.Reference{
			Kind: domain.ReferenceKind(m.ReferenceKind),
			ID:   m.ReferenceID,
		},
		ActorID:     m.ActorID,
		UnitCost:    m.UnitCost,
		OccurredAt:  m.OccurredAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovementEventSlice converts a slice of model MovementEvents to domain MovementEvents
func ToDomainMovementEventSlice(ms []models.MovementEvent) []domain.MovementEvent {
	events := make([]domain.MovementEvent, len(ms))
	for i, m := range ms {
		events[i] = ToDomainMovementEvent(m)
	}
	return events
}
