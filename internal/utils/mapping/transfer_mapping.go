package mapping

import (
	"github.com/milassets/asset_command_app/internal/core/domain"
	"github.com/milassets/asset_command_app/internal/models"
)

// ToModelTransfer converts a domain Transfer to a model Transfer
func ToModelTransfer(d domain.Transfer) models.Transfer {
	return models.Transfer{
		TransferID:  d.TransferID,
		AssetTypeID: d.AssetTypeID,
		FromBaseID:  d.FromBaseID,
		ToBaseID:    d.ToBaseID,
		Quantity:    d.Quantity,
		InitiatedBy: d.InitiatedBy,
		OccurredAt:  d.OccurredAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransfer converts a model Transfer to a domain Transfer
func ToDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:  m.TransferID,
		AssetTypeID: m.AssetTypeID,
		FromBaseID:  m.FromBaseID,
		ToBaseID:    m.ToBaseID,
		Quantity:    m.Quantity,
		InitiatedBy: m.InitiatedBy,
		OccurredAt:  m.OccurredAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAssignment converts a domain Assignment to a model Assignment
func ToModelAssignment(d domain.Assignment) models.Assignment {
	return models.Assignment{
		AssignmentID:     d.AssignmentID,
		AssetTypeID:      d.AssetTypeID,
		BaseID:           d.BaseID,
		AssignedTo:       d.AssignedTo,
		AssignedBy:       d.AssignedBy,
		Quantity:         d.Quantity,
		ExpendedQuantity: d.ExpendedQuantity,
		OccurredAt:       d.OccurredAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssignment converts a model Assignment to a domain Assignment
func ToDomainAssignment(m models.Assignment) domain.Assignment {
	return domain.Assignment{
		AssignmentID:     m.AssignmentID,
		AssetTypeID:      m.AssetTypeID,
		BaseID:           m.BaseID,
		AssignedTo:       m.AssignedTo,
		AssignedBy:       m.AssignedBy,
		Quantity:         m.Quantity,
		ExpendedQuantity: m.ExpendedQuantity,
		OccurredAt:       m.OccurredAt,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
