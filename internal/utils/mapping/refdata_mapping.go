package mapping

import (
	"github.com/milassets/asset_command_app/internal/core/domain"
	"github.com/milassets/asset_command_app/internal/models"
)

// ToModelBase converts a domain Base to a model Base
func ToModelBase(d domain.Base) models.Base {
	return models.Base{
		BaseID:      d.BaseID,
		Name:        d.Name,
		Location:    d.Location,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBase converts a model Base to a domain Base
func ToDomainBase(m models.Base) domain.Base {
	return domain.Base{
		BaseID:      m.BaseID,
		Name:        m.Name,
		Location:    m.Location,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAssetType converts a domain AssetType to a model AssetType
func ToModelAssetType(d domain.AssetType) models.AssetType {
	return models.AssetType{
		AssetTypeID: d.AssetTypeID,
		Name:        d.Name,
		Category:    d.Category,
		Unit:        d.Unit,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssetType converts a model AssetType to a domain AssetType
func ToDomainAssetType(m models.AssetType) domain.AssetType {
	return domain.AssetType{
		AssetTypeID: m.AssetTypeID,
		Name:        m.Name,
		Category:    m.Category,
		Unit:        m.Unit,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
