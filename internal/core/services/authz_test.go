package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	"github.com/milassets/asset_command_app/internal/core/services"
)

func TestPolicyCanInitiate(t *testing.T) {
	tests := []struct {
		name                     string
		role                     domain.Role
		kind                     domain.MovementKind
		allowLogisticsAssignment bool
		want                     bool
	}{
		{"admin purchase", domain.RoleAdmin, domain.KindPurchase, false, true},
		{"admin transfer", domain.RoleAdmin, domain.KindTransferOut, false, true},
		{"admin assignment", domain.RoleAdmin, domain.KindAssignment, false, true},
		{"admin expenditure", domain.RoleAdmin, domain.KindExpenditure, false, true},
		{"logistics purchase", domain.RoleLogisticsOfficer, domain.KindPurchase, false, true},
		{"logistics transfer", domain.RoleLogisticsOfficer, domain.KindTransferOut, false, true},
		{"logistics assignment gated off", domain.RoleLogisticsOfficer, domain.KindAssignment, false, false},
		{"logistics assignment gated on", domain.RoleLogisticsOfficer, domain.KindAssignment, true, true},
		{"logistics expenditure gated off", domain.RoleLogisticsOfficer, domain.KindExpenditure, false, false},
		{"logistics expenditure gated on", domain.RoleLogisticsOfficer, domain.KindExpenditure, true, true},
		{"commander purchase", domain.RoleBaseCommander, domain.KindPurchase, false, false},
		{"commander transfer", domain.RoleBaseCommander, domain.KindTransferOut, false, false},
		{"commander assignment", domain.RoleBaseCommander, domain.KindAssignment, false, true},
		{"commander expenditure", domain.RoleBaseCommander, domain.KindExpenditure, false, true},
		{"personnel purchase", domain.RolePersonnel, domain.KindPurchase, false, false},
		{"personnel assignment", domain.RolePersonnel, domain.KindAssignment, false, false},
		{"personnel expenditure", domain.RolePersonnel, domain.KindExpenditure, true, false},
		{"unknown kind", domain.RoleAdmin, domain.MovementKind("loan"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := services.Policy{AllowLogisticsAssignment: tt.allowLogisticsAssignment}
			assert.Equal(t, tt.want, policy.CanInitiate(tt.role, tt.kind))
		})
	}
}

func TestPolicyEffectiveBase(t *testing.T) {
	policy := services.Policy{}

	t.Run("admin acts on requested base", func(t *testing.T) {
		admin := domain.Actor{UserID: "u1", Role: domain.RoleAdmin}
		base, err := policy.EffectiveBase(admin, "base-9")
		assert.NoError(t, err)
		assert.Equal(t, "base-9", base)
	})

	t.Run("non-admin pinned to home base", func(t *testing.T) {
		commander := domain.Actor{UserID: "u2", Role: domain.RoleBaseCommander, BaseID: "base-1"}
		base, err := policy.EffectiveBase(commander, "base-9")
		assert.NoError(t, err)
		assert.Equal(t, "base-1", base)
	})

	t.Run("non-admin without base rejected", func(t *testing.T) {
		orphan := domain.Actor{UserID: "u3", Role: domain.RoleLogisticsOfficer}
		_, err := policy.EffectiveBase(orphan, "base-9")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestPolicyCanReadBase(t *testing.T) {
	policy := services.Policy{}

	admin := domain.Actor{UserID: "u1", Role: domain.RoleAdmin}
	commander := domain.Actor{UserID: "u2", Role: domain.RoleBaseCommander, BaseID: "base-1"}

	assert.True(t, policy.CanReadBase(admin, "base-9"))
	assert.True(t, policy.CanReadBase(commander, "base-1"))
	assert.False(t, policy.CanReadBase(commander, "base-2"))
}
