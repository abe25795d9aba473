package domain_test

import (
	"testing"

	"github.com/milassets/asset_command_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMovementKind_Weight(t *testing.T) {
	tests := []struct {
		name string
		kind domain.MovementKind
		want int64
	}{
		{name: "purchase adds stock", kind: domain.KindPurchase, want: 1},
		{name: "transfer-in adds stock", kind: domain.KindTransferIn, want: 1},
		{name: "transfer-out removes stock", kind: domain.KindTransferOut, want: -1},
		{name: "assignment removes stock", kind: domain.KindAssignment, want: -1},
		{name: "expenditure removes stock", kind: domain.KindExpenditure, want: -1},
		{name: "unknown kind has no weight", kind: domain.MovementKind("adjustment"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Weight())
		})
	}
}

func TestMovementKind_IsOutbound(t *testing.T) {
	outbound := []domain.MovementKind{domain.KindTransferOut, domain.KindAssignment, domain.KindExpenditure}
	inbound := []domain.MovementKind{domain.KindPurchase, domain.KindTransferIn}

	for _, k := range outbound {
		assert.True(t, k.IsOutbound(), "expected %s to be outbound", k)
	}
	for _, k := range inbound {
		assert.False(t, k.IsOutbound(), "expected %s to be inbound", k)
	}
}

func TestMovementKind_IsValid(t *testing.T) {
	for _, k := range domain.AllMovementKinds {
		assert.True(t, k.IsValid(), "expected %s to be valid", k)
	}
	assert.False(t, domain.MovementKind("").IsValid())
	assert.False(t, domain.MovementKind("Purchase").IsValid(), "kinds are case sensitive")
	assert.False(t, domain.MovementKind("write-off").IsValid())
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Role
		wantErr bool
	}{
		{name: "admin", input: "admin", want: domain.RoleAdmin},
		{name: "mixed case is normalized", input: "Base Commander", want: domain.RoleBaseCommander},
		{name: "surrounding whitespace is trimmed", input: "  logistics officer ", want: domain.RoleLogisticsOfficer},
		{name: "personnel", input: "personnel", want: domain.RolePersonnel},
		{name: "unknown role rejected", input: "quartermaster", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseRole(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReference_TaggedUnion(t *testing.T) {
	assert.True(t, domain.Reference{}.IsZero())

	tr := domain.TransferRef("t-1")
	assert.Equal(t, domain.RefTransfer, tr.Kind)
	assert.Equal(t, "t-1", tr.ID)
	assert.False(t, tr.IsZero())

	ar := domain.AssignmentRef("a-1")
	assert.Equal(t, domain.RefAssignment, ar.Kind)
	assert.False(t, ar.IsZero())
}

func TestAssignment_Remaining(t *testing.T) {
	a := domain.Assignment{Quantity: 10, ExpendedQuantity: 3}
	assert.Equal(t, int64(7), a.Remaining())
	assert.False(t, a.IsFullyExpended())

	a.ExpendedQuantity = 10
	assert.Equal(t, int64(0), a.Remaining())
	assert.True(t, a.IsFullyExpended())
}
