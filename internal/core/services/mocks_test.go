package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// --- Mock MovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, eventID string) (*domain.MovementEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovementEvent), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, filter domain.MovementFilter, limit int, nextToken *string) ([]domain.MovementEvent, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var events []domain.MovementEvent
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.MovementEvent)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return events, token, args.Error(2)
}

func (m *MockMovementRepository) FindMovementsByReference(ctx context.Context, ref domain.Reference) ([]domain.MovementEvent, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MovementEvent), args.Error(1)
}

func (m *MockMovementRepository) SavePurchase(ctx context.Context, event domain.MovementEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockMovementRepository) SaveExpenditure(ctx context.Context, event domain.MovementEvent, assignmentID *string) error {
	args := m.Called(ctx, event, assignmentID)
	return args.Error(0)
}

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindStock(ctx context.Context, baseID, assetTypeID string) (*domain.StockLevel, error) {
	args := m.Called(ctx, baseID, assetTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockLevel), args.Error(1)
}

func (m *MockStockRepository) FindStockForUpdate(ctx context.Context, tx pgx.Tx, baseID, assetTypeID string) (int64, error) {
	args := m.Called(ctx, tx, baseID, assetTypeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockRepository) ApplyStockDeltaInTx(ctx context.Context, tx pgx.Tx, baseID, assetTypeID string, delta int64, userID string, now time.Time) error {
	args := m.Called(ctx, tx, baseID, assetTypeID, delta, userID, now)
	return args.Error(0)
}

// --- Mock TransferRepository ---
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) ListTransfers(ctx context.Context, filter domain.TransferFilter, limit int, nextToken *string) ([]domain.Transfer, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var transfers []domain.Transfer
	if args.Get(0) != nil {
		transfers = args.Get(0).([]domain.Transfer)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return transfers, token, args.Error(2)
}

func (m *MockTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer, outEvent, inEvent domain.MovementEvent) error {
	args := m.Called(ctx, transfer, outEvent, inEvent)
	return args.Error(0)
}

// --- Mock AssignmentRepository ---
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListAssignments(ctx context.Context, filter domain.AssignmentFilter, limit int, nextToken *string) ([]domain.Assignment, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var assignments []domain.Assignment
	if args.Get(0) != nil {
		assignments = args.Get(0).([]domain.Assignment)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return assignments, token, args.Error(2)
}

func (m *MockAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.Assignment, event domain.MovementEvent) error {
	args := m.Called(ctx, assignment, event)
	return args.Error(0)
}

// --- Mock BaseRegistryRepository ---
type MockBaseRegistryRepository struct {
	mock.Mock
}

func (m *MockBaseRegistryRepository) FindBaseByID(ctx context.Context, baseID string) (*domain.Base, error) {
	args := m.Called(ctx, baseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Base), args.Error(1)
}

func (m *MockBaseRegistryRepository) ListBases(ctx context.Context) ([]domain.Base, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Base), args.Error(1)
}

func (m *MockBaseRegistryRepository) SaveBase(ctx context.Context, base domain.Base) error {
	args := m.Called(ctx, base)
	return args.Error(0)
}

func (m *MockBaseRegistryRepository) UpdateBase(ctx context.Context, base domain.Base) error {
	args := m.Called(ctx, base)
	return args.Error(0)
}

// --- Mock AssetTypeRepository ---
type MockAssetTypeRepository struct {
	mock.Mock
}

func (m *MockAssetTypeRepository) FindAssetTypeByID(ctx context.Context, assetTypeID string) (*domain.AssetType, error) {
	args := m.Called(ctx, assetTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetType), args.Error(1)
}

func (m *MockAssetTypeRepository) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetType), args.Error(1)
}

func (m *MockAssetTypeRepository) SaveAssetType(ctx context.Context, assetType domain.AssetType) error {
	args := m.Called(ctx, assetType)
	return args.Error(0)
}

func (m *MockAssetTypeRepository) UpdateAssetType(ctx context.Context, assetType domain.AssetType) error {
	args := m.Called(ctx, assetType)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByServiceID(ctx context.Context, serviceID string) (*domain.User, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) NextServiceID(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetMovementSummary(ctx context.Context, scope domain.SummaryScope) (*domain.SummaryReport, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SummaryReport), args.Error(1)
}

func (m *MockReportingRepository) GetNetQuantitiesByBase(ctx context.Context, baseID string, scope domain.SummaryScope) ([]domain.AssetNetQuantity, error) {
	args := m.Called(ctx, baseID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetNetQuantity), args.Error(1)
}
