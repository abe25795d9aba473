package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/core/services"
	"github.com/milassets/asset_command_app/internal/dto"
)

type TransferServiceTestSuite struct {
	suite.Suite
	mockTransferRepo  *MockTransferRepository
	mockMovementRepo  *MockMovementRepository
	mockBaseRepo      *MockBaseRegistryRepository
	mockAssetTypeRepo *MockAssetTypeRepository
	service           portssvc.TransferSvcFacade
	ctx               context.Context

	admin     domain.Actor
	logistics domain.Actor
	commander domain.Actor
	personnel domain.Actor
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.mockTransferRepo = new(MockTransferRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockBaseRepo = new(MockBaseRegistryRepository)
	suite.mockAssetTypeRepo = new(MockAssetTypeRepository)
	suite.service = services.NewTransferService(suite.mockTransferRepo, suite.mockMovementRepo, suite.mockBaseRepo, suite.mockAssetTypeRepo, services.Policy{})
	suite.ctx = context.Background()

	suite.admin = domain.Actor{UserID: "user-admin", Role: domain.RoleAdmin}
	suite.logistics = domain.Actor{UserID: "user-log", Role: domain.RoleLogisticsOfficer, BaseID: "base-1"}
	suite.commander = domain.Actor{UserID: "user-cmd", Role: domain.RoleBaseCommander, BaseID: "base-1"}
	suite.personnel = domain.Actor{UserID: "user-per", Role: domain.RolePersonnel, BaseID: "base-1"}
}

func (suite *TransferServiceTestSuite) expectValidTargets(fromBaseID, toBaseID, assetTypeID string) {
	suite.mockBaseRepo.On("FindBaseByID", suite.ctx, fromBaseID).Return(&domain.Base{BaseID: fromBaseID, IsActive: true}, nil).Once()
	suite.mockBaseRepo.On("FindBaseByID", suite.ctx, toBaseID).Return(&domain.Base{BaseID: toBaseID, IsActive: true}, nil).Once()
	suite.mockAssetTypeRepo.On("FindAssetTypeByID", suite.ctx, assetTypeID).Return(&domain.AssetType{AssetTypeID: assetTypeID}, nil).Once()
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_Success() {
	req := dto.CreateTransferRequest{
		AssetTypeID: "at-ammo",
		FromBaseID:  "base-1",
		ToBaseID:    "base-2",
		Quantity:    200,
	}

	suite.expectValidTargets("base-1", "base-2", "at-ammo")
	suite.mockTransferRepo.On("SaveTransfer", suite.ctx,
		mock.MatchedBy(func(t domain.Transfer) bool {
			return t.FromBaseID == "base-1" && t.ToBaseID == "base-2" && t.Quantity == 200 && t.InitiatedBy == suite.logistics.UserID
		}),
		mock.MatchedBy(func(out domain.MovementEvent) bool {
			return out.Kind == domain.KindTransferOut && out.BaseID == "base-1" && out.Reference.Kind == domain.RefTransfer
		}),
		mock.MatchedBy(func(in domain.MovementEvent) bool {
			return in.Kind == domain.KindTransferIn && in.BaseID == "base-2" && in.Reference.Kind == domain.RefTransfer
		}),
	).Return(nil).Once()

	transfer, err := suite.service.CreateTransfer(suite.ctx, suite.logistics, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(transfer)
	suite.NotEmpty(transfer.TransferID)
	suite.mockTransferRepo.AssertExpectations(suite.T())
	suite.mockBaseRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_BothEventsShareTransferRef() {
	req := dto.CreateTransferRequest{AssetTypeID: "at-ammo", FromBaseID: "base-1", ToBaseID: "base-2", Quantity: 5}

	suite.expectValidTargets("base-1", "base-2", "at-ammo")

	var savedTransfer domain.Transfer
	var outRef, inRef domain.Reference
	suite.mockTransferRepo.On("SaveTransfer", suite.ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedTransfer = args.Get(1).(domain.Transfer)
			outRef = args.Get(2).(domain.MovementEvent).Reference
			inRef = args.Get(3).(domain.MovementEvent).Reference
		}).Return(nil).Once()

	_, err := suite.service.CreateTransfer(suite.ctx, suite.admin, req)

	suite.Require().NoError(err)
	suite.Equal(savedTransfer.TransferID, outRef.ID)
	suite.Equal(savedTransfer.TransferID, inRef.ID)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_SameBaseRejected() {
	req := dto.CreateTransferRequest{AssetTypeID: "at-ammo", FromBaseID: "base-1", ToBaseID: "base-1", Quantity: 10}

	_, err := suite.service.CreateTransfer(suite.ctx, suite.admin, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrSameBaseTransfer)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_PinnedSourceCollidesWithDestination() {
	// Logistics officer at base-1 asks to move base-2 stock into base-1. The
	// source is pinned to base-1, which then equals the destination.
	req := dto.CreateTransferRequest{AssetTypeID: "at-ammo", FromBaseID: "base-2", ToBaseID: "base-1", Quantity: 10}

	_, err := suite.service.CreateTransfer(suite.ctx, suite.logistics, req)

	suite.ErrorIs(err, services.ErrSameBaseTransfer)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_CommanderForbidden() {
	req := dto.CreateTransferRequest{AssetTypeID: "at-ammo", FromBaseID: "base-1", ToBaseID: "base-2", Quantity: 10}

	_, err := suite.service.CreateTransfer(suite.ctx, suite.commander, req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_InsufficientStockPassedThrough() {
	req := dto.CreateTransferRequest{AssetTypeID: "at-ammo", FromBaseID: "base-1", ToBaseID: "base-2", Quantity: 500}

	suite.expectValidTargets("base-1", "base-2", "at-ammo")
	suite.mockTransferRepo.On("SaveTransfer", suite.ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.NewInsufficientStockError("base-1", "at-ammo", 500, 120)).Once()

	_, err := suite.service.CreateTransfer(suite.ctx, suite.admin, req)

	suite.ErrorIs(err, apperrors.ErrInsufficientStock)

	var stockErr *apperrors.InsufficientStockError
	suite.Require().ErrorAs(err, &stockErr)
	suite.Equal(int64(120), stockErr.Available)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_UnknownDestination() {
	req := dto.CreateTransferRequest{AssetTypeID: "at-ammo", FromBaseID: "base-1", ToBaseID: "base-missing", Quantity: 10}

	suite.mockBaseRepo.On("FindBaseByID", suite.ctx, "base-1").Return(&domain.Base{BaseID: "base-1", IsActive: true}, nil).Once()
	suite.mockBaseRepo.On("FindBaseByID", suite.ctx, "base-missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransfer(suite.ctx, suite.admin, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransferServiceTestSuite) TestGetTransferByID_EitherEndpointQualifies() {
	transfer := &domain.Transfer{TransferID: "tr-1", FromBaseID: "base-2", ToBaseID: "base-1"}
	suite.mockTransferRepo.On("FindTransferByID", suite.ctx, "tr-1").Return(transfer, nil).Twice()
	suite.mockMovementRepo.On("FindMovementsByReference", suite.ctx, domain.TransferRef("tr-1")).
		Return([]domain.MovementEvent{}, nil).Once()

	got, err := suite.service.GetTransferByID(suite.ctx, suite.commander, "tr-1")
	suite.Require().NoError(err)
	suite.Equal("tr-1", got.TransferID)

	outsider := domain.Actor{UserID: "user-x", Role: domain.RoleBaseCommander, BaseID: "base-3"}
	_, err = suite.service.GetTransferByID(suite.ctx, outsider, "tr-1")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockMovementRepo.AssertNumberOfCalls(suite.T(), "FindMovementsByReference", 1)
}

func (suite *TransferServiceTestSuite) TestGetTransferByID_IncludesBothLegEvents() {
	transfer := &domain.Transfer{TransferID: "tr-1", FromBaseID: "base-1", ToBaseID: "base-2", Quantity: 30}
	events := []domain.MovementEvent{
		{EventID: "ev-out", BaseID: "base-1", Kind: domain.KindTransferOut, Quantity: 30, Reference: domain.TransferRef("tr-1")},
		{EventID: "ev-in", BaseID: "base-2", Kind: domain.KindTransferIn, Quantity: 30, Reference: domain.TransferRef("tr-1")},
	}

	suite.mockTransferRepo.On("FindTransferByID", suite.ctx, "tr-1").Return(transfer, nil).Once()
	suite.mockMovementRepo.On("FindMovementsByReference", suite.ctx, domain.TransferRef("tr-1")).Return(events, nil).Once()

	got, err := suite.service.GetTransferByID(suite.ctx, suite.admin, "tr-1")

	suite.Require().NoError(err)
	suite.Require().Len(got.Events, 2)
	suite.Equal(string(domain.KindTransferOut), got.Events[0].Kind)
	suite.Equal("base-1", got.Events[0].BaseID)
	suite.Equal(string(domain.KindTransferIn), got.Events[1].Kind)
	suite.Equal("base-2", got.Events[1].BaseID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestGetTransferByID_EventLoadError() {
	transfer := &domain.Transfer{TransferID: "tr-1", FromBaseID: "base-1", ToBaseID: "base-2"}

	suite.mockTransferRepo.On("FindTransferByID", suite.ctx, "tr-1").Return(transfer, nil).Once()
	suite.mockMovementRepo.On("FindMovementsByReference", suite.ctx, domain.TransferRef("tr-1")).
		Return(nil, assert.AnError).Once()

	_, err := suite.service.GetTransferByID(suite.ctx, suite.admin, "tr-1")

	suite.ErrorIs(err, assert.AnError)
}

func (suite *TransferServiceTestSuite) TestListTransfers_PersonnelForbidden() {
	_, err := suite.service.ListTransfers(suite.ctx, suite.personnel, dto.ListTransfersParams{Limit: 50})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "ListTransfers", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferServiceTestSuite) TestListTransfers_NonAdminPinnedToOwnBase() {
	baseID := "base-9"
	params := dto.ListTransfersParams{BaseID: &baseID, Limit: 50}

	suite.mockTransferRepo.On("ListTransfers", suite.ctx, mock.MatchedBy(func(f domain.TransferFilter) bool {
		return f.BaseID != nil && *f.BaseID == "base-1"
	}), 50, (*string)(nil)).Return([]domain.Transfer{{TransferID: "tr-1"}}, nil, nil).Once()

	resp, err := suite.service.ListTransfers(suite.ctx, suite.logistics, params)

	suite.Require().NoError(err)
	suite.Len(resp.Transfers, 1)
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestListTransfers_RepoError() {
	suite.mockTransferRepo.On("ListTransfers", suite.ctx, mock.Anything, 50, (*string)(nil)).Return(nil, nil, assert.AnError).Once()

	_, err := suite.service.ListTransfers(suite.ctx, suite.admin, dto.ListTransfersParams{Limit: 50})

	suite.ErrorIs(err, assert.AnError)
}

func TestTransferService(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
