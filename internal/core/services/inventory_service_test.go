package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/core/services"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	mockStockRepo     *MockStockRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.InventorySvcFacade
	ctx               context.Context

	admin     domain.Actor
	commander domain.Actor
	personnel domain.Actor
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockStockRepo = new(MockStockRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewInventoryService(suite.mockStockRepo, suite.mockReportingRepo, services.Policy{})
	suite.ctx = context.Background()

	suite.admin = domain.Actor{UserID: "user-admin", Role: domain.RoleAdmin}
	suite.commander = domain.Actor{UserID: "user-cmd", Role: domain.RoleBaseCommander, BaseID: "base-1"}
	suite.personnel = domain.Actor{UserID: "user-per", Role: domain.RolePersonnel, BaseID: "base-1"}
}

func (suite *InventoryServiceTestSuite) TestGetBalance_Success() {
	stock := &domain.StockLevel{BaseID: "base-1", AssetTypeID: "at-ammo", Balance: 320, UpdatedAt: time.Now().UTC()}
	suite.mockStockRepo.On("FindStock", suite.ctx, "base-1", "at-ammo").Return(stock, nil).Once()

	got, err := suite.service.GetBalance(suite.ctx, suite.commander, "base-1", "at-ammo")

	suite.Require().NoError(err)
	suite.Equal(int64(320), got.Balance)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestGetBalance_UntrackedPairIsZero() {
	stock := &domain.StockLevel{BaseID: "base-1", AssetTypeID: "at-new", Balance: 0}
	suite.mockStockRepo.On("FindStock", suite.ctx, "base-1", "at-new").Return(stock, nil).Once()

	got, err := suite.service.GetBalance(suite.ctx, suite.admin, "base-1", "at-new")

	suite.Require().NoError(err)
	suite.Zero(got.Balance)
}

func (suite *InventoryServiceTestSuite) TestGetBalance_PersonnelForbidden() {
	_, err := suite.service.GetBalance(suite.ctx, suite.personnel, "base-1", "at-ammo")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "FindStock", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestGetBalance_CrossBaseForbidden() {
	_, err := suite.service.GetBalance(suite.ctx, suite.commander, "base-2", "at-ammo")

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *InventoryServiceTestSuite) TestGetBalance_RepoError() {
	suite.mockStockRepo.On("FindStock", suite.ctx, "base-1", "at-ammo").Return(nil, assert.AnError).Once()

	_, err := suite.service.GetBalance(suite.ctx, suite.admin, "base-1", "at-ammo")

	suite.ErrorIs(err, assert.AnError)
}

func (suite *InventoryServiceTestSuite) TestGetBaseHoldings_Success() {
	holdings := []domain.AssetNetQuantity{
		{AssetTypeID: "at-rifle", AssetTypeName: "Rifle", NetQuantity: 40},
		{AssetTypeID: "at-ammo", AssetTypeName: "5.56mm", NetQuantity: 1200},
	}
	suite.mockReportingRepo.On("GetNetQuantitiesByBase", suite.ctx, "base-1", domain.SummaryScope{}).Return(holdings, nil).Once()

	got, err := suite.service.GetBaseHoldings(suite.ctx, suite.commander, "base-1")

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestGetBaseHoldings_AdminAnyBase() {
	suite.mockReportingRepo.On("GetNetQuantitiesByBase", suite.ctx, "base-7", domain.SummaryScope{}).Return([]domain.AssetNetQuantity{}, nil).Once()

	got, err := suite.service.GetBaseHoldings(suite.ctx, suite.admin, "base-7")

	suite.Require().NoError(err)
	suite.Empty(got)
}

func (suite *InventoryServiceTestSuite) TestGetBaseHoldings_CrossBaseForbidden() {
	_, err := suite.service.GetBaseHoldings(suite.ctx, suite.commander, "base-2")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetNetQuantitiesByBase", mock.Anything, mock.Anything, mock.Anything)
}

func TestInventoryService(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
