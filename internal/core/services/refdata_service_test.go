package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/core/services"
	"github.com/milassets/asset_command_app/internal/dto"
)

type RefDataServiceTestSuite struct {
	suite.Suite
	mockBaseRepo      *MockBaseRegistryRepository
	mockAssetTypeRepo *MockAssetTypeRepository
	baseService       portssvc.BaseSvcFacade
	assetTypeService  portssvc.AssetTypeSvcFacade
	ctx               context.Context

	admin     domain.Actor
	logistics domain.Actor
	commander domain.Actor
}

func (suite *RefDataServiceTestSuite) SetupTest() {
	suite.mockBaseRepo = new(MockBaseRegistryRepository)
	suite.mockAssetTypeRepo = new(MockAssetTypeRepository)
	suite.baseService = services.NewBaseRegistryService(suite.mockBaseRepo, services.Policy{})
	suite.assetTypeService = services.NewAssetTypeService(suite.mockAssetTypeRepo, services.Policy{})
	suite.ctx = context.Background()

	suite.admin = domain.Actor{UserID: "user-admin", Role: domain.RoleAdmin}
	suite.logistics = domain.Actor{UserID: "user-log", Role: domain.RoleLogisticsOfficer, BaseID: "base-1"}
	suite.commander = domain.Actor{UserID: "user-cmd", Role: domain.RoleBaseCommander, BaseID: "base-1"}
}

func (suite *RefDataServiceTestSuite) TestCreateBase_Success() {
	req := dto.CreateBaseRequest{Name: "Fort North", Location: "Sector 4"}

	suite.mockBaseRepo.On("SaveBase", suite.ctx, mock.MatchedBy(func(b domain.Base) bool {
		return b.Name == "Fort North" && b.IsActive && b.BaseID != ""
	})).Return(nil).Once()

	base, err := suite.baseService.CreateBase(suite.ctx, suite.admin, req)

	suite.Require().NoError(err)
	suite.True(base.IsActive)
	suite.mockBaseRepo.AssertExpectations(suite.T())
}

func (suite *RefDataServiceTestSuite) TestCreateBase_NonAdminForbidden() {
	_, err := suite.baseService.CreateBase(suite.ctx, suite.logistics, dto.CreateBaseRequest{Name: "Fort North"})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockBaseRepo.AssertNotCalled(suite.T(), "SaveBase", mock.Anything, mock.Anything)
}

func (suite *RefDataServiceTestSuite) TestUpdateBase_Deactivate() {
	isActive := false
	existing := &domain.Base{BaseID: "base-1", Name: "Fort North", IsActive: true}

	suite.mockBaseRepo.On("FindBaseByID", suite.ctx, "base-1").Return(existing, nil).Once()
	suite.mockBaseRepo.On("UpdateBase", suite.ctx, mock.MatchedBy(func(b domain.Base) bool {
		return !b.IsActive && b.LastUpdatedBy == suite.admin.UserID
	})).Return(nil).Once()

	base, err := suite.baseService.UpdateBase(suite.ctx, suite.admin, "base-1", dto.UpdateBaseRequest{IsActive: &isActive})

	suite.Require().NoError(err)
	suite.False(base.IsActive)
	suite.mockBaseRepo.AssertExpectations(suite.T())
}

func (suite *RefDataServiceTestSuite) TestCreateAssetType_LogisticsAllowed() {
	req := dto.CreateAssetTypeRequest{Name: "5.56mm", Category: "ammunition", Unit: "rounds"}

	suite.mockAssetTypeRepo.On("SaveAssetType", suite.ctx, mock.MatchedBy(func(at domain.AssetType) bool {
		return at.Name == "5.56mm" && at.Category == "ammunition"
	})).Return(nil).Once()

	assetType, err := suite.assetTypeService.CreateAssetType(suite.ctx, suite.logistics, req)

	suite.Require().NoError(err)
	suite.NotEmpty(assetType.AssetTypeID)
	suite.mockAssetTypeRepo.AssertExpectations(suite.T())
}

func (suite *RefDataServiceTestSuite) TestCreateAssetType_CommanderForbidden() {
	_, err := suite.assetTypeService.CreateAssetType(suite.ctx, suite.commander, dto.CreateAssetTypeRequest{Name: "5.56mm"})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *RefDataServiceTestSuite) TestUpdateAssetType_CategoryImmutable() {
	existing := &domain.AssetType{AssetTypeID: "at-1", Name: "5.56mm", Category: "ammunition", Unit: "rounds"}
	name := "5.56mm NATO"

	suite.mockAssetTypeRepo.On("FindAssetTypeByID", suite.ctx, "at-1").Return(existing, nil).Once()
	suite.mockAssetTypeRepo.On("UpdateAssetType", suite.ctx, mock.MatchedBy(func(at domain.AssetType) bool {
		return at.Name == "5.56mm NATO" && at.Category == "ammunition"
	})).Return(nil).Once()

	assetType, err := suite.assetTypeService.UpdateAssetType(suite.ctx, suite.logistics, "at-1", dto.UpdateAssetTypeRequest{Name: &name})

	suite.Require().NoError(err)
	suite.Equal("ammunition", assetType.Category)
	suite.mockAssetTypeRepo.AssertExpectations(suite.T())
}

func TestRefDataServices(t *testing.T) {
	suite.Run(t, new(RefDataServiceTestSuite))
}
