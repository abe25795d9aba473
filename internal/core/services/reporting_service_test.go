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
	"github.com/milassets/asset_command_app/internal/dto"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingService
	ctx               context.Context

	admin     domain.Actor
	commander domain.Actor
	logistics domain.Actor
	personnel domain.Actor
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, services.Policy{})
	suite.ctx = context.Background()

	suite.admin = domain.Actor{UserID: "user-admin", Role: domain.RoleAdmin}
	suite.commander = domain.Actor{UserID: "user-cmd", Role: domain.RoleBaseCommander, BaseID: "base-1"}
	suite.logistics = domain.Actor{UserID: "user-log", Role: domain.RoleLogisticsOfficer, BaseID: "base-1"}
	suite.personnel = domain.Actor{UserID: "user-per", Role: domain.RolePersonnel, BaseID: "base-1"}
}

func (suite *ReportingServiceTestSuite) emptyReport() *domain.SummaryReport {
	return &domain.SummaryReport{}
}

func (suite *ReportingServiceTestSuite) TestGetDashboardSummary_AdminFiltersPassThrough() {
	baseID := "base-3"
	assetTypeID := "at-rifle"
	params := dto.DashboardParams{BaseID: &baseID, AssetTypeID: &assetTypeID}

	suite.mockReportingRepo.On("GetMovementSummary", suite.ctx, mock.MatchedBy(func(s domain.SummaryScope) bool {
		return s.BaseID == "base-3" && s.AssetTypeID == "at-rifle" && s.AssignedTo == ""
	})).Return(suite.emptyReport(), nil).Once()

	_, err := suite.service.GetDashboardSummary(suite.ctx, suite.admin, params)

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardSummary_CommanderPinnedToOwnBase() {
	baseID := "base-3"
	params := dto.DashboardParams{BaseID: &baseID}

	suite.mockReportingRepo.On("GetMovementSummary", suite.ctx, mock.MatchedBy(func(s domain.SummaryScope) bool {
		return s.BaseID == "base-1"
	})).Return(suite.emptyReport(), nil).Once()

	_, err := suite.service.GetDashboardSummary(suite.ctx, suite.commander, params)

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardSummary_LogisticsPinnedToOwnBase() {
	suite.mockReportingRepo.On("GetMovementSummary", suite.ctx, mock.MatchedBy(func(s domain.SummaryScope) bool {
		return s.BaseID == "base-1"
	})).Return(suite.emptyReport(), nil).Once()

	_, err := suite.service.GetDashboardSummary(suite.ctx, suite.logistics, dto.DashboardParams{})

	suite.Require().NoError(err)
}

func (suite *ReportingServiceTestSuite) TestGetDashboardSummary_PersonnelScopedToOwnAssignments() {
	suite.mockReportingRepo.On("GetMovementSummary", suite.ctx, mock.MatchedBy(func(s domain.SummaryScope) bool {
		return s.AssignedTo == "user-per" && s.BaseID == ""
	})).Return(suite.emptyReport(), nil).Once()

	_, err := suite.service.GetDashboardSummary(suite.ctx, suite.personnel, dto.DashboardParams{})

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardSummary_CommanderWithoutBaseForbidden() {
	unaffiliated := domain.Actor{UserID: "user-x", Role: domain.RoleBaseCommander}

	_, err := suite.service.GetDashboardSummary(suite.ctx, unaffiliated, dto.DashboardParams{})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetMovementSummary", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestGetDashboardSummary_UnknownRoleForbidden() {
	impostor := domain.Actor{UserID: "user-x", Role: domain.Role("quartermaster")}

	_, err := suite.service.GetDashboardSummary(suite.ctx, impostor, dto.DashboardParams{})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReportingServiceTestSuite) TestGetDashboardSummary_NormalizesDateWindow() {
	start := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	params := dto.DashboardParams{StartDate: &start, EndDate: &end}

	suite.mockReportingRepo.On("GetMovementSummary", suite.ctx, mock.MatchedBy(func(s domain.SummaryScope) bool {
		return s.StartDate != nil && s.StartDate.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) &&
			s.EndDate != nil && s.EndDate.Equal(time.Date(2025, 6, 30, 23, 59, 59, 999999999, time.UTC))
	})).Return(suite.emptyReport(), nil).Once()

	_, err := suite.service.GetDashboardSummary(suite.ctx, suite.admin, params)

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetDashboardSummary_RepoError() {
	suite.mockReportingRepo.On("GetMovementSummary", suite.ctx, mock.Anything).Return(nil, assert.AnError).Once()

	_, err := suite.service.GetDashboardSummary(suite.ctx, suite.admin, dto.DashboardParams{})

	suite.ErrorIs(err, assert.AnError)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
