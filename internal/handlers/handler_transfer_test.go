package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/milassets/asset_command_app/internal/apperrors"
	"github.com/milassets/asset_command_app/internal/core/domain"
	"github.com/milassets/asset_command_app/internal/dto"
)

// MockTransferService mocks the transfer service facade for handler tests.
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) CreateTransfer(ctx context.Context, actor domain.Actor, req dto.CreateTransferRequest) (*domain.Transfer, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferService) GetTransferByID(ctx context.Context, actor domain.Actor, transferID string) (*dto.TransferDetailResponse, error) {
	args := m.Called(ctx, actor, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransferDetailResponse), args.Error(1)
}

func (m *MockTransferService) ListTransfers(ctx context.Context, actor domain.Actor, params dto.ListTransfersParams) (*dto.ListTransfersResponse, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransfersResponse), args.Error(1)
}

type TransferHandlerTestSuite struct {
	suite.Suite
	mockService *MockTransferService
	router      *gin.Engine
	actor       domain.Actor
}

func (suite *TransferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockTransferService)
	suite.actor = domain.Actor{UserID: "user-log", Role: domain.RoleLogisticsOfficer, BaseID: "base-1"}

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("actor", suite.actor)
		c.Next()
	})
	registerTransferRoutes(suite.router.Group("/api/v1"), suite.mockService)
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_Success() {
	body := dto.CreateTransferRequest{
		AssetTypeID: "at-ammo",
		FromBaseID:  "base-1",
		ToBaseID:    "base-2",
		Quantity:    100,
	}
	transfer := &domain.Transfer{TransferID: "tr-1", AssetTypeID: "at-ammo", FromBaseID: "base-1", ToBaseID: "base-2", Quantity: 100}

	suite.mockService.On("CreateTransfer", mock.Anything, suite.actor, body).Return(transfer, nil).Once()

	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("tr-1", resp.TransferID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_MissingFieldsRejected() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader([]byte(`{"quantity": 10}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransfer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_InsufficientStockMapsTo400() {
	body := dto.CreateTransferRequest{AssetTypeID: "at-ammo", FromBaseID: "base-1", ToBaseID: "base-2", Quantity: 500}

	suite.mockService.On("CreateTransfer", mock.Anything, suite.actor, body).
		Return(nil, apperrors.NewInsufficientStockError("base-1", "at-ammo", 500, 120)).Once()

	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Available)
	suite.Equal(int64(120), *resp.Available)
	suite.Contains(resp.Error, "available 120")
}

func (suite *TransferHandlerTestSuite) TestCreateTransfer_ForbiddenMapsTo403() {
	body := dto.CreateTransferRequest{AssetTypeID: "at-ammo", FromBaseID: "base-1", ToBaseID: "base-2", Quantity: 10}

	suite.mockService.On("CreateTransfer", mock.Anything, suite.actor, body).
		Return(nil, apperrors.ErrForbidden).Once()

	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TransferHandlerTestSuite) TestGetTransfer_NotFoundMapsTo404() {
	suite.mockService.On("GetTransferByID", mock.Anything, suite.actor, "tr-missing").
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers/tr-missing", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransferHandlerTestSuite) TestGetTransfer_IncludesEvents() {
	detail := &dto.TransferDetailResponse{
		TransferResponse: dto.TransferResponse{TransferID: "tr-1", FromBaseID: "base-1", ToBaseID: "base-2"},
		Events: []dto.MovementResponse{
			{EventID: "ev-out", Kind: "transfer-out", BaseID: "base-1"},
			{EventID: "ev-in", Kind: "transfer-in", BaseID: "base-2"},
		},
	}

	suite.mockService.On("GetTransferByID", mock.Anything, suite.actor, "tr-1").Return(detail, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers/tr-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var got dto.TransferDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("tr-1", got.TransferID)
	suite.Require().Len(got.Events, 2)
	suite.Equal("ev-out", got.Events[0].EventID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestListTransfers_Success() {
	resp := &dto.ListTransfersResponse{Transfers: []dto.TransferResponse{{TransferID: "tr-1"}}}

	suite.mockService.On("ListTransfers", mock.Anything, suite.actor, mock.MatchedBy(func(p dto.ListTransfersParams) bool {
		return p.Limit == 50
	})).Return(resp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var got dto.ListTransfersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Transfers, 1)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransferHandlerTestSuite) TestMissingActor_Unauthorized() {
	router := gin.New()
	registerTransferRoutes(router.Group("/api/v1"), suite.mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestTransferHandler(t *testing.T) {
	suite.Run(t, new(TransferHandlerTestSuite))
}
