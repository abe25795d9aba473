package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

const testJWTSecret = "test-secret"

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine

	// captured by the protected handler on successful auth
	gotActor domain.Actor
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.gotActor = domain.Actor{}

	suite.router = gin.New()
	suite.router.Use(AuthMiddleware(testJWTSecret))
	suite.router.GET("/protected", func(c *gin.Context) {
		actor, ok := GetActorFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		suite.gotActor = actor
		c.Status(http.StatusOK)
	})
}

func (suite *AuthMiddlewareTestSuite) signToken(claims AccessClaims) string {
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *AuthMiddlewareTestSuite) request(token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthMiddlewareTestSuite) TestActorCarriesBaseAffiliation() {
	baseID := "base-1"
	token := suite.signToken(AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-cmd"},
		Role:             string(domain.RoleBaseCommander),
		BaseID:           &baseID,
	})

	w := suite.request(token)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("user-cmd", suite.gotActor.UserID)
	suite.Equal(domain.RoleBaseCommander, suite.gotActor.Role)
	suite.Equal("base-1", suite.gotActor.BaseID)
}

func (suite *AuthMiddlewareTestSuite) TestAdminTokenWithoutBase() {
	token := suite.signToken(AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-admin"},
		Role:             string(domain.RoleAdmin),
	})

	w := suite.request(token)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("user-admin", suite.gotActor.UserID)
	suite.Equal(domain.RoleAdmin, suite.gotActor.Role)
	suite.Empty(suite.gotActor.BaseID)
}

func (suite *AuthMiddlewareTestSuite) TestMissingHeaderRejected() {
	w := suite.request("")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestExpiredTokenRejected() {
	token := suite.signToken(AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-cmd",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Role: string(domain.RoleBaseCommander),
	})

	w := suite.request(token)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "expired")
}

func (suite *AuthMiddlewareTestSuite) TestWrongSecretRejected() {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-cmd",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: string(domain.RoleBaseCommander),
	}).SignedString([]byte("other-secret"))
	suite.Require().NoError(err)

	w := suite.request(signed)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestUnknownRoleRejected() {
	token := suite.signToken(AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-x"},
		Role:             "quartermaster",
	})

	w := suite.request(token)

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
