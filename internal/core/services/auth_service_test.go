package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/aymanouf/committee-finance/internal/apperrors"
	"github.com/aymanouf/committee-finance/internal/core/domain"
	portssvc "github.com/aymanouf/committee-finance/internal/core/ports/services"
	"github.com/aymanouf/committee-finance/internal/core/services"
	"github.com/aymanouf/committee-finance/internal/platform/config"
	"github.com/aymanouf/committee-finance/internal/repositories/memory"
	"github.com/aymanouf/committee-finance/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	cfg     *config.Config
	service portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "committee-finance-test",
		AdminUsername:     "admin",
		AdminPassword:     "correct horse",
		ViewerUsername:    "viewer",
		ViewerPassword:    "battery staple",
	}
	userRepo := memory.NewUserRepository(memory.NewStore())
	suite.Require().NoError(services.SeedUsers(context.Background(), userRepo, suite.cfg))
	suite.service = services.NewAuthService(suite.cfg, userRepo)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	user, token, expiresAt, err := suite.service.Login(context.Background(), "admin", "correct horse")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, user.Role)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("admin", claims.Subject)
	suite.Equal(string(domain.RoleAdmin), claims.Role)
}

func (suite *AuthServiceTestSuite) TestLogin_ViewerRole() {
	user, _, _, err := suite.service.Login(context.Background(), "viewer", "battery staple")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleViewer, user.Role)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	_, _, _, err := suite.service.Login(context.Background(), "admin", "nope")
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	// Same error as a wrong password, so responses don't reveal usernames.
	_, _, _, err := suite.service.Login(context.Background(), "ghost", "nope")
	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
