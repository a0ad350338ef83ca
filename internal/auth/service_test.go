package auth_test

import (
	"testing"
	"time"

	"aircraft-production-backend/internal/auth"
	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AuthServiceTestSuite tests the AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockPersonnelRepo *mocks.MockPersonnelRepositoryInterface
	service           *auth.AuthService
}

// SetupTest runs before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPersonnelRepo = mocks.NewMockPersonnelRepositoryInterface(suite.ctrl)
	suite.service = auth.NewAuthService("test-secret", suite.mockPersonnelRepo)
}

// TearDownTest runs after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestIssueToken tests issuing and validating a token round trip
func (suite *AuthServiceTestSuite) TestIssueToken() {
	person := &models.Personnel{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "operator-1",
	}
	suite.mockPersonnelRepo.EXPECT().GetByUsername("operator-1").Return(person, nil)

	resp, err := suite.service.IssueToken("operator-1")

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.AccessToken)
	assert.Equal(suite.T(), "Bearer", resp.TokenType)
	assert.Equal(suite.T(), int64((8 * time.Hour).Seconds()), resp.ExpiresIn)
	assert.Equal(suite.T(), person.ID, resp.PersonnelID)
	assert.Equal(suite.T(), "operator-1", resp.Username)

	claims, err := suite.service.ValidateJWT(resp.AccessToken)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), person.ID, claims.PersonnelID)
	assert.Equal(suite.T(), "operator-1", claims.Username)
	assert.Equal(suite.T(), person.ID.String(), claims.Subject)
}

// TestIssueTokenUnknownUsername tests issuing a token for an unregistered user
func (suite *AuthServiceTestSuite) TestIssueTokenUnknownUsername() {
	suite.mockPersonnelRepo.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.IssueToken("ghost")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonnelNotFound)
}

// TestValidateJWTWrongSecret tests that tokens signed with another secret are rejected
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	person := &models.Personnel{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "operator-2",
	}
	suite.mockPersonnelRepo.EXPECT().GetByUsername("operator-2").Return(person, nil)

	resp, err := suite.service.IssueToken("operator-2")
	assert.NoError(suite.T(), err)

	other := auth.NewAuthService("different-secret", suite.mockPersonnelRepo)
	claims, err := other.ValidateJWT(resp.AccessToken)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// TestValidateJWTGarbage tests that malformed tokens are rejected
func (suite *AuthServiceTestSuite) TestValidateJWTGarbage() {
	claims, err := suite.service.ValidateJWT("not-a-token")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// Run the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
