package service_test

import (
	"testing"

	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/mocks"
	"aircraft-production-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SerialAllocatorTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockPartRepo     *mocks.MockPartRepositoryInterface
	mockAircraftRepo *mocks.MockAircraftRepositoryInterface
	allocator        *service.SerialAllocator
}

func (suite *SerialAllocatorTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPartRepo = mocks.NewMockPartRepositoryInterface(suite.ctrl)
	suite.mockAircraftRepo = mocks.NewMockAircraftRepositoryInterface(suite.ctrl)
	suite.allocator = service.NewSerialAllocator(suite.mockPartRepo, suite.mockAircraftRepo)
}

func (suite *SerialAllocatorTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SerialAllocatorTestSuite) TestNextPartSerial_FirstOfPrefix() {
	suite.mockPartRepo.EXPECT().MaxSerialSuffix("TB2-KNT-").Return(0, nil)

	serial, err := suite.allocator.NextPartSerial("TB2", models.PartCategoryWing)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "TB2-KNT-00001", serial)
}

func (suite *SerialAllocatorTestSuite) TestNextPartSerial_ContinuesFromMax() {
	suite.mockPartRepo.EXPECT().MaxSerialSuffix("AKINCI-AVY-").Return(41, nil)

	serial, err := suite.allocator.NextPartSerial("AKINCI", models.PartCategoryAvionics)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "AKINCI-AVY-00042", serial)
}

func (suite *SerialAllocatorTestSuite) TestNextPartSerial_CategoryAbbreviations() {
	cases := map[models.PartCategory]string{
		models.PartCategoryWing:     "TB2-KNT-",
		models.PartCategoryFuselage: "TB2-GVD-",
		models.PartCategoryTail:     "TB2-KYR-",
		models.PartCategoryAvionics: "TB2-AVY-",
	}
	for category, prefix := range cases {
		suite.mockPartRepo.EXPECT().MaxSerialSuffix(prefix).Return(0, nil)

		serial, err := suite.allocator.NextPartSerial("TB2", category)

		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), prefix+"00001", serial)
	}
}

func (suite *SerialAllocatorTestSuite) TestNextPartSerial_MissingModel() {
	serial, err := suite.allocator.NextPartSerial("", models.PartCategoryWing)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Empty(suite.T(), serial)
}

func (suite *SerialAllocatorTestSuite) TestNextAircraftSerial_FirstOfModel() {
	suite.mockAircraftRepo.EXPECT().MaxSerialSuffix("KIZILELMA-").Return(0, nil)

	serial, err := suite.allocator.NextAircraftSerial("KIZILELMA")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "KIZILELMA-0001", serial)
}

func (suite *SerialAllocatorTestSuite) TestNextAircraftSerial_ContinuesFromMax() {
	suite.mockAircraftRepo.EXPECT().MaxSerialSuffix("TB3-").Return(6, nil)

	serial, err := suite.allocator.NextAircraftSerial("TB3")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "TB3-0007", serial)
}

func (suite *SerialAllocatorTestSuite) TestNextAircraftSerial_MissingModel() {
	serial, err := suite.allocator.NextAircraftSerial("")

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Empty(suite.T(), serial)
}

func TestSerialAllocatorTestSuite(t *testing.T) {
	suite.Run(t, new(SerialAllocatorTestSuite))
}
