package service_test

import (
	"testing"

	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/mocks"
	"aircraft-production-backend/internal/repository"
	"aircraft-production-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type PartServiceTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockPartRepo          *mocks.MockPartRepositoryInterface
	mockPartTypeRepo      *mocks.MockPartTypeRepositoryInterface
	mockAircraftModelRepo *mocks.MockAircraftModelRepositoryInterface
	mockTeamRepo          *mocks.MockTeamRepositoryInterface
	mockPersonnelRepo     *mocks.MockPersonnelRepositoryInterface
	mockAircraftRepo      *mocks.MockAircraftRepositoryInterface
	partService           *service.PartService
	validator             *validator.Validate
}

func (suite *PartServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPartRepo = mocks.NewMockPartRepositoryInterface(suite.ctrl)
	suite.mockPartTypeRepo = mocks.NewMockPartTypeRepositoryInterface(suite.ctrl)
	suite.mockAircraftModelRepo = mocks.NewMockAircraftModelRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockPersonnelRepo = mocks.NewMockPersonnelRepositoryInterface(suite.ctrl)
	suite.mockAircraftRepo = mocks.NewMockAircraftRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	serials := service.NewSerialAllocator(suite.mockPartRepo, suite.mockAircraftRepo)
	suite.partService = service.NewPartService(
		suite.mockPartRepo,
		suite.mockPartTypeRepo,
		suite.mockAircraftModelRepo,
		suite.mockTeamRepo,
		suite.mockPersonnelRepo,
		serials,
		suite.validator,
	)
}

func (suite *PartServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PartServiceTestSuite) wingTeam() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "wing-alpha",
		Type:      models.TeamTypeWing,
	}
}

func (suite *PartServiceTestSuite) wingPartType() *models.PartType {
	return &models.PartType{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Category:  models.PartCategoryWing,
	}
}

func (suite *PartServiceTestSuite) tb2Model() *models.AircraftModel {
	return &models.AircraftModel{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "TB2",
	}
}

func (suite *PartServiceTestSuite) TestProduce_Success() {
	team := suite.wingTeam()
	partType := suite.wingPartType()
	model := suite.tb2Model()

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockPartTypeRepo.EXPECT().GetByID(partType.ID).Return(partType, nil)
	suite.mockAircraftModelRepo.EXPECT().GetByID(model.ID).Return(model, nil)
	suite.mockTeamRepo.EXPECT().MemberCount(team.ID).Return(int64(1), nil)
	suite.mockPartRepo.EXPECT().MaxSerialSuffix("TB2-KNT-").Return(2, nil)
	suite.mockPartRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(part *models.Part) error {
		assert.Equal(suite.T(), "TB2-KNT-00003", part.SerialNumber)
		assert.Equal(suite.T(), models.PartStatusAvailable, part.Status)
		assert.Equal(suite.T(), team.ID, part.ProducedByID)
		return nil
	})

	resp, err := suite.partService.Produce(&service.ProducePartRequest{
		TeamID:          team.ID,
		PartTypeID:      partType.ID,
		AircraftModelID: model.ID,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), "TB2-KNT-00003", resp.SerialNumber)
	assert.Equal(suite.T(), models.PartCategoryWing, resp.Category)
	assert.Equal(suite.T(), models.PartStatusAvailable, resp.Status)
	assert.Equal(suite.T(), "TB2", resp.AircraftModel)
}

func (suite *PartServiceTestSuite) TestProduce_WrongCategoryForTeam() {
	// A wing team asked to produce avionics must be rejected before any write
	team := suite.wingTeam()
	partType := &models.PartType{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Category:  models.PartCategoryAvionics,
	}
	model := suite.tb2Model()

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockPartTypeRepo.EXPECT().GetByID(partType.ID).Return(partType, nil)
	suite.mockAircraftModelRepo.EXPECT().GetByID(model.ID).Return(model, nil)

	resp, err := suite.partService.Produce(&service.ProducePartRequest{
		TeamID:          team.ID,
		PartTypeID:      partType.ID,
		AircraftModelID: model.ID,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrIncompatibleTeam)
}

func (suite *PartServiceTestSuite) TestProduce_AssemblyTeamCannotProduce() {
	team := &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "assembly-one",
		Type:      models.TeamTypeAssembly,
	}
	partType := suite.wingPartType()
	model := suite.tb2Model()

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockPartTypeRepo.EXPECT().GetByID(partType.ID).Return(partType, nil)
	suite.mockAircraftModelRepo.EXPECT().GetByID(model.ID).Return(model, nil)

	resp, err := suite.partService.Produce(&service.ProducePartRequest{
		TeamID:          team.ID,
		PartTypeID:      partType.ID,
		AircraftModelID: model.ID,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrIncompatibleTeam)
}

func (suite *PartServiceTestSuite) TestProduce_EmptyTeamRejected() {
	// A team with no registered personnel may not produce
	team := suite.wingTeam()
	partType := suite.wingPartType()
	model := suite.tb2Model()

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockPartTypeRepo.EXPECT().GetByID(partType.ID).Return(partType, nil)
	suite.mockAircraftModelRepo.EXPECT().GetByID(model.ID).Return(model, nil)
	suite.mockTeamRepo.EXPECT().MemberCount(team.ID).Return(int64(0), nil)

	resp, err := suite.partService.Produce(&service.ProducePartRequest{
		TeamID:          team.ID,
		PartTypeID:      partType.ID,
		AircraftModelID: model.ID,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyTeam)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PartServiceTestSuite) TestProduce_TeamNotFound() {
	teamID := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.partService.Produce(&service.ProducePartRequest{
		TeamID:          teamID,
		PartTypeID:      uuid.New(),
		AircraftModelID: uuid.New(),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *PartServiceTestSuite) TestProduce_MissingFields() {
	resp, err := suite.partService.Produce(&service.ProducePartRequest{})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *PartServiceTestSuite) TestRecycle_AvailablePart() {
	part := &models.Part{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		SerialNumber: "TB2-KNT-00001",
		Status:       models.PartStatusAvailable,
	}
	suite.mockPartRepo.EXPECT().GetByID(part.ID).Return(part, nil)
	suite.mockPartRepo.EXPECT().UpdateStatus(part.ID, models.PartStatusRecycled).Return(nil)

	resp, err := suite.partService.Recycle(part.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.PartStatusRecycled, resp.Status)
}

func (suite *PartServiceTestSuite) TestRecycle_UsedPartConflict() {
	part := &models.Part{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		SerialNumber: "TB2-KNT-00001",
		Status:       models.PartStatusUsed,
	}
	suite.mockPartRepo.EXPECT().GetByID(part.ID).Return(part, nil)

	resp, err := suite.partService.Recycle(part.ID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPartInUse)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *PartServiceTestSuite) TestRecycle_AlreadyRecycledIsNoOp() {
	part := &models.Part{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		SerialNumber: "TB2-KNT-00001",
		Status:       models.PartStatusRecycled,
	}
	// No UpdateStatus expected
	suite.mockPartRepo.EXPECT().GetByID(part.ID).Return(part, nil)

	resp, err := suite.partService.Recycle(part.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.PartStatusRecycled, resp.Status)
}

func (suite *PartServiceTestSuite) TestRecycle_NotFound() {
	id := uuid.New()
	suite.mockPartRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.partService.Recycle(id)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPartNotFound)
}

func (suite *PartServiceTestSuite) TestList_PaginationNormalization() {
	suite.mockPartRepo.EXPECT().GetAll(gomock.Any(), 20, 0).Return([]models.Part{}, int64(0), nil)

	resp, err := suite.partService.List(repository.PartFilter{}, -1, 500)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
}

func TestPartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartServiceTestSuite))
}
