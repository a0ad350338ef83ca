package service_test

import (
	"testing"

	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/mocks"
	"aircraft-production-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssemblyServiceTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockPartRepo          *mocks.MockPartRepositoryInterface
	mockPartTypeRepo      *mocks.MockPartTypeRepositoryInterface
	mockAircraftModelRepo *mocks.MockAircraftModelRepositoryInterface
	mockTeamRepo          *mocks.MockTeamRepositoryInterface
	mockPersonnelRepo     *mocks.MockPersonnelRepositoryInterface
	mockAircraftRepo      *mocks.MockAircraftRepositoryInterface
	mockWorkOrderRepo     *mocks.MockWorkOrderRepositoryInterface
	assemblyService       *service.AssemblyService
	validator             *validator.Validate

	team      *models.Team
	model     *models.AircraftModel
	partTypes []models.PartType
}

func (suite *AssemblyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPartRepo = mocks.NewMockPartRepositoryInterface(suite.ctrl)
	suite.mockPartTypeRepo = mocks.NewMockPartTypeRepositoryInterface(suite.ctrl)
	suite.mockAircraftModelRepo = mocks.NewMockAircraftModelRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockPersonnelRepo = mocks.NewMockPersonnelRepositoryInterface(suite.ctrl)
	suite.mockAircraftRepo = mocks.NewMockAircraftRepositoryInterface(suite.ctrl)
	suite.mockWorkOrderRepo = mocks.NewMockWorkOrderRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	serials := service.NewSerialAllocator(suite.mockPartRepo, suite.mockAircraftRepo)
	aircraftService := service.NewAircraftService(
		suite.mockAircraftRepo,
		suite.mockPartRepo,
		suite.mockWorkOrderRepo,
		serials,
		suite.validator,
	)
	workOrderService := service.NewWorkOrderService(
		suite.mockWorkOrderRepo,
		suite.mockAircraftRepo,
		suite.mockAircraftModelRepo,
		suite.mockTeamRepo,
		suite.mockPersonnelRepo,
		suite.validator,
	)
	suite.assemblyService = service.NewAssemblyService(
		suite.mockPartRepo,
		suite.mockPartTypeRepo,
		suite.mockAircraftModelRepo,
		suite.mockTeamRepo,
		suite.mockPersonnelRepo,
		aircraftService,
		workOrderService,
		suite.validator,
	)

	suite.team = &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "assembly-one",
		Type:      models.TeamTypeAssembly,
	}
	suite.model = &models.AircraftModel{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "TB2",
	}
	suite.partTypes = []models.PartType{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Category: models.PartCategoryWing},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Category: models.PartCategoryFuselage},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Category: models.PartCategoryTail},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Category: models.PartCategoryAvionics},
	}
}

func (suite *AssemblyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssemblyServiceTestSuite) partFor(partType *models.PartType) *models.Part {
	return &models.Part{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		PartTypeID:      partType.ID,
		AircraftModelID: suite.model.ID,
		SerialNumber:    "TB2-XXX-00001",
		Status:          models.PartStatusAvailable,
		PartType:        partType,
	}
}

func (suite *AssemblyServiceTestSuite) TestAssemble_Success() {
	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil)
	suite.mockTeamRepo.EXPECT().MemberCount(suite.team.ID).Return(int64(2), nil)
	suite.mockAircraftModelRepo.EXPECT().GetByID(suite.model.ID).Return(suite.model, nil)
	suite.mockPartTypeRepo.EXPECT().GetAll().Return(suite.partTypes, nil)

	for i := range suite.partTypes {
		part := suite.partFor(&suite.partTypes[i])
		suite.mockPartRepo.EXPECT().FindOldestAvailable(suite.partTypes[i].ID, suite.model.ID).Return(part, nil)
		suite.mockPartRepo.EXPECT().UpdateStatus(part.ID, models.PartStatusUsed).Return(nil)
	}

	suite.mockAircraftRepo.EXPECT().MaxSerialSuffix("TB2-").Return(0, nil)
	suite.mockAircraftRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(aircraft *models.Aircraft) error {
		assert.Equal(suite.T(), "TB2-0001", aircraft.SerialNumber)
		assert.Equal(suite.T(), models.AircraftStatusActive, aircraft.Status)
		assert.NotNil(suite.T(), aircraft.WingID)
		assert.NotNil(suite.T(), aircraft.FuselageID)
		assert.NotNil(suite.T(), aircraft.TailID)
		assert.NotNil(suite.T(), aircraft.AvionicsID)
		return nil
	})

	resp, err := suite.assemblyService.Assemble(&service.AssembleRequest{
		TeamID:          suite.team.ID,
		AircraftModelID: suite.model.ID,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), "TB2-0001", resp.SerialNumber)
	assert.Equal(suite.T(), models.AircraftStatusActive, resp.Status)
	assert.Len(suite.T(), resp.Slots, 4)
}

func (suite *AssemblyServiceTestSuite) TestAssemble_InsufficientPartsReportsAllMissing() {
	// Tail and avionics pools are empty; no part may change status
	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil)
	suite.mockTeamRepo.EXPECT().MemberCount(suite.team.ID).Return(int64(1), nil)
	suite.mockAircraftModelRepo.EXPECT().GetByID(suite.model.ID).Return(suite.model, nil)
	suite.mockPartTypeRepo.EXPECT().GetAll().Return(suite.partTypes, nil)

	for i := range suite.partTypes {
		switch suite.partTypes[i].Category {
		case models.PartCategoryTail, models.PartCategoryAvionics:
			suite.mockPartRepo.EXPECT().FindOldestAvailable(suite.partTypes[i].ID, suite.model.ID).Return(nil, nil)
		default:
			suite.mockPartRepo.EXPECT().FindOldestAvailable(suite.partTypes[i].ID, suite.model.ID).Return(suite.partFor(&suite.partTypes[i]), nil)
		}
	}

	resp, err := suite.assemblyService.Assemble(&service.AssembleRequest{
		TeamID:          suite.team.ID,
		AircraftModelID: suite.model.ID,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsInsufficientParts(err))

	var insufficientErr *apperrors.InsufficientPartsError
	assert.ErrorAs(suite.T(), err, &insufficientErr)
	assert.ElementsMatch(suite.T(), []string{"TAIL", "AVIONICS"}, insufficientErr.Missing)
}

func (suite *AssemblyServiceTestSuite) TestAssemble_NonAssemblyTeamRejected() {
	wingTeam := &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "wing-alpha",
		Type:      models.TeamTypeWing,
	}
	suite.mockTeamRepo.EXPECT().GetByID(wingTeam.ID).Return(wingTeam, nil)

	resp, err := suite.assemblyService.Assemble(&service.AssembleRequest{
		TeamID:          wingTeam.ID,
		AircraftModelID: suite.model.ID,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotAnAssemblyTeam)
}

func (suite *AssemblyServiceTestSuite) TestAssemble_EmptyTeamRejected() {
	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil)
	suite.mockTeamRepo.EXPECT().MemberCount(suite.team.ID).Return(int64(0), nil)

	resp, err := suite.assemblyService.Assemble(&service.AssembleRequest{
		TeamID:          suite.team.ID,
		AircraftModelID: suite.model.ID,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyTeam)
}

func (suite *AssemblyServiceTestSuite) TestAssemble_WorkOrderModelMismatch() {
	otherModelID := uuid.New()
	order := &models.WorkOrder{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AircraftModelID: otherModelID,
		Quantity:        1,
		Status:          models.WorkOrderStatusAssigned,
	}
	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil)
	suite.mockTeamRepo.EXPECT().MemberCount(suite.team.ID).Return(int64(1), nil)
	suite.mockAircraftModelRepo.EXPECT().GetByID(suite.model.ID).Return(suite.model, nil)
	suite.mockWorkOrderRepo.EXPECT().GetByID(order.ID).Return(order, nil)

	resp, err := suite.assemblyService.Assemble(&service.AssembleRequest{
		TeamID:          suite.team.ID,
		AircraftModelID: suite.model.ID,
		WorkOrderID:     &order.ID,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderModelMismatch)
}

func (suite *AssemblyServiceTestSuite) TestAssemble_CancelledWorkOrderRejected() {
	order := &models.WorkOrder{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AircraftModelID: suite.model.ID,
		Quantity:        1,
		Status:          models.WorkOrderStatusCancelled,
	}
	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil)
	suite.mockTeamRepo.EXPECT().MemberCount(suite.team.ID).Return(int64(1), nil)
	suite.mockAircraftModelRepo.EXPECT().GetByID(suite.model.ID).Return(suite.model, nil)
	suite.mockWorkOrderRepo.EXPECT().GetByID(order.ID).Return(order, nil)

	resp, err := suite.assemblyService.Assemble(&service.AssembleRequest{
		TeamID:          suite.team.ID,
		AircraftModelID: suite.model.ID,
		WorkOrderID:     &order.ID,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderNotAssignable)
}

func (suite *AssemblyServiceTestSuite) TestAssemble_WorkOrderRecomputedAfterBuild() {
	order := &models.WorkOrder{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AircraftModelID: suite.model.ID,
		Quantity:        1,
		Status:          models.WorkOrderStatusAssigned,
		AssignedTeamID:  &suite.team.ID,
	}
	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil)
	suite.mockTeamRepo.EXPECT().MemberCount(suite.team.ID).Return(int64(1), nil)
	suite.mockAircraftModelRepo.EXPECT().GetByID(suite.model.ID).Return(suite.model, nil)
	suite.mockWorkOrderRepo.EXPECT().GetByID(order.ID).Return(order, nil).Times(2)
	suite.mockPartTypeRepo.EXPECT().GetAll().Return(suite.partTypes, nil)

	for i := range suite.partTypes {
		part := suite.partFor(&suite.partTypes[i])
		suite.mockPartRepo.EXPECT().FindOldestAvailable(suite.partTypes[i].ID, suite.model.ID).Return(part, nil)
		suite.mockPartRepo.EXPECT().UpdateStatus(part.ID, models.PartStatusUsed).Return(nil)
	}

	suite.mockAircraftRepo.EXPECT().MaxSerialSuffix("TB2-").Return(0, nil)
	suite.mockAircraftRepo.EXPECT().Create(gomock.Any()).Return(nil)

	// The single aircraft satisfies the quantity, completing the order
	suite.mockAircraftRepo.EXPECT().CountByWorkOrder(order.ID).Return(int64(1), nil)
	suite.mockWorkOrderRepo.EXPECT().UpdateStatus(order.ID, models.WorkOrderStatusCompleted).Return(nil)

	resp, err := suite.assemblyService.Assemble(&service.AssembleRequest{
		TeamID:          suite.team.ID,
		AircraftModelID: suite.model.ID,
		WorkOrderID:     &order.ID,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), &order.ID, resp.WorkOrderID)
}

func TestAssemblyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssemblyServiceTestSuite))
}
