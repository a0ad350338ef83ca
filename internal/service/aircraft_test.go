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
	"gorm.io/gorm"
)

type AircraftServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockAircraftRepo  *mocks.MockAircraftRepositoryInterface
	mockPartRepo      *mocks.MockPartRepositoryInterface
	mockWorkOrderRepo *mocks.MockWorkOrderRepositoryInterface
	aircraftService   *service.AircraftService
	validator         *validator.Validate
}

func (suite *AircraftServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAircraftRepo = mocks.NewMockAircraftRepositoryInterface(suite.ctrl)
	suite.mockPartRepo = mocks.NewMockPartRepositoryInterface(suite.ctrl)
	suite.mockWorkOrderRepo = mocks.NewMockWorkOrderRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	serials := service.NewSerialAllocator(suite.mockPartRepo, suite.mockAircraftRepo)
	suite.aircraftService = service.NewAircraftService(
		suite.mockAircraftRepo,
		suite.mockPartRepo,
		suite.mockWorkOrderRepo,
		serials,
		suite.validator,
	)
}

func (suite *AircraftServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AircraftServiceTestSuite) assembledAircraft() *models.Aircraft {
	wingID := uuid.New()
	fuselageID := uuid.New()
	tailID := uuid.New()
	avionicsID := uuid.New()
	return &models.Aircraft{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AircraftModelID: uuid.New(),
		SerialNumber:    "TB2-0001",
		Status:          models.AircraftStatusActive,
		AssembledByID:   uuid.New(),
		WingID:          &wingID,
		FuselageID:      &fuselageID,
		TailID:          &tailID,
		AvionicsID:      &avionicsID,
	}
}

func (suite *AircraftServiceTestSuite) TestUpdate_StatusChange() {
	aircraft := suite.assembledAircraft()
	suite.mockAircraftRepo.EXPECT().GetByID(aircraft.ID).Return(aircraft, nil)
	suite.mockAircraftRepo.EXPECT().Update(aircraft).Return(nil)

	status := models.AircraftStatusMaintenance
	resp, affected, err := suite.aircraftService.Update(aircraft.ID, &service.UpdateAircraftRequest{Status: &status})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), affected)
	assert.Equal(suite.T(), models.AircraftStatusMaintenance, resp.Status)
}

func (suite *AircraftServiceTestSuite) TestUpdate_RecycledStatusRejected() {
	aircraft := suite.assembledAircraft()
	suite.mockAircraftRepo.EXPECT().GetByID(aircraft.ID).Return(aircraft, nil)

	status := models.AircraftStatusRecycled
	resp, affected, err := suite.aircraftService.Update(aircraft.ID, &service.UpdateAircraftRequest{Status: &status})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Empty(suite.T(), affected)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AircraftServiceTestSuite) TestUpdate_RecycledAircraftImmutable() {
	aircraft := suite.assembledAircraft()
	aircraft.Status = models.AircraftStatusRecycled
	suite.mockAircraftRepo.EXPECT().GetByID(aircraft.ID).Return(aircraft, nil)

	status := models.AircraftStatusActive
	resp, _, err := suite.aircraftService.Update(aircraft.ID, &service.UpdateAircraftRequest{Status: &status})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsState(err))
}

func (suite *AircraftServiceTestSuite) TestUpdate_DetachOrderReportsAffected() {
	aircraft := suite.assembledAircraft()
	orderID := uuid.New()
	aircraft.WorkOrderID = &orderID
	suite.mockAircraftRepo.EXPECT().GetByID(aircraft.ID).Return(aircraft, nil)
	suite.mockAircraftRepo.EXPECT().Update(aircraft).Return(nil)

	resp, affected, err := suite.aircraftService.Update(aircraft.ID, &service.UpdateAircraftRequest{DetachOrder: true})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uuid.UUID{orderID}, affected)
	assert.Nil(suite.T(), resp.WorkOrderID)
}

func (suite *AircraftServiceTestSuite) TestUpdate_ReattachReportsBothOrders() {
	aircraft := suite.assembledAircraft()
	oldOrderID := uuid.New()
	aircraft.WorkOrderID = &oldOrderID
	newOrder := &models.WorkOrder{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AircraftModelID: aircraft.AircraftModelID,
		Quantity:        1,
		Status:          models.WorkOrderStatusAssigned,
	}
	suite.mockAircraftRepo.EXPECT().GetByID(aircraft.ID).Return(aircraft, nil)
	suite.mockWorkOrderRepo.EXPECT().GetByID(newOrder.ID).Return(newOrder, nil)
	suite.mockAircraftRepo.EXPECT().Update(aircraft).Return(nil)

	resp, affected, err := suite.aircraftService.Update(aircraft.ID, &service.UpdateAircraftRequest{WorkOrderID: &newOrder.ID})

	assert.NoError(suite.T(), err)
	assert.ElementsMatch(suite.T(), []uuid.UUID{oldOrderID, newOrder.ID}, affected)
	assert.Equal(suite.T(), &newOrder.ID, resp.WorkOrderID)
}

func (suite *AircraftServiceTestSuite) TestRecycle_ReleasesPartsAndDetaches() {
	aircraft := suite.assembledAircraft()
	orderID := uuid.New()
	aircraft.WorkOrderID = &orderID
	slotIDs := []uuid.UUID{*aircraft.WingID, *aircraft.FuselageID, *aircraft.TailID, *aircraft.AvionicsID}

	suite.mockAircraftRepo.EXPECT().GetByID(aircraft.ID).Return(aircraft, nil)
	for _, partID := range slotIDs {
		suite.mockPartRepo.EXPECT().UpdateStatus(partID, models.PartStatusAvailable).Return(nil)
	}
	suite.mockAircraftRepo.EXPECT().Update(aircraft).DoAndReturn(func(a *models.Aircraft) error {
		assert.Equal(suite.T(), models.AircraftStatusRecycled, a.Status)
		assert.Nil(suite.T(), a.WorkOrderID)
		assert.Nil(suite.T(), a.WingID)
		assert.Nil(suite.T(), a.FuselageID)
		assert.Nil(suite.T(), a.TailID)
		assert.Nil(suite.T(), a.AvionicsID)
		return nil
	})

	resp, detached, err := suite.aircraftService.Recycle(aircraft.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AircraftStatusRecycled, resp.Status)
	assert.NotNil(suite.T(), detached)
	assert.Equal(suite.T(), orderID, *detached)
	assert.Empty(suite.T(), resp.Slots)
}

func (suite *AircraftServiceTestSuite) TestRecycle_AlreadyRecycledIsNoOp() {
	aircraft := suite.assembledAircraft()
	aircraft.Status = models.AircraftStatusRecycled
	aircraft.ClearSlots()
	// No part releases, no update
	suite.mockAircraftRepo.EXPECT().GetByID(aircraft.ID).Return(aircraft, nil)

	resp, detached, err := suite.aircraftService.Recycle(aircraft.ID)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), detached)
	assert.Equal(suite.T(), models.AircraftStatusRecycled, resp.Status)
}

func (suite *AircraftServiceTestSuite) TestRecycle_NotFound() {
	id := uuid.New()
	suite.mockAircraftRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, detached, err := suite.aircraftService.Recycle(id)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Nil(suite.T(), detached)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAircraftNotFound)
}

func (suite *AircraftServiceTestSuite) TestValidateAssignment_TerminalOrderRejected() {
	order := &models.WorkOrder{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AircraftModelID: uuid.New(),
		Status:          models.WorkOrderStatusCompleted,
	}
	suite.mockWorkOrderRepo.EXPECT().GetByID(order.ID).Return(order, nil)

	result, err := suite.aircraftService.ValidateAssignment(order.ID, order.AircraftModelID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderNotAssignable)
}

func TestAircraftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AircraftServiceTestSuite))
}
