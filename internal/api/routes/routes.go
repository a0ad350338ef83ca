package routes

import (
	"aircraft-production-backend/internal/api/handlers"
	"aircraft-production-backend/internal/api/middleware"
	"aircraft-production-backend/internal/auth"
	"aircraft-production-backend/internal/config"
	"aircraft-production-backend/internal/logger"
	"aircraft-production-backend/internal/repository"
	"aircraft-production-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	appLogger := logger.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(appLogger))
	router.Use(middleware.Recovery(appLogger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	personnelRepo := repository.NewPersonnelRepository(db)
	partTypeRepo := repository.NewPartTypeRepository(db)
	aircraftModelRepo := repository.NewAircraftModelRepository(db)
	partRepo := repository.NewPartRepository(db)
	aircraftRepo := repository.NewAircraftRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)

	// Initialize services
	serialAllocator := service.NewSerialAllocator(partRepo, aircraftRepo)
	teamService := service.NewTeamService(teamRepo, validator)
	personnelService := service.NewPersonnelService(personnelRepo, teamRepo, validator)
	partService := service.NewPartService(partRepo, partTypeRepo, aircraftModelRepo, teamRepo, personnelRepo, serialAllocator, validator)
	workOrderService := service.NewWorkOrderService(workOrderRepo, aircraftRepo, aircraftModelRepo, teamRepo, personnelRepo, validator)
	aircraftService := service.NewAircraftService(aircraftRepo, partRepo, workOrderRepo, serialAllocator, validator)
	assemblyService := service.NewAssemblyService(partRepo, partTypeRepo, aircraftModelRepo, teamRepo, personnelRepo, aircraftService, workOrderService, validator)
	stockService := service.NewStockService(partRepo, aircraftRepo, partTypeRepo, aircraftModelRepo)
	productionService := service.NewProductionService(db, partService, assemblyService, aircraftService, workOrderService, appLogger)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret, personnelRepo)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService)
	personnelHandler := handlers.NewPersonnelHandler(personnelService)
	partHandler := handlers.NewPartHandler(productionService, partService)
	aircraftHandler := handlers.NewAircraftHandler(productionService, aircraftService)
	workOrderHandler := handlers.NewWorkOrderHandler(productionService, workOrderService)
	referenceHandler := handlers.NewReferenceHandler(partTypeRepo, aircraftModelRepo)
	stockHandler := handlers.NewStockHandler(stockService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/token", authHandler.Token)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.Create)
			teams.GET("", teamHandler.List)
			teams.GET("/:id", teamHandler.Get)
			teams.PATCH("/:id", teamHandler.Update)
			teams.DELETE("/:id", teamHandler.Delete)
		}

		personnel := v1.Group("/personnel")
		{
			personnel.POST("", personnelHandler.Create)
			personnel.GET("", personnelHandler.List)
			personnel.GET("/:id", personnelHandler.Get)
			personnel.PATCH("/:id", personnelHandler.Update)
			personnel.DELETE("/:id", personnelHandler.Delete)
		}

		parts := v1.Group("/parts")
		{
			parts.POST("", partHandler.Produce)
			parts.GET("", partHandler.List)
			parts.GET("/:id", partHandler.Get)
			parts.DELETE("/:id", partHandler.Recycle)
		}

		aircraft := v1.Group("/aircraft")
		{
			aircraft.POST("/assemble", aircraftHandler.Assemble)
			aircraft.GET("", aircraftHandler.List)
			aircraft.GET("/:id", aircraftHandler.Get)
			aircraft.PATCH("/:id", aircraftHandler.Update)
			aircraft.DELETE("/:id", aircraftHandler.Recycle)
		}

		workOrders := v1.Group("/work-orders")
		{
			workOrders.POST("", workOrderHandler.Create)
			workOrders.GET("", workOrderHandler.List)
			workOrders.GET("/:id", workOrderHandler.Get)
			workOrders.PATCH("/:id", workOrderHandler.Update)
			workOrders.DELETE("/:id", workOrderHandler.Cancel)
		}

		v1.GET("/part-types", referenceHandler.PartTypes)
		v1.GET("/aircraft-models", referenceHandler.AircraftModels)
		v1.GET("/stock", stockHandler.Overview)
	}

	return router
}
