package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-app/booking-api/internal/audit"
	"github.com/navalha-app/booking-api/internal/cache"
	"github.com/navalha-app/booking-api/internal/config"
	"github.com/navalha-app/booking-api/internal/handlers"
	infraRepo "github.com/navalha-app/booking-api/internal/infra/repository"
	"github.com/navalha-app/booking-api/internal/infra/storage"
	"github.com/navalha-app/booking-api/internal/middleware"
	ucAppointment "github.com/navalha-app/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	catalog := cache.NewCatalog(cache.NewRedis(cfg))
	uploader := storage.NewS3Uploader(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	getSlotsUC := ucAppointment.NewGetSlots(appointmentRepo)

	createUC := ucAppointment.NewCreate(
		appointmentRepo,
		auditDispatcher,
	)

	setStatusUC := ucAppointment.NewSetStatus(
		appointmentRepo,
		auditDispatcher,
	)

	listUC := ucAppointment.NewList(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(
		db,
		catalog,
		getSlotsUC,
		createUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		listUC,
		setStatusUC,
	)

	workingHoursHandler := handlers.NewWorkingHoursHandler(db, catalog, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, catalog, auditDispatcher)
	avatarHandler := handlers.NewAvatarHandler(db, uploader, catalog, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/barbers", publicHandler.ListBarbers)
		api.GET("/slots", publicHandler.GetSlots)
		api.POST("/appointments", publicHandler.CreateAppointment)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)

			secured.GET("/working-hours", workingHoursHandler.Get)
			secured.PUT("/working-hours", workingHoursHandler.Update)

			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.PUT("/service-offerings", serviceHandler.SetOfferings)

			secured.POST("/avatar", avatarHandler.Upload)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
