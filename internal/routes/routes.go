package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/config"
	"github.com/BruksfildServices01/table-reservations/internal/handlers"
	"github.com/BruksfildServices01/table-reservations/internal/metrics"
	"github.com/BruksfildServices01/table-reservations/internal/middleware"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/validators"
)

type Dependencies struct {
	Config       *config.Config
	Location     *time.Location
	Now          func() time.Time
	Reservations ucReservation.UseCases
	AuditStore   audit.Store
	Metrics      *metrics.Metrics
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) error {

	if err := validators.Register(deps.Location, deps.Now); err != nil {
		return err
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.Tracing())
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}
	if deps.Config.CORSEnabled {
		r.Use(middleware.CORSMiddleware())
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	reservationHandler := handlers.NewReservationHandler(deps.Reservations, deps.Location)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditStore)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", handlers.Health)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		api.POST("/reservations/check-availability", reservationHandler.CheckAvailability)
		api.POST("/reservations", reservationHandler.Create)
		api.GET("/reservations", reservationHandler.List)
		api.GET("/reservations/:id", reservationHandler.Get)
		api.PUT("/reservations/:id", reservationHandler.Update)
		api.DELETE("/reservations/:id", reservationHandler.Delete)
		api.GET("/reservations/date/:date", reservationHandler.ListByDate)
		api.GET("/reservations/status/:status", reservationHandler.ListByStatus)
		api.PATCH("/reservations/:id/status", reservationHandler.UpdateStatus)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := api.Group("")
	admin.Use(middleware.AdminAuth(deps.Config.JWTSecret))
	{
		admin.GET("/audit-logs", auditLogsHandler.List)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return nil
}
