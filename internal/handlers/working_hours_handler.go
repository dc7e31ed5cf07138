package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-app/booking-api/internal/audit"
	"github.com/navalha-app/booking-api/internal/cache"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/httpresp"
	"github.com/navalha-app/booking-api/internal/middleware"
	"github.com/navalha-app/booking-api/internal/models"
)

type WorkingHoursHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
	audit   *audit.Dispatcher
}

func NewWorkingHoursHandler(
	db *gorm.DB,
	catalog *cache.Catalog,
	audit *audit.Dispatcher,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{
		db:      db,
		catalog: catalog,
		audit:   audit,
	}
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(string)

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", barberID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	httpresp.OK(c, barber.WorkingHours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(string)

	var req models.WorkingHours
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := req.Validate(); err != nil {
		httperr.BadRequest(c, "invalid_working_hours", err.Error())
		return
	}

	if err := h.db.
		Model(&models.Barber{}).
		Where("id = ?", barberID).
		Update("working_hours", req).Error; err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar expediente.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   "working_hours_updated",
		Entity:   "barber",
		EntityID: &barberID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
