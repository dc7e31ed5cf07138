package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/navalha-app/booking-api/internal/audit"
	"github.com/navalha-app/booking-api/internal/cache"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/middleware"
	"github.com/navalha-app/booking-api/internal/models"
)

// ======================================================
// HANDLER — catálogo de serviços (ferramenta administrativa)
// ======================================================

type ServiceHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog
	audit   *audit.Dispatcher
}

func NewServiceHandler(
	db *gorm.DB,
	catalog *cache.Catalog,
	audit *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{
		db:      db,
		catalog: catalog,
		audit:   audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"min=0"`
}

type OfferingsRequest struct {
	ServiceIDs []string `json:"service_ids" binding:"required"`
}

// ======================================================
// CATALOG
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(string)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(string)
	serviceID := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", serviceID).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.DurationMin = req.DurationMin
	service.Price = req.Price

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusOK, service)
}

// ======================================================
// OFFERINGS — serviços oferecidos pelo barbeiro logado
// ======================================================

// SetOfferings troca o conjunto de serviços oferecidos. Cada id é
// conferido contra o catálogo antes de gravar; a tabela de junção
// não tem constraint dura, então a checagem é explícita aqui.
func (h *ServiceHandler) SetOfferings(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(string)

	var req OfferingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var services []models.Service
	if len(req.ServiceIDs) > 0 {
		if err := h.db.Find(&services, "id IN ?", req.ServiceIDs).Error; err != nil {
			httperr.Internal(c, "failed_to_load_services", "Erro ao validar serviços.")
			return
		}
		if len(services) != len(req.ServiceIDs) {
			httperr.BadRequest(c, "unknown_service", "Um ou mais serviços não existem.")
			return
		}
	}

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", barberID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	if err := h.db.Model(&barber).Association("Services").Replace(services); err != nil {
		httperr.Internal(c, "failed_to_set_offerings", "Erro ao salvar serviços oferecidos.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   "offerings_updated",
		Entity:   "barber",
		EntityID: &barberID,
		Metadata: req.ServiceIDs,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
