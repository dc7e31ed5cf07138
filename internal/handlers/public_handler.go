package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-app/booking-api/internal/cache"
	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/dto"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/httpresp"
	"github.com/navalha-app/booking-api/internal/models"
	ucAppointment "github.com/navalha-app/booking-api/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db      *gorm.DB
	catalog *cache.Catalog

	getSlotsUC *ucAppointment.GetSlots
	createUC   *ucAppointment.Create
}

func NewPublicHandler(
	db *gorm.DB,
	catalog *cache.Catalog,
	getSlotsUC *ucAppointment.GetSlots,
	createUC *ucAppointment.Create,
) *PublicHandler {
	return &PublicHandler{
		db:         db,
		catalog:    catalog,
		getSlotsUC: getSlotsUC,
		createUC:   createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	BarberID    string `json:"barber_id" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()

	if services, ok := h.catalog.GetServices(ctx); ok {
		httpresp.List(c, services)
		return
	}

	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	h.catalog.SetServices(ctx, services)
	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// BARBERS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	ctx := c.Request.Context()

	barbers, ok := h.catalog.GetBarbers(ctx)
	if !ok {
		if err := h.db.
			Preload("Services").
			Order("name ASC").
			Find(&barbers).Error; err != nil {
			httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
			return
		}
		h.catalog.SetBarbers(ctx, barbers)
	}

	out := make([]dto.BarberDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, dto.NewBarberDTO(b))
	}

	httpresp.List(c, out)
}

////////////////////////////////////////////////////////
// SLOTS (grade completa do dia)
////////////////////////////////////////////////////////

func (h *PublicHandler) GetSlots(c *gin.Context) {
	barberID := c.Query("barber_id")
	date := c.Query("date")

	if barberID == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "barber_id e date são obrigatórios.")
		return
	}

	duration := domain.GridStepMinutes
	if raw := c.Query("duration"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
			return
		}
		duration = v
	}

	slots, err := h.getSlotsUC.Execute(
		c.Request.Context(),
		ucAppointment.GetSlotsInput{
			BarberID:    barberID,
			Date:        date,
			DurationMin: duration,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		case httperr.IsBusiness(err, "invalid_duration"):
			httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
		default:
			httperr.Internal(c, "slots_failed", "Erro ao calcular horários.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateInput{
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			BarberID:    req.BarberID,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func mapCreateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "Este horário não está mais disponível.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
	case httperr.IsBusiness(err, "time_off_grid"):
		httperr.BadRequest(c, "time_off_grid", "Horário fora da grade de 30 minutos.")
	case httperr.IsBusiness(err, "invalid_duration"):
		httperr.BadRequest(c, "invalid_duration", "Serviço com duração inválida.")
	case httperr.IsBusiness(err, "missing_client_name"):
		httperr.BadRequest(c, "missing_client_name", "Nome do cliente obrigatório.")
	case httperr.IsBusiness(err, "missing_client_phone"):
		httperr.BadRequest(c, "missing_client_phone", "Telefone do cliente obrigatório.")
	default:
		httperr.Internal(c, "appointment_failed", "Erro ao criar agendamento.")
	}
}
