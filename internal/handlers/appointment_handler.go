package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/httpresp"
	"github.com/navalha-app/booking-api/internal/middleware"
	ucAppointment "github.com/navalha-app/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listUC      *ucAppointment.List
	setStatusUC *ucAppointment.SetStatus
}

func NewAppointmentHandler(
	listUC *ucAppointment.List,
	setStatusUC *ucAppointment.SetStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		listUC:      listUC,
		setStatusUC: setStatusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST (privada)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.listUC.Execute(
		c.Request.Context(),
		ucAppointment.ListInput{
			Date:     c.Query("date"),
			BarberID: c.Query("barber_id"),
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, apps)
}

// ======================================================
// SET STATUS (privada)
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(string)
	appointmentID := c.Param("id")

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.setStatusUC.Execute(
		c.Request.Context(),
		barberID,
		appointmentID,
		req.Status,
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}
