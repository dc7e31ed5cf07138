package dto

import "github.com/navalha-app/booking-api/internal/models"

// BarberDTO é a forma pública do barbeiro: sem hash de senha e com
// os serviços reduzidos aos ids oferecidos.
type BarberDTO struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Phone        string              `json:"phone"`
	Avatar       string              `json:"avatar,omitempty"`
	Services     []string            `json:"services"`
	WorkingHours models.WorkingHours `json:"working_hours"`
}

func NewBarberDTO(b models.Barber) BarberDTO {
	serviceIDs := make([]string, 0, len(b.Services))
	for _, s := range b.Services {
		serviceIDs = append(serviceIDs, s.ID)
	}

	return BarberDTO{
		ID:           b.ID,
		Name:         b.Name,
		Phone:        b.Phone,
		Avatar:       b.Avatar,
		Services:     serviceIDs,
		WorkingHours: b.WorkingHours,
	}
}
