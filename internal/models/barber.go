package models

import "time"

type Barber struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex;not null" json:"phone"`

	Avatar       string `gorm:"size:255" json:"avatar"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Mapa por dia da semana; dia ausente = folga
	WorkingHours WorkingHours `gorm:"type:jsonb" json:"working_hours"`

	Services []Service `gorm:"many2many:barber_services" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
