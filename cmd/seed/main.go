package main

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/navalha-app/booking-api/internal/config"
	dbpkg "github.com/navalha-app/booking-api/internal/db"
	"github.com/navalha-app/booking-api/internal/models"
)

// Popula o banco com o catálogo e a equipe de demonstração.
func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	services := []models.Service{
		{ID: uuid.NewString(), Name: "Corte de Cabelo", Description: "Corte tradicional ou moderno", DurationMin: 30, Price: 40},
		{ID: uuid.NewString(), Name: "Barba", Description: "Barba completa com toalha quente", DurationMin: 30, Price: 30},
		{ID: uuid.NewString(), Name: "Corte + Barba", Description: "Combo completo", DurationMin: 60, Price: 60},
		{ID: uuid.NewString(), Name: "Pezinho", Description: "Acabamento rápido", DurationMin: 30, Price: 15},
	}

	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			log.Fatalf("failed to seed service %q: %v", services[i].Name, err)
		}
	}

	weekHours := models.WorkingHours{
		"monday":    {Start: "09:00", End: "18:00", Breaks: []models.Break{{Start: "12:00", End: "13:00"}}},
		"tuesday":   {Start: "09:00", End: "18:00", Breaks: []models.Break{{Start: "12:00", End: "13:00"}}},
		"wednesday": {Start: "09:00", End: "18:00", Breaks: []models.Break{{Start: "12:00", End: "13:00"}}},
		"thursday":  {Start: "09:00", End: "18:00", Breaks: []models.Break{{Start: "12:00", End: "13:00"}}},
		"friday":    {Start: "09:00", End: "19:00", Breaks: []models.Break{{Start: "12:00", End: "13:00"}}},
		"saturday":  {Start: "08:00", End: "14:00"},
	}
	if err := weekHours.Validate(); err != nil {
		log.Fatalf("invalid seed working hours: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("trocar123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	barbers := []models.Barber{
		{
			ID:           uuid.NewString(),
			Name:         "Carlos Silva",
			Phone:        "11999990001",
			PasswordHash: string(hash),
			WorkingHours: weekHours,
			Services:     services,
		},
		{
			ID:           uuid.NewString(),
			Name:         "Roberto Lima",
			Phone:        "11999990002",
			PasswordHash: string(hash),
			WorkingHours: weekHours,
			Services:     services[:2],
		},
	}

	for i := range barbers {
		if err := db.Create(&barbers[i]).Error; err != nil {
			log.Fatalf("failed to seed barber %q: %v", barbers[i].Name, err)
		}
	}

	log.Printf("seeded %d services and %d barbers", len(services), len(barbers))
}
