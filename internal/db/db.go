package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/navalha-app/booking-api/internal/config"
	"github.com/navalha-app/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Barber{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Agendamentos cancelados não ocupam o horário, então o índice
	// único é parcial. É ele quem resolve a corrida entre processos;
	// sem ele não há garantia de slot único, então falha é fatal.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot
        ON appointments (barber_id, date, time)
        WHERE status <> 'cancelled'
    `).Error; err != nil {
		log.Fatalf("failed to create slot index: %v", err)
	}

	return db
}
