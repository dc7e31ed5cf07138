package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Preload("Services").
		First(&barber, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	barberID string,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			barberID, date, string(domain.StatusCancelled),
		).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Booking (check-and-insert)
// --------------------------------------------------

// occupiedSlotQuery seleciona as linhas que ocupam o horário, com
// FOR UPDATE. O lock precisa recair sobre linhas, nunca sobre um
// agregado: Postgres rejeita SELECT count(*) ... FOR UPDATE.
func (r *AppointmentGormRepository) occupiedSlotQuery(
	tx *gorm.DB,
	barberID string,
	date string,
	clock string,
) *gorm.DB {
	return tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND date = ? AND time = ? AND status <> ?",
			barberID, date, clock, string(domain.StatusCancelled),
		)
}

// CreateIfSlotFree refaz a checagem de ocupação e insere na mesma
// transação, com lock de linha. O índice único parcial de
// (barber_id, date, time) cobre a janela entre processos que o lock
// não alcança; 23505 vira "slot_taken".
func (r *AppointmentGormRepository) CreateIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ids []string
		if err := r.occupiedSlotQuery(tx, ap.BarberID, ap.Date, ap.Time).
			Pluck("id", &ids).Error; err != nil {
			return err
		}

		if len(ids) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})

	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

// --------------------------------------------------
// Appointment (state change / listing)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", filter.StartDate, filter.EndDate)

	if filter.BarberID != "" {
		q = q.Where("barber_id = ?", filter.BarberID)
	}

	var apps []models.Appointment
	if err := q.
		Order("date ASC, time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
