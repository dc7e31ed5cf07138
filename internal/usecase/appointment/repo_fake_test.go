package appointment

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
)

var errNotFound = gorm.ErrRecordNotFound

// fakeRepo serializa CreateIfSlotFree com mutex, imitando a garantia
// transacional do Postgres. failWith, quando setado, faz toda leitura
// falhar como se o banco estivesse fora do ar.
type fakeRepo struct {
	mu sync.Mutex

	failWith error

	barbers      map[string]*models.Barber
	services     map[string]*models.Service
	appointments map[string]*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:      map[string]*models.Barber{},
		services:     map[string]*models.Service{},
		appointments: map[string]*models.Appointment{},
	}
}

func (f *fakeRepo) GetService(_ context.Context, id string) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if s, ok := f.services[id]; ok {
		out := *s
		return &out, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if b, ok := f.barbers[id]; ok {
		out := *b
		return &out, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListBookedTimes(_ context.Context, barberID, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var times []string
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Date == date && ap.Status != string(domain.StatusCancelled) {
			times = append(times, ap.Time)
		}
	}
	sort.Strings(times)
	return times, nil
}

func (f *fakeRepo) CreateIfSlotFree(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, other := range f.appointments {
		if other.BarberID == ap.BarberID &&
			other.Date == ap.Date &&
			other.Time == ap.Time &&
			other.Status != string(domain.StatusCancelled) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if ap, ok := f.appointments[id]; ok {
		out := *ap
		return &out, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.appointments[ap.ID]; !ok {
		return errNotFound
	}
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Date < filter.StartDate || ap.Date > filter.EndDate {
			continue
		}
		if filter.BarberID != "" && ap.BarberID != filter.BarberID {
			continue
		}
		out = append(out, *ap)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// seed helpers
// --------------------------------------------------

func (f *fakeRepo) addBarber(id string, wh models.WorkingHours) *models.Barber {
	b := &models.Barber{ID: id, Name: "Barber " + id, Phone: "119999" + id, WorkingHours: wh}
	f.barbers[id] = b
	return b
}

func (f *fakeRepo) addService(id string, durationMin int) *models.Service {
	s := &models.Service{ID: id, Name: "Service " + id, DurationMin: durationMin, Price: 40}
	f.services[id] = s
	return s
}
