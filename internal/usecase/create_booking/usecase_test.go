package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	businessRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/business"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// memoryStore хранилище в памяти, достаточное для обоих use case
type memoryStore struct {
	mu        sync.Mutex
	business  *domain.Business
	services  map[uuid.UUID]*domain.Service
	employees map[uuid.UUID]*domain.Employee
	bookings  []*domain.Booking
}

func (s *memoryStore) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	s.bookings = append(s.bookings, b)
	return b, nil
}

func (s *memoryStore) GetBookedSlots(_ context.Context, employeeID uuid.UUID, date time.Time) ([]types.TimeOfDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []types.TimeOfDay
	for _, b := range s.bookings {
		if b.EmployeeID == employeeID && b.BookingDate.Equal(date) && b.IsActive() {
			out = append(out, b.BookingTime)
		}
	}
	return out, nil
}

func (s *memoryStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Business, error) {
	if s.business == nil || s.business.ID != id {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return s.business, nil
}

func (s *memoryStore) GetWeeklySchedule(_ context.Context, id uuid.UUID) (domain.WeeklySchedule, error) {
	b, err := s.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	return b.WorkingHours, nil
}

type serviceLookup struct{ s *memoryStore }

func (l serviceLookup) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, ok := l.s.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return svc, nil
}

type employeeLookup struct{ s *memoryStore }

func (l employeeLookup) GetByID(_ context.Context, id uuid.UUID) (*domain.Employee, error) {
	e, ok := l.s.employees[id]
	if !ok {
		return nil, catalogRepo.ErrEmployeeNotFound
	}
	return e, nil
}

type fixture struct {
	store      *memoryStore
	uc         *UseCase
	businessID uuid.UUID
	serviceID  uuid.UUID
	employeeID uuid.UUID
}

func newFixture() *fixture {
	businessID, serviceID, employeeID := uuid.New(), uuid.New(), uuid.New()

	open := types.MustParseTimeOfDay("09:00")
	closeAt := types.MustParseTimeOfDay("11:00")
	hours := domain.WeeklySchedule{}
	for _, key := range domain.WeekdayKeys {
		hours[key] = domain.DaySchedule{Open: &open, Close: &closeAt}
	}

	store := &memoryStore{
		business: &domain.Business{ID: businessID, Name: "Fade Studio", WorkingHours: hours, IsActive: true},
		services: map[uuid.UUID]*domain.Service{
			serviceID: {ID: serviceID, BusinessID: businessID, Name: "Haircut", DurationMinutes: 60, IsActive: true},
		},
		employees: map[uuid.UUID]*domain.Employee{
			employeeID: {ID: employeeID, BusinessID: businessID, Name: "Maria", IsActive: true},
		},
	}

	return &fixture{
		store:      store,
		uc:         NewUseCase(store, store, serviceLookup{store}, employeeLookup{store}, logger.NewNop()),
		businessID: businessID,
		serviceID:  serviceID,
		employeeID: employeeID,
	}
}

func (f *fixture) request(at string) *Request {
	return &Request{
		BusinessID:    f.businessID,
		ServiceID:     f.serviceID,
		EmployeeID:    f.employeeID,
		CustomerName:  "Anna Petrova",
		CustomerEmail: "anna@example.com",
		CustomerPhone: "+7 900 123-45-67",
		Date:          time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC),
		Time:          types.MustParseTimeOfDay(at),
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), f.request("09:30"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "09:30", resp.BookingTime.String())
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, "Maria", resp.EmployeeName)
	assert.Equal(t, "Fade Studio", resp.BusinessName)
	require.Len(t, f.store.bookings, 1)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "short name", mutate: func(r *Request) { r.CustomerName = " A " }},
		{name: "bad email", mutate: func(r *Request) { r.CustomerEmail = "anna-at-example" }},
		{name: "email with display name", mutate: func(r *Request) { r.CustomerEmail = "Anna <anna@example.com>" }},
		{name: "short phone", mutate: func(r *Request) { r.CustomerPhone = "12345" }},
		{name: "no date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "time out of range", mutate: func(r *Request) { r.Time = types.TimeOfDay(24 * 60) }},
		{name: "no employee", mutate: func(r *Request) { r.EmployeeID = uuid.Nil }},
		{name: "long notes", mutate: func(r *Request) {
			long := make([]rune, domain.MaxNotesLength+1)
			for i := range long {
				long[i] = 'x'
			}
			r.Notes = ptr.Ptr(string(long))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request("09:00")
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, f.store.bookings)
}

func TestExecute_OwnershipChecks(t *testing.T) {
	f := newFixture()

	foreignService := uuid.New()
	f.store.services[foreignService] = &domain.Service{ID: foreignService, BusinessID: uuid.New(), IsActive: true}
	req := f.request("09:00")
	req.ServiceID = foreignService
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	req = f.request("09:00")
	req.EmployeeID = uuid.New()
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	req = f.request("09:00")
	req.BusinessID = uuid.New()
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	f.store.employees[f.employeeID].IsActive = false
	_, err = f.uc.Execute(context.Background(), f.request("09:00"))
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

// Два клиента читают слоты до записи, видят 10:00 свободным и оба записываются.
// Запись не блокирует слот, поэтому получается двойное бронирование
func TestExecute_NoWriteTimeConflictCheck(t *testing.T) {
	f := newFixture()
	slotsUC := getAvailableSlots.NewUseCase(f.store, employeeLookup{f.store}, f.store, nil, 30, logger.NewNop())
	slotsReq := &getAvailableSlots.Request{
		BusinessID: f.businessID,
		EmployeeID: f.employeeID,
		Date:       time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC),
	}

	snapshotA, err := slotsUC.Execute(context.Background(), slotsReq)
	require.NoError(t, err)
	snapshotB, err := slotsUC.Execute(context.Background(), slotsReq)
	require.NoError(t, err)
	assert.True(t, snapshotA.Slots[2].Available)
	assert.True(t, snapshotB.Slots[2].Available)
	require.Equal(t, "10:00", snapshotA.Slots[2].Time.String())

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), f.request("10:00"))
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Len(t, f.store.bookings, 2)

	after, err := slotsUC.Execute(context.Background(), slotsReq)
	require.NoError(t, err)
	assert.False(t, after.Slots[2].Available)
}

// Услуга длительностью 60 минут в 09:00 не блокирует слот 09:30
func TestExecute_ServiceDurationIsNotReserved(t *testing.T) {
	f := newFixture()
	slotsUC := getAvailableSlots.NewUseCase(f.store, employeeLookup{f.store}, f.store, nil, 30, logger.NewNop())

	_, err := f.uc.Execute(context.Background(), f.request("09:00"))
	require.NoError(t, err)

	resp, err := slotsUC.Execute(context.Background(), &getAvailableSlots.Request{
		BusinessID: f.businessID,
		EmployeeID: f.employeeID,
		Date:       time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.False(t, resp.Slots[0].Available)
	assert.True(t, resp.Slots[1].Available)
}
