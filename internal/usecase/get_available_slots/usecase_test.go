package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	hospitalClient "github.com/m04kA/HMS-AppointmentService/internal/integrations/hospitalapi"
	"github.com/m04kA/HMS-AppointmentService/pkg/types"
)

var (
	now      = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	reqDate  = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	noLogger = noopLogger{}
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeHospitalClient struct {
	blocked []domain.TimeRange
	err     error
	calls   int
}

func (c *fakeHospitalClient) GetDoctorUnavailabilityWithGracefulDegradation(ctx context.Context, doctorID int64) ([]domain.TimeRange, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.blocked, nil
}

func newTestUseCase(client *fakeHospitalClient) *UseCase {
	uc := NewUseCase(client, noLogger)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func blockOn(t *testing.T, start, end string) domain.TimeRange {
	t.Helper()
	s, err := time.Parse(time.RFC3339, "2025-03-12T"+start+":00Z")
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, "2025-03-12T"+end+":00Z")
	require.NoError(t, err)
	return domain.TimeRange{Start: s, End: e}
}

func TestExecute_FiltersBlockedSlots(t *testing.T) {
	client := &fakeHospitalClient{
		blocked: []domain.TimeRange{blockOn(t, "10:00", "11:00")},
	}
	uc := newTestUseCase(client)

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID:        42,
		Date:            reqDate,
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	assert.False(t, resp.Provisional)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:30"))
	assert.Contains(t, resp.Slots, types.TimeString("09:30"))
	assert.Contains(t, resp.Slots, types.TimeString("11:00"))
}

func TestExecute_NoBlocksReturnsFullCatalog(t *testing.T) {
	uc := newTestUseCase(&fakeHospitalClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID:        42,
		Date:            reqDate,
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotCatalog(), resp.Slots)
}

func TestExecute_DegradedServiceFailsOpen(t *testing.T) {
	// HospitalAPI недоступен: показываем полный каталог с пометкой provisional
	client := &fakeHospitalClient{err: hospitalClient.ErrServiceDegraded}
	uc := newTestUseCase(client)

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID:        42,
		Date:            reqDate,
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	assert.True(t, resp.Provisional)
	assert.Equal(t, domain.SlotCatalog(), resp.Slots)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	client := &fakeHospitalClient{err: hospitalClient.ErrDoctorNotFound}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		DoctorID:        42,
		Date:            reqDate,
		DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_PastDateRejected(t *testing.T) {
	client := &fakeHospitalClient{}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		DoctorID:        42,
		Date:            now.AddDate(0, 0, -1),
		DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Zero(t, client.calls)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{name: "non-positive doctor", req: Request{DoctorID: 0, Date: reqDate, DurationMinutes: 30}},
		{name: "zero date", req: Request{DoctorID: 42, DurationMinutes: 30}},
		{name: "zero duration", req: Request{DoctorID: 42, Date: reqDate, DurationMinutes: 0}},
		{name: "duration too long", req: Request{DoctorID: 42, Date: reqDate, DurationMinutes: 485}},
		{name: "duration off step", req: Request{DoctorID: 42, Date: reqDate, DurationMinutes: 31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeHospitalClient{}
			uc := newTestUseCase(client)

			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, client.calls)
		})
	}
}
