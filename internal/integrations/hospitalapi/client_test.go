package hospitalapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, time.Second, noopLogger{}), srv
}

func TestGetDoctorUnavailability(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/doctors/42/unavailability", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"startDateTime": "2025-03-12T10:00:00Z", "endDateTime": "2025-03-12T11:00:00Z"},
			{"startDateTime": "2025-03-12T14:30:00Z", "endDateTime": "2025-03-12T15:00:00Z"}
		]`))
	})
	defer srv.Close()

	intervals, err := client.GetDoctorUnavailability(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, intervals, 2)
	assert.Equal(t, time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC), intervals[0].Start)
	assert.Equal(t, time.Date(2025, 3, 12, 11, 0, 0, 0, time.UTC), intervals[0].End)
}

func TestGetDoctorUnavailability_SkipsBadBlocks(t *testing.T) {
	// Некорректные и вырожденные блоки пропускаются, остальные остаются
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"startDateTime": "not-a-date", "endDateTime": "2025-03-12T11:00:00Z"},
			{"startDateTime": "2025-03-12T10:00:00Z", "endDateTime": "2025-03-12T10:00:00Z"},
			{"startDateTime": "2025-03-12T15:00:00Z", "endDateTime": "2025-03-12T14:00:00Z"},
			{"startDateTime": "2025-03-12T09:00:00Z", "endDateTime": "2025-03-12T09:30:00Z"}
		]`))
	})
	defer srv.Close()

	intervals, err := client.GetDoctorUnavailability(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, intervals, 1)
	assert.Equal(t, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC), intervals[0].Start)
}

func TestGetDoctorUnavailability_EmptyList(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	defer srv.Close()

	intervals, err := client.GetDoctorUnavailability(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, intervals)
}

func TestGetDoctorUnavailability_DoctorNotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.GetDoctorUnavailability(context.Background(), 42)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestGetDoctorUnavailabilityWithGracefulDegradation(t *testing.T) {
	t.Run("doctor not found passes through", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		defer srv.Close()

		_, err := client.GetDoctorUnavailabilityWithGracefulDegradation(context.Background(), 42)
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("server error degrades", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer srv.Close()

		_, err := client.GetDoctorUnavailabilityWithGracefulDegradation(context.Background(), 42)
		assert.ErrorIs(t, err, ErrServiceDegraded)
	})

	t.Run("unreachable server degrades", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // сервер уже остановлен

		client := NewClient(srv.URL, time.Second, noopLogger{})
		_, err := client.GetDoctorUnavailabilityWithGracefulDegradation(context.Background(), 42)
		assert.ErrorIs(t, err, ErrServiceDegraded)
	})

	t.Run("malformed body degrades", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		})
		defer srv.Close()

		_, err := client.GetDoctorUnavailabilityWithGracefulDegradation(context.Background(), 42)
		assert.ErrorIs(t, err, ErrServiceDegraded)
	})
}

func TestCreateAppointment(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/appointments", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"id": 1001,
			"doctorId": 42,
			"patientId": 7,
			"appointmentDateTime": "2025-03-12T10:00:00Z",
			"durationMinutes": 30,
			"reason": "checkup",
			"type": "consultation",
			"status": "scheduled"
		}`))
	})
	defer srv.Close()

	created, err := client.CreateAppointment(context.Background(), &CreateAppointmentRequest{
		DoctorID:            42,
		PatientID:           7,
		AppointmentDateTime: "2025-03-12T10:00:00Z",
		DurationMinutes:     30,
		Reason:              "checkup",
		Type:                "consultation",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1001), created.ID)
	assert.Equal(t, "scheduled", created.Status)
}

func TestCreateAppointment_Conflict(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	defer srv.Close()

	_, err := client.CreateAppointment(context.Background(), &CreateAppointmentRequest{DoctorID: 42})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCreateAppointment_DoctorNotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.CreateAppointment(context.Background(), &CreateAppointmentRequest{DoctorID: 42})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestCreateAppointment_UnexpectedStatus(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	defer srv.Close()

	_, err := client.CreateAppointment(context.Background(), &CreateAppointmentRequest{DoctorID: 42})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
