package unavailability

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// fakeClient отдаёт интервалы по врачу; канал gate позволяет задерживать
// ответы, чтобы воспроизводить гонки между запросами
type fakeClient struct {
	mu        sync.Mutex
	intervals map[int64][]domain.TimeRange
	errs      map[int64]error
	gates     map[int64]chan struct{}
	calls     []int64
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		intervals: make(map[int64][]domain.TimeRange),
		errs:      make(map[int64]error),
		gates:     make(map[int64]chan struct{}),
	}
}

func (c *fakeClient) GetDoctorUnavailability(ctx context.Context, doctorID int64) ([]domain.TimeRange, error) {
	c.mu.Lock()
	c.calls = append(c.calls, doctorID)
	gate := c.gates[doctorID]
	c.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.errs[doctorID]; err != nil {
		return nil, err
	}
	return c.intervals[doctorID], nil
}

func (c *fakeClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func blocksFor(start, end string) []domain.TimeRange {
	s, _ := time.Parse(time.RFC3339, "2025-03-10T"+start+":00Z")
	e, _ := time.Parse(time.RFC3339, "2025-03-10T"+end+":00Z")
	return []domain.TimeRange{{Start: s, End: e}}
}

func TestService_RefreshLoadsIntervals(t *testing.T) {
	client := newFakeClient()
	client.intervals[42] = blocksFor("10:00", "11:00")

	svc := NewService(client, time.Second, noopLogger{})

	svc.Refresh("draft-1", 42)
	svc.Wait()

	intervals, ok := svc.Get("draft-1", 42)
	require.True(t, ok)
	assert.Equal(t, blocksFor("10:00", "11:00"), intervals)
}

func TestService_GetBeforeLoadReturnsNotLoaded(t *testing.T) {
	client := newFakeClient()
	gate := make(chan struct{})
	client.gates[42] = gate

	svc := NewService(client, time.Second, noopLogger{})
	svc.Refresh("draft-1", 42)

	// Пока запрос в полёте, данных нет: доступность считается неизвестной
	_, ok := svc.Get("draft-1", 42)
	assert.False(t, ok)

	close(gate)
	svc.Wait()

	_, ok = svc.Get("draft-1", 42)
	assert.True(t, ok)
}

func TestService_StaleResponseDiscarded(t *testing.T) {
	client := newFakeClient()
	slowGate := make(chan struct{})
	client.gates[1] = slowGate
	client.intervals[1] = blocksFor("08:00", "09:00")
	client.intervals[2] = blocksFor("14:00", "15:00")

	svc := NewService(client, time.Second, noopLogger{})

	// Первый врач выбран, его запрос завис; пользователь успевает сменить врача
	svc.Refresh("draft-1", 1)
	svc.Refresh("draft-1", 2)

	// Ответ второго врача приходит первым
	assert.Eventually(t, func() bool {
		_, ok := svc.Get("draft-1", 2)
		return ok
	}, time.Second, 5*time.Millisecond)

	// Теперь доезжает ответ первого врача; он устарел и должен быть отброшен
	close(slowGate)
	svc.Wait()

	intervals, ok := svc.Get("draft-1", 2)
	require.True(t, ok)
	assert.Equal(t, blocksFor("14:00", "15:00"), intervals)

	// Данные первого врача не видны ни под каким ключом
	_, ok = svc.Get("draft-1", 1)
	assert.False(t, ok)
}

func TestService_GetForDifferentDoctorNotLoaded(t *testing.T) {
	client := newFakeClient()
	client.intervals[42] = blocksFor("10:00", "11:00")

	svc := NewService(client, time.Second, noopLogger{})
	svc.Refresh("draft-1", 42)
	svc.Wait()

	// Кеш относится к врачу 42, для другого врача данных нет
	_, ok := svc.Get("draft-1", 99)
	assert.False(t, ok)
}

func TestService_RefreshClearsPreviousData(t *testing.T) {
	client := newFakeClient()
	client.intervals[1] = blocksFor("08:00", "09:00")
	gate := make(chan struct{})

	svc := NewService(client, time.Second, noopLogger{})
	svc.Refresh("draft-1", 1)
	svc.Wait()

	_, ok := svc.Get("draft-1", 1)
	require.True(t, ok)

	// Смена врача немедленно сбрасывает прежние данные
	client.mu.Lock()
	client.gates[2] = gate
	client.mu.Unlock()
	svc.Refresh("draft-1", 2)

	_, ok = svc.Get("draft-1", 1)
	assert.False(t, ok)
	_, ok = svc.Get("draft-1", 2)
	assert.False(t, ok)

	close(gate)
	svc.Wait()
}

func TestService_FetchErrorLeavesNotLoaded(t *testing.T) {
	client := newFakeClient()
	client.errs[42] = context.DeadlineExceeded

	svc := NewService(client, time.Second, noopLogger{})
	svc.Refresh("draft-1", 42)
	svc.Wait()

	_, ok := svc.Get("draft-1", 42)
	assert.False(t, ok)
	assert.Equal(t, 1, client.callCount())
}

func TestService_Forget(t *testing.T) {
	client := newFakeClient()
	client.intervals[42] = blocksFor("10:00", "11:00")

	svc := NewService(client, time.Second, noopLogger{})
	svc.Refresh("draft-1", 42)
	svc.Wait()

	svc.Forget("draft-1")

	_, ok := svc.Get("draft-1", 42)
	assert.False(t, ok)
}

func TestService_DraftsIsolated(t *testing.T) {
	client := newFakeClient()
	client.intervals[1] = blocksFor("08:00", "09:00")
	client.intervals[2] = blocksFor("14:00", "15:00")

	svc := NewService(client, time.Second, noopLogger{})
	svc.Refresh("draft-a", 1)
	svc.Refresh("draft-b", 2)
	svc.Wait()

	a, ok := svc.Get("draft-a", 1)
	require.True(t, ok)
	assert.Equal(t, blocksFor("08:00", "09:00"), a)

	b, ok := svc.Get("draft-b", 2)
	require.True(t, ok)
	assert.Equal(t, blocksFor("14:00", "15:00"), b)
}
