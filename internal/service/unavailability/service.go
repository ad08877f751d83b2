package unavailability

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// entry загруженные интервалы занятости одного врача
type entry struct {
	doctorID  int64
	intervals []domain.TimeRange
	fetchedAt time.Time
}

// Service загружает интервалы занятости врачей из HospitalAPI для черновиков формы.
//
// Ключом кеша и запроса служит пара (черновик, врач). Guard от гонки: для каждого
// черновика хранится только последний запрошенный врач; результат запроса,
// завершившегося после смены врача в форме, отбрасывается и в кеш не попадает.
// Отдельного механизма отмены нет - устаревший запрос просто доживает до конца
// и его ответ игнорируется.
type Service struct {
	client       HospitalAPIClient
	fetchTimeout time.Duration
	logger       Logger

	mu        sync.Mutex
	requested map[string]int64  // последний запрошенный врач по черновику
	cache     map[string]*entry // загруженные интервалы по черновику
	inflight  sync.WaitGroup    // для детерминированного ожидания в тестах
}

// NewService создает новый экземпляр сервиса занятости
func NewService(client HospitalAPIClient, fetchTimeout time.Duration, logger Logger) *Service {
	return &Service{
		client:       client,
		fetchTimeout: fetchTimeout,
		logger:       logger,
		requested:    make(map[string]int64),
		cache:        make(map[string]*entry),
	}
}

// Refresh запускает асинхронную загрузку занятости врача для черновика.
// Прежние данные сбрасываются сразу: они относятся к другому врачу, и пока
// свежие не загружены, доступность считается неизвестной (fail-open).
func (s *Service) Refresh(draftID string, doctorID int64) {
	s.mu.Lock()
	s.requested[draftID] = doctorID
	delete(s.cache, draftID)
	s.mu.Unlock()

	s.inflight.Add(1)
	go s.fetch(draftID, doctorID)
}

func (s *Service) fetch(draftID string, doctorID int64) {
	defer s.inflight.Done()

	ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
	defer cancel()

	intervals, err := s.client.GetDoctorUnavailability(ctx, doctorID)
	if err != nil {
		// Отсутствие данных не блокирует выбор времени; бэкенд остается
		// финальным арбитром при создании записи
		s.logger.Warn("Unavailability: fetch failed for doctor=%d, draft=%s: %v", doctorID, draftID, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Guard от гонки: если врач в форме уже сменился, результат устарел
	if current, ok := s.requested[draftID]; !ok || current != doctorID {
		s.logger.Info("Unavailability: discarding stale response for doctor=%d, draft=%s", doctorID, draftID)
		return
	}

	s.cache[draftID] = &entry{
		doctorID:  doctorID,
		intervals: intervals,
		fetchedAt: time.Now(),
	}
	s.logger.Info("Unavailability: loaded %d blocks for doctor=%d, draft=%s", len(intervals), doctorID, draftID)
}

// Get возвращает загруженные интервалы занятости врача для черновика.
// Второе значение false, пока данные не загружены или относятся к другому врачу.
func (s *Service) Get(draftID string, doctorID int64) ([]domain.TimeRange, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.cache[draftID]
	if !ok || e.doctorID != doctorID {
		return nil, false
	}

	return e.intervals, true
}

// Forget очищает состояние черновика (закрытие формы)
func (s *Service) Forget(draftID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.requested, draftID)
	delete(s.cache, draftID)
}

// Wait блокируется до завершения всех запущенных загрузок
func (s *Service) Wait() {
	s.inflight.Wait()
}
