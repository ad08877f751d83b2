package hospitalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с HospitalAPI
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента HospitalAPI
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDoctorUnavailability получает интервалы занятости врача.
// Блоки с некорректными датами или нулевой длительностью пропускаются:
// они не могут описывать реальную занятость.
func (c *Client) GetDoctorUnavailability(ctx context.Context, doctorID int64) ([]domain.TimeRange, error) {
	url := fmt.Sprintf("%s/internal/doctors/%d/unavailability", c.baseURL, doctorID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid doctor ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrDoctorNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var blocks []UnavailabilityBlock
	if err := json.NewDecoder(resp.Body).Decode(&blocks); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	intervals := make([]domain.TimeRange, 0, len(blocks))
	for _, block := range blocks {
		interval, err := block.ToTimeRange()
		if err != nil {
			c.log.Warn("HospitalAPI: skipping malformed unavailability block for doctor=%d: %v", doctorID, err)
			continue
		}
		if !interval.IsValid() {
			c.log.Warn("HospitalAPI: skipping degenerate unavailability block for doctor=%d: start=%s end=%s",
				doctorID, block.StartDateTime, block.EndDateTime)
			continue
		}
		intervals = append(intervals, interval)
	}

	return intervals, nil
}

// GetDoctorUnavailabilityWithGracefulDegradation получает занятость врача с graceful degradation.
// При недоступности HospitalAPI возвращает ErrServiceDegraded: занятость неизвестна,
// но выбор времени не блокируется (бэкенд остается финальным арбитром при создании записи)
func (c *Client) GetDoctorUnavailabilityWithGracefulDegradation(ctx context.Context, doctorID int64) ([]domain.TimeRange, error) {
	c.log.Info("Fetching unavailability for doctor_id=%d", doctorID)

	intervals, err := c.GetDoctorUnavailability(ctx, doctorID)
	if err != nil {
		// Если это критичная бизнес-ошибка (врач не найден), пробрасываем её дальше
		if errors.Is(err, ErrDoctorNotFound) {
			c.log.Warn("Doctor id=%d not found in HospitalAPI", doctorID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		c.log.Error("HospitalAPI unavailable, applying graceful degradation for doctor_id=%d: %v", doctorID, err)
		return nil, fmt.Errorf("%w: doctor_id=%d, error=%v", ErrServiceDegraded, doctorID, err)
	}

	c.log.Info("Successfully fetched %d unavailability blocks for doctor_id=%d", len(intervals), doctorID)
	return intervals, nil
}

// CreateAppointment создает запись к врачу через HospitalAPI
func (c *Client) CreateAppointment(ctx context.Context, appointment *CreateAppointmentRequest) (*AppointmentResponse, error) {
	url := fmt.Sprintf("%s/internal/appointments", c.baseURL)

	payload, err := json.Marshal(appointment)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrDoctorNotFound
	case http.StatusConflict:
		// Слот заняли между локальной валидацией и обработкой на сервере
		return nil, ErrSlotConflict
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var created AppointmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &created, nil
}
