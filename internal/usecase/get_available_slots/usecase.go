package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	hospitalClient "github.com/m04kA/HMS-AppointmentService/internal/integrations/hospitalapi"
)

// UseCase use case для получения доступных времен начала приёма
type UseCase struct {
	hospitalClient HospitalAPIClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client HospitalAPIClient, logger Logger) *UseCase {
	return &UseCase{
		hospitalClient: client,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Результат - детерминированная функция (каталог, дата, длительность, занятость
// врача); он пересчитывается при каждом вызове и нигде не кешируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: doctor=%d, date=%s, duration=%d",
		req.DoctorID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем занятость врача.
	// При недоступности HospitalAPI действуем fail-open: отсутствие данных о
	// занятости не означает отсутствия доступности, показываем полный каталог
	// с пометкой provisional
	provisional := false
	blocked, err := uc.hospitalClient.GetDoctorUnavailabilityWithGracefulDegradation(ctx, req.DoctorID)
	if err != nil {
		switch {
		case errors.Is(err, hospitalClient.ErrDoctorNotFound):
			uc.logger.Warn("GetAvailableSlots: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound

		case errors.Is(err, hospitalClient.ErrServiceDegraded):
			uc.logger.Warn("GetAvailableSlots: unavailability unknown for doctor=%d, responding provisionally", req.DoctorID)
			blocked = nil
			provisional = true

		default:
			uc.logger.Error("GetAvailableSlots: failed to get unavailability for doctor=%d: %v", req.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to get unavailability: %v", ErrInternal, err)
		}
	}

	// 4. Фильтруем каталог слотов по занятости
	slots := domain.AvailableSlots(req.Date, req.DurationMinutes, blocked)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for doctor=%d, date=%s",
		len(slots), domain.SlotCatalogSize(), req.DoctorID, req.Date.Format(domain.DateFormat))

	return &Response{
		DoctorID:        req.DoctorID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
		Provisional:     provisional,
	}, nil
}
