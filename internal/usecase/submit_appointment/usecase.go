package submit_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	draftRepo "github.com/m04kA/HMS-AppointmentService/internal/infra/storage/draft"
	hospitalClient "github.com/m04kA/HMS-AppointmentService/internal/integrations/hospitalapi"
)

// UseCase use case отправки формы записи к врачу.
//
// Перед отправкой множество доступных слотов пересчитывается по свежей
// занятости врача и выбранное время проверяется на членство еще раз: это
// закрывает окно между выбором времени в форме и нажатием кнопки отправки.
// Финальным арбитром остается бэкенд - он может отклонить запись с конфликтом.
type UseCase struct {
	draftRepo      DraftRepository
	hospitalClient HospitalAPIClient
	unavail        UnavailabilityProvider
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepository DraftRepository,
	client HospitalAPIClient,
	unavail UnavailabilityProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:      draftRepository,
		hospitalClient: client,
		unavail:        unavail,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case отправки формы записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitAppointment: draft=%s, user=%d", req.DraftID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем черновик и проверяем владельца
	d, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("SubmitAppointment: draft=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("SubmitAppointment: repository error for draft=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if d.UserID != req.UserID {
		uc.logger.Warn("SubmitAppointment: access denied for user=%d to draft=%s", req.UserID, req.DraftID)
		return nil, ErrAccessDenied
	}

	// 3. Проверяем полноту формы
	if err := validateDraftComplete(d); err != nil {
		uc.logger.Warn("SubmitAppointment: draft=%s incomplete: %v", req.DraftID, err)
		return nil, err
	}

	// 4. Финальная проверка доступности по свежим данным.
	// При недоступности HospitalAPI проверка выполняется по пустой занятости
	// (fail-open) - конфликт в этом случае поймает сам бэкенд
	blocked, err := uc.hospitalClient.GetDoctorUnavailabilityWithGracefulDegradation(ctx, *d.DoctorID)
	if err != nil {
		switch {
		case errors.Is(err, hospitalClient.ErrDoctorNotFound):
			uc.logger.Warn("SubmitAppointment: doctor id=%d not found", *d.DoctorID)
			return nil, ErrDoctorNotFound

		case errors.Is(err, hospitalClient.ErrServiceDegraded):
			uc.logger.Warn("SubmitAppointment: unavailability unknown for doctor=%d, relying on backend arbitration", *d.DoctorID)
			blocked = nil

		default:
			uc.logger.Error("SubmitAppointment: failed to get unavailability for doctor=%d: %v", *d.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to get unavailability: %v", ErrInternal, err)
		}
	}

	available := domain.AvailableSlots(*d.Date, d.DurationMinutes, blocked)
	if !domain.ContainsSlot(available, *d.Time) {
		// Выбор устарел: слот закрыла подгрузившаяся занятость или смена входов.
		// Сбрасываем только время, остальные поля формы сохраняются
		uc.logger.Warn("SubmitAppointment: draft=%s time=%s no longer available, clearing selection",
			req.DraftID, *d.Time)
		uc.clearTime(ctx, d)
		return nil, ErrTimeNotAvailable
	}

	// 5. Создаем запись через HospitalAPI
	startAt, err := d.Time.At(*d.Date)
	if err != nil {
		uc.logger.Error("SubmitAppointment: failed to build appointment datetime for draft=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to build appointment datetime: %v", ErrInternal, err)
	}

	created, err := uc.hospitalClient.CreateAppointment(ctx, &hospitalClient.CreateAppointmentRequest{
		DoctorID:            *d.DoctorID,
		PatientID:           d.UserID,
		AppointmentDateTime: startAt.Format(time.RFC3339),
		DurationMinutes:     d.DurationMinutes,
		Reason:              *d.Reason,
		Type:                string(*d.Type),
	})
	if err != nil {
		switch {
		case errors.Is(err, hospitalClient.ErrSlotConflict):
			// Слот заняли параллельно; форма не сбрасывается, только время
			uc.logger.Warn("SubmitAppointment: backend rejected draft=%s with slot conflict", req.DraftID)
			uc.clearTime(ctx, d)
			return nil, ErrSlotConflict

		case errors.Is(err, hospitalClient.ErrDoctorNotFound):
			uc.logger.Warn("SubmitAppointment: doctor id=%d not found on create", *d.DoctorID)
			return nil, ErrDoctorNotFound

		default:
			uc.logger.Error("SubmitAppointment: failed to create appointment for draft=%s: %v", req.DraftID, err)
			return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
	}

	// 6. Успешная отправка закрывает форму: черновик и загруженная занятость
	// врача больше не нужны
	if err := uc.draftRepo.Delete(ctx, d.ID); err != nil {
		// Запись уже создана; незакрытый черновик не повод отдавать ошибку
		uc.logger.Error("SubmitAppointment: failed to delete draft=%s after submission: %v", req.DraftID, err)
	}
	uc.unavail.Forget(d.ID)

	uc.logger.Info("SubmitAppointment: appointment id=%d created for draft=%s", created.ID, req.DraftID)

	createdAt, _ := time.Parse(time.RFC3339, created.CreatedAt)

	return &Response{
		Appointment: &domain.Appointment{
			ID:              created.ID,
			DoctorID:        created.DoctorID,
			PatientID:       created.PatientID,
			StartAt:         startAt,
			DurationMinutes: created.DurationMinutes,
			Reason:          created.Reason,
			Type:            domain.AppointmentType(created.Type),
			Status:          domain.AppointmentStatus(created.Status),
			CreatedAt:       createdAt,
		},
	}, nil
}

// clearTime сбрасывает выбранное время в черновике
func (uc *UseCase) clearTime(ctx context.Context, d *domain.AppointmentDraft) {
	d.ClearTime()
	d.UpdatedAt = uc.timeProvider.Now()
	if _, err := uc.draftRepo.Update(ctx, d); err != nil {
		uc.logger.Error("SubmitAppointment: failed to clear time for draft=%s: %v", d.ID, err)
	}
}
