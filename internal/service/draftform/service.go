package draftform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	draftRepo "github.com/m04kA/HMS-AppointmentService/internal/infra/storage/draft"
	"github.com/m04kA/HMS-AppointmentService/internal/service/draftform/models"
	"github.com/m04kA/HMS-AppointmentService/pkg/types"
)

// Service сервис формы записи к врачу.
// Держит черновики в репозитории и применяет к ним чистые переходы из
// reducer.go; множество доступных слотов пересчитывается при каждом
// обращении из (каталог, дата, длительность, занятость врача) и нигде
// не сохраняется.
type Service struct {
	repo         DraftRepository
	unavail      UnavailabilityProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса формы записи
func NewService(
	repo DraftRepository,
	unavail UnavailabilityProvider,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		unavail:      unavail,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CreateDraft открывает новую форму записи с пустым черновиком
func (s *Service) CreateDraft(ctx context.Context, userID int64) (*models.DraftState, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	d := &domain.AppointmentDraft{
		ID:              uuid.NewString(),
		UserID:          userID,
		DurationMinutes: domain.DefaultConsultationMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, d)
	if err != nil {
		s.logger.Error("CreateDraft: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: CreateDraft - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateDraft: draft=%s created for user=%d", created.ID, userID)
	return s.state(created), nil
}

// GetDraft возвращает текущее состояние формы
func (s *Service) GetDraft(ctx context.Context, draftID string, userID int64) (*models.DraftState, error) {
	d, err := s.load(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}
	return s.state(d), nil
}

// SelectDoctor выбирает врача и запускает фоновую загрузку его занятости.
// Ранее выбранные дата и время сбрасываются.
func (s *Service) SelectDoctor(ctx context.Context, draftID string, userID int64, doctorID int64) (*models.DraftState, error) {
	if err := validateDoctorID(doctorID); err != nil {
		return nil, err
	}

	d, err := s.load(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}

	next := applyDoctorSelection(*d, doctorID)
	saved, err := s.save(ctx, &next)
	if err != nil {
		return nil, err
	}

	// Загрузка занятости идет в фоне; до её завершения доступность
	// показывается оптимистично (provisional)
	s.unavail.Refresh(draftID, doctorID)

	s.logger.Info("SelectDoctor: draft=%s doctor=%d selected, unavailability fetch started", draftID, doctorID)
	return s.state(saved), nil
}

// SelectDate выбирает дату приёма. Требует выбранного врача; сбрасывает время
func (s *Service) SelectDate(ctx context.Context, draftID string, userID int64, date time.Time) (*models.DraftState, error) {
	if err := validateDate(date, s.timeProvider.Now()); err != nil {
		return nil, err
	}

	d, err := s.load(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}

	next, err := applyDateSelection(*d, date)
	if err != nil {
		s.logger.Warn("SelectDate: draft=%s rejected: %v", draftID, err)
		return nil, err
	}

	saved, err := s.save(ctx, &next)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SelectDate: draft=%s date=%s selected", draftID, date.Format(domain.DateFormat))
	return s.state(saved), nil
}

// SetDuration меняет длительность приёма; выбранное время сбрасывается
func (s *Service) SetDuration(ctx context.Context, draftID string, userID int64, durationMinutes int) (*models.DraftState, error) {
	if err := validateDuration(durationMinutes); err != nil {
		return nil, err
	}

	d, err := s.load(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}

	next := applyDurationChange(*d, durationMinutes)
	saved, err := s.save(ctx, &next)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetDuration: draft=%s duration=%d set", draftID, durationMinutes)
	return s.state(saved), nil
}

// SelectTime выбирает время начала приёма.
// Значение вне текущего множества доступных слотов отклоняется с ErrTimeNotAvailable.
func (s *Service) SelectTime(ctx context.Context, draftID string, userID int64, slot types.TimeString) (*models.DraftState, error) {
	if err := slot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	d, err := s.load(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}

	available, _ := s.availability(d)

	next, err := applyTimeSelection(*d, slot, available)
	if err != nil {
		s.logger.Warn("SelectTime: draft=%s time=%s rejected: %v", draftID, slot, err)
		return nil, err
	}

	saved, err := s.save(ctx, &next)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SelectTime: draft=%s time=%s selected", draftID, slot)
	return s.state(saved), nil
}

// SetReason устанавливает причину обращения
func (s *Service) SetReason(ctx context.Context, draftID string, userID int64, reason string) (*models.DraftState, error) {
	if err := validateReason(reason); err != nil {
		return nil, err
	}

	d, err := s.load(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}

	next := applyReason(*d, reason)
	saved, err := s.save(ctx, &next)
	if err != nil {
		return nil, err
	}

	return s.state(saved), nil
}

// SetType устанавливает тип приёма
func (s *Service) SetType(ctx context.Context, draftID string, userID int64, appointmentType domain.AppointmentType) (*models.DraftState, error) {
	if err := validateType(appointmentType); err != nil {
		return nil, err
	}

	d, err := s.load(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}

	next := applyType(*d, appointmentType)
	saved, err := s.save(ctx, &next)
	if err != nil {
		return nil, err
	}

	return s.state(saved), nil
}

// DiscardDraft закрывает форму и удаляет черновик
func (s *Service) DiscardDraft(ctx context.Context, draftID string, userID int64) error {
	d, err := s.load(ctx, draftID, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, d.ID); err != nil {
		s.logger.Error("DiscardDraft: repository error for draft=%s: %v", draftID, err)
		return fmt.Errorf("%w: DiscardDraft - repository error: %v", ErrInternal, err)
	}

	s.unavail.Forget(draftID)
	s.logger.Info("DiscardDraft: draft=%s discarded", draftID)
	return nil
}

// load получает черновик и проверяет, что он принадлежит пользователю
func (s *Service) load(ctx context.Context, draftID string, userID int64) (*domain.AppointmentDraft, error) {
	if draftID == "" {
		return nil, fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	d, err := s.repo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		s.logger.Error("load: repository error for draft=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: load - repository error: %v", ErrInternal, err)
	}

	if d.UserID != userID {
		s.logger.Warn("load: access denied for user=%d to draft=%s", userID, draftID)
		return nil, ErrAccessDenied
	}

	return d, nil
}

func (s *Service) save(ctx context.Context, d *domain.AppointmentDraft) (*domain.AppointmentDraft, error) {
	d.UpdatedAt = s.timeProvider.Now()

	saved, err := s.repo.Update(ctx, d)
	if err != nil {
		s.logger.Error("save: repository error for draft=%s: %v", d.ID, err)
		return nil, fmt.Errorf("%w: save - repository error: %v", ErrInternal, err)
	}
	return saved, nil
}

// availability пересчитывает множество доступных слотов для текущих входов формы.
// Пока занятость врача не загружена, множество считается равным полному каталогу
// (fail-open), а второе значение false сигнализирует о неполноте данных.
func (s *Service) availability(d *domain.AppointmentDraft) ([]types.TimeString, bool) {
	if !d.TimeSelectable() {
		return []types.TimeString{}, true
	}

	blocked, loaded := s.unavail.Get(d.ID, *d.DoctorID)
	return domain.AvailableSlots(*d.Date, d.DurationMinutes, blocked), loaded
}

// state собирает ответ сервиса: черновик, доступность и состояние полей
func (s *Service) state(d *domain.AppointmentDraft) *models.DraftState {
	available, loaded := s.availability(d)

	submittable := d.IsComplete() && d.Time != nil && domain.ContainsSlot(available, *d.Time)

	return &models.DraftState{
		Draft:          d,
		AvailableSlots: available,
		Provisional:    d.TimeSelectable() && !loaded,
		DateSelectable: d.DateSelectable(),
		TimeSelectable: d.TimeSelectable(),
		Submittable:    submittable,
	}
}
