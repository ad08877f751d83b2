package draft

import (
	"context"
	"sync"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// Repository in-memory хранилище черновиков записи.
// Черновик живет столько же, сколько открытый диалог записи на портале:
// никакого персистентного состояния у этой подсистемы нет, рестарт процесса
// просто закрывает все формы.
type Repository struct {
	mu     sync.RWMutex
	drafts map[string]*domain.AppointmentDraft
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository() *Repository {
	return &Repository{
		drafts: make(map[string]*domain.AppointmentDraft),
	}
}

// Create сохраняет новый черновик
func (r *Repository) Create(_ context.Context, d *domain.AppointmentDraft) (*domain.AppointmentDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[d.ID]; ok {
		return nil, ErrDraftAlreadyExists
	}

	r.drafts[d.ID] = d.Clone()
	return d.Clone(), nil
}

// GetByID получает черновик по ID
func (r *Repository) GetByID(_ context.Context, id string) (*domain.AppointmentDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}

	return d.Clone(), nil
}

// Update заменяет сохраненный черновик целиком
func (r *Repository) Update(_ context.Context, d *domain.AppointmentDraft) (*domain.AppointmentDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[d.ID]; !ok {
		return nil, ErrDraftNotFound
	}

	r.drafts[d.ID] = d.Clone()
	return d.Clone(), nil
}

// Delete удаляет черновик
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[id]; !ok {
		return ErrDraftNotFound
	}

	delete(r.drafts, id)
	return nil
}
