package models

import (
	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	"github.com/m04kA/HMS-AppointmentService/pkg/types"
)

// DraftState состояние формы записи после применения события:
// сам черновик, текущее множество доступных слотов и флаги доступности полей
type DraftState struct {
	Draft *domain.AppointmentDraft

	// AvailableSlots текущее множество доступных времен начала.
	// Пересчитывается при каждом обращении, никогда не хранится.
	AvailableSlots []types.TimeString

	// Provisional true, пока занятость врача еще не загружена:
	// список показывается оптимистично и может сузиться
	Provisional bool

	DateSelectable bool
	TimeSelectable bool

	// Submittable все обязательные поля заполнены и время входит
	// в текущее множество доступных слотов
	Submittable bool
}
