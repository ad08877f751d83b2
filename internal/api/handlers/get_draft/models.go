package get_draft

import (
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	draftform "github.com/m04kA/HMS-AppointmentService/internal/service/draftform/models"
)

// DraftStateResponse HTTP response model состояния формы записи
type DraftStateResponse struct {
	ID              string   `json:"id"`
	DoctorID        *int64   `json:"doctorId,omitempty"`
	Date            *string  `json:"date,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	Time            *string  `json:"time,omitempty"`
	Reason          *string  `json:"reason,omitempty"`
	Type            *string  `json:"type,omitempty"`
	AvailableSlots  []string `json:"availableSlots"`
	Provisional     bool     `json:"provisional"`
	DateSelectable  bool     `json:"dateSelectable"`
	TimeSelectable  bool     `json:"timeSelectable"`
	Submittable     bool     `json:"submittable"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// FromDraftState конвертирует состояние формы в HTTP response
func FromDraftState(state *draftform.DraftState) *DraftStateResponse {
	d := state.Draft

	resp := &DraftStateResponse{
		ID:              d.ID,
		DoctorID:        d.DoctorID,
		DurationMinutes: d.DurationMinutes,
		Reason:          d.Reason,
		AvailableSlots:  make([]string, 0, len(state.AvailableSlots)),
		Provisional:     state.Provisional,
		DateSelectable:  state.DateSelectable,
		TimeSelectable:  state.TimeSelectable,
		Submittable:     state.Submittable,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       d.UpdatedAt.Format(time.RFC3339),
	}

	if d.Date != nil {
		date := d.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if d.Time != nil {
		t := d.Time.String()
		resp.Time = &t
	}
	if d.Type != nil {
		appointmentType := string(*d.Type)
		resp.Type = &appointmentType
	}
	for _, slot := range state.AvailableSlots {
		resp.AvailableSlots = append(resp.AvailableSlots, slot.String())
	}

	return resp
}
