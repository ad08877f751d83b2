package submit_appointment

import "github.com/m04kA/HMS-AppointmentService/internal/domain"

// Request модель запроса на отправку формы записи
type Request struct {
	DraftID string // ID черновика формы
	UserID  int64  // ID пользователя портала
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment // Запись, созданная в HospitalAPI
}
