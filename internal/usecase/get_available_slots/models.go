package get_available_slots

import (
	"time"

	"github.com/m04kA/HMS-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	DoctorID        int64     // ID врача
	Date            time.Time // Дата приёма (без времени)
	DurationMinutes int       // Длительность приёма в минутах
}

// Response модель ответа со списком доступных времен начала приёма
type Response struct {
	DoctorID        int64              // ID врача
	Date            time.Time          // Дата, на которую запрашивались слоты
	DurationMinutes int                // Длительность приёма
	Slots           []types.TimeString // Доступные времена начала, в порядке каталога

	// Provisional true, если занятость врача получить не удалось:
	// список показан оптимистично и может сузиться после загрузки данных
	Provisional bool
}
