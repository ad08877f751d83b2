package submit_appointment

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("submit_appointment: draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("submit_appointment: access denied")

	// ErrDraftIncomplete возвращается, когда заполнены не все обязательные поля
	ErrDraftIncomplete = errors.New("submit_appointment: draft is incomplete")

	// ErrTimeNotAvailable возвращается, когда выбранное время больше не входит
	// в актуальное множество доступных слотов; запрос к бэкенду не отправляется
	ErrTimeNotAvailable = errors.New("submit_appointment: selected time is no longer available")

	// ErrSlotConflict возвращается, когда бэкенд отклонил запись: слот заняли
	// между локальной проверкой и обработкой на сервере
	ErrSlotConflict = errors.New("submit_appointment: slot conflict")

	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("submit_appointment: doctor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_appointment: internal error")
)
