package draftform

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrDoctorNotSelected возвращается при попытке выбрать дату до выбора врача
	ErrDoctorNotSelected = errors.New("doctor is not selected")

	// ErrDateNotSelected возвращается при попытке выбрать время до выбора даты
	ErrDateNotSelected = errors.New("date is not selected")

	// ErrTimeNotAvailable возвращается при выборе времени вне текущего множества доступных слотов
	ErrTimeNotAvailable = errors.New("selected time is not available")

	// ErrInvalidDate возвращается при выборе даты в прошлом
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("draftform: internal error")
)
