package hospitalapi

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден в HospitalAPI
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrSlotConflict возвращается, когда бэкенд отклонил запись из-за занятого слота
	ErrSlotConflict = errors.New("appointment slot conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("hospitalapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("hospitalapi client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что HospitalAPI недоступен и занятость врача неизвестна
	ErrServiceDegraded = errors.New("hospitalapi unavailable: graceful degradation applied")
)
