package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrDraftAlreadyExists возвращается при попытке создать черновик с занятым ID
	ErrDraftAlreadyExists = errors.New("draft already exists")
)
