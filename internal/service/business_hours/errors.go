package business_hours

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("business_hours: invalid input data")

	// ErrOverlappingHours возвращается, когда окна одного дня пересекаются
	ErrOverlappingHours = errors.New("business_hours: overlapping windows")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("business_hours: internal error")
)
