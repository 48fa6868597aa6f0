package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена, неактивна или принадлежит другому мастеру
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotNotFound возвращается, когда слот с указанным ID не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrConflict возвращается, когда время у мастера уже занято
	ErrConflict = errors.New("create_booking: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
