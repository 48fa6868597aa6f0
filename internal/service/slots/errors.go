package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slots: slot not found")

	// ErrSlotAlreadyExists возвращается при попытке создать дубликат слота
	ErrSlotAlreadyExists = errors.New("slots: slot already exists")

	// ErrServiceNotFound возвращается, когда услуга не найдена или не принадлежит мастеру
	ErrServiceNotFound = errors.New("slots: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)
