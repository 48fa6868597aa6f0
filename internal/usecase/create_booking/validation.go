package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SalonAvailability/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest нормализует и валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	if req.CustomerEmail != nil {
		email := strings.TrimSpace(*req.CustomerEmail)
		if email == "" {
			req.CustomerEmail = nil
		} else {
			req.CustomerEmail = &email
		}
	}

	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, describe(err))
	}

	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.BookingDate != nil && req.BookingDate.IsZero() {
		return fmt.Errorf("%w: bookingDate is invalid", ErrInvalidInput)
	}

	return nil
}

// describe превращает ошибки валидатора в короткое сообщение вида "field: tag"
func describe(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
