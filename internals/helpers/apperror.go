package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError adalah error terstruktur dari workflow layer: membawa
// status HTTP yang dimaksud, bukan dicocokkan lewat substring pesan.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func ErrBadRequest(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message)
}

func ErrUnauthorized(message string) *AppError {
	return NewAppError(fiber.StatusUnauthorized, message)
}

func ErrForbidden(message string) *AppError {
	return NewAppError(fiber.StatusForbidden, message)
}

func ErrNotFound(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message)
}

func ErrConflict(message string) *AppError {
	return NewAppError(fiber.StatusConflict, message)
}

// IsAppError meng-unwrap error menjadi *AppError bila memungkinkan.
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
