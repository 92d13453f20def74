package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

var (
	ErrEmptyPhone         = errors.New("phone is required")
	ErrPhoneWithoutPrefix = errors.New("phone must start with +")
	ErrInvalidPhone       = errors.New("phone is not a valid international number")
	ErrEmptyCode          = errors.New("code is required")
)

// AppError представляет доменную ошибку приложения.
// Message показывается клиенту как есть, cause остаётся только в логах.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

func (e *AppError) ErrorCode() failure.ErrorCode {
	return e.Code
}

func (e *AppError) PublicMessage() string {
	return e.Message
}

// NewError создаёт новую доменную ошибку.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}
