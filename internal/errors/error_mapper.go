package errors

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgNotFound,
			Code:             ErrCodeNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(technicalMessage, "UNIQUE constraint failed"),
		strings.Contains(technicalMessage, "duplicate key value"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgDuplicateEmail,
			Code:             ErrCodeConflict,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             ErrCodeInternal,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
