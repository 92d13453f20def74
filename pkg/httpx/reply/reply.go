package reply

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"verify_gateway/pkg/contextx"
	"verify_gateway/pkg/errcodes"
	"verify_gateway/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// InternalErrorMessage текст для клиента, когда причина ошибки не публичная.
const InternalErrorMessage = "Internal server error"

// Renderer builds the endpoint specific error body from a client facing message.
type Renderer func(message string) any

// codedError is implemented by application errors that carry an error code
// and a message safe to show to the client.
type codedError interface {
	error
	ErrorCode() failure.ErrorCode
	PublicMessage() string
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error, render Renderer) {
	statusCode := StatusCode(err)

	if statusCode >= http.StatusInternalServerError {
		logger(ctx).Error("error", logx.Error(err))
	} else {
		logger(ctx).Warn("error", logx.Error(err))
	}

	JSON(ctx, w, statusCode, render(Message(err)))
}

func StatusCode(err error) int {
	if failure.IsInvalidArgumentError(err) {
		return http.StatusBadRequest
	}

	if failure.IsNotFoundError(err) {
		return http.StatusNotFound
	}

	var coded codedError
	if errors.As(err, &coded) {
		switch coded.ErrorCode() {
		case errcodes.ValidationError, errcodes.InvalidPhoneNumber, errcodes.InvalidVerifyCode:
			return http.StatusBadRequest
		case errcodes.NotFound, errcodes.PricesNotFound:
			return http.StatusNotFound
		}
	}

	return http.StatusInternalServerError
}

func Message(err error) string {
	if failure.IsInvalidArgumentError(err) || failure.IsNotFoundError(err) {
		if description := failure.Description(err); description != "" {
			return description
		}
	}

	var coded codedError
	if errors.As(err, &coded) && coded.PublicMessage() != "" {
		return coded.PublicMessage()
	}

	return InternalErrorMessage
}
