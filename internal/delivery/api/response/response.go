// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "trinity/internal/delivery/context"
	domainerrors "trinity/internal/domain/errors"
	"trinity/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"` // only for 4xx other than 401/403
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// MessageBody is the payload of endpoints that only confirm an action.
type MessageBody struct {
	Message string `json:"message"`
}

// Meta builds the metadata block for the current request.
func Meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: Meta(c),
	})
}

// Message returns a successful response carrying only a message.
func Message(c echo.Context, statusCode int, message string) error {
	return Success(c, statusCode, MessageBody{Message: message})
}

// PublicDetails drops details the client must not see.
func PublicDetails(statusCode int, details any) any {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		return nil
	}
	if s, ok := details.(string); ok && s == "" {
		return nil
	}

	return details
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: PublicDetails(statusCode, details),
		},
		Meta: Meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors and hands anything else to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
