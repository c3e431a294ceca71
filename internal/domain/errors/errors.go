package errors

import (
	"net/http"

	"trinity/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This phone number is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	ErrUnknownRole = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_ROLE",
		"Role does not exist",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid password",
		"",
	)

	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"No token provided",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PRODUCT_ALREADY_EXISTS",
		"A product with this barcode already exists",
		"",
	)

	ErrBarcodeNotFound = NewBaseError(
		http.StatusNotFound,
		"BARCODE_NOT_FOUND",
		"No product found for this barcode",
		"",
	)

	// Cart errors
	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"Cart not found",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Cart has no products",
		"",
	)

	// Invoice and checkout errors
	ErrInvoiceNotFound = NewBaseError(
		http.StatusNotFound,
		"INVOICE_NOT_FOUND",
		"Invoice not found",
		"",
	)

	ErrInvoiceAlreadyExists = NewBaseError(
		http.StatusConflict,
		"INVOICE_ALREADY_EXISTS",
		"An invoice already exists for this order",
		"",
	)

	ErrStatusRegression = NewBaseError(
		http.StatusConflict,
		"PAYMENT_STATUS_REGRESSION",
		"A completed payment cannot be reverted",
		"",
	)

	ErrTotalMismatch = NewBaseError(
		http.StatusBadRequest,
		"TOTAL_MISMATCH",
		"Submitted total does not match the cart",
		"",
	)

	ErrPaymentIncomplete = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_NOT_COMPLETED",
		"Payment not completed",
		"",
	)

	ErrCheckoutNotFound = NewBaseError(
		http.StatusNotFound,
		"CHECKOUT_NOT_FOUND",
		"Checkout not found",
		"",
	)

	// Upstream errors
	ErrUpstream = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_ERROR",
		"An external service failed",
		"",
	)

	// Report errors
	ErrUnknownReportType = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_REPORT_TYPE",
		"Report type must be sales or performance",
		"",
	)

	// Device errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the driver error to errors.Is and errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
