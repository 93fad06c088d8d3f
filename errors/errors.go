package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Booking errors
	ErrCodeInvalidDateRange      ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeGuestCountExceeded    ErrorCode = "GUEST_COUNT_EXCEEDS_CAPACITY"
	ErrCodeInsufficientInventory ErrorCode = "INSUFFICIENT_INVENTORY"
	ErrCodeUnitUnavailable       ErrorCode = "UNIT_UNAVAILABLE"
	ErrCodeRoomTypeNotFound      ErrorCode = "ROOM_TYPE_NOT_FOUND"
	ErrCodeAllocationConflict    ErrorCode = "CONCURRENT_ALLOCATION_CONFLICT"
	ErrCodeInvalidStatus         ErrorCode = "INVALID_STATUS"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// InsufficientInventoryError báo không đủ phòng trống cho số lượng yêu cầu
type InsufficientInventoryError struct {
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("không đủ phòng trống: cần %d, còn %d", e.Requested, e.Available)
}

// UnitUnavailableError báo phòng được chỉ định không khả dụng, kèm các phòng thay thế
type UnitUnavailableError struct {
	Unit         string
	Reason       string
	Alternatives []string
}

func (e *UnitUnavailableError) Error() string {
	if len(e.Alternatives) > 0 {
		return fmt.Sprintf("phòng %s không khả dụng: %s (phòng trống: %s)",
			e.Unit, e.Reason, strings.Join(e.Alternatives, ", "))
	}
	return fmt.Sprintf("phòng %s không khả dụng: %s", e.Unit, e.Reason)
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Booking errors
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidDateRange   = errors.New("check-out date must be after check-in date")
	ErrGuestCountExceeded = errors.New("guest count exceeds room capacity")
	ErrRoomTypeNotFound   = errors.New("room type not found")
	ErrUnitConflict       = errors.New("unit already booked for the requested dates")
	ErrAllocationConflict = errors.New("concurrent allocation conflict")
	ErrPaymentRefUnknown  = errors.New("unknown payment reference")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
