package profile

import "fmt"

// Validation error codes surfaced to the HTTP layer.
const (
	CodeInvalidDateFormat = "INVALID_DATE_FORMAT"
	CodeBirthDateFuture   = "BIRTH_DATE_FUTURE"
	CodeBirthDateTooOld   = "BIRTH_DATE_TOO_OLD"
	CodeEmptyName         = "EMPTY_NAME"
	CodeNameTooLong       = "NAME_TOO_LONG"
	CodeProfileNotFound   = "PROFILE_NOT_FOUND"
)

// ValidationError carries a stable code plus the user-facing Vietnamese
// message. 400-level only; storage failures stay plain wrapped errors.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewInvalidDateFormatError reports an unparseable birth date string.
func NewInvalidDateFormatError() *ValidationError {
	return &ValidationError{
		Code:    CodeInvalidDateFormat,
		Message: "Định dạng ngày không hợp lệ. Sử dụng YYYY-MM-DD.",
	}
}

// NewBirthDateFutureError reports a birth date after today.
func NewBirthDateFutureError() *ValidationError {
	return &ValidationError{
		Code:    CodeBirthDateFuture,
		Message: "Ngày sinh không thể là ngày trong tương lai.",
	}
}

// NewBirthDateTooOldError reports a birth year before the supported range.
func NewBirthDateTooOldError() *ValidationError {
	return &ValidationError{
		Code:    CodeBirthDateTooOld,
		Message: "Ngày sinh quá cũ. Vui lòng nhập năm sinh từ 1900 trở lại đây.",
	}
}

// NewEmptyNameError reports a name that is empty after trimming.
func NewEmptyNameError() *ValidationError {
	return &ValidationError{
		Code:    CodeEmptyName,
		Message: "Tên không được để trống. Vui lòng nhập tên của bạn.",
	}
}

// NewNameTooLongError reports a name over the configured length bound.
func NewNameTooLongError(max int) *ValidationError {
	return &ValidationError{
		Code:    CodeNameTooLong,
		Message: fmt.Sprintf("Tên quá dài. Vui lòng nhập tên ngắn hơn (tối đa %d ký tự).", max),
	}
}
