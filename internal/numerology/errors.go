package numerology

import "errors"

// Sentinel errors for the engine. Callers match with errors.Is and map to
// their own error-response layer; nothing here is retryable.
var (
	// ErrMalformedDate means a birth date string could not be parsed as a
	// YYYY-MM-DD calendar date.
	ErrMalformedDate = errors.New("malformed date: expected YYYY-MM-DD")

	// ErrUnknownCategory means the interpretation table has no such category.
	ErrUnknownCategory = errors.New("unknown interpretation category")

	// ErrUnknownValue means the value is outside {1..9, 11, 22, 33}.
	ErrUnknownValue = errors.New("unknown interpretation value")

	// ErrUnsupportedLocale means no interpretation text exists for the
	// requested locale.
	ErrUnsupportedLocale = errors.New("unsupported locale")
)
