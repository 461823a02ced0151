package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Repository-level sentinels. Repositories report these without knowing
// which entity or message the caller will surface.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)

// Error is a business-rule failure carrying the status class it must
// surface as in the response envelope. Services produce these; the API
// boundary renders them. Anything that is not a *Error is treated as an
// unexpected failure and becomes a 500-class envelope.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFoundf covers both missing entities and empty result sets. The two are
// deliberately indistinguishable in the API contract.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf covers uniqueness violations, invalid date ordering, and invalid
// state transitions (double-assign, double-release).
func Conflictf(format string, args ...any) *Error {
	return &Error{Status: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func Unauthorizedf(format string, args ...any) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// AsError unwraps err into a *Error when it carries one.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
