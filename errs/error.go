package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"snapFeed/logger"
)

// Application error codes.
const (
	ECONFLICT     = "conflict"      // an entity with the same identity already exists
	EINVALID      = "invalid"       // the input is malformed or self-referential
	ENOTFOUND     = "not_found"     // a referenced entity is absent
	EUNAUTHORIZED = "unauthorized"  // bad credentials or an unresolvable token
	EINTERNAL     = "internal"      // anything the caller cannot do something about
)

// Error is an application error. It carries a machine-readable code and a
// human-readable message that is safe to send to the client.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps the code of an application error. Any non-application
// error counts as an internal fault.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps the message of an application error. Messages of
// non-application errors are never exposed; callers get an opaque one.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// statusCodes maps each application error code to the one http status it is
// reported with. Conflicts report as 400 along with the rest of the
// bad-request family.
var statusCodes = map[string]int{
	ECONFLICT:     http.StatusBadRequest,
	EINVALID:      http.StatusBadRequest,
	ENOTFOUND:     http.StatusNotFound,
	EUNAUTHORIZED: http.StatusUnauthorized,
	EINTERNAL:     http.StatusInternalServerError,
}

// StatusCode returns the http status for an application error code.
func StatusCode(code string) int {
	if status, ok := statusCodes[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the json shape of every error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReturnError writes an error to the response. Internal faults get logged
// with their full detail and reported with an opaque message only.
func ReturnError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := ErrorCode(err), ErrorMessage(err)
	if code == EINTERNAL {
		LogError(r, err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusCode(code))
	json.NewEncoder(w).Encode(&ErrorResponse{Error: message})
}

// LogError logs an error together with the route it occurred on.
func LogError(r *http.Request, err error) {
	logger.Log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Error(err)
}
