package apperr

import "net/http"

// Error carries the HTTP status and client-facing message for a failed
// request. Handlers attach it with c.Error and the error middleware
// renders it.
type Error struct {
	Status  int      `json:"-"`
	Message string   `json:"error"`
	Fields  []string `json:"fields,omitempty"`
	Err     error    `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Wrap keeps err as the cause while exposing only message.
func Wrap(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}
