package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrDecode marks responses whose body could not be decoded into the
// expected shape. Gateways translate it into a bad-payload failure.
var ErrDecode = errors.New("malformed response body")

// Error is a non-2xx backend response. Code is the server-supplied machine
// code, or a synthesized HTTP_<status> when the server sent none.
type Error struct {
	Status      int
	Code        string
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func newError(status int, body []byte) *Error {
	var payload struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	}
	// Non-JSON error bodies are tolerated; fallbacks apply.
	_ = json.Unmarshal(body, &payload)

	if payload.Code == "" {
		payload.Code = fmt.Sprintf("HTTP_%d", status)
	}
	if payload.Description == "" {
		payload.Description = http.StatusText(status)
	}

	return &Error{
		Status:      status,
		Code:        payload.Code,
		Description: payload.Description,
	}
}

func IsStatus(err error, status int) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Status == status
	}
	return false
}
