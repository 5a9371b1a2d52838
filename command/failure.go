package command

import (
	"fmt"
	"net/http"

	"github.com/rafaeelricco/commit-gen/codec"
)

// Failure is a handler outcome with a known response.
type Failure interface {
	error
	Response() Response
}

// Fail is a failure with an arbitrary status code.
type Fail struct {
	Code    int
	Message string
	Details any
}

func (f Fail) Error() string { return f.Message }

func (f Fail) Response() Response {
	return errorResponse(f.Code, f.Message, f.Details, true)
}

// Forbidden is answered with 403.
type Forbidden struct {
	Message string
}

func (f Forbidden) Error() string { return f.Message }

func (f Forbidden) Response() Response {
	return errorResponse(http.StatusForbidden, f.Message, nil, false)
}

// Unauthorized is answered with 401.
type Unauthorized struct {
	Message string
}

func (f Unauthorized) Error() string { return f.Message }

func (f Unauthorized) Response() Response {
	return errorResponse(http.StatusUnauthorized, f.Message, nil, false)
}

// BadRequest is answered with 400.
type BadRequest struct {
	Message string
	Details any
}

func (f BadRequest) Error() string { return f.Message }

func (f BadRequest) Response() Response {
	return errorResponse(http.StatusBadRequest, f.Message, f.Details, true)
}

// InternalServerError is answered with 500.
type InternalServerError struct {
	Message string
}

func (f InternalServerError) Error() string { return f.Message }

func (f InternalServerError) Response() Response {
	return errorResponse(http.StatusInternalServerError, f.Message, nil, false)
}

func errorResponse(status int, message string, details any, withDetails bool) Response {
	body := map[string]any{"message": message}
	if withDetails {
		encoded, err := codec.Encode(details)
		if err != nil {
			encoded = fmt.Sprint(details)
		}
		body["details"] = encoded
	}

	return Response{Body: map[string]any{"error": body}, Status: status}
}
