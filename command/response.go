package command

import (
	"fmt"

	"github.com/rafaeelricco/commit-gen/codec"
)

// Response is a JSON body with its status code.
type Response struct {
	Body   map[string]any
	Status int
}

// JSONResponse encodes data as a response body. The encoded value must be an object.
func JSONResponse(data any, status int) (Response, error) {
	if body, ok := data.(map[string]any); ok {
		return Response{Body: body, Status: status}, nil
	}

	encoded, err := codec.Encode(data)
	if err != nil {
		return Response{}, err
	}

	body, ok := encoded.(map[string]any)
	if !ok {
		return Response{}, fmt.Errorf("expected an object from encoding, got %T", encoded)
	}

	return Response{Body: body, Status: status}, nil
}

// IsSuccess reports whether the status is 2xx.
func (r Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// MarshalIndent renders the body for display.
func (r Response) MarshalIndent() ([]byte, error) {
	return codec.MarshalIndent(r.Body, "", "  ")
}
