package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/rafaeelricco/commit-gen/result"
)

// ErrNoAttempts is returned by Retrying when it was not allowed a single attempt.
var ErrNoAttempts = errors.New("retries exhausted without an error")

// Retrying runs action until it succeeds, at most maxRetries times.
// A panic in action counts as a failed attempt. Retrying stops early once ctx is done.
func Retrying(ctx context.Context, maxRetries int, action func(ctx context.Context) (Response, error)) (Response, error) {
	var lastErr error

	for range maxRetries {
		resp, err := result.Unpack(result.Try(func() (Response, error) {
			return action(ctx)
		}))
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	if lastErr == nil {
		return Response{}, ErrNoAttempts
	}

	return Response{}, fmt.Errorf("unable to complete after %d retries: %w", maxRetries, lastErr)
}
