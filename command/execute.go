package command

import (
	"context"
	"crypto/subtle"
	"errors"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rafaeelricco/commit-gen/codec"
	"github.com/rafaeelricco/commit-gen/options"
	"github.com/rafaeelricco/commit-gen/result"
	"github.com/rafaeelricco/commit-gen/shape"
)

// Handler executes one decoded command.
type Handler[C any] interface {
	Handle(ctx context.Context, cmd C) (Response, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[C any] func(ctx context.Context, cmd C) (Response, error)

func (f HandlerFunc[C]) Handle(ctx context.Context, cmd C) (Response, error) {
	return f(ctx, cmd)
}

// Executor carries what every execution shares.
type Executor struct {
	logger *zap.Logger
	opts   options.ParsingOptions
}

// NewExecutor creates an Executor. A nil logger disables logging.
func NewExecutor(logger *zap.Logger, opts options.ParsingOptions) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Executor{logger: logger, opts: opts}
}

// Execute decodes request into C and runs a fresh handler on it.
func Execute[C any](ctx context.Context, e *Executor, request map[string]any, newHandler func() Handler[C]) Response {
	decode := func() result.Result[string, any] {
		return result.Map(codec.Decode[C](request, e.opts), func(c C) any { return c })
	}

	return e.run(ctx, reflect.TypeFor[C]().String(), decode, func(ctx context.Context, cmd any) (Response, error) {
		return newHandler().Handle(ctx, cmd.(C))
	})
}

// ExecuteType decodes request against the descriptor t and runs a fresh handler on it.
func ExecuteType(ctx context.Context, e *Executor, t *shape.Type, request map[string]any, newHandler func() Handler[any]) Response {
	decode := func() result.Result[string, any] {
		return codec.DecodeType(t, request, e.opts)
	}

	return e.run(ctx, t.String(), decode, func(ctx context.Context, cmd any) (Response, error) {
		return newHandler().Handle(ctx, cmd)
	})
}

// ExecuteWithAPIKey is Execute guarded by an API key check.
func ExecuteWithAPIKey[C any](ctx context.Context, e *Executor, request map[string]any, apiKey, requiredKey string, newHandler func() Handler[C]) Response {
	if apiKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(requiredKey)) != 1 {
		e.logger.Info("Rejected request with invalid API key", zap.String("command", reflect.TypeFor[C]().String()))
		return Unauthorized{Message: "Invalid API key"}.Response()
	}

	return Execute(ctx, e, request, newHandler)
}

func (e *Executor) run(
	ctx context.Context,
	command string,
	decode func() result.Result[string, any],
	handle func(ctx context.Context, cmd any) (Response, error),
) Response {
	log := e.logger.With(zap.String("request_id", uuid.NewString()), zap.String("command", command))

	decoded := decode()
	if msg, failed := decoded.Failure(); failed {
		log.Debug("Request does not match the command schema", zap.String("reason", msg))
		return BadRequest{Message: "Invalid request schema: " + msg}.Response()
	}

	outcome := result.Try(func() (Response, error) {
		return handle(ctx, decoded.Unwrap())
	})

	resp, err := result.Unpack(outcome)
	if err == nil {
		log.Debug("Command handled", zap.Int("status", resp.Status))
		return resp
	}

	var failure Failure
	if errors.As(err, &failure) {
		resp = failure.Response()
		log.Info("Command failed", zap.Int("status", resp.Status), zap.Error(err))
		return resp
	}

	log.Error("Command failed unexpectedly", zap.Error(err))

	return InternalServerError{Message: "Internal error"}.Response()
}
