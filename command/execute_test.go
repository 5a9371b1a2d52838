package command

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rafaeelricco/commit-gen/options"
	"github.com/rafaeelricco/commit-gen/shape"
)

type greet struct {
	Name  string  `json:"name"`
	Title *string `json:"title"`
}

type greeting struct {
	Text string `json:"text"`
}

func newObserved(t *testing.T, opts options.ParsingOptions) (*Executor, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	return NewExecutor(zap.New(core), opts), logs
}

func greeter(calls *int) func() Handler[greet] {
	return func() Handler[greet] {
		return HandlerFunc[greet](func(_ context.Context, cmd greet) (Response, error) {
			*calls++
			switch cmd.Name {
			case "forbidden":
				return Response{}, Forbidden{Message: "not you"}
			case "teapot":
				return Response{}, Fail{Code: http.StatusTeapot, Message: "short and stout", Details: []string{"spout"}}
			case "boom":
				return Response{}, errors.New("database password leaked in message")
			case "panic":
				panic("handler exploded")
			}
			return JSONResponse(greeting{Text: "hello " + cmd.Name}, http.StatusOK)
		})
	}
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name       string
		request    map[string]any
		wantStatus int
		wantBody   map[string]any
		wantCalls  int
	}{
		{
			name:       "success",
			request:    map[string]any{"name": "ana", "title": nil},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"text": "hello ana"},
			wantCalls:  1,
		},
		{
			name:       "schema violation never reaches the handler",
			request:    map[string]any{"name": 1, "title": nil},
			wantStatus: http.StatusBadRequest,
			wantBody: map[string]any{"error": map[string]any{
				"message": "Invalid request schema: parsing field 'name': Expected str but found int",
				"details": nil,
			}},
		},
		{
			name:       "missing optional field is required without fill",
			request:    map[string]any{"name": "ana"},
			wantStatus: http.StatusBadRequest,
			wantBody: map[string]any{"error": map[string]any{
				"message": "Invalid request schema: 'title': Field required",
				"details": nil,
			}},
		},
		{
			name:       "declared failure",
			request:    map[string]any{"name": "forbidden", "title": nil},
			wantStatus: http.StatusForbidden,
			wantBody:   map[string]any{"error": map[string]any{"message": "not you"}},
			wantCalls:  1,
		},
		{
			name:       "custom failure with details",
			request:    map[string]any{"name": "teapot", "title": nil},
			wantStatus: http.StatusTeapot,
			wantBody: map[string]any{"error": map[string]any{
				"message": "short and stout",
				"details": []any{"spout"},
			}},
			wantCalls: 1,
		},
		{
			name:       "unknown error is redacted",
			request:    map[string]any{"name": "boom", "title": nil},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": map[string]any{"message": "Internal error"}},
			wantCalls:  1,
		},
		{
			name:       "panic is redacted",
			request:    map[string]any{"name": "panic", "title": nil},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": map[string]any{"message": "Internal error"}},
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newObserved(t, options.Default())
			calls := 0

			resp := Execute(context.Background(), e, tt.request, greeter(&calls))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantBody, resp.Body)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestExecute_FillMissingOptionals(t *testing.T) {
	e, _ := newObserved(t, options.ParsingOptions{FillMissingOptionals: true})
	calls := 0

	resp := Execute(context.Background(), e, map[string]any{"name": "ana"}, greeter(&calls))
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.True(t, resp.IsSuccess())
}

func TestExecute_Logging(t *testing.T) {
	e, logs := newObserved(t, options.Default())
	calls := 0

	Execute(context.Background(), e, map[string]any{"name": "boom", "title": nil}, greeter(&calls))

	entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "command.greet", fields["command"])
	assert.NotEmpty(t, fields["request_id"])
	assert.Contains(t, fields["error"], "database password", "the full error stays in the log")

	Execute(context.Background(), e, map[string]any{"name": "forbidden", "title": nil}, greeter(&calls))
	assert.Equal(t, 1, logs.FilterMessage("Command failed").FilterLevelExact(zapcore.InfoLevel).Len())

	ids := map[any]bool{}
	for _, entry := range logs.All() {
		ids[entry.ContextMap()["request_id"]] = true
	}
	assert.Len(t, ids, 2, "every execution gets its own request id")
}

func TestExecute_UnsupportedCommandPanics(t *testing.T) {
	e := NewExecutor(nil, options.Default())

	assert.Panics(t, func() {
		Execute(context.Background(), e, map[string]any{}, func() Handler[chan int] { return nil })
	})
}

func TestExecuteType(t *testing.T) {
	rec := shape.Declare("Echo", nil, shape.NewField("message", shape.String))
	e := NewExecutor(nil, options.Default())

	echo := func() Handler[any] {
		return HandlerFunc[any](func(_ context.Context, cmd any) (Response, error) {
			return JSONResponse(cmd, http.StatusCreated)
		})
	}

	resp := ExecuteType(context.Background(), e, rec.Of(), map[string]any{"message": "hi"}, echo)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, map[string]any{"message": "hi"}, resp.Body)

	resp = ExecuteType(context.Background(), e, rec.Of(), map[string]any{}, echo)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
}

func TestExecuteWithAPIKey(t *testing.T) {
	e := NewExecutor(nil, options.Default())
	request := map[string]any{"name": "ana", "title": nil}

	tests := []struct {
		name       string
		key        string
		wantStatus int
		wantCalls  int
	}{
		{"valid", "s3cret", http.StatusOK, 1},
		{"wrong", "guess", http.StatusUnauthorized, 0},
		{"missing", "", http.StatusUnauthorized, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			resp := ExecuteWithAPIKey(context.Background(), e, request, tt.key, "s3cret", greeter(&calls))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}

	resp := ExecuteWithAPIKey(context.Background(), e, request, "guess", "s3cret", greeter(new(int)))
	assert.Equal(t, map[string]any{"error": map[string]any{"message": "Invalid API key"}}, resp.Body)
}

func TestJSONResponse(t *testing.T) {
	resp, err := JSONResponse(map[string]any{"ok": true}, http.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, Response{Body: map[string]any{"ok": true}, Status: http.StatusAccepted}, resp)

	_, err = JSONResponse([]string{"not", "an", "object"}, http.StatusOK)
	assert.EqualError(t, err, "expected an object from encoding, got []interface {}")

	_, err = JSONResponse(make(chan int), http.StatusOK)
	assert.Error(t, err)

	out, err := Response{Body: map[string]any{"a": 1}}.MarshalIndent()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(out))

	out, err = Response{Body: map[string]any{"rate": 2.0}}.MarshalIndent()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"rate\": 2.0\n}", string(out), "integral floats stay floats")
}
