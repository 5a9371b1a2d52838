package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rafaeelricco/commit-gen/options"
	"github.com/rafaeelricco/commit-gen/result"
	"github.com/rafaeelricco/commit-gen/shape"
)

var (
	strict = options.Default()
	fill   = options.ParsingOptions{FillMissingOptionals: true}
)

func mustJSON(t *testing.T, text string) any {
	t.Helper()

	v, err := ParseJSON([]byte(text))
	require.NoError(t, err)

	return v
}

func requireErr[T any](t *testing.T, r result.Result[string, T]) string {
	t.Helper()

	msg, failed := r.Failure()
	require.True(t, failed, "expected an error, got %v", r)

	return msg
}

func requireOk[T any](t *testing.T, r result.Result[string, T]) T {
	t.Helper()

	v, ok := r.Get()
	require.True(t, ok, "expected a value, got %v", r)

	return v
}

func member(t *testing.T, v any, name string) any {
	t.Helper()

	obj, ok := v.(shape.Object)
	require.True(t, ok, "expected shape.Object, got %T", v)

	m, ok := obj.Get(name)
	require.True(t, ok, "missing member %q", name)

	return m
}
