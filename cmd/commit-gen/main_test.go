package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `{"content": "hello"}`)
	yaml := writeFile(t, dir, "good.yaml", "content: hello\ntarget_language: es\n")
	bad := writeFile(t, dir, "bad.json", `{"content": 1}`)

	out, err := run(t, "check", "--type", "translate", good, yaml)
	require.NoError(t, err)
	assert.Contains(t, out, good+": 200 OK")
	assert.Contains(t, out, `"target_language": "pt"`)
	assert.Contains(t, out, `"target_language": "es"`)

	out, err = run(t, "check", "-t", "translate", good, bad)
	assert.EqualError(t, err, "1 of 2 payloads rejected")
	assert.Contains(t, out, bad+": 400 Bad Request")
	assert.Contains(t, out, "Invalid request schema: parsing field 'content': Expected str but found int")
}

func TestCheck_FillMissingOptionals(t *testing.T) {
	dir := t.TempDir()
	state := writeFile(t, dir, "response.json", `{"message": "commit"}`)

	_, err := run(t, "check", "--type", "commit-response", state)
	require.NoError(t, err, "omitted optional fields are not required")

	history := writeFile(t, dir, "history.json", `{"items": []}`)
	out, err := run(t, "check", "--type", "history", history)
	require.NoError(t, err)
	assert.Contains(t, out, `"cursor": null`)

	cfg := writeFile(t, dir, "config.yaml", "fill_missing_optionals: true\n")
	_, err = run(t, "--config", cfg, "check", "--type", "history", history)
	require.NoError(t, err)
}

func TestCheck_Errors(t *testing.T) {
	dir := t.TempDir()
	list := writeFile(t, dir, "list.json", `[1, 2]`)

	_, err := run(t, "check", "--type", "translate", list)
	assert.EqualError(t, err, list+": payload must be an object")

	_, err = run(t, "check", "--type", "nope", list)
	assert.EqualError(t, err, `unknown type "nope" (see 'commit-gen types')`)

	_, err = run(t, "check", "--type", "translate", filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "check", "--type", "translate", list)
	assert.ErrorContains(t, err, "read config")
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yaml", "fill_missing_optionals: true\n")

	cmd := newRootCmd()
	require.NoError(t, cmd.PersistentFlags().Parse(nil))

	v, err := loadConfig(cfgFile, cmd.PersistentFlags())
	require.NoError(t, err)
	opts, err := parsingOptions(v)
	require.NoError(t, err)
	assert.True(t, opts.FillMissingOptionals, "file")

	t.Setenv("COMMIT_GEN_FILL_MISSING_OPTIONALS", "false")
	v, err = loadConfig(cfgFile, cmd.PersistentFlags())
	require.NoError(t, err)
	opts, err = parsingOptions(v)
	require.NoError(t, err)
	assert.False(t, opts.FillMissingOptionals, "env over file")

	require.NoError(t, cmd.PersistentFlags().Set(flagFillMissingOptionals, "true"))
	v, err = loadConfig(cfgFile, cmd.PersistentFlags())
	require.NoError(t, err)
	opts, err = parsingOptions(v)
	require.NoError(t, err)
	assert.True(t, opts.FillMissingOptionals, "flag over env")
}

func TestApp_Setup_KeepsInjectedLogger(t *testing.T) {
	logger := zap.NewNop()
	a := &app{logger: logger}

	cmd := newRootCmd()
	require.NoError(t, a.setup(cmd))
	assert.Same(t, logger, a.logger)
}

func TestTypesAndVersion(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "translate (Translate)")
	assert.Contains(t, out, "  target_language: str (optional)")
	assert.Contains(t, out, "history (Page[CommandResponse])")
	assert.Contains(t, out, "  items: list[CommandResponse]")

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "commit-gen dev\n", out)
}
