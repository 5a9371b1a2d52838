package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rafaeelricco/commit-gen/codec"
	"github.com/rafaeelricco/commit-gen/command"
	"github.com/rafaeelricco/commit-gen/shape"
)

const maxParallelChecks = 8

type checkResult struct {
	file string
	resp command.Response
}

func newCheckCmd(a *app) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "check --type NAME FILE...",
		Short: "Decode payload files as a request type and report the response",
		Long: `Decode each JSON or YAML payload file as the named request type.

Every payload runs through the command executor with a handler that echoes the
decoded command back, so the reported status and body are exactly what a
request with that payload would receive up to the handler.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			typ, err := requestType(typeName)
			if err != nil {
				return err
			}

			results, err := a.checkFiles(cmd.Context(), typ, files)
			if err != nil {
				return err
			}

			return report(cmd, results)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "request type to decode (see 'commit-gen types')")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (a *app) checkFiles(ctx context.Context, typ *shape.Type, files []string) ([]checkResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	executor := command.NewExecutor(a.logger, a.opts)
	results := make([]checkResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelChecks)

	for i, file := range files {
		g.Go(func() error {
			request, err := readPayload(file)
			if err != nil {
				return err
			}

			results[i] = checkResult{
				file: file,
				resp: command.ExecuteType(ctx, executor, typ, request, echo),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func echo() command.Handler[any] {
	return command.HandlerFunc[any](func(_ context.Context, cmd any) (command.Response, error) {
		return command.JSONResponse(cmd, http.StatusOK)
	})
}

// readPayload reads a JSON or YAML file holding an object.
func readPayload(file string) (map[string]any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	var v any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		v, err = codec.FromYAML(data)
	default:
		v, err = codec.ParseJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	request, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: payload must be an object", file)
	}

	return request, nil
}

func report(cmd *cobra.Command, results []checkResult) error {
	out := cmd.OutOrStdout()
	rejected := 0

	for _, r := range results {
		body, err := r.resp.MarshalIndent()
		if err != nil {
			return fmt.Errorf("%s: render response: %w", r.file, err)
		}

		fmt.Fprintf(out, "%s: %d %s\n%s\n", r.file, r.resp.Status, http.StatusText(r.resp.Status), body)
		if !r.resp.IsSuccess() {
			rejected++
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%d of %d payloads rejected", rejected, len(results))
	}

	return nil
}
