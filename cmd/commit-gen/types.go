package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rafaeelricco/commit-gen/codec"
	"github.com/rafaeelricco/commit-gen/domain/commit"
	"github.com/rafaeelricco/commit-gen/domain/history"
	"github.com/rafaeelricco/commit-gen/domain/translate"
	"github.com/rafaeelricco/commit-gen/internal/reflection"
	"github.com/rafaeelricco/commit-gen/shape"
)

// requestTypes are the payload types check accepts, by name.
var requestTypes = map[string]func() *shape.Type{
	"commit":          codec.TypeOf[commit.Command],
	"commit-response": codec.TypeOf[commit.CommandResponse],
	"commit-state":    codec.TypeOf[commit.State],
	"translate":       codec.TypeOf[translate.Translate],
	"history":         history.Commits,
}

func requestType(name string) (*shape.Type, error) {
	typ, ok := requestTypes[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q (see 'commit-gen types')", name)
	}

	return typ(), nil
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the payload types and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := make([]string, 0, len(requestTypes))
			for name := range requestTypes {
				names = append(names, name)
			}
			slices.Sort(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				typ := requestTypes[name]()
				fmt.Fprintf(out, "%s (%s)\n", name, typ)

				for _, f := range reflection.ConcreteFields(typ).UnwrapOr(nil) {
					marker := ""
					if !f.IsRequired() {
						marker = " (optional)"
					}
					fmt.Fprintf(out, "  %s: %s%s\n", f.Name, f.Type, marker)
				}
			}

			return nil
		},
	}
}
