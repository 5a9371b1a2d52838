package codec

import (
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/rafaeelricco/commit-gen/options"
	"github.com/rafaeelricco/commit-gen/result"
)

var interpretations = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// oneOf runs every branch against the same input and requires exactly one to succeed.
func oneOf(branches []Parser) Parser {
	return func(v any, opts options.ParsingOptions) result.Result[string, any] {
		var (
			successes []any
			failures  []string
		)

		for _, branch := range branches {
			r := branch(v, opts)
			if value, ok := r.Get(); ok {
				successes = append(successes, value)
				continue
			}

			msg, _ := r.Failure()
			failures = append(failures, msg)
		}

		switch len(successes) {
		case 0:
			return result.Err[string, any]("No parse.\n" + strings.Join(failures, "\n"))
		case 1:
			return result.Ok[string](successes[0])
		default:
			rendered := make([]string, 0, len(successes))
			for _, s := range successes {
				rendered = append(rendered, interpretations.Sprintf("%#v", s))
			}
			return result.Err[string, any]("Ambiguous parse of " + dumps(v) + ": [" + strings.Join(rendered, ", ") + "]")
		}
	}
}
