// Package commit holds the request and response records of the commit command.
package commit

import (
	"context"
	"net/http"

	"github.com/rafaeelricco/commit-gen/codec"
	"github.com/rafaeelricco/commit-gen/command"
	"github.com/rafaeelricco/commit-gen/options"
	"github.com/rafaeelricco/commit-gen/result"
)

// Action is what the command is asked to do.
type Action string

const ActionGenerate Action = "generate"

func (Action) EnumValues() []any { return []any{ActionGenerate} }

// Selection is the user's choice after a message was generated.
type Selection string

const (
	SelectionCommit     Selection = "commit"
	SelectionCommitPush Selection = "commit_push"
	SelectionRegenerate Selection = "regenerate"
	SelectionAdjust     Selection = "adjust"
	SelectionCancel     Selection = "cancel"
)

func (Selection) EnumValues() []any {
	return []any{SelectionCommit, SelectionCommitPush, SelectionRegenerate, SelectionAdjust, SelectionCancel}
}

// ParseSelection decodes a selection answer.
func ParseSelection(v any) result.Result[string, Selection] {
	return codec.Decode[Selection](v, options.Default())
}

// Command is the commit request.
type Command struct {
	Action string `json:"action"`
}

// CommandResponse is the outcome of a commit flow.
type CommandResponse struct {
	Message       string  `json:"message"`
	CommitMessage *string `json:"commit_message,omitempty"`
	Action        *string `json:"action,omitempty"`
	GitOutput     *string `json:"git_output,omitempty"`
}

// Status is 200 for flows that ended in a commit, a push or a cancellation.
func (r CommandResponse) Status() int {
	switch r.Message {
	case "commit", "commit_push", "cancelled":
		return http.StatusOK
	default:
		return http.StatusBadRequest
	}
}

// State is carried across iterations of the interactive loop.
type State struct {
	APIKey  string `json:"api_key"`
	Cwd     string `json:"cwd"`
	Diff    string `json:"diff"`
	Message string `json:"message"`
}

// WithMessage returns a copy of s holding message.
func (s State) WithMessage(message string) State {
	s.Message = message
	return s
}

// ValidateAction accepts the actions the command supports.
func ValidateAction(action string) result.Result[error, Action] {
	if Action(action) != ActionGenerate {
		return result.Err[error, Action](UnsupportedAction{Action: action})
	}

	return result.Ok[error](ActionGenerate)
}

// Flow runs the commit interaction: git inspection, message generation and the
// user's selection. It is provided by the caller.
type Flow interface {
	Run(ctx context.Context, action Action) result.Result[error, CommandResponse]
}

// Handler answers commit commands by running a Flow.
type Handler struct {
	Flow Flow
}

func (h Handler) Handle(ctx context.Context, cmd Command) (command.Response, error) {
	action, err := result.Unpack(ValidateAction(cmd.Action))
	if err != nil {
		return command.Response{}, err
	}

	resp, err := result.Unpack(h.Flow.Run(ctx, action))
	if err != nil {
		return command.Response{}, err
	}

	return command.JSONResponse(resp, resp.Status())
}
