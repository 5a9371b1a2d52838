package commit

import (
	"net/http"

	"github.com/rafaeelricco/commit-gen/command"
)

// The failures below end a commit flow. Each is answered with 400.

type MissingAPIKey struct{}

func (MissingAPIKey) Error() string {
	return "GOOGLE_API_KEY not found in environment. Set it in .env file"
}

func (e MissingAPIKey) Response() command.Response { return badRequest(e) }

type NotGitRepo struct{}

func (NotGitRepo) Error() string {
	return "Not a git repository. Initialize with 'git init' or navigate to a git project."
}

func (e NotGitRepo) Response() command.Response { return badRequest(e) }

type GitError struct {
	Message string
}

func (e GitError) Error() string { return "Git error: " + e.Message }

func (e GitError) Response() command.Response { return badRequest(e) }

type NoStagedChanges struct{}

func (NoStagedChanges) Error() string {
	return "No staged changes found. Use 'git add <file>' to stage files before generating a commit."
}

func (e NoStagedChanges) Response() command.Response { return badRequest(e) }

type EmptyAIResponse struct{}

func (EmptyAIResponse) Error() string { return "Empty response from commit message generation" }

func (e EmptyAIResponse) Response() command.Response { return badRequest(e) }

type UnsupportedAction struct {
	Action string
}

func (e UnsupportedAction) Error() string {
	return "Unsupported commit action: '" + e.Action + "'. Use 'generate'."
}

func (e UnsupportedAction) Response() command.Response { return badRequest(e) }

func badRequest(err error) command.Response {
	return command.Response{
		Body:   map[string]any{"error": map[string]any{"message": err.Error()}},
		Status: http.StatusBadRequest,
	}
}
