package diagnostic

import (
	"strings"
)

// Codes used by the decoder itself.
const (
	CodeRequired = "missing"
	CodeInvalid  = "value_error"
)

// Violation is a single validation failure.
type Violation struct {
	// Loc is the path of field names leading to the offending value.
	Loc []string
	// Code identifies the kind of failure.
	Code string
	// Message is the human-readable description.
	Message string
}

// String renders the violation as 'a'.'b': message.
func (v Violation) String() string {
	if len(v.Loc) == 0 {
		return v.Message
	}

	quoted := make([]string, 0, len(v.Loc))
	for _, l := range v.Loc {
		quoted = append(quoted, "'"+l+"'")
	}

	return strings.Join(quoted, ".") + ": " + v.Message
}

// Violations collects the failures of one record validation.
type Violations []Violation

// Add appends a violation.
func (vs *Violations) Add(code, message string, loc ...string) {
	*vs = append(*vs, Violation{Loc: loc, Code: code, Message: message})
}

// Required records that the named field is missing.
func (vs *Violations) Required(field string) {
	vs.Add(CodeRequired, "Field required", field)
}

// IsValid returns true if there are no violations.
func (vs Violations) IsValid() bool {
	return len(vs) == 0
}

// Err returns vs as an error, or nil if valid.
func (vs Violations) Err() error {
	if vs.IsValid() {
		return nil
	}

	return vs
}

// Error joins every violation with ". ".
func (vs Violations) Error() string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.String())
	}

	return strings.Join(parts, ". ")
}
