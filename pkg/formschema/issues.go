package formschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes. Stable strings so clients can branch on them.
const (
	CodeRequired    = "required"
	CodeInvalidType = "invalid_type"
	CodeInvalidEnum = "invalid_enum"
	CodeTooShort    = "too_short"
)

// Issue is a single validation violation. Path addresses the offending
// value in dotted form, e.g. "title" or "fields.2.name"; an empty path
// refers to the payload as a whole.
type Issue struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Issues is a collection of validation violations. It implements error
// so it can flow through ordinary error returns; both the builder UI
// and the API handler produce and consume the same shape.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(iss)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// ByPath returns the messages recorded for a given path.
func (iss Issues) ByPath(path string) []string {
	var msgs []string
	for _, it := range iss {
		if it.Path == path {
			msgs = append(msgs, it.Message)
		}
	}
	return msgs
}

// AsIssues extracts Issues from an error chain.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
