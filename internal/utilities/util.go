// Package utilities contain utility code that use across the package
package utilities

import (
	"strconv"
	"strings"
)

// ErrorResponse is the error body every handler returns on failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body for plain confirmation responses
type MessageResponse struct {
	Message string `json:"message"`
}

// IntQuery parses an integer query parameter, falling back to def when the
// parameter is missing or malformed
func IntQuery(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// SplitList splits a comma-separated query parameter into trimmed,
// non-empty items
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
