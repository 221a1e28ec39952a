// Package grammar provides an optional grammar-checking backend for the
// quality engine. Backends are best effort: callers treat any failure as
// "no issues found".
package grammar

import "context"

// Checker inspects text and returns human-readable issue messages.
// Implementations must be safe for concurrent use.
type Checker interface {
	Check(ctx context.Context, text string) ([]string, error)
}
