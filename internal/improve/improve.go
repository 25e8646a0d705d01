// Package improve defines the backend-agnostic interface for task improvement.
package improve

import "context"

// Improver rewrites a raw task description into a single concise,
// actionable task. All completion API calls go through this interface.
// Commands never import the SDK directly.
type Improver interface {
	// ImproveTask sends raw to the completion backend and returns the
	// improved text, trimmed, without checklist syntax.
	ImproveTask(ctx context.Context, raw string) (string, error)
}
