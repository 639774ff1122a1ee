// Package store persists agent results keyed by subject id and role. The
// orchestration core writes through the Gateway interface and never reads
// back during a run; reads serve the surrounding application.
package store

import (
	"context"

	"github.com/adalundhe/boardroom/core/review"
)

// Gateway stores and fetches agent results. Implementations must preserve
// insertion order in LoadAll.
type Gateway interface {
	// Save records one result for a subject. Saving the same subject/role
	// pair again (a manual seat retry) replaces the earlier result without
	// changing its position.
	Save(ctx context.Context, subjectID string, res review.AgentResult) error

	// LoadAll returns every stored result for a subject in insertion order.
	LoadAll(ctx context.Context, subjectID string) ([]review.AgentResult, error)

	// DeleteAll removes a subject's results and reports how many were
	// deleted.
	DeleteAll(ctx context.Context, subjectID string) (int64, error)
}
