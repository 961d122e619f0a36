package driving

import (
	"context"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
)

// DocumentService performs one-shot edits on document files: open the
// file through the document codec, run the edit against a fresh engine
// instance, and save on exit. Each call owns its engine exclusively,
// which is the single-writer contract for CLI-style callers.
type DocumentService interface {
	// Create writes a new empty document to path.
	Create(ctx context.Context, path string) error

	// View opens the document at path read-only and passes the engine
	// to fn. Mutations made inside fn are discarded.
	View(ctx context.Context, path string, fn func(*engine.Engine) error) error

	// Edit opens the document at path, passes the engine to fn, and
	// saves the document back to path when fn returns nil. A non-nil
	// error from fn discards the changes.
	Edit(ctx context.Context, path string, fn func(*engine.Engine) error) error

	// ExecuteBatch runs typed operations in order against the document
	// at path. Per-item failures become result records; stopOnError
	// aborts at the first failure and discards all changes, otherwise
	// the partial result is saved.
	ExecuteBatch(ctx context.Context, path string, ops []domain.Operation, stopOnError bool) (BatchOutcome, error)
}

// BatchOutcome reports a batch execution: one result record per
// attempted operation, with the original failure kind attached to the
// failed items.
type BatchOutcome struct {
	// Results holds one record per attempted operation.
	Results []domain.OperationResult

	// Succeeded and Failed count the attempted operations.
	Succeeded int
	Failed    int

	// Saved reports whether the document was written back.
	Saved bool
}
