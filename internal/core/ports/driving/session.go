package driving

import (
	"context"
	"time"

	"github.com/redline-labs/redline-cli/internal/core/engine"
)

// SessionService hands out exclusive engine handles for long-lived
// callers such as the MCP server. Exactly one engine instance exists
// per open document; all access to it is serialized through With, so
// the single-writer contract is carried by the session table instead
// of by accident of deployment.
type SessionService interface {
	// Open loads the document at path into a new session and returns
	// its descriptor. The session id is the handle for all further
	// calls.
	Open(ctx context.Context, path string) (SessionInfo, error)

	// Get returns the descriptor for an open session.
	Get(id string) (SessionInfo, error)

	// List returns descriptors for all open sessions.
	List() []SessionInfo

	// With runs fn against the session's engine while holding the
	// session's exclusive lock. The engine must not escape fn.
	With(id string, fn func(*engine.Engine) error) error

	// Save serializes the session's current state back to its file.
	Save(ctx context.Context, id string) error

	// Close saves and discards the session.
	Close(ctx context.Context, id string) error
}

// SessionInfo describes an open document session.
type SessionInfo struct {
	// ID is the opaque session handle.
	ID string

	// Path is the document file the session was loaded from.
	Path string

	// OpenedAt is when the session was created.
	OpenedAt time.Time
}
