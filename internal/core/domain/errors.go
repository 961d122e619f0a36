package domain

import "errors"

// Domain errors represent engine-level failures.
// Every engine method validates its preconditions and fails with one of
// these sentinels (wrapped with context) before mutating anything.
var (
	// ErrIndexOutOfRange indicates a positional index (paragraph, run,
	// table, row, column, cell) is outside the current valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotFound indicates an entity addressed by id or name
	// (revision, comment, style, bookmark) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed input: bad table dimensions,
	// an invalid merge range, a malformed color string, an unknown
	// enum value, or an out-of-range offset.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState indicates an operation on a revision that is no
	// longer pending. Accept and reject are terminal transitions.
	ErrInvalidState = errors.New("invalid state")

	// ErrAlreadyExists indicates a name collision on create
	// (style name, bookmark name).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnsupported indicates a structurally disallowed mutation,
	// such as deleting a built-in style.
	ErrUnsupported = errors.New("unsupported operation")
)
