package driven

import (
	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// DocumentCodec is the document store collaborator: it turns stored
// bytes into a snapshot the engine can load, and a snapshot back into
// bytes. The engine never sees a file path or stream; callers hand
// bytes to the codec before and after a batch of engine calls.
type DocumentCodec interface {
	// Decode parses stored bytes into a document snapshot.
	Decode(data []byte) (domain.Snapshot, error)

	// Encode serializes a document snapshot into storable bytes.
	Encode(snap domain.Snapshot) ([]byte, error)
}
