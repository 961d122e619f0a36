// Package docjson implements the document store collaborator as a
// versioned JSON container. It is the storage format for redline
// documents; binary word-processor formats stay outside the engine
// boundary.
package docjson

import (
	"encoding/json"
	"fmt"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/ports/driven"
)

// FormatVersion is the container version written by Encode. Decode
// accepts this version only.
const FormatVersion = 1

// Ensure Codec implements the interface.
var _ driven.DocumentCodec = (*Codec)(nil)

// container is the on-disk document envelope.
type container struct {
	Version  int             `json:"version"`
	Document domain.Snapshot `json:"document"`
}

// Codec encodes and decodes document snapshots as JSON.
type Codec struct{}

// New creates a new JSON document codec.
func New() *Codec {
	return &Codec{}
}

// Decode parses stored bytes into a document snapshot.
func (c *Codec) Decode(data []byte) (domain.Snapshot, error) {
	var env container
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: malformed document container: %v", domain.ErrInvalidInput, err)
	}
	if env.Version != FormatVersion {
		return domain.Snapshot{}, fmt.Errorf("%w: unsupported document version %d", domain.ErrUnsupported, env.Version)
	}
	if err := validate(env.Document); err != nil {
		return domain.Snapshot{}, err
	}
	return env.Document, nil
}

// Encode serializes a document snapshot into storable bytes.
func (c *Codec) Encode(snap domain.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(container{Version: FormatVersion, Document: snap}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling document: %w", err)
	}
	return append(data, '\n'), nil
}

// validate rejects containers whose content could not have been
// produced by the engine.
func validate(snap domain.Snapshot) error {
	for _, p := range snap.Paragraphs {
		if p.Alignment != nil && !p.Alignment.IsValid() {
			return fmt.Errorf("%w: paragraph alignment %q", domain.ErrInvalidInput, *p.Alignment)
		}
	}
	for _, t := range snap.Tables {
		for _, row := range t.Cells {
			if len(row) != t.Cols() {
				return fmt.Errorf("%w: ragged table grid", domain.ErrInvalidInput)
			}
		}
	}
	for _, s := range snap.Styles {
		if !s.Type.IsValid() {
			return fmt.Errorf("%w: style type %q", domain.ErrInvalidInput, s.Type)
		}
	}
	for _, r := range snap.Revisions {
		if !r.Action.IsValid() {
			return fmt.Errorf("%w: revision action %q", domain.ErrInvalidInput, r.Action)
		}
	}
	for _, cm := range snap.Comments {
		if !cm.Status.IsValid() {
			return fmt.Errorf("%w: comment status %q", domain.ErrInvalidInput, cm.Status)
		}
	}
	return nil
}
