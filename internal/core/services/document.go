package services

import (
	"context"
	"fmt"
	"os"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
	"github.com/redline-labs/redline-cli/internal/core/ports/driven"
	"github.com/redline-labs/redline-cli/internal/core/ports/driving"
	"github.com/redline-labs/redline-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService opens, edits, and saves document files through the
// document codec. Every call builds a fresh engine instance, so
// exclusive ownership holds for the duration of the call.
type DocumentService struct {
	codec driven.DocumentCodec
}

// NewDocumentService creates a new document service.
func NewDocumentService(codec driven.DocumentCodec) *DocumentService {
	return &DocumentService{codec: codec}
}

// Create writes a new empty document to path. The file must not
// already exist.
func (s *DocumentService) Create(_ context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: document %s", domain.ErrAlreadyExists, path)
	}

	data, err := s.codec.Encode(engine.New().Snapshot())
	if err != nil {
		return fmt.Errorf("encoding empty document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	logger.Debug("created document %s", path)
	return nil
}

// View opens the document read-only and passes the engine to fn.
func (s *DocumentService) View(_ context.Context, path string, fn func(*engine.Engine) error) error {
	eng, err := s.load(path)
	if err != nil {
		return err
	}
	return fn(eng)
}

// Edit opens the document, passes the engine to fn, and saves the
// result when fn returns nil.
func (s *DocumentService) Edit(_ context.Context, path string, fn func(*engine.Engine) error) error {
	eng, err := s.load(path)
	if err != nil {
		return err
	}
	if err := fn(eng); err != nil {
		return err
	}
	return s.save(path, eng)
}

// ExecuteBatch runs typed operations in order. Per-item failures are
// recorded and, unless stopOnError is set, the batch continues and the
// partial result is saved. With stopOnError the first failure aborts
// the batch and nothing is written.
func (s *DocumentService) ExecuteBatch(_ context.Context, path string, ops []domain.Operation, stopOnError bool) (driving.BatchOutcome, error) {
	eng, err := s.load(path)
	if err != nil {
		return driving.BatchOutcome{}, err
	}

	outcome := driving.BatchOutcome{}
	for i, op := range ops {
		value, err := eng.Apply(op)
		result := domain.OperationResult{
			Index:     i,
			Operation: op.Name(),
			Value:     value,
			Err:       err,
		}
		outcome.Results = append(outcome.Results, result)
		if err != nil {
			outcome.Failed++
			logger.Warn("batch step %d (%s) failed: %v", i, op.Name(), err)
			if stopOnError {
				break
			}
			continue
		}
		outcome.Succeeded++
	}

	if outcome.Failed > 0 && stopOnError {
		return outcome, nil
	}
	if err := s.save(path, eng); err != nil {
		return outcome, err
	}
	outcome.Saved = true
	return outcome, nil
}

func (s *DocumentService) load(path string) (*engine.Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: document %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading document: %w", err)
	}

	snap, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding document %s: %w", path, err)
	}
	logger.Debug("loaded %s: %d paragraphs, %d tables", path, len(snap.Paragraphs), len(snap.Tables))
	return engine.Load(snap), nil
}

func (s *DocumentService) save(path string, eng *engine.Engine) error {
	data, err := s.codec.Encode(eng.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	logger.Debug("saved %s (%d bytes)", path, len(data))
	return nil
}
