package docjson

import (
	"encoding/json"
	"fmt"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// opEnvelope is the wire shape of one batch step: a discriminator plus
// the operation's parameters.
type opEnvelope struct {
	Op     string          `json:"op"`
	Params json.RawMessage `json:"params"`
}

// DecodeOperations parses a JSON array of batch steps into typed
// operations. Each step is {"op": name, "params": {...}}; an unknown
// name fails the whole decode, which keeps the operation set closed at
// the wire boundary too.
func DecodeOperations(data []byte) ([]domain.Operation, error) {
	var envelopes []opEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return nil, fmt.Errorf("%w: parsing batch: %v", domain.ErrInvalidInput, err)
	}

	ops := make([]domain.Operation, 0, len(envelopes))
	for i, env := range envelopes {
		op, err := decodeOperation(env)
		if err != nil {
			return nil, fmt.Errorf("batch step %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func decodeOperation(env opEnvelope) (domain.Operation, error) {
	params := env.Params
	if params == nil {
		params = []byte("{}")
	}

	var op domain.Operation
	switch env.Op {
	case "add_paragraph":
		op = &domain.AddParagraphOp{}
	case "insert_paragraph":
		op = &domain.InsertParagraphOp{}
	case "update_paragraph":
		op = &domain.UpdateParagraphOp{}
	case "delete_paragraph":
		op = &domain.DeleteParagraphOp{}
	case "replace_text":
		op = &domain.ReplaceTextOp{}
	case "insert_text":
		op = &domain.InsertTextOp{}
	case "format_run":
		op = &domain.FormatRunOp{}
	case "add_table":
		op = &domain.AddTableOp{}
	case "set_cell":
		op = &domain.SetCellOp{}
	case "set_metadata":
		op = &domain.SetMetadataOp{}
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidInput, env.Op)
	}

	if err := json.Unmarshal(params, op); err != nil {
		return nil, fmt.Errorf("%w: parsing %s params: %v", domain.ErrInvalidInput, env.Op, err)
	}
	return deref(op), nil
}

// deref returns the value form of a decoded operation so batch apply
// matches on value types.
func deref(op domain.Operation) domain.Operation {
	switch v := op.(type) {
	case *domain.AddParagraphOp:
		return *v
	case *domain.InsertParagraphOp:
		return *v
	case *domain.UpdateParagraphOp:
		return *v
	case *domain.DeleteParagraphOp:
		return *v
	case *domain.ReplaceTextOp:
		return *v
	case *domain.InsertTextOp:
		return *v
	case *domain.FormatRunOp:
		return *v
	case *domain.AddTableOp:
		return *v
	case *domain.SetCellOp:
		return *v
	case *domain.SetMetadataOp:
		return *v
	default:
		return op
	}
}
