package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
)

// OpenDocumentInput is the input schema for the open_document tool.
type OpenDocumentInput struct {
	Path string `json:"path" jsonschema:"path to the redline document file to open"`
}

// OpenDocumentOutput is the output schema for the open_document tool.
type OpenDocumentOutput struct {
	SessionID  string `json:"session_id"`
	Paragraphs int    `json:"paragraphs"`
	Tables     int    `json:"tables"`
}

// SessionInput addresses an open session.
type SessionInput struct {
	SessionID string `json:"session_id" jsonschema:"session id returned by open_document"`
}

// ParagraphOutput is one paragraph in tool results.
type ParagraphOutput struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	Style     string `json:"style,omitempty"`
	Alignment string `json:"alignment,omitempty"`
	Runs      int    `json:"runs"`
}

// ListParagraphsOutput is the output schema for the list_paragraphs tool.
type ListParagraphsOutput struct {
	Paragraphs []ParagraphOutput `json:"paragraphs"`
	Count      int               `json:"count"`
}

// AddParagraphInput is the input schema for the add_paragraph tool.
type AddParagraphInput struct {
	SessionID string `json:"session_id" jsonschema:"session id returned by open_document"`
	Text      string `json:"text" jsonschema:"paragraph text content"`
	Style     string `json:"style,omitempty" jsonschema:"optional style name to apply"`
	Alignment string `json:"alignment,omitempty" jsonschema:"optional alignment: left, center, right, justify or distribute"`
}

// AddParagraphOutput is the output schema for the add_paragraph tool.
type AddParagraphOutput struct {
	Index int `json:"index"`
}

// UpdateParagraphInput is the input schema for the update_paragraph tool.
type UpdateParagraphInput struct {
	SessionID string  `json:"session_id" jsonschema:"session id returned by open_document"`
	Index     int     `json:"index" jsonschema:"paragraph index to update"`
	Text      *string `json:"text,omitempty" jsonschema:"new text; replaces all runs with a single unformatted run"`
	Style     *string `json:"style,omitempty" jsonschema:"new style name"`
	Alignment *string `json:"alignment,omitempty" jsonschema:"new alignment"`
}

// DeleteParagraphInput is the input schema for the delete_paragraph tool.
type DeleteParagraphInput struct {
	SessionID string `json:"session_id" jsonschema:"session id returned by open_document"`
	Index     int    `json:"index" jsonschema:"paragraph index to delete"`
}

// DeletedOutput reports a completed delete.
type DeletedOutput struct {
	Deleted bool `json:"deleted"`
}

// FindTextInput is the input schema for the find_text tool.
type FindTextInput struct {
	SessionID     string `json:"session_id" jsonschema:"session id returned by open_document"`
	Query         string `json:"query" jsonschema:"text to search for"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"match case exactly"`
	WholeWord     bool   `json:"whole_word,omitempty" jsonschema:"match whole words only"`
}

// MatchOutput is one search hit.
type MatchOutput struct {
	ParagraphIndex int    `json:"paragraph_index"`
	Offset         int    `json:"offset"`
	Length         int    `json:"length"`
	Text           string `json:"text"`
}

// FindTextOutput is the output schema for the find_text tool.
type FindTextOutput struct {
	Matches []MatchOutput `json:"matches"`
	Count   int           `json:"count"`
}

// ReplaceTextInput is the input schema for the replace_text tool.
type ReplaceTextInput struct {
	SessionID     string `json:"session_id" jsonschema:"session id returned by open_document"`
	Find          string `json:"find" jsonschema:"text to find"`
	Replace       string `json:"replace" jsonschema:"replacement text"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"match case exactly"`
	WholeWord     bool   `json:"whole_word,omitempty" jsonschema:"match whole words only (case-insensitive mode)"`
}

// ReplaceTextOutput is the output schema for the replace_text tool.
type ReplaceTextOutput struct {
	Replaced int `json:"replaced"`
}

// SavedOutput reports a completed save.
type SavedOutput struct {
	Saved bool `json:"saved"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "open_document",
		Description: "Open a redline document and start an editing session",
	}, s.handleOpenDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_document",
		Description: "Save an open session back to its file",
	}, s.handleSaveDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "close_document",
		Description: "Save and close an editing session",
	}, s.handleCloseDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_paragraphs",
		Description: "List all paragraphs in the document",
	}, s.handleListParagraphs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_paragraph",
		Description: "Append a paragraph to the document",
	}, s.handleAddParagraph)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_paragraph",
		Description: "Update a paragraph's text, style or alignment",
	}, s.handleUpdateParagraph)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_paragraph",
		Description: "Delete a paragraph; later paragraphs shift back by one",
	}, s.handleDeleteParagraph)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_text",
		Description: "Find all occurrences of text across the document",
	}, s.handleFindText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "replace_text",
		Description: "Replace text across the document at run granularity",
	}, s.handleReplaceText)

	s.registerAnnotationTools()
}

// handleOpenDocument handles the open_document tool invocation.
func (s *Server) handleOpenDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OpenDocumentInput,
) (*mcp.CallToolResult, OpenDocumentOutput, error) {
	info, err := s.ports.Sessions.Open(ctx, input.Path)
	if err != nil {
		return nil, OpenDocumentOutput{}, err
	}

	output := OpenDocumentOutput{SessionID: info.ID}
	err = s.ports.Sessions.With(info.ID, func(eng *engine.Engine) error {
		output.Paragraphs = eng.ParagraphCount()
		output.Tables = eng.TableCount()
		return nil
	})
	if err != nil {
		return nil, OpenDocumentOutput{}, err
	}
	return nil, output, nil
}

// handleSaveDocument handles the save_document tool invocation.
func (s *Server) handleSaveDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SessionInput,
) (*mcp.CallToolResult, SavedOutput, error) {
	if err := s.ports.Sessions.Save(ctx, input.SessionID); err != nil {
		return nil, SavedOutput{}, err
	}
	return nil, SavedOutput{Saved: true}, nil
}

// handleCloseDocument handles the close_document tool invocation.
func (s *Server) handleCloseDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SessionInput,
) (*mcp.CallToolResult, SavedOutput, error) {
	if err := s.ports.Sessions.Close(ctx, input.SessionID); err != nil {
		return nil, SavedOutput{}, err
	}
	return nil, SavedOutput{Saved: true}, nil
}

// handleListParagraphs handles the list_paragraphs tool invocation.
func (s *Server) handleListParagraphs(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SessionInput,
) (*mcp.CallToolResult, ListParagraphsOutput, error) {
	var output ListParagraphsOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		for _, p := range eng.Paragraphs() {
			output.Paragraphs = append(output.Paragraphs, toParagraphOutput(p))
		}
		output.Count = len(output.Paragraphs)
		return nil
	})
	if err != nil {
		return nil, ListParagraphsOutput{}, err
	}
	return nil, output, nil
}

// handleAddParagraph handles the add_paragraph tool invocation.
func (s *Server) handleAddParagraph(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AddParagraphInput,
) (*mcp.CallToolResult, AddParagraphOutput, error) {
	var output AddParagraphOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		var style *string
		if input.Style != "" {
			style = &input.Style
		}
		var alignment *domain.Alignment
		if input.Alignment != "" {
			a := domain.Alignment(input.Alignment)
			alignment = &a
		}

		index, err := eng.AddParagraph(input.Text, style, alignment)
		if err != nil {
			return err
		}
		output.Index = index
		return nil
	})
	if err != nil {
		return nil, AddParagraphOutput{}, err
	}
	return nil, output, nil
}

// handleUpdateParagraph handles the update_paragraph tool invocation.
func (s *Server) handleUpdateParagraph(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input UpdateParagraphInput,
) (*mcp.CallToolResult, ParagraphOutput, error) {
	var output ParagraphOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		var alignment *domain.Alignment
		if input.Alignment != nil {
			a := domain.Alignment(*input.Alignment)
			alignment = &a
		}

		p, err := eng.UpdateParagraph(input.Index, input.Text, input.Style, alignment)
		if err != nil {
			return err
		}
		output = toParagraphOutput(p)
		return nil
	})
	if err != nil {
		return nil, ParagraphOutput{}, err
	}
	return nil, output, nil
}

// handleDeleteParagraph handles the delete_paragraph tool invocation.
func (s *Server) handleDeleteParagraph(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DeleteParagraphInput,
) (*mcp.CallToolResult, DeletedOutput, error) {
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		return eng.DeleteParagraph(input.Index)
	})
	if err != nil {
		return nil, DeletedOutput{}, err
	}
	return nil, DeletedOutput{Deleted: true}, nil
}

// handleFindText handles the find_text tool invocation.
func (s *Server) handleFindText(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FindTextInput,
) (*mcp.CallToolResult, FindTextOutput, error) {
	var output FindTextOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		matches := eng.FindText(input.Query, domain.SearchOptions{
			CaseSensitive: input.CaseSensitive,
			WholeWord:     input.WholeWord,
		})
		for _, m := range matches {
			output.Matches = append(output.Matches, MatchOutput(m))
		}
		output.Count = len(matches)
		return nil
	})
	if err != nil {
		return nil, FindTextOutput{}, err
	}
	return nil, output, nil
}

// handleReplaceText handles the replace_text tool invocation.
func (s *Server) handleReplaceText(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ReplaceTextInput,
) (*mcp.CallToolResult, ReplaceTextOutput, error) {
	var output ReplaceTextOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		output.Replaced = eng.ReplaceText(input.Find, input.Replace, domain.SearchOptions{
			CaseSensitive: input.CaseSensitive,
			WholeWord:     input.WholeWord,
		})
		return nil
	})
	if err != nil {
		return nil, ReplaceTextOutput{}, err
	}
	return nil, output, nil
}

func toParagraphOutput(p domain.Paragraph) ParagraphOutput {
	out := ParagraphOutput{
		Index: p.Index,
		Text:  p.Text(),
		Runs:  len(p.Runs),
	}
	if p.Style != nil {
		out.Style = *p.Style
	}
	if p.Alignment != nil {
		out.Alignment = p.Alignment.String()
	}
	return out
}
