package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
)

// AddCommentInput is the input schema for the add_comment tool.
type AddCommentInput struct {
	SessionID      string `json:"session_id" jsonschema:"session id returned by open_document"`
	ParagraphIndex int    `json:"paragraph_index" jsonschema:"paragraph to anchor the comment to"`
	Text           string `json:"text" jsonschema:"comment text"`
	Author         string `json:"author,omitempty" jsonschema:"comment author; defaults to the configured author"`
	StartOffset    *int   `json:"start_offset,omitempty" jsonschema:"optional character offset narrowing the anchor"`
	EndOffset      *int   `json:"end_offset,omitempty" jsonschema:"optional character offset narrowing the anchor"`
}

// CommentOutput is one comment in tool results.
type CommentOutput struct {
	ID             int           `json:"id"`
	Text           string        `json:"text"`
	Author         string        `json:"author"`
	ParagraphIndex int           `json:"paragraph_index"`
	Status         string        `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	Replies        []ReplyOutput `json:"replies,omitempty"`
}

// ReplyOutput is one threaded reply in tool results.
type ReplyOutput struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// ListCommentsInput is the input schema for the list_comments tool.
type ListCommentsInput struct {
	SessionID string `json:"session_id" jsonschema:"session id returned by open_document"`
	Status    string `json:"status,omitempty" jsonschema:"optional filter: open or resolved"`
}

// ListCommentsOutput is the output schema for the list_comments tool.
type ListCommentsOutput struct {
	Comments []CommentOutput `json:"comments"`
	Count    int             `json:"count"`
}

// CommentIDInput addresses a comment within an open session.
type CommentIDInput struct {
	SessionID string `json:"session_id" jsonschema:"session id returned by open_document"`
	CommentID int    `json:"comment_id" jsonschema:"comment id"`
}

// AddReplyInput is the input schema for the add_reply tool.
type AddReplyInput struct {
	SessionID string `json:"session_id" jsonschema:"session id returned by open_document"`
	CommentID int    `json:"comment_id" jsonschema:"comment to reply to"`
	Text      string `json:"text" jsonschema:"reply text"`
	Author    string `json:"author,omitempty" jsonschema:"reply author; defaults to the configured author"`
}

// AddRevisionInput is the input schema for the add_revision tool.
type AddRevisionInput struct {
	SessionID       string  `json:"session_id" jsonschema:"session id returned by open_document"`
	Action          string  `json:"action" jsonschema:"edit kind: insert, delete, format, move or replace"`
	ParagraphIndex  int     `json:"paragraph_index" jsonschema:"paragraph to anchor the revision to"`
	Author          string  `json:"author,omitempty" jsonschema:"revision author; defaults to the configured author"`
	OriginalContent *string `json:"original_content,omitempty" jsonschema:"content before the proposed edit"`
	NewContent      *string `json:"new_content,omitempty" jsonschema:"content after the proposed edit"`
}

// RevisionOutput is one revision in tool results.
type RevisionOutput struct {
	ID             int       `json:"id"`
	Action         string    `json:"action"`
	Author         string    `json:"author"`
	ParagraphIndex int       `json:"paragraph_index"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListRevisionsInput is the input schema for the list_revisions tool.
type ListRevisionsInput struct {
	SessionID   string `json:"session_id" jsonschema:"session id returned by open_document"`
	PendingOnly bool   `json:"pending_only,omitempty" jsonschema:"only list revisions still awaiting a decision"`
}

// ListRevisionsOutput is the output schema for the list_revisions tool.
type ListRevisionsOutput struct {
	Revisions []RevisionOutput `json:"revisions"`
	Count     int              `json:"count"`
}

// RevisionIDInput addresses a revision within an open session.
type RevisionIDInput struct {
	SessionID  string `json:"session_id" jsonschema:"session id returned by open_document"`
	RevisionID int    `json:"revision_id" jsonschema:"revision id"`
	By         string `json:"by,omitempty" jsonschema:"who processed the revision; defaults to the configured author"`
}

// ProcessAllInput is the input schema for the accept_all_revisions tool.
type ProcessAllInput struct {
	SessionID string `json:"session_id" jsonschema:"session id returned by open_document"`
	By        string `json:"by,omitempty" jsonschema:"who processed the revisions; defaults to the configured author"`
}

// ProcessedOutput reports how many pending revisions were processed.
type ProcessedOutput struct {
	Processed int `json:"processed"`
}

// registerAnnotationTools registers the comment and revision tool handlers.
func (s *Server) registerAnnotationTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_comment",
		Description: "Attach a comment to a paragraph",
	}, s.handleAddComment)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_comments",
		Description: "List comments, optionally filtered by status",
	}, s.handleListComments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_comment",
		Description: "Mark a comment as resolved",
	}, s.handleResolveComment)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_reply",
		Description: "Add a threaded reply to a comment",
	}, s.handleAddReply)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_revision",
		Description: "Record a tracked-change revision against a paragraph",
	}, s.handleAddRevision)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_revisions",
		Description: "List revisions, optionally only pending ones",
	}, s.handleListRevisions)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "accept_revision",
		Description: "Accept a pending revision and apply its edit",
	}, s.handleAcceptRevision)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reject_revision",
		Description: "Reject a pending revision without touching the body",
	}, s.handleRejectRevision)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "accept_all_revisions",
		Description: "Accept every pending revision in creation order",
	}, s.handleAcceptAllRevisions)
}

// handleAddComment handles the add_comment tool invocation.
func (s *Server) handleAddComment(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AddCommentInput,
) (*mcp.CallToolResult, CommentOutput, error) {
	author := input.Author
	if author == "" {
		author = s.ports.defaultAuthor()
	}

	var output CommentOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		c, err := eng.AddComment(input.Text, author, input.ParagraphIndex, input.StartOffset, input.EndOffset)
		if err != nil {
			return err
		}
		output = toCommentOutput(c)
		return nil
	})
	if err != nil {
		return nil, CommentOutput{}, err
	}
	return nil, output, nil
}

// handleListComments handles the list_comments tool invocation.
func (s *Server) handleListComments(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListCommentsInput,
) (*mcp.CallToolResult, ListCommentsOutput, error) {
	var output ListCommentsOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		var comments []domain.Comment
		switch domain.CommentStatus(input.Status) {
		case domain.CommentOpen:
			comments = eng.OpenComments()
		case domain.CommentResolved:
			comments = eng.ResolvedComments()
		default:
			comments = eng.Comments()
		}
		for _, c := range comments {
			output.Comments = append(output.Comments, toCommentOutput(c))
		}
		output.Count = len(comments)
		return nil
	})
	if err != nil {
		return nil, ListCommentsOutput{}, err
	}
	return nil, output, nil
}

// handleResolveComment handles the resolve_comment tool invocation.
func (s *Server) handleResolveComment(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CommentIDInput,
) (*mcp.CallToolResult, CommentOutput, error) {
	var output CommentOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		c, err := eng.ResolveComment(input.CommentID)
		if err != nil {
			return err
		}
		output = toCommentOutput(c)
		return nil
	})
	if err != nil {
		return nil, CommentOutput{}, err
	}
	return nil, output, nil
}

// handleAddReply handles the add_reply tool invocation.
func (s *Server) handleAddReply(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AddReplyInput,
) (*mcp.CallToolResult, ReplyOutput, error) {
	author := input.Author
	if author == "" {
		author = s.ports.defaultAuthor()
	}

	var output ReplyOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		r, err := eng.AddReply(input.CommentID, input.Text, author)
		if err != nil {
			return err
		}
		output = ReplyOutput{ID: r.ID, Text: r.Text, Author: r.Author, CreatedAt: r.CreatedAt}
		return nil
	})
	if err != nil {
		return nil, ReplyOutput{}, err
	}
	return nil, output, nil
}

// handleAddRevision handles the add_revision tool invocation.
func (s *Server) handleAddRevision(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AddRevisionInput,
) (*mcp.CallToolResult, RevisionOutput, error) {
	author := input.Author
	if author == "" {
		author = s.ports.defaultAuthor()
	}

	var output RevisionOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		r, err := eng.AddRevision(domain.RevisionAction(input.Action), author, input.ParagraphIndex, input.OriginalContent, input.NewContent)
		if err != nil {
			return err
		}
		output = toRevisionOutput(r)
		return nil
	})
	if err != nil {
		return nil, RevisionOutput{}, err
	}
	return nil, output, nil
}

// handleListRevisions handles the list_revisions tool invocation.
func (s *Server) handleListRevisions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListRevisionsInput,
) (*mcp.CallToolResult, ListRevisionsOutput, error) {
	var output ListRevisionsOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		revisions := eng.Revisions()
		if input.PendingOnly {
			revisions = eng.PendingRevisions()
		}
		for _, r := range revisions {
			output.Revisions = append(output.Revisions, toRevisionOutput(r))
		}
		output.Count = len(revisions)
		return nil
	})
	if err != nil {
		return nil, ListRevisionsOutput{}, err
	}
	return nil, output, nil
}

// handleAcceptRevision handles the accept_revision tool invocation.
func (s *Server) handleAcceptRevision(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RevisionIDInput,
) (*mcp.CallToolResult, RevisionOutput, error) {
	by := input.By
	if by == "" {
		by = s.ports.defaultAuthor()
	}

	var output RevisionOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		r, err := eng.AcceptRevision(input.RevisionID, by)
		if err != nil {
			return err
		}
		output = toRevisionOutput(r)
		return nil
	})
	if err != nil {
		return nil, RevisionOutput{}, err
	}
	return nil, output, nil
}

// handleRejectRevision handles the reject_revision tool invocation.
func (s *Server) handleRejectRevision(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RevisionIDInput,
) (*mcp.CallToolResult, RevisionOutput, error) {
	by := input.By
	if by == "" {
		by = s.ports.defaultAuthor()
	}

	var output RevisionOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		r, err := eng.RejectRevision(input.RevisionID, by)
		if err != nil {
			return err
		}
		output = toRevisionOutput(r)
		return nil
	})
	if err != nil {
		return nil, RevisionOutput{}, err
	}
	return nil, output, nil
}

// handleAcceptAllRevisions handles the accept_all_revisions tool invocation.
func (s *Server) handleAcceptAllRevisions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ProcessAllInput,
) (*mcp.CallToolResult, ProcessedOutput, error) {
	by := input.By
	if by == "" {
		by = s.ports.defaultAuthor()
	}

	var output ProcessedOutput
	err := s.ports.Sessions.With(input.SessionID, func(eng *engine.Engine) error {
		output.Processed = eng.AcceptAllRevisions(by)
		return nil
	})
	if err != nil {
		return nil, ProcessedOutput{}, err
	}
	return nil, output, nil
}

func toCommentOutput(c domain.Comment) CommentOutput {
	out := CommentOutput{
		ID:             c.ID,
		Text:           c.Text,
		Author:         c.Author,
		ParagraphIndex: c.ParagraphIndex,
		Status:         c.Status.String(),
		CreatedAt:      c.CreatedAt,
	}
	for _, r := range c.Replies {
		out.Replies = append(out.Replies, ReplyOutput{ID: r.ID, Text: r.Text, Author: r.Author, CreatedAt: r.CreatedAt})
	}
	return out
}

func toRevisionOutput(r domain.Revision) RevisionOutput {
	return RevisionOutput{
		ID:             r.ID,
		Action:         r.Action.String(),
		Author:         r.Author,
		ParagraphIndex: r.ParagraphIndex,
		Status:         r.Status.String(),
		CreatedAt:      r.CreatedAt,
	}
}
