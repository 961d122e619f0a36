package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/redline-labs/redline-cli/internal/core/engine"
)

const (
	// URIScheme is the custom URI scheme for Redline resources.
	uriScheme = "redline://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing open sessions.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sessions",
		Name:        "sessions",
		Description: "List of all open document sessions",
		MIMEType:    "application/json",
	}, s.handleSessionsResource)

	// Template for a session's plain text rendering.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sessions/{sessionId}/text",
		Name:        "session-text",
		Description: "Plain text of the document in a session",
		MIMEType:    "text/plain",
	}, s.handleSessionTextResource)

	// Template for a session's comment threads.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sessions/{sessionId}/comments",
		Name:        "session-comments",
		Description: "Comment threads on the document in a session",
		MIMEType:    "application/json",
	}, s.handleSessionCommentsResource)
}

// handleSessionsResource returns a list of all open sessions.
func (s *Server) handleSessionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Build simplified session list.
	type sessionInfo struct {
		ID       string `json:"id"`
		Path     string `json:"path"`
		OpenedAt string `json:"opened_at"`
	}

	sessions := s.ports.Sessions.List()
	infos := make([]sessionInfo, len(sessions))
	for i, sess := range sessions {
		infos[i] = sessionInfo{
			ID:       sess.ID,
			Path:     sess.Path,
			OpenedAt: sess.OpenedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sessions: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSessionTextResource returns the document text for a session.
func (s *Server) handleSessionTextResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract sessionId from URI: redline://sessions/{sessionId}/text
	sessionID := extractSessionID(req.Params.URI, "/text")
	if sessionID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	var text string
	err := s.ports.Sessions.With(sessionID, func(eng *engine.Engine) error {
		lines := make([]string, 0, eng.ParagraphCount())
		for _, p := range eng.Paragraphs() {
			lines = append(lines, p.Text())
		}
		text = strings.Join(lines, "\n")
		return nil
	})
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}

// handleSessionCommentsResource returns the comment threads for a session.
func (s *Server) handleSessionCommentsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract sessionId from URI: redline://sessions/{sessionId}/comments
	sessionID := extractSessionID(req.Params.URI, "/comments")
	if sessionID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	var comments []CommentOutput
	err := s.ports.Sessions.With(sessionID, func(eng *engine.Engine) error {
		for _, c := range eng.Comments() {
			comments = append(comments, toCommentOutput(c))
		}
		return nil
	})
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(comments, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling comments: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSessionID extracts the session ID from a URI like
// redline://sessions/{sessionId}/text.
func extractSessionID(uri, suffix string) string {
	const prefix = uriScheme + "sessions/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
