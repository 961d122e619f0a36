package mcp

import (
	"github.com/redline-labs/redline-cli/internal/core/ports/driven"
	"github.com/redline-labs/redline-cli/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sessions hands out exclusive engine handles per open document.
	Sessions driving.SessionService

	// Config supplies defaults such as the author name. Optional.
	Config driven.ConfigStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Sessions == nil {
		return ErrMissingSessionService
	}
	// Config is optional
	return nil
}

// HTTPPort resolves the port to serve HTTP on: an explicit non-zero
// port wins over the configured mcp.port. Zero means stdio.
func (p *Ports) HTTPPort(explicit int) int {
	if explicit > 0 {
		return explicit
	}
	if p.Config != nil {
		if configured := p.Config.GetInt("mcp.port"); configured > 0 {
			return configured
		}
	}
	return 0
}

// defaultAuthor returns the configured default author, or a fallback.
func (p *Ports) defaultAuthor() string {
	if p.Config != nil {
		if name := p.Config.GetString("author.name"); name != "" {
			return name
		}
	}
	return "redline"
}
