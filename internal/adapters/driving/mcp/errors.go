// Package mcp provides an MCP (Model Context Protocol) server adapter
// for deckhand. It lets AI assistants read the loaded deck, its slides
// and the facilitator guide.
package mcp

import "errors"

// ErrMissingDeckService is returned when the deck service is not provided.
var ErrMissingDeckService = errors.New("mcp: deck service is required")

// ErrMissingGuideService is returned when the guide service is not provided.
var ErrMissingGuideService = errors.New("mcp: guide service is required")
