package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

// uriScheme is the custom URI scheme for deckhand resources.
const uriScheme = "deck://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the deck outline.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "outline",
		Name:        "outline",
		Description: "Deck title, sections and slide listing",
		MIMEType:    "application/json",
	}, s.handleOutlineResource)

	// Static resource for the facilitator guide.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "guide",
		Name:        "guide",
		Description: "Facilitator guide projected from the deck",
		MIMEType:    "application/json",
	}, s.handleGuideResource)

	// Template for individual slides.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "slides/{slideId}",
		Name:        "slide",
		Description: "A single slide by its id",
		MIMEType:    "application/json",
	}, s.handleSlideResource)

	// Recorded sessions, only when a response store is wired.
	if s.ports.Responses != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "sessions",
			Name:        "sessions",
			Description: "Recorded viewing sessions with response counts",
			MIMEType:    "application/json",
		}, s.handleSessionsResource)
	}
}

// outlineEntry is one slide row in the outline resource.
type outlineEntry struct {
	ID       int     `json:"id"`
	Type     string  `json:"type"`
	Label    string  `json:"label"`
	Section  string  `json:"section"`
	Duration float64 `json:"duration_minutes,omitempty"`
}

// outline is the JSON shape of the outline resource.
type outline struct {
	Title        string         `json:"title"`
	Sections     []string       `json:"sections"`
	SlideCount   int            `json:"slide_count"`
	TotalMinutes float64        `json:"total_minutes"`
	Slides       []outlineEntry `json:"slides"`
}

// handleOutlineResource returns the deck outline.
func (s *Server) handleOutlineResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	deck, err := s.ports.Deck.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading deck: %w", err)
	}

	out := outline{
		Title:        deck.Title(),
		Sections:     deck.Sections(),
		SlideCount:   deck.Len(),
		TotalMinutes: deck.TotalDuration(),
		Slides:       make([]outlineEntry, 0, deck.Len()),
	}
	for _, slide := range deck.Slides() {
		base := slide.Base()
		out.Slides = append(out.Slides, outlineEntry{
			ID:       base.ID,
			Type:     string(slide.Type()),
			Label:    domain.Label(slide),
			Section:  base.Section,
			Duration: base.Duration,
		})
	}

	return jsonResource(req.Params.URI, out)
}

// handleGuideResource returns the projected facilitator guide.
func (s *Server) handleGuideResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	deck, err := s.ports.Deck.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading deck: %w", err)
	}

	return jsonResource(req.Params.URI, s.ports.Guide.Project(deck))
}

// handleSlideResource returns one slide by id.
func (s *Server) handleSlideResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractSlideID(req.Params.URI)
	if id <= 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	deck, err := s.ports.Deck.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading deck: %w", err)
	}

	index, ok := deck.IndexOf(id)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	slide := deck.Slide(index)
	payload := map[string]any{
		"id":      slide.Base().ID,
		"type":    string(slide.Type()),
		"label":   domain.Label(slide),
		"section": slide.Base().Section,
		"slide":   slide,
	}

	return jsonResource(req.Params.URI, payload)
}

// sessionEntry is one recorded session in the sessions resource.
type sessionEntry struct {
	SessionID   string    `json:"session_id"`
	StartedAt   time.Time `json:"started_at"`
	PollAnswers int       `json:"poll_answers"`
	PollCorrect int       `json:"poll_correct"`
	Reflections int       `json:"reflections"`
}

// handleSessionsResource lists recorded sessions, newest first.
func (s *Server) handleSessionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	summaries, err := s.ports.Responses.Sessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	entries := make([]sessionEntry, 0, len(summaries))
	for _, sum := range summaries {
		entries = append(entries, sessionEntry{
			SessionID:   sum.SessionID,
			StartedAt:   sum.StartedAt,
			PollAnswers: sum.PollAnswers,
			PollCorrect: sum.PollCorrect,
			Reflections: sum.Reflections,
		})
	}

	return jsonResource(req.Params.URI, map[string]any{"sessions": entries})
}

// extractSlideID parses the slide id out of deck://slides/{slideId}.
func extractSlideID(uri string) int {
	rest, ok := strings.CutPrefix(uri, uriScheme+"slides/")
	if !ok {
		return 0
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0
	}
	return id
}

// jsonResource wraps a value as a JSON resource result.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
