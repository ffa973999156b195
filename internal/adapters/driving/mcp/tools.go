package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

// FindSlidesInput is the input schema for the find_slides tool.
type FindSlidesInput struct {
	Query string `json:"query" jsonschema:"text to look for in slide titles, talking points and prompts"`
}

// FindSlidesOutput is the output schema for the find_slides tool.
type FindSlidesOutput struct {
	Matches []SlideMatch `json:"matches"`
	Count   int          `json:"count"`
}

// SlideMatch is one matching slide.
type SlideMatch struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Label   string `json:"label"`
	Section string `json:"section"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_slides",
		Description: "Find slides whose text contains the given query",
	}, s.handleFindSlides)
}

// handleFindSlides handles the find_slides tool invocation.
func (s *Server) handleFindSlides(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindSlidesInput,
) (*mcp.CallToolResult, FindSlidesOutput, error) {
	deck, err := s.ports.Deck.Load(ctx)
	if err != nil {
		return nil, FindSlidesOutput{}, err
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	output := FindSlidesOutput{Matches: []SlideMatch{}}
	if query == "" {
		return nil, output, nil
	}

	for _, slide := range deck.Slides() {
		if !slideContains(slide, query) {
			continue
		}
		output.Matches = append(output.Matches, SlideMatch{
			ID:      slide.Base().ID,
			Type:    string(slide.Type()),
			Label:   domain.Label(slide),
			Section: slide.Base().Section,
		})
	}
	output.Count = len(output.Matches)

	return nil, output, nil
}

// slideContains reports whether any of the slide's text fields contain
// the lowercased query.
func slideContains(slide domain.Slide, query string) bool {
	var fields []string

	switch v := slide.(type) {
	case *domain.TitleSlide:
		fields = []string{v.Title, v.Subtitle, v.Quote}
	case *domain.ContentSlide:
		fields = append([]string{v.Title, v.Objective, v.DiscussionPrompt}, v.TalkingPoints...)
	case *domain.PollSlide:
		fields = append([]string{v.Title, v.Scenario, v.Question, v.Explanation}, v.Options...)
	case *domain.ReflectionSlide:
		fields = append([]string{v.Title, v.Prompt}, v.TalkingPoints...)
	case *domain.TableSlide:
		fields = append([]string{v.Title}, v.Headers...)
		for _, row := range v.Rows {
			fields = append(fields, row...)
		}
	case *domain.QuoteSlide:
		fields = []string{v.Quote, v.Author, v.Context}
	case *domain.TreeSlide:
		fields = []string{v.Title}
		for _, step := range v.Steps {
			fields = append(fields, step.Title, step.Description)
		}
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
