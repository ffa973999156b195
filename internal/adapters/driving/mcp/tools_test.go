package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleFindSlides_MatchesAcrossFields(t *testing.T) {
	server, err := NewServer(testPorts())
	require.NoError(t, err)

	_, out, err := server.handleFindSlides(context.Background(), nil,
		FindSlidesInput{Query: "spreadsheet"})

	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, 3, out.Matches[0].ID)
	assert.Equal(t, "poll", out.Matches[0].Type)
}

func TestHandleFindSlides_CaseInsensitive(t *testing.T) {
	server, err := NewServer(testPorts())
	require.NoError(t, err)

	_, out, err := server.handleFindSlides(context.Background(), nil,
		FindSlidesInput{Query: "BREACH"})

	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, 6, out.Matches[0].ID)
}

func TestHandleFindSlides_EmptyQuery(t *testing.T) {
	server, err := NewServer(testPorts())
	require.NoError(t, err)

	_, out, err := server.handleFindSlides(context.Background(), nil,
		FindSlidesInput{Query: "   "})

	require.NoError(t, err)
	assert.Zero(t, out.Count)
	assert.Empty(t, out.Matches)
}

func TestHandleFindSlides_NoMatches(t *testing.T) {
	server, err := NewServer(testPorts())
	require.NoError(t, err)

	_, out, err := server.handleFindSlides(context.Background(), nil,
		FindSlidesInput{Query: "blockchain"})

	require.NoError(t, err)
	assert.Zero(t, out.Count)
}

func TestHandleFindSlides_LoadError(t *testing.T) {
	ports := testPorts()
	ports.Deck = &mockDeckService{err: errors.New("gone")}
	server, err := NewServer(ports)
	require.NoError(t, err)

	_, _, err = server.handleFindSlides(context.Background(), nil,
		FindSlidesInput{Query: "label"})

	assert.Error(t, err)
}
