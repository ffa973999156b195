// Package github loads presentation decks from files hosted in GitHub
// repositories, so a team can publish one canonical deck and have every
// facilitator present the same revision.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/brightline-labs/deckhand-cli/internal/adapters/driven/content/file"
	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driven"
	"github.com/brightline-labs/deckhand-cli/internal/logger"
)

// DefaultTimeout is the HTTP request timeout for content fetches.
const DefaultTimeout = 30 * time.Second

var _ driven.DeckSource = (*Source)(nil)

// Source fetches a deck TOML file from a GitHub repository.
type Source struct {
	owner string
	repo  string
	path  string
	ref   string
	token string

	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewSource creates a GitHub deck source. ref may be empty, in which
// case the repository's default branch is used. token may be empty for
// public repositories, at the cost of a much lower API quota.
func NewSource(owner, repo, path, ref, token string) *Source {
	return &Source{
		owner:       owner,
		repo:        repo,
		path:        path,
		ref:         ref,
		token:       token,
		rateLimiter: NewRateLimiter(),
	}
}

// ensureClient initializes the go-github client if not already done.
func (s *Source) ensureClient(ctx context.Context) {
	if s.gh != nil {
		return
	}

	var hc *http.Client
	if s.token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: s.token})
		hc = oauth2.NewClient(ctx, ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = DefaultTimeout
	s.gh = gh.NewClient(hc)
}

// Load fetches the deck file at the configured ref and decodes it.
func (s *Source) Load(ctx context.Context) (*domain.Deck, error) {
	s.ensureClient(ctx)

	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.RepositoryContentGetOptions{Ref: s.ref}
	content, _, resp, err := s.gh.Repositories.GetContents(ctx, s.owner, s.repo, s.path, opts)
	if resp != nil {
		s.rateLimiter.UpdateFromResponse(resp.Response)
	}
	if err != nil {
		return nil, s.wrapError(err)
	}
	if content == nil {
		return nil, fmt.Errorf("%w: %s is a directory, not a deck file", domain.ErrInvalidInput, s.path)
	}

	raw, err := content.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decoding %s content: %w", s.path, err)
	}

	logger.Debug("fetched deck %s from %s/%s@%s (%d bytes)",
		s.path, s.owner, s.repo, s.refLabel(), len(raw))

	return file.Decode([]byte(raw))
}

// Describe returns a human-readable origin for log and error messages.
func (s *Source) Describe() string {
	return fmt.Sprintf("github.com/%s/%s/%s@%s", s.owner, s.repo, s.path, s.refLabel())
}

func (s *Source) refLabel() string {
	if s.ref == "" {
		return "default"
	}
	return s.ref
}

// wrapError translates go-github errors into domain terms.
func (s *Source) wrapError(err error) error {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s not found in %s/%s", domain.ErrNotFound, s.path, s.owner, s.repo)
		case http.StatusTooManyRequests:
			return &RateLimitError{ResetAt: s.rateLimiter.ResetTime()}
		case http.StatusUnauthorized, http.StatusForbidden:
			if s.rateLimiter.Remaining() == 0 {
				return &RateLimitError{ResetAt: s.rateLimiter.ResetTime()}
			}
			return fmt.Errorf("access denied to %s/%s (check github.token): %w", s.owner, s.repo, err)
		}
	}
	return fmt.Errorf("fetching %s: %w", s.Describe(), err)
}
