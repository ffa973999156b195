package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	configfile "github.com/brightline-labs/deckhand-cli/internal/adapters/driven/config/file"
	deckfile "github.com/brightline-labs/deckhand-cli/internal/adapters/driven/content/file"
	"github.com/brightline-labs/deckhand-cli/internal/adapters/driven/content/github"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driven"
	"github.com/brightline-labs/deckhand-cli/internal/core/services"
	"github.com/brightline-labs/deckhand-cli/internal/logger"
)

// Deck source flags, shared by every command that loads a deck.
var (
	deckPath   string
	githubRepo string
	githubPath string
	githubRef  string
)

// addDeckFlags registers the deck source flags on a command.
func addDeckFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&deckPath, "deck", "", "path to the deck TOML file")
	cmd.Flags().StringVar(&githubRepo, "github", "", "GitHub repository (owner/name) holding the deck")
	cmd.Flags().StringVar(&githubPath, "github-path", "", "deck file path inside the repository")
	cmd.Flags().StringVar(&githubRef, "github-ref", "", "git ref to fetch (default branch if empty)")
}

// openConfig opens the user config store. A missing or unreadable
// config is not fatal; commands fall back to flags.
func openConfig() driven.ConfigStore {
	store, err := configfile.NewConfigStore("")
	if err != nil {
		logger.Warn("config unavailable: %v", err)
		return nil
	}
	return store
}

// resolveDeckSource picks the deck source from, in order: a positional
// argument, the --deck flag, the --github flags, then the config file.
func resolveDeckSource(args []string) (driven.DeckSource, error) {
	cfg := openConfig()

	path := deckPath
	if len(args) > 0 {
		path = args[0]
	}
	if path != "" {
		return deckfile.NewSource(path), nil
	}

	repo := githubRepo
	if repo == "" && cfg != nil {
		repo = cfg.GetString("github.repo")
	}
	if repo != "" {
		return resolveGitHubSource(cfg, repo)
	}

	if cfg != nil {
		if p := cfg.GetString("deck.path"); p != "" {
			return deckfile.NewSource(p), nil
		}
	}

	return nil, errors.New("no deck configured: pass a deck file, --deck, --github, or set deck.path in the config")
}

func resolveGitHubSource(cfg driven.ConfigStore, repo string) (driven.DeckSource, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("invalid repository %q, want owner/name", repo)
	}

	path := githubPath
	if path == "" && cfg != nil {
		path = cfg.GetString("github.path")
	}
	if path == "" {
		path = "deck.toml"
	}

	ref := githubRef
	if ref == "" && cfg != nil {
		ref = cfg.GetString("github.ref")
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" && cfg != nil {
		token = cfg.GetString("github.token")
	}

	return github.NewSource(owner, name, path, ref, token), nil
}

// newDeckService builds the deck service for the given args.
func newDeckService(args []string) (*services.DeckService, error) {
	source, err := resolveDeckSource(args)
	if err != nil {
		return nil, err
	}
	return services.NewDeckService(source), nil
}
