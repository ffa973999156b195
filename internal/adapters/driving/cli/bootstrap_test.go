package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deckfile "github.com/brightline-labs/deckhand-cli/internal/adapters/driven/content/file"
	"github.com/brightline-labs/deckhand-cli/internal/adapters/driven/content/github"
)

// isolateDeckFlags points HOME at an empty directory so the user config
// cannot leak into the test, and resets the shared deck flags.
func isolateDeckFlags(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GITHUB_TOKEN", "")
	deckPath = ""
	githubRepo = ""
	githubPath = ""
	githubRef = ""
	t.Cleanup(func() {
		deckPath = ""
		githubRepo = ""
		githubPath = ""
		githubRef = ""
	})
}

func TestResolveDeckSource_PositionalArgWins(t *testing.T) {
	isolateDeckFlags(t)
	deckPath = "flag.toml"

	source, err := resolveDeckSource([]string{"arg.toml"})

	require.NoError(t, err)
	fs, ok := source.(*deckfile.Source)
	require.True(t, ok)
	assert.Equal(t, "arg.toml", fs.Describe())
}

func TestResolveDeckSource_DeckFlag(t *testing.T) {
	isolateDeckFlags(t)
	deckPath = "flag.toml"

	source, err := resolveDeckSource(nil)

	require.NoError(t, err)
	fs, ok := source.(*deckfile.Source)
	require.True(t, ok)
	assert.Equal(t, "flag.toml", fs.Describe())
}

func TestResolveDeckSource_GitHubFlag(t *testing.T) {
	isolateDeckFlags(t)
	githubRepo = "brightline/decks"
	githubRef = "main"

	source, err := resolveDeckSource(nil)

	require.NoError(t, err)
	gs, ok := source.(*github.Source)
	require.True(t, ok)
	assert.Equal(t, "github.com/brightline/decks/deck.toml@main", gs.Describe())
}

func TestResolveDeckSource_GitHubPathDefaults(t *testing.T) {
	isolateDeckFlags(t)
	githubRepo = "brightline/decks"

	source, err := resolveDeckSource(nil)

	require.NoError(t, err)
	assert.Contains(t, source.Describe(), "/deck.toml@default")
}

func TestResolveDeckSource_InvalidRepo(t *testing.T) {
	tests := []struct {
		name string
		repo string
	}{
		{name: "No slash", repo: "justaname"},
		{name: "Empty owner", repo: "/decks"},
		{name: "Empty name", repo: "brightline/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateDeckFlags(t)
			githubRepo = tt.repo

			_, err := resolveDeckSource(nil)

			assert.ErrorContains(t, err, "want owner/name")
		})
	}
}

func TestResolveDeckSource_NothingConfigured(t *testing.T) {
	isolateDeckFlags(t)

	_, err := resolveDeckSource(nil)

	assert.ErrorContains(t, err, "no deck configured")
}
