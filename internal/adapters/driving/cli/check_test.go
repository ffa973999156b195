package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkTestDeck = `title = "Working With Vendors"
sections = ["Opening", "Closing"]

[[slides]]
type = "title"
id = 1
section = "Opening"
section_index = 1
duration = 2.0
title = "Working With Vendors"

[[slides]]
type = "poll"
id = 2
section = "Opening"
section_index = 1
duration = 4.0
title = "The Shared Login"
question = "A vendor asks for your login. What do you do?"
options = ["Share it, they are under contract", "Decline and open an access request"]
correct_answer = 1

[[slides]]
type = "quote"
id = 3
section = "Closing"
section_index = 2
duration = 1.5
quote = "Access follows contracts, not convenience."
author = "Vendor Handbook"
`

// writeTestDeck writes a deck file and returns its path.
func writeTestDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// runCommand executes the root command with args and captures output.
// Package-level deck flags are reset afterwards so tests stay isolated.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		deckPath = ""
		githubRepo = ""
		githubPath = ""
		githubRef = ""
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCheckCmd_ReportsDeckSummary(t *testing.T) {
	path := writeTestDeck(t, checkTestDeck)

	out, err := runCommand(t, "check", path)

	require.NoError(t, err)
	assert.Contains(t, out, ": ok")
	assert.Contains(t, out, "title:    Working With Vendors")
	assert.Contains(t, out, "sections: 2")
	assert.Contains(t, out, "slides:   3")
	assert.Contains(t, out, "duration: 7.5 min")
}

func TestCheckCmd_CountsSlidesByType(t *testing.T) {
	path := writeTestDeck(t, checkTestDeck)

	out, err := runCommand(t, "check", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Title:        1")
	assert.Contains(t, out, "Poll:         1")
	assert.Contains(t, out, "Quote:        1")
	assert.NotContains(t, out, "Reflection:")
}

func TestCheckCmd_RejectsInvalidDeck(t *testing.T) {
	path := writeTestDeck(t, `title = "Broken"
sections = ["Only"]

[[slides]]
type = "poll"
id = 1
section = "Only"
section_index = 1
title = "One Option"
question = "Pick"
options = ["Just this"]
`)

	_, err := runCommand(t, "check", path)

	assert.Error(t, err)
}

func TestCheckCmd_MissingFile(t *testing.T) {
	_, err := runCommand(t, "check", filepath.Join(t.TempDir(), "absent.toml"))

	assert.Error(t, err)
}

func TestGuideCmd_RendersGuide(t *testing.T) {
	path := writeTestDeck(t, checkTestDeck)

	out, err := runCommand(t, "guide", path, "--width", "80")

	require.NoError(t, err)
	assert.Contains(t, out, "Working With Vendors")
	assert.Contains(t, out, "[2] Poll: The Shared Login (4 min)")
	assert.Contains(t, out, "* 2. Decline and open an access request")
	assert.Contains(t, out, `"Access follows contracts, not convenience."`)
	assert.Contains(t, out, "Vendor Handbook")
}
