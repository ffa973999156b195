package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brightline-labs/deckhand-cli/internal/adapters/driven/storage/sqlite"
	"github.com/brightline-labs/deckhand-cli/internal/adapters/driving/tui"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driving"
	"github.com/brightline-labs/deckhand-cli/internal/core/services"
	"github.com/brightline-labs/deckhand-cli/internal/logger"
)

var (
	presentWatch   bool
	presentNoTrack bool
)

var presentCmd = &cobra.Command{
	Use:   "present [deck file]",
	Short: "Present a deck interactively",
	Long: `Opens the deck in the interactive presenter.

Navigation is keyboard driven: arrow keys or space move between slides,
g opens the table of contents, f toggles fullscreen and t runs the
session timer. Poll answers and reflections are recorded locally unless
--no-track is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPresent,
}

func init() {
	addDeckFlags(presentCmd)
	presentCmd.Flags().BoolVarP(&presentWatch, "watch", "w", false, "reload the deck when its source changes")
	presentCmd.Flags().BoolVar(&presentNoTrack, "no-track", false, "do not record poll answers and reflections")
	rootCmd.AddCommand(presentCmd)
}

func runPresent(cmd *cobra.Command, args []string) error {
	deckService, err := newDeckService(args)
	if err != nil {
		return err
	}

	var responses driving.ResponseService
	if !presentNoTrack {
		store, err := sqlite.NewStore("")
		if err != nil {
			return fmt.Errorf("opening response store: %w", err)
		}
		defer store.Close() //nolint:errcheck

		svc := services.NewResponseService(store)
		responses = svc
		logger.Debug("recording responses under session %s", svc.SessionID())
	}

	app, err := tui.NewApp(tui.NewPorts(deckService, responses))
	if err != nil {
		return err
	}
	app.WithContext(cmd.Context()).WithWatch(presentWatch)

	return app.Run()
}
