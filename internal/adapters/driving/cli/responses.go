package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brightline-labs/deckhand-cli/internal/adapters/driven/storage/sqlite"
	"github.com/brightline-labs/deckhand-cli/internal/core/services"
)

var responsesSession string

var responsesCmd = &cobra.Command{
	Use:   "responses",
	Short: "List recorded sessions and their responses",
	Long: `Lists viewing sessions recorded by the presenter.

Without flags, prints one line per session with its poll and reflection
counts. With --session, prints that session's answers and reflections.`,
	Args: cobra.NoArgs,
	RunE: runResponses,
}

func init() {
	responsesCmd.Flags().StringVar(&responsesSession, "session", "", "show one session's responses")
	rootCmd.AddCommand(responsesCmd)
}

func runResponses(cmd *cobra.Command, _ []string) error {
	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening response store: %w", err)
	}
	defer store.Close() //nolint:errcheck

	svc := services.NewResponseService(store)
	ctx := cmd.Context()

	if responsesSession != "" {
		return printSession(cmd, svc, responsesSession)
	}

	sessions, err := svc.Sessions(ctx)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		cmd.Println("No recorded sessions.")
		return nil
	}

	cmd.Printf("%-36s  %-16s  %5s  %7s  %11s\n",
		"SESSION", "STARTED", "POLLS", "CORRECT", "REFLECTIONS")
	for _, s := range sessions {
		cmd.Printf("%-36s  %-16s  %5d  %7d  %11d\n",
			s.SessionID, s.StartedAt.Local().Format("2006-01-02 15:04"),
			s.PollAnswers, s.PollCorrect, s.Reflections)
	}
	return nil
}

func printSession(cmd *cobra.Command, svc *services.ResponseService, sessionID string) error {
	ctx := cmd.Context()

	answers, err := svc.PollAnswers(ctx, sessionID)
	if err != nil {
		return err
	}
	reflections, err := svc.Reflections(ctx, sessionID)
	if err != nil {
		return err
	}

	if len(answers) == 0 && len(reflections) == 0 {
		cmd.Printf("No responses recorded for session %s.\n", sessionID)
		return nil
	}

	if len(answers) > 0 {
		cmd.Println("Poll answers:")
		for _, a := range answers {
			verdict := ""
			switch {
			case a.Correct == nil:
			case *a.Correct:
				verdict = "  [correct]"
			default:
				verdict = "  [incorrect]"
			}
			cmd.Printf("  slide %d: %s%s\n", a.SlideID, a.OptionText, verdict)
		}
	}

	if len(reflections) > 0 {
		if len(answers) > 0 {
			cmd.Println()
		}
		cmd.Println("Reflections:")
		for _, r := range reflections {
			cmd.Printf("  slide %d: %s\n", r.SlideID, r.Text)
		}
	}
	return nil
}
