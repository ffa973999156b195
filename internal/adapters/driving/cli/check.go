package cli

import (
	"github.com/spf13/cobra"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check [deck file]",
	Short: "Validate a deck file",
	Long: `Loads and validates the deck, reporting structural problems.

Validation covers the same rules the presenter enforces: known slide
types, unique positive ids, declared sections, consistent table rows
and well-formed polls.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	addDeckFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	deckService, err := newDeckService(args)
	if err != nil {
		return err
	}

	deck, err := deckService.Load(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Printf("%s: ok\n", deckService.Origin())
	cmd.Printf("  title:    %s\n", deck.Title())
	cmd.Printf("  sections: %d\n", len(deck.Sections()))
	cmd.Printf("  slides:   %d\n", deck.Len())
	cmd.Printf("  duration: %s\n", formatGuideMinutes(deck.TotalDuration()))

	counts := make(map[domain.SlideType]int)
	for _, s := range deck.Slides() {
		counts[s.Type()]++
	}
	for _, t := range []domain.SlideType{
		domain.SlideTypeTitle, domain.SlideTypeContent, domain.SlideTypePoll,
		domain.SlideTypeReflection, domain.SlideTypeTable, domain.SlideTypeQuote,
		domain.SlideTypeTree,
	} {
		if counts[t] > 0 {
			cmd.Printf("    %-13s %d\n", domain.TypeLabel(t)+":", counts[t])
		}
	}

	return nil
}
