package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	configfile "github.com/brightline-labs/deckhand-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage deckhand configuration",
	Long: `Reads and writes ~/.deckhand/config.toml.

Useful keys:
  deck.path     default deck file for all commands
  github.repo   owner/name of the repository holding the deck
  github.path   deck file path inside the repository
  github.token  API token for private repositories`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all configuration values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	store, err := configfile.NewConfigStore("")
	if err != nil {
		return err
	}

	value, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	store, err := configfile.NewConfigStore("")
	if err != nil {
		return err
	}

	if err := store.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := store.Save(); err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	store, err := configfile.NewConfigStore("")
	if err != nil {
		return err
	}

	keys := store.Keys()
	if len(keys) == 0 {
		return errors.New("no configuration set")
	}

	sort.Strings(keys)
	for _, key := range keys {
		value, _ := store.Get(key)
		cmd.Printf("%s = %v\n", key, value)
	}
	return nil
}
