package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/logmail/internal/readers"
)

var readersCmd = &cobra.Command{
	Use:   "readers",
	Short: "Show the reader priority order",
	Long: `Prints the readers tried against each file, in priority order.
The first reader that recognises the content extracts the body.
Plain text is always last and accepts anything.

The order is set with readers.order in the config file or LOGMAIL_READERS.`,
	Args: cobra.NoArgs,
	RunE: runReaders,
}

func init() {
	rootCmd.AddCommand(readersCmd)
}

func runReaders(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return userError(err)
	}

	registry, err := readers.NewRegistry(settings.Readers...)
	if err != nil {
		return err
	}

	for i, name := range registry.Names() {
		cmd.Printf("%d. %s\n", i+1, name)
	}
	cmd.Println()
	cmd.Println(styled(cmd.OutOrStdout(), mutedStyle, "Available: "+strings.Join(readers.Available(), ", ")))
	return nil
}

