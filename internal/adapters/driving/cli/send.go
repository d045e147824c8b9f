package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/logmail/internal/core/domain"
)

var (
	sendDryRun  bool
	sendTo      []string
	sendSubject string
)

var sendCmd = &cobra.Command{
	Use:   "send [origin]",
	Short: "Send a log as email",
	Long: `Reads the origin, extracts its message body and emails it.

The origin is a file path, a file:// URI, or sqlite://<db-path>[?log=<id>]
for a log previously imported into the log database. Without ?log= the
most recent log is sent.

Use --dry-run to print the message instead of connecting to SMTP.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().BoolVar(&sendDryRun, "dry-run", false, "Print the message instead of sending it")
	sendCmd.Flags().StringArrayVar(&sendTo, "to", nil, "Recipient address (repeatable, overrides config)")
	sendCmd.Flags().StringVar(&sendSubject, "subject", "", "Subject line (overrides config)")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	var origin string
	if len(args) > 0 {
		origin = args[0]
	}
	// Nothing is opened for a send that cannot start.
	if strings.TrimSpace(origin) == "" {
		return userError(domain.ErrMissingInput)
	}

	opts := buildOptions{dryRun: sendDryRun, to: sendTo, subject: sendSubject}
	return withServices(opts, func(set *serviceSet) error {
		if set.sender == nil {
			return errNotConfigured
		}

		status, err := set.sender.SendLog(cmd.Context(), origin)
		if err != nil {
			return err
		}

		cmd.Println(styled(cmd.OutOrStdout(), successStyle, status))
		return nil
	})
}
