package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/logmail/internal/core/domain"
)

const timeFormat = "2006-01-02 15:04:05"

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show delivery history",
	Long:  `Lists recorded send attempts, newest first, including failures.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of deliveries to list (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	return withServices(buildOptions{}, func(set *serviceSet) error {
		if set.logs == nil {
			return errNotConfigured
		}

		deliveries, err := set.logs.History(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		if len(deliveries) == 0 {
			cmd.Println("No deliveries recorded.")
			return nil
		}

		out := cmd.OutOrStdout()
		for _, d := range deliveries {
			cmd.Printf("%s  %-7s  %s via %s to %s\n",
				styled(out, mutedStyle, d.CreatedAt.Local().Format(timeFormat)),
				statusLabel(out, d.Status),
				d.Origin,
				d.Dispatcher,
				d.To,
			)
			if d.Error != "" {
				cmd.Printf("    error: %s\n", d.Error)
			} else if d.BodyPreview != "" {
				cmd.Printf("    %s\n", preview(d.BodyPreview))
			}
		}
		return nil
	})
}

func statusLabel(out io.Writer, status domain.DeliveryStatus) string {
	switch status {
	case domain.DeliverySent:
		return styled(out, successStyle, string(status))
	case domain.DeliveryFailed:
		return styled(out, errorStyle, string(status))
	default:
		return styled(out, mutedStyle, string(status))
	}
}

// preview flattens a body onto one line for listings.
func preview(body string) string {
	return domain.PreviewBody(strings.Join(strings.Fields(body), " "))
}
