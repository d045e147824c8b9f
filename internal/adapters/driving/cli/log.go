package cli

import (
	"github.com/spf13/cobra"
)

var logListLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage the log database",
	Long: `Import log files into the log database and list what it holds.

Imported logs are stored after their body has been extracted, so sending
them later with a sqlite:// origin skips the readers.`,
}

var logImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Extract a log file and store its body",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogImport,
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored logs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runLogList,
}

func init() {
	logListCmd.Flags().IntVarP(&logListLimit, "limit", "n", 20, "Maximum number of logs to list (0 for all)")
	logCmd.AddCommand(logImportCmd)
	logCmd.AddCommand(logListCmd)
	rootCmd.AddCommand(logCmd)
}

func runLogImport(cmd *cobra.Command, args []string) error {
	return withServices(buildOptions{}, func(set *serviceSet) error {
		if set.logs == nil {
			return errNotConfigured
		}

		record, err := set.logs.Import(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		cmd.Printf("Imported %s as log %s\n", record.Origin, record.ID)
		return nil
	})
}

func runLogList(cmd *cobra.Command, _ []string) error {
	return withServices(buildOptions{}, func(set *serviceSet) error {
		if set.logs == nil {
			return errNotConfigured
		}

		records, err := set.logs.List(cmd.Context(), logListLimit)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			cmd.Println("No logs stored.")
			return nil
		}

		out := cmd.OutOrStdout()
		for _, r := range records {
			cmd.Printf("%s  %s  %s\n",
				r.ID,
				styled(out, mutedStyle, r.CreatedAt.Local().Format(timeFormat)),
				r.Origin,
			)
			cmd.Printf("    %s\n", preview(r.Body))
		}
		return nil
	})
}
