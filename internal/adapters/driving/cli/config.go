package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/logmail/internal/adapters/driven/config/file"
	"github.com/custodia-labs/logmail/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change the mail, SMTP and reader settings.

Settings are read from the config file, then overridden by LOGMAIL_*
environment variables (also loaded from .env files) and global flags.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a value in the config file",
	Long: `Stores one setting in the config file.

Keys:
  ` + strings.Join(services.SettingKeys(), "\n  ") + `

List values (mail.to, readers.order) are comma separated.
When setting smtp.password without a value, it is read from the terminal.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	cmd.Println(styled(out, titleStyle, "Current Settings"))
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Mail]")
	cmd.Printf("  From: %s\n", settings.Recipient.From)
	cmd.Printf("  To: %s\n", settings.Recipient.ToList())
	cmd.Printf("  Subject: %s\n", settings.Recipient.Subject)
	cmd.Println()

	cmd.Println("[SMTP]")
	cmd.Printf("  Host: %s\n", settings.SMTP.Host)
	cmd.Printf("  Port: %d\n", settings.SMTP.Port)
	cmd.Printf("  Encryption: %s\n", settings.SMTP.Encryption)
	if settings.SMTP.Username != "" {
		cmd.Printf("  Username: %s\n", settings.SMTP.Username)
		if settings.SMTP.Password != "" {
			cmd.Printf("  Password: %s\n", maskSecret(settings.SMTP.Password))
		} else {
			cmd.Printf("  Password: (not set)\n")
		}
	} else {
		cmd.Printf("  Authentication: none\n")
	}
	cmd.Println()

	cmd.Println("[Storage]")
	dir := settings.DataDir
	if dir == "" {
		dir = "(default)"
	}
	cmd.Printf("  Data Dir: %s\n", dir)
	cmd.Println()

	cmd.Println("[Readers]")
	order := "(default)"
	if len(settings.Readers) > 0 {
		order = strings.Join(settings.Readers, ", ")
	}
	cmd.Printf("  Order: %s\n", order)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	settingsService, _, err := newSettingsService()
	if err != nil {
		return err
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case key == services.KeySMTPPassword:
		cmd.Print("SMTP password: ")
		value = readPassword()
		cmd.Println()
	default:
		return fmt.Errorf("missing value for %s", key)
	}

	if err := settingsService.SetValue(key, value); err != nil {
		return err
	}

	if key == services.KeySMTPPassword {
		cmd.Printf("Set %s\n", key)
	} else {
		cmd.Printf("Set %s = %s\n", key, value)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	_, dir, err := newSettingsService()
	if err != nil {
		return err
	}
	cmd.Println(filepath.Join(dir, file.ConfigFile))
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:2] + "..." + secret[len(secret)-2:]
}
