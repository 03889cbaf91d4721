package commands

import (
	"context"
	"errors"
	"fmt"
	"kattis-solved/lib/kattisrc"
	"kattis-solved/lib/scrapers/kattis/core"
	"kattis-solved/lib/scrapers/kattis/solved"
	"kattis-solved/lib/telemetry"
	"kattis-solved/lib/util/serviceutil"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kattis-solved <path/to/.kattisrc>",
	Short: "kattis-solved downloads the list of problems you have solved on Kattis.",
	Long: `kattis-solved logs into Kattis with the credentials in your .kattisrc,
walks through the solved problems listing and writes the problem ids,
sorted, to kattis_solved_problems_<username>.txt.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		settings, err := loadSettings()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", settingsFile, err)
		}
		telemetry.InitSlog(settings.Verbose)

		return run(cmd.Context(), args[0], settings, cmd.OutOrStdout())
	},
}

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// Fatal reports err the way its kind warrants and exits with status 1.
func Fatal(err error) {
	var cfgErr *kattisrc.ConfigError
	var authErr *core.AuthError
	var fetchErr *solved.FetchError

	switch {
	case errors.As(err, &cfgErr):
		if needsKattisrcHelp(err) {
			fmt.Fprintln(os.Stderr, kattisrc.Help)
		}
		serviceutil.Fatal("invalid .kattisrc", err)
	case errors.As(err, &authErr):
		serviceutil.Fatal("login failed", err)
	case errors.As(err, &fetchErr):
		serviceutil.Fatal("failed to fetch problem page", err)
	case errors.Is(err, context.Canceled):
		serviceutil.Fatal("interrupted", err)
	default:
		serviceutil.Fatal("failed to download solved problems", err)
	}
}

// needsKattisrcHelp reports whether the .kattisrc could not be loaded at all,
// in which case the user is pointed at where to download one.
func needsKattisrcHelp(err error) bool {
	return errors.Is(err, kattisrc.ErrUnreadable)
}
