package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/shiwake/internal/buildinfo"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	repo      string
	logLevel  string
	logFormat string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:     "shiwake",
		Short:   "Convert bank and receipt exports into Yayoi journal entries",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.repo, "repo", ".", "books repository directory")
	pf.StringVar(&g.logLevel, "log-level", "", "log level (overrides log.level in shiwake.yaml)")
	pf.StringVar(&g.logFormat, "log-format", "", "log format: text or json (overrides log.format)")

	rootCmd.AddCommand(
		newInitCommand(),
		newConvertCommand(&g),
		newGeneralizeCommand(&g),
		newClassifyCommand(&g),
		newAccountsCommand(&g),
	)

	return rootCmd
}
