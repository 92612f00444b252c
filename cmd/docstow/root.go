package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/docstow/internal/version"
	"github.com/arthur-debert/docstow/pkg/config"
	"github.com/arthur-debert/docstow/pkg/docstore"
	"github.com/arthur-debert/docstow/pkg/logging"
)

var (
	verbosity  int
	configPath string

	cfg = &config.Config{}

	rootCmd = &cobra.Command{
		Use:   "docstow",
		Short: "Read, write and list files in your Documents folder",
		Long: `docstow is a small utility over the per-user Documents directory:
it lists its contents, checks for files, and reads and writes text and
canonically formatted JSON documents.`,
		Version: version.Full(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loaded, err := config.Load(configPath)
			if err == nil {
				cfg = loaded
			}
			if verbosity == 0 {
				verbosity = cfg.Verbosity
			}
			logging.SetupLogger(verbosity)
			if err != nil {
				log.Warn().Err(err).Msg("Failed to load config, using defaults")
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// newStore builds the store the commands operate on, honoring a
// configured documents directory override.
func newStore() *docstore.Store {
	if dir := cfg.Documents.Dir; dir != "" {
		return docstore.New(docstore.WithResolver(func() (string, error) {
			return dir, nil
		}))
	}
	return docstore.New()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file to use instead of "+config.DefaultPath())

	rootCmd.AddCommand(newLsCmd())
	rootCmd.AddCommand(newExistsCmd())
	rootCmd.AddCommand(newCatCmd())
	rootCmd.AddCommand(newWriteCmd())
	rootCmd.AddCommand(newSaveCmd())
	rootCmd.AddCommand(newGenConfigCmd())
}
