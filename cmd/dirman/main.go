package main

import (
	"os"

	"github.com/AntoineGaton/dirman"
	"github.com/AntoineGaton/dirman/config"
	"github.com/AntoineGaton/dirman/internal/cli"
	"github.com/AntoineGaton/dirman/internal/util"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    int
	noColor    bool
	assumeYes  bool
)

var rootCmd = &cobra.Command{
	Use:   "dirman",
	Short: "Interactive in-memory directory manager",
	Long: `dirman is an interactive manager for an in-memory directory tree.

Directories are addressed by slash-delimited paths and can be created
(including comma lists like 'fruits/citrus/lemon,lime'), deleted, moved,
and listed as an indented tree. Nothing touches the real filesystem and
nothing persists past the session.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML or JSON config override file")
	rootCmd.Flags().IntVarP(&verbose, "verbose", "v", config.WarnVerbose,
		"Log verbosity level between 1 (error) and 5 (trace)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colorized output")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip delete confirmations")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.NewDefaultConfig()
	if configPath != "" {
		override, err := config.LoadConfigOverrideFile(configPath)
		if err != nil {
			return err
		}
		cfg.Merge(override)
	}
	// flags win over config file values
	if cmd.Flags().Changed("verbose") {
		cfg.LogLvl = config.VerboseToLevel(verbose)
	}
	if noColor {
		cfg.Color = false
	}
	if assumeYes {
		cfg.ConfirmDeletes = false
	}

	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("main")
	logger.Debug().Str("config", configPath).Msg("Directory manager initializing")

	tree := dirman.New()
	shell := cli.NewShell(tree, cfg)
	return shell.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := util.GetLogger("main")
		logger.Error().Err(err).Msg("Session ended with error")
		os.Exit(1)
	}
}
