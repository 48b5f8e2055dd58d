package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stencil-dev/stencil-cli/cmd/create"
	"github.com/stencil-dev/stencil-cli/cmd/version"
	"github.com/stencil-dev/stencil-cli/internal/logger"
	stencilruntime "github.com/stencil-dev/stencil-cli/internal/runtime"
	"github.com/stencil-dev/stencil-cli/internal/ui"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = newRootCommand()

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootLogger := logger.NewConsoleLogger()
	rootViper := viper.New()
	runtimeContext := stencilruntime.NewContext(rootLogger, rootViper)

	// By defining a Run func, we force PersistentPreRunE to execute even
	// when 'stencil' is called with no subcommand
	helpRunE := func(cmd *cobra.Command, args []string) error {
		err := cmd.Help()
		if err != nil {
			return fmt.Errorf("fail to show help: %w", err)
		}
		return nil
	}

	rootCmd := &cobra.Command{
		Use:               "stencil",
		Short:             "Frontend project scaffolding tool",
		Long:              `A command line tool that composes frontend projects from a declarative feature selection: project type, language, tooling toggles and deployment target.`,
		DisableAutoGenTag: true,
		SilenceErrors:     true,
		RunE:              helpRunE,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := runtimeContext.Viper.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if verbose := runtimeContext.Viper.GetBool("verbose"); verbose {
				newLogger := runtimeContext.Logger.Level(zerolog.DebugLevel)
				runtimeContext.Logger = &newLogger
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().BoolP(
		"verbose",
		"v",
		false,
		"Run command in VERBOSE mode",
	)
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	createCmd := create.New(runtimeContext)
	versionCmd := version.New(runtimeContext)

	rootCmd.AddGroup(&cobra.Group{ID: "getting-started", Title: "Getting Started"})
	createCmd.GroupID = "getting-started"

	rootCmd.AddCommand(
		createCmd,
		versionCmd,
	)

	return rootCmd
}
