package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/purepath/internal/version"
	"github.com/arthur-debert/purepath/pkg/config"
	"github.com/arthur-debert/purepath/pkg/flavor"
	"github.com/arthur-debert/purepath/pkg/logging"
	"github.com/arthur-debert/purepath/pkg/patherrors"
)

// NewRootCmd builds the purepath command tree.
func NewRootCmd() *cobra.Command {
	var verbosity int
	var flavorFlag string

	rootCmd := &cobra.Command{
		Use:   "purepath",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&flavorFlag, "flavor", "",
		"Path flavor: posix or windows (default from config, falling back to the host platform)")

	rootCmd.AddCommand(newParseCmd(&flavorFlag))
	rootCmd.AddCommand(newJoinCmd(&flavorFlag))
	rootCmd.AddCommand(newSafeJoinCmd(&flavorFlag))
	rootCmd.AddCommand(newMatchCmd(&flavorFlag))
	rootCmd.AddCommand(newRelCmd(&flavorFlag))
	rootCmd.AddCommand(newNormCaseCmd(&flavorFlag))
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "purepath version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

// resolveSettings merges the config file with the --flavor override.
func resolveSettings(flavorFlag string) (*config.Config, flavor.Flavor, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, flavor.Flavor{}, err
	}
	if flavorFlag == "" {
		return cfg, cfg.ResolveFlavor(), nil
	}
	fl, ok := flavor.ByName(flavorFlag)
	if !ok {
		return nil, flavor.Flavor{}, patherrors.Newf(patherrors.ErrInvalidInput,
			"unknown flavor %q", flavorFlag)
	}
	return cfg, fl, nil
}
