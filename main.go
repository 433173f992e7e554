package main

import (
	"os"

	"github.com/rogue-tools/overrides/lib/config"
	"github.com/rogue-tools/overrides/lib/overrides"
	"github.com/rogue-tools/overrides/lib/util/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logger.GetLogger()

// initOverrides produces the configuration shown by show and diff.
var initOverrides = overrides.Init

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rogue-overrides",
		Short: "Inspect and validate simulation override overlays",
		Long: `rogue-overrides merges an overlay file onto the built-in override defaults.

Overlays are YAML, JSON or CUE documents keyed by field name:

  XP_MULTIPLIER: 5
  OPP_SPECIES: RAYQUAZA
  STARTING_MODIFIER:
    - name: EXP_SHARE
      count: 5

Use 'rogue-overrides fields' to list every field.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitConfig(); err != nil {
				return err
			}
			config.CurrentSettings().Apply()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&config.CfgFile, "config", "", "settings file (default $HOME/.rogue-overrides/config.yaml)")
	root.PersistentFlags().String("overlay", "", "overlay file (.yaml, .yml, .json or .cue)")
	if err := viper.BindPFlag(config.KeyOverlayPath, root.PersistentFlags().Lookup("overlay")); err != nil {
		log.WithError(err).Debug("could not bind overlay flag")
	}

	root.AddCommand(
		newShowCmd(),
		newValidateCmd(),
		newFieldsCmd(),
		newDiffCmd(),
		newWatchCmd(),
	)
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln(ErrorStyle.Render("Error: ") + err.Error())
		os.Exit(1)
	}
}
