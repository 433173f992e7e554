package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/rogue-tools/overrides/lib/config"
	"github.com/rogue-tools/overrides/lib/overrides"
	"github.com/rogue-tools/overrides/lib/util"
	"github.com/rogue-tools/overrides/lib/util/logger"
	"github.com/rogue-tools/overrides/lib/util/signals"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// loadConfiguredOverlay loads the overlay named by the settings, or returns
// the source-authored overlay when none is configured.
func loadConfiguredOverlay() (overrides.Overlay, error) {
	path := config.CurrentSettings().OverlayPath
	if path == "" {
		log.Debug("no overlay configured, using the built-in overlay")
		return overrides.Local, nil
	}
	if !util.IsRegularFile(path) {
		return overrides.Overlay{}, oops.
			In("cli").
			With("path", path).
			Errorf("overlay %s does not exist or is not a file", path)
	}
	return overrides.LoadOverlay(path)
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overlay, err := loadConfiguredOverlay()
			if err != nil {
				return err
			}
			merged, err := initOverrides(overlay)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(merged)
			if err != nil {
				return oops.In("cli").Wrapf(err, "render configuration")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that overlay files merge cleanly",
		Long: `Parse every overlay file and merge it onto the defaults.

Exits non-zero when any file has an unknown field, a value of the wrong
type or a malformed modifier descriptor.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if err := validateFile(cmd.OutOrStdout(), path); err != nil {
					failed++
					log.WithFields(logger.Fields{
						"at":   "validate",
						"path": path,
					}).WithError(err).Debug("overlay rejected")
				}
			}
			if failed > 0 {
				return oops.In("cli").Errorf("%d of %d overlays failed validation", failed, len(args))
			}
			return nil
		},
	}
}

func validateFile(w io.Writer, path string) error {
	overlay, err := overrides.LoadOverlay(path)
	if err == nil {
		_, err = overrides.Merge(overrides.Defaults(), overlay)
	}
	if err != nil {
		fmt.Fprintf(w, "%s %s\n  %s\n", ErrorStyle.Render("✗"), path, describeError(err))
		return err
	}
	fmt.Fprintf(w, "%s %s (%d fields)\n", SuccessStyle.Render("✓"), path, len(overlay.Present()))
	return nil
}

func newFieldsCmd() *cobra.Command {
	var group, phase string
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List every overridable field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := filterFields(overrides.Fields(), group, phase)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFieldTable(fields))
			return nil
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "only fields of this group")
	cmd.Flags().StringVar(&phase, "phase", "", "only fields read at this phase")
	return cmd
}

func filterFields(fields []overrides.FieldInfo, group, phase string) ([]overrides.FieldInfo, error) {
	if group != "" && !slices.Contains(overrides.Groups, overrides.Group(group)) {
		return nil, oops.In("cli").Errorf("unknown group %q (want one of %v)", group, overrides.Groups)
	}
	if phase != "" && !slices.Contains(overrides.Phases, overrides.Phase(phase)) {
		return nil, oops.In("cli").Errorf("unknown phase %q (want one of %v)", phase, overrides.Phases)
	}
	var out []overrides.FieldInfo
	for _, f := range fields {
		if group != "" && string(f.Group) != group {
			continue
		}
		if phase != "" && string(f.Phase) != phase {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "List the fields the overlay changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overlay, err := loadConfiguredOverlay()
			if err != nil {
				return err
			}
			merged, err := initOverrides(overlay)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderDiff(merged))
			return nil
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-check the configured overlay on every SIGHUP",
		Long: `Validate the configured overlay, then validate it again each time the
process receives SIGHUP. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.CurrentSettings().OverlayPath
			if path == "" {
				return oops.In("cli").Errorf("watch needs an overlay: pass --overlay or set %s", config.KeyOverlayPath)
			}
			return watch(cmd.Context(), cmd.OutOrStdout(), path)
		},
	}
}

func watch(ctx context.Context, w io.Writer, path string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reload := signals.RegisterReloadHandler(func() { _ = validateFile(w, path) })
	defer signals.DeregisterReloadHandler(reload)
	interrupt := signals.RegisterInterruptHandler(func() { cancel() })
	defer signals.DeregisterInterruptHandler(interrupt)

	signals.Handle(ctx, func() {
		_ = validateFile(w, path)
		fmt.Fprintln(w, SubtitleStyle.Render(fmt.Sprintf("watching %s, send SIGHUP to re-check", path)))
	})
	return nil
}
