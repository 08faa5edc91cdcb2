package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ribget/ribget/internal/config"
	"github.com/ribget/ribget/internal/model"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// selectVersions maps the two latest-flags onto the IP versions to
// process, IPv4 first when both are requested.
func selectVersions(latestV4, latestV6 bool) []model.IPVersion {
	var versions []model.IPVersion
	if latestV4 {
		versions = append(versions, model.V4)
	}
	if latestV6 {
		versions = append(versions, model.V6)
	}
	return versions
}

// Execute runs the ribget CLI and returns an error if the run fails.
//
// The root command has no subcommands: flags select which collector trees
// to download from, and with neither -4 nor -6 the command prints usage and
// succeeds, matching the help-only invocation.
func Execute(ctx context.Context) error {
	var (
		latestV4   bool
		latestV6   bool
		verbose    bool
		outputDir  string
		configPath string
	)

	root := &cobra.Command{
		Use:          "ribget",
		Short:        "Download the latest RouteViews MRT/RIB archive",
		Long:         `ribget locates the most recent BGP routing-table snapshot (MRT/RIB archive) on the RouteViews archive server and downloads it, for the IPv4 and/or IPv6 collector tree.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			versions := selectVersions(latestV4, latestV6)
			if len(versions) == 0 {
				return cmd.Help()
			}

			settings := config.DefaultSettings()
			if configPath != "" {
				var err error
				settings, err = config.Load(configPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			if outputDir != "" {
				settings.OutputDir = outputDir
			}

			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			return run(cmd.Context(), logger, settings, versions)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("ribget %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	root.Flags().BoolVarP(&latestV4, "latestv4", "4", false, "grab latest IPv4 data")
	root.Flags().BoolVarP(&latestV6, "latestv6", "6", false, "grab latest IPv6 data")
	root.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: current directory)")
	root.Flags().StringVar(&configPath, "config", "", "path to config file")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root.ExecuteContext(ctx)
}
