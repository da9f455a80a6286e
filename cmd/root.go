package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

func newRootCmdFor(app *app) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "astro",
		Short:         "ASTRO-impact: simulate the impact of a near-earth asteroid",
		Long:          "astro browses NASA's near-earth object feed and a country dataset, then estimates what would happen if one of those asteroids hit one of those countries.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(wireOptions{ConfigFile: configFile, LogOutput: cmd.ErrOrStderr()})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, app)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a config.toml (default: user config dir/astro-impact/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAsteroidsCmd(app),
		newCountriesCmd(app),
		newSimulateCmd(app),
		newCacheCmd(app),
		newThemeCmd(app),
	)

	return rootCmd
}
