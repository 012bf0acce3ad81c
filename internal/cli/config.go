package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/promptkit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the promptkit config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolvedConfigPath()
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(path); err == nil && !force {
			return errors.WithHint(
				errors.Newf("config file %s already exists", path),
				"pass --force to overwrite it",
			)
		}
		if err := config.CreateDefaultConfigFile(path); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.Marshal()
		if err != nil {
			return errors.Wrap(err, "encode config")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", resolvedConfigPath())
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file for problems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		warnings := cfg.Validate()
		out := cmd.OutOrStdout()
		if len(warnings) == 0 {
			fmt.Fprintf(out, "%s: OK\n", resolvedConfigPath())
			return nil
		}
		for _, w := range warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		return errors.Newf("%d problem(s) in %s", len(warnings), resolvedConfigPath())
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd, configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.ConfigPath()
}
