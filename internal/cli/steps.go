package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askiada/go-textcleaner/pkg/textcleaner"
)

func newStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the available cleaning steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, step := range textcleaner.Steps() {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%-26s %s\n", step.Key, step.Description)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newProfilesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the configured profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			for _, name := range cfg.ProfileNames() {
				marker := " "
				if name == cfg.DefaultProfile {
					marker = "*"
				}
				p := cfg.Profiles[name]
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %s\n  %s\n", marker, name, p.Description, strings.Join(p.Steps, ", "))
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newConfigCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			return cfg.Encode(cmd.OutOrStdout())
		},
	}
}
