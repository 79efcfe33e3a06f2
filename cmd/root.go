package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prank_names/internal/app"
	"prank_names/internal/config"
	"prank_names/internal/logger"
)

const configPath = "config.yaml"

type configLoader func() (*config.Config, error)

func NewRootCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "prank-names",
		Short: "Generate names in the style of Bart Simpson's prank calls",
		Long: `prank-names downloads the list of Bart's prank calls from the Simpsons
wiki, splits every caller name into a first and a last name, and prints
a random combination each time Enter is pressed. Type q to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			l := logger.New(cmd.ErrOrStderr(), cfg.Log.Level)
			a, err := app.NewNamesApp(cfg, l)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func Execute() {
	cmd := NewRootCmd(func() (*config.Config, error) {
		return config.LoadConfig(configPath)
	})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
