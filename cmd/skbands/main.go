// SPDX-License-Identifier: MIT

// Command skbands computes Slater-Koster tight-binding band structures
// from a YAML model file.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires flags > SKBANDS_* env > .skbands.yaml into v.
func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "skbands",
		Short:         "Slater-Koster tight-binding band structures",
		Long:          "skbands assembles a tight-binding Hamiltonian from an empirical Slater-Koster model file and diagonalises it along a k-path or on a Monkhorst-Pack mesh.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("config", "", "Config file (default ./.skbands.yaml)")
	v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	v.SetEnvPrefix("SKBANDS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			v.SetConfigFile(path)
			return v.ReadInConfig()
		}
		v.SetConfigName(".skbands")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.ReadInConfig() // Ignore error; config file is optional.
		return nil
	}

	root.AddCommand(newBandsCmd(v))
	root.AddCommand(newVersionCmd())
	return root
}
