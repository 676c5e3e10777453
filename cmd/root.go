// Package cmd provides the command line surface shared by executables embedding the inspector.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spacemeshos/go-inspector/config"
)

// AddCommands adds the inspector flags to cmd.
func AddCommands(cmd *cobra.Command) {
	config.AddFlags(cmd.PersistentFlags(), config.DefaultConfig())
}

// LoadConfig builds the configuration from the parsed flags of cmd and the config file they name.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	vip := viper.New()
	if err := config.BindFlags(cmd.Flags(), vip); err != nil {
		return nil, err
	}
	return config.Load(vip)
}
