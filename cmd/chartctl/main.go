package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/phanxgames/chartcore/cmd/chartctl/root"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cmd     = root.NewRootCmd()
)

func init() {
	cobra.OnInitialize(initConfig)
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.chartctl.yaml)")
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal("cannot find home directory", "error", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".chartctl")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			log.Debug("no config file, using flags only")
			return
		}
		log.Fatal("can't read config", "error", err)
	}
	log.Debug("loaded config", "file", viper.ConfigFileUsed())
}
