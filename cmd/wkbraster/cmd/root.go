package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var (
	config  string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "wkbraster",
		Short: "Inspect and convert PostGIS raster WKB streams",
		Long: `wkbraster decodes, re-encodes and exports rasters in the PostGIS
Well Known Binary serialization, from files or straight out of a
PostGIS database.`,
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&config, "config", "c", "", "config file; default $HOME/.wkbraster.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	cobra.OnInitialize(initConfig)
}

// initConfig reads in the config file and WKBRASTER_* environment variables,
// then installs the process logger.
func initConfig() {
	if config != "" {
		viper.SetConfigFile(config)
	} else {
		if home, err := homedir.Dir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".wkbraster")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("wkbraster")
	viper.AutomaticEnv()

	readErr := viper.ReadInConfig()

	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if readErr == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}
