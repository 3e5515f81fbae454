// File: root.go
// Role: the pagegraphctl command tree — root command, persistent flags,
// and viper-backed configuration bootstrap.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "pagegraphctl",
	Short: "Load, inspect and run PageRank over named directed multigraphs",
	Long:  "pagegraphctl loads GraphML graphs, runs the embedded PageRank kernel over them, and converts between GraphML's plain and gzip-compressed forms.",
}

// Execute is the entry point invoked from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .pagegraphctl.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(loadCmd, pagerankCmd, convertCmd, statsCmd)
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".pagegraphctl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetDefault("alpha", 0.85)
	viper.SetDefault("max_iter", 100)
	viper.SetDefault("tol", 1e-6)
	viper.SetDefault("log_level", "info")

	viper.SetEnvPrefix("PAGEGRAPH")
	viper.AutomaticEnv()

	// No config file is fine; defaults and flags still apply.
	_ = viper.ReadInConfig()

	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}
