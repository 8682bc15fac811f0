// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the vim-daily CLI.
//
// The default action picks the next lesson of the current round, renders it
// from the tutorial, and writes it to the lessons directory. Subcommands
// cover practice renders, listing, progress, cleanup, and resets.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from --log-level before any command runs.
var logger = zap.NewNop()

// rootCmd is the base command for the vim-daily CLI.
var rootCmd = &cobra.Command{
	Use:   "vim-daily",
	Short: "Get a daily Vim lesson",
	Long: `vim-daily splits the Vim tutor into its numbered lessons and hands you one
lesson at a time. Lessons are drawn at random without repetition; once every
lesson has been seen the round is archived under rounds/ and a new round
begins.

Run without a subcommand to get the next lesson.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(viper.GetString("log-level"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runNext,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./vim-daily.yaml or ~/.config/vim-daily/config.yaml)")
	flags.String("tutorial", "data/vimtutor.txt", "plain-text tutorial source")
	flags.String("data-dir", "data", "directory holding history.json")
	flags.String("lessons-dir", "lessons", "directory receiving rendered lessons")
	flags.String("rounds-dir", "rounds", "directory receiving archived rounds")
	flags.String("title", "Vim Daily", "name used in generated lesson headers")
	flags.String("sort", "structured", "lesson ordering: structured or numeric")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")

	for _, key := range []string{"tutorial", "data-dir", "lessons-dir", "rounds-dir", "title", "sort", "log-level"} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vim-daily")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vim-daily"))
		}
	}

	viper.SetEnvPrefix("VIM_DAILY")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
