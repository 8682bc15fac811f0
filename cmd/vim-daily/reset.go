// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the lesson history",
	Long: `Reset returns to round 1 with no lessons seen and deletes the regular lesson
files. Practice files and archived rounds are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tr, err := openTracker(cfg.Workspace)
		if err != nil {
			return err
		}
		if err := tr.ResetHistory(); err != nil {
			return err
		}
		fmt.Println("Lesson history has been reset.")
		return nil
	},
}

var fullResetCmd = &cobra.Command{
	Use:   "full-reset",
	Short: "Reset history and remove all round directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tr, err := openTracker(cfg.Workspace)
		if err != nil {
			return err
		}
		if err := tr.FullReset(); err != nil {
			return err
		}
		fmt.Println("All history and round directories have been completely reset.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(fullResetCmd)
}
