// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/vim-daily/internal/extract"
	"github.com/pdiddy/vim-daily/internal/progress"
	"github.com/pdiddy/vim-daily/internal/workspace"
	"github.com/pdiddy/vim-daily/pkg/types"
)

// envKeyReplacer maps flag names to environment names (data-dir -> DATA_DIR).
var envKeyReplacer = strings.NewReplacer("-", "_")

// newLogger builds a development-style zap logger writing to stderr.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// loadConfig collects settings from flags, environment, and config file.
func loadConfig() (types.Config, error) {
	order, err := types.ParseSortOrder(viper.GetString("sort"))
	if err != nil {
		return types.Config{}, err
	}
	return types.Config{
		Extractor: types.ExtractorConfig{
			TutorialPath: viper.GetString("tutorial"),
			Title:        viper.GetString("title"),
			Sort:         order,
		},
		Workspace: types.WorkspaceConfig{
			DataDir:    viper.GetString("data-dir"),
			LessonsDir: viper.GetString("lessons-dir"),
			RoundsDir:  viper.GetString("rounds-dir"),
		},
		LogLevel: viper.GetString("log-level"),
	}, nil
}

// openExtractor loads the tutorial. A missing source is reported on stderr
// and yields an Extractor with no lessons.
func openExtractor(cfg types.ExtractorConfig) *extract.Extractor {
	ex := extract.Load(cfg.TutorialPath,
		extract.WithTitle(cfg.Title),
		extract.WithSortOrder(cfg.Sort),
		extract.WithLogger(logger.Named("extract")),
	)
	if err := ex.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "Please ensure %s exists and is readable\n", cfg.TutorialPath)
	}
	return ex
}

// openTracker prepares the workspace directories and loads history.
func openTracker(cfg types.WorkspaceConfig) (*progress.Tracker, error) {
	ws, err := workspace.New(cfg, workspace.WithLogger(logger.Named("workspace")))
	if err != nil {
		return nil, err
	}
	return progress.New(ws, progress.WithLogger(logger.Named("progress")))
}

// open returns both halves for commands that need them.
func open() (*extract.Extractor, *progress.Tracker, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	tr, err := openTracker(cfg.Workspace)
	if err != nil {
		return nil, nil, err
	}
	return openExtractor(cfg.Extractor), tr, nil
}
