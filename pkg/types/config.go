// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractorConfig holds settings for loading and slicing the tutorial source.
type ExtractorConfig struct {
	// TutorialPath is the plain-text tutorial file (default "data/vimtutor.txt").
	TutorialPath string `json:"tutorial" yaml:"tutorial"`

	// Title prefixes the generated lesson header (default "Vim Daily").
	Title string `json:"title" yaml:"title"`

	// Sort selects lesson ordering: structured or numeric.
	Sort SortOrder `json:"sort" yaml:"sort"`
}

// WorkspaceConfig holds the directories the tracker reads and writes.
type WorkspaceConfig struct {
	// DataDir holds history.json.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// LessonsDir receives rendered lesson and practice files.
	LessonsDir string `json:"lessons_dir" yaml:"lessons_dir"`

	// RoundsDir receives one round_NN archive directory per finished round.
	RoundsDir string `json:"rounds_dir" yaml:"rounds_dir"`
}

// Config groups all settings for one invocation.
type Config struct {
	Extractor ExtractorConfig `json:"extractor" yaml:"extractor"`
	Workspace WorkspaceConfig `json:"workspace" yaml:"workspace"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}
