// Package config provides configuration management for the manifest generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the root directory when no config file is given.
const DefaultFileName = "manifest.yaml"

// Configuration validation errors.
var (
	ErrMissingMetaDir    = errors.New("paths.meta_dir is required")
	ErrMissingOutputPath = errors.New("paths.output is required")
	ErrNoPatterns        = errors.New("descriptors.patterns must list at least one pattern")
	ErrInvalidPattern    = errors.New("descriptors.patterns contains an invalid glob")
	ErrInvalidThumbExt   = errors.New("assets.thumb_ext must not contain a path separator")
	ErrInvalidAssetsRoot = errors.New("assets.root must not contain '..'")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrOutputIsDirectory = errors.New("paths.output must name a file")
	ErrRootNotResolvable = errors.New("paths.root cannot be resolved")
)

var (
	defaultPatterns = []string{"*.json", "*.txt", "*.md"}
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Config represents the complete generator configuration.
type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Descriptors DescriptorsConfig `yaml:"descriptors"`
	Assets      AssetsConfig      `yaml:"assets"`
	Logging     LoggingConfig     `yaml:"logging"`
	Strict      bool              `yaml:"strict"`
}

// PathsConfig locates the descriptor directory and the manifest file.
// Relative paths are resolved against Root.
type PathsConfig struct {
	Root    string `yaml:"root"`
	MetaDir string `yaml:"meta_dir"`
	Output  string `yaml:"output"`
}

// DescriptorsConfig selects which files in the metadata directory are read.
type DescriptorsConfig struct {
	Patterns []string `yaml:"patterns"`
}

// AssetsConfig defines how media references are rewritten.
type AssetsConfig struct {
	Root      string `yaml:"root"`
	ThumbRoot string `yaml:"thumb_root"`
	ThumbExt  string `yaml:"thumb_ext"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration matching the standard site layout:
// <root>/meta is scanned and <root>/docs/media.json is written.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Root:    ".",
			MetaDir: "meta",
			Output:  filepath.Join("docs", "media.json"),
		},
		Descriptors: DescriptorsConfig{
			Patterns: append([]string{}, defaultPatterns...),
		},
		Assets: AssetsConfig{
			Root:      "media/",
			ThumbRoot: "thumbs",
			ThumbExt:  ".webp",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return data, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.MetaDir) == "" {
		return ErrMissingMetaDir
	}

	if strings.TrimSpace(c.Paths.Output) == "" {
		return ErrMissingOutputPath
	}

	if strings.HasSuffix(c.Paths.Output, "/") || strings.HasSuffix(c.Paths.Output, string(filepath.Separator)) {
		return ErrOutputIsDirectory
	}

	if len(c.Descriptors.Patterns) == 0 {
		return ErrNoPatterns
	}

	for i, pattern := range c.Descriptors.Patterns {
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: patterns[%d] %q", ErrInvalidPattern, i, pattern)
		}
	}

	if strings.Contains(c.Assets.Root, "..") {
		return ErrInvalidAssetsRoot
	}

	if strings.ContainsAny(c.Assets.ThumbExt, `/\`) {
		return ErrInvalidThumbExt
	}

	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return ErrInvalidLogLevel
	}

	return nil
}

// MetaDirPath returns the absolute descriptor directory.
func (c *Config) MetaDirPath() (string, error) {
	return c.resolve(c.Paths.MetaDir)
}

// OutputPath returns the absolute manifest file path.
func (c *Config) OutputPath() (string, error) {
	return c.resolve(c.Paths.Output)
}

func (c *Config) resolve(p string) (string, error) {
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}

	root := c.Paths.Root
	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(filepath.Join(root, p))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRootNotResolvable, err)
	}

	return abs, nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{MetaDir: %s, Output: %s, Patterns: %d, Strict: %t}",
		c.Paths.MetaDir,
		c.Paths.Output,
		len(c.Descriptors.Patterns),
		c.Strict,
	)
}
