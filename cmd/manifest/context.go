package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mediamanifest/internal/config"
	"mediamanifest/internal/logger"
	"mediamanifest/internal/manifest"
	"mediamanifest/internal/normalizer"
)

// commandContext carries the persistent flags shared by every subcommand.
type commandContext struct {
	configPath string
	root       string
	metaDir    string
	output     string
	strict     bool
	logLevel   string
}

func (c *commandContext) bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Configuration file (default: <root>/"+config.DefaultFileName+" when present)")
	flags.StringVar(&c.root, "root", "", "Site root that relative paths are resolved against")
	flags.StringVar(&c.metaDir, "meta", "", "Descriptor directory (default: <root>/meta)")
	flags.StringVar(&c.output, "out", "", "Manifest file (default: <root>/docs/media.json)")
	flags.BoolVar(&c.strict, "strict", false, "Fail on unreadable, empty or unrenderable descriptors instead of skipping them")
	flags.StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig reads the config file, if any, and applies flag overrides on top.
func (c *commandContext) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := strings.TrimSpace(c.configPath)
	if path == "" {
		candidate := filepath.Join(c.rootOrDefault(), config.DefaultFileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	cfg := config.Default()

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}

		// A relative root in the file is relative to the file itself.
		if !filepath.IsAbs(loaded.Paths.Root) {
			loaded.Paths.Root = filepath.Join(filepath.Dir(path), loaded.Paths.Root)
		}

		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Paths.Root = c.root
	}

	if flags.Changed("meta") {
		cfg.Paths.MetaDir = c.metaDir
	}

	if flags.Changed("out") {
		cfg.Paths.Output = c.output
	}

	if flags.Changed("strict") {
		cfg.Strict = c.strict
	}

	if flags.Changed("log-level") {
		cfg.Logging.Level = c.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *commandContext) rootOrDefault() string {
	if strings.TrimSpace(c.root) == "" {
		return "."
	}

	return c.root
}

// newAssembler wires the configured paths, asset layout and logger into an assembler.
func newAssembler(cfg *config.Config) (*manifest.Assembler, *logger.Logger, error) {
	metaDir, err := cfg.MetaDirPath()
	if err != nil {
		return nil, nil, err
	}

	output, err := cfg.OutputPath()
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewLogger(cfg.Logging.Level)

	assets := normalizer.Assets{
		Root:      cfg.Assets.Root,
		ThumbRoot: cfg.Assets.ThumbRoot,
		ThumbExt:  cfg.Assets.ThumbExt,
	}

	assembler := manifest.NewAssembler(manifest.Options{
		MetaDir:    metaDir,
		OutputPath: output,
		Patterns:   cfg.Descriptors.Patterns,
		Processor:  normalizer.NewProcessor(assets, cfg.Strict),
		Logger:     log,
	})

	return assembler, log, nil
}
