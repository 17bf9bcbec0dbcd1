package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tsfix/pkg/config"
	"github.com/walteh/tsfix/pkg/operation"
	"github.com/walteh/tsfix/pkg/rewrite"
	"github.com/walteh/tsfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	profile    string
	workDir    string
	dryRun     bool
	debug      bool
	noFail     bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".tsfix.yaml", "config file path (the default is resolved inside --dir)")
	cmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "rule profile (env or full), overrides config")
	cmd.PersistentFlags().StringVar(&workDir, "dir", ".", "project directory to fix")
	cmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "print diffs without writing files")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&noFail, "no-fail", false, "exit 0 even when files fail to process")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}

// loadConfig loads the config file, falling back to built-in defaults when
// the default config file is absent. The default config path lives in the
// project being fixed, so it is resolved against --dir; an explicitly set
// --config path is taken as given.
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	path := configFile
	explicit := cmd.PersistentFlags().Changed("config")
	if !explicit && !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, errors.Errorf("config file not found: %s", path)
		}
		cfg := config.Default()
		if err := cfg.Validate(); err != nil {
			return nil, errors.Errorf("validating default config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newFixOperation assembles the operation from flags and config
func newFixOperation(ctx context.Context, cmd *cobra.Command, userLogger *status.UserLogger) (*operation.FixOperation, error) {
	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if profile != "" {
		cfg.Profile = profile
		if err := cfg.Validate(); err != nil {
			return nil, errors.Errorf("validating profile override: %w", err)
		}
	}

	set, err := cfg.RuleSet()
	if err != nil {
		return nil, errors.Errorf("resolving rule set: %w", err)
	}

	rewriter, err := rewrite.New(set)
	if err != nil {
		return nil, errors.Errorf("compiling rules: %w", err)
	}

	return operation.New(operation.Options{
		Config:   cfg,
		Rewriter: rewriter,
		Logger:   userLogger,
		DryRun:   dryRun,
		WorkDir:  workDir,
	})
}
