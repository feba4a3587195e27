package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thywilljoshua/index-converter/internal/ai"
	"github.com/thywilljoshua/index-converter/internal/config"
	"github.com/thywilljoshua/index-converter/internal/extract"
	"github.com/thywilljoshua/index-converter/internal/journal"
	"github.com/thywilljoshua/index-converter/internal/logger"
	"github.com/thywilljoshua/index-converter/internal/workspace"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath  string
	baseDir     string
	logLevel    string
	aiProvider  string
	aiModel     string
	maxAttempts int
}

func (o *globalOptions) bind(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "YAML config file")
	f.StringVar(&o.baseDir, "base", "", "workspace folder (default: ~/Desktop/IndexConverter)")
	f.StringVar(&o.logLevel, "log-level", "", "diagnostic log level: debug|info|warn|error")
	f.StringVar(&o.aiProvider, "ai", "", "transcribe PDFs with a model instead of the text layer: off|gemini")
	f.StringVar(&o.aiModel, "ai-model", "", "model name for --ai")
	f.IntVar(&o.maxAttempts, "max-attempts", 0, "attempts per file in batch mode")
}

// env is the resolved runtime for one command invocation.
type env struct {
	cfg        *config.Config
	ws         workspace.Workspace
	extractors extract.Registry
}

// load merges config file, environment and flags, sets up logging and picks
// the extractors.
func (o *globalOptions) load(ctx context.Context, cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("base") {
		cfg.BaseDir = o.baseDir
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("ai") {
		cfg.AI.Provider = o.aiProvider
	}
	if flags.Changed("ai-model") {
		cfg.AI.Model = o.aiModel
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = o.maxAttempts
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Setup(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	extractors, err := newExtractors(ctx, cfg.AI)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, ws: workspace.New(cfg.BaseDir), extractors: extractors}, nil
}

func newExtractors(ctx context.Context, c config.AIConfig) (extract.Registry, error) {
	reg := extract.Default()
	provider, err := ai.ParseProvider(c.Provider)
	if err != nil {
		return nil, err
	}
	if provider == ai.ProviderGemini {
		g, err := ai.NewGemini(ctx, c.APIKey, c.Model)
		if err != nil {
			return nil, fmt.Errorf("--ai gemini: %w", err)
		}
		reg[extract.KindPDF] = g
	}
	return reg, nil
}

// openJournal opens the workspace conversion log, creating the workspace first.
func (e *env) openJournal() (*journal.Journal, error) {
	if err := e.ws.Ensure(); err != nil {
		return nil, err
	}
	return journal.Open(e.ws.LogPath()), nil
}
