package main

import (
	"context"
	"fmt"
	"os"

	"github.com/minhngocdo/meeting-summarizer/internal/audio"
	"github.com/minhngocdo/meeting-summarizer/internal/cli"
	"github.com/minhngocdo/meeting-summarizer/internal/config"
	"github.com/minhngocdo/meeting-summarizer/internal/document"
	"github.com/minhngocdo/meeting-summarizer/internal/logger"
	"github.com/minhngocdo/meeting-summarizer/internal/pipeline"
	"github.com/minhngocdo/meeting-summarizer/internal/slack"
	"github.com/minhngocdo/meeting-summarizer/internal/summarizer"
	"github.com/minhngocdo/meeting-summarizer/pkg/executor"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "Meeting Summarizer starting")
	log.Info(ctx, "Whisper model: %s", cfg.Whisper.ModelPath)
	log.Info(ctx, "Gemini model: %s", cfg.Gemini.Model)

	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("creating directories: %w", err)
	}

	exec := executor.New()
	for _, bin := range []string{"ffmpeg", "ffprobe", cfg.Whisper.BinaryPath} {
		if err := exec.LookPath(bin); err != nil {
			log.Warn(ctx, "Binary not found on PATH: %s", bin)
		}
	}

	gen, err := summarizer.NewGeminiGenerator(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	if err != nil {
		return fmt.Errorf("initializing Gemini: %w", err)
	}

	p := pipeline.New(
		cfg,
		audio.NewExtractor(cfg.Paths.Temp, exec, log),
		audio.NewWhisperTranscriber(cfg.Whisper, exec, log),
		summarizer.New(gen, log),
		document.NewAssembler(cfg.Paths.Temp, log),
		log,
	)

	deps := &cli.Dependencies{
		Config:   cfg,
		Pipeline: p,
		Notifier: slack.NewNotifier(log),
		Logger:   log,
	}

	return cli.NewRootCmd(deps).ExecuteContext(ctx)
}

func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Temp} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
