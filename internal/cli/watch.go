package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/minhngocdo/meeting-summarizer/internal/meeting"
	"github.com/minhngocdo/meeting-summarizer/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	var meetingType string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the intake directory and process recordings as they appear",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, deps, meetingType)
		},
	}

	cmd.Flags().StringVarP(&meetingType, "type", "t", "general",
		"meeting type applied to every detected file")

	return cmd
}

func runWatch(cmd *cobra.Command, deps *Dependencies, meetingType string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mtype := meeting.ParseType(meetingType)

	handler := func(ctx context.Context, path string, kind meeting.SourceKind) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read input file: %w", err)
		}

		src := meeting.Source{Kind: kind, Name: filepath.Base(path), Data: data}
		sess, err := deps.Pipeline.Run(ctx, src, mtype, nil)
		if err != nil {
			return err
		}

		outPath := filepath.Join(deps.Config.Paths.Output, sess.Artifact.Filename)
		if err := os.WriteFile(outPath, sess.Artifact.Data, 0644); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		deps.Logger.Info(ctx, "Document saved: %s", outPath)

		if url := deps.Config.Slack.WebhookURL; url != "" {
			if err := deps.Notifier.Send(ctx, sess.Summary, sess.ActionItems, url); err != nil {
				deps.Logger.Warn(ctx, "Slack notification failed: %v", err)
			}
		}
		return nil
	}

	w, err := watcher.New(deps.Config.Paths.Input, handler, deps.Logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	deps.Logger.Info(ctx, "Monitoring: %s", deps.Config.Paths.Input)
	deps.Logger.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		deps.Logger.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("watcher error: %w", err)
	}

	cancel()
	return nil
}
