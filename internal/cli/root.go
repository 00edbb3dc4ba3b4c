// Package cli wires the cobra command tree around the pipeline.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/minhngocdo/meeting-summarizer/internal/config"
	"github.com/minhngocdo/meeting-summarizer/internal/logger"
	"github.com/minhngocdo/meeting-summarizer/internal/pipeline"
	"github.com/minhngocdo/meeting-summarizer/internal/slack"
)

// Dependencies carries the shared collaborators into each command.
type Dependencies struct {
	Config   *config.Config
	Pipeline *pipeline.Pipeline
	Notifier *slack.Notifier
	Logger   logger.Logger
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:           "summarizer",
		Short:         "Turn meeting recordings into summaries, action items and reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewProcessCmd(deps),
		NewWatchCmd(deps),
		NewWebhookTestCmd(deps),
	)

	return root
}
