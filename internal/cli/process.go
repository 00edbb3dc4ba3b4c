package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/minhngocdo/meeting-summarizer/internal/meeting"
	"github.com/minhngocdo/meeting-summarizer/internal/pipeline"
)

func NewProcessCmd(deps *Dependencies) *cobra.Command {
	var (
		meetingType string
		webhookURL  string
	)

	cmd := &cobra.Command{
		Use:   "process <file>",
		Short: "Process one meeting recording or transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, deps, args[0], meetingType, webhookURL)
		},
	}

	cmd.Flags().StringVarP(&meetingType, "type", "t", "general",
		"meeting type: general, standup, planning or retrospective")
	cmd.Flags().StringVarP(&webhookURL, "webhook", "w", "",
		"Slack webhook URL to push the summary to")

	return cmd
}

func runProcess(cmd *cobra.Command, deps *Dependencies, path, meetingType, webhookURL string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	kind := meeting.ClassifySource(path)
	if kind == meeting.SourceUnknown {
		return fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input file: %w", err)
	}

	src := meeting.Source{Kind: kind, Name: filepath.Base(path), Data: data}
	sess, err := deps.Pipeline.Run(ctx, src, meeting.ParseType(meetingType), func(pr pipeline.Progress) {
		fmt.Fprintf(out, "[%3d%%] %s\n", pr.Percent, pr.Message)
	})
	if err != nil {
		printPartial(out, deps, sess)
		return err
	}

	printResults(out, deps, sess)

	outPath := filepath.Join(deps.Config.Paths.Output, sess.Artifact.Filename)
	if err := os.WriteFile(outPath, sess.Artifact.Data, 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	fmt.Fprintf(out, "\nDocument saved: %s\n", outPath)

	if webhookURL == "" {
		webhookURL = deps.Config.Slack.WebhookURL
	}
	if webhookURL != "" {
		if err := deps.Notifier.Send(ctx, sess.Summary, sess.ActionItems, webhookURL); err != nil {
			return fmt.Errorf("send to Slack: %w", err)
		}
		fmt.Fprintln(out, "Summary sent to Slack")
	}

	return nil
}

func printResults(out io.Writer, deps *Dependencies, sess *pipeline.Session) {
	fmt.Fprintf(out, "\n=== Meeting Summary ===\n%s\n", sess.Summary)

	if len(sess.ActionItems) > 0 {
		fmt.Fprintf(out, "\n=== Action Items ===\n")
		for i, item := range sess.ActionItems {
			fmt.Fprintf(out, "%d. %s\n", i+1, item)
		}
	}

	fmt.Fprintf(out, "\n=== Transcript ===\n%s\n", truncate(sess.Transcript, deps.Config.Display.MaxTranscriptChars))
}

// printPartial surfaces whatever a failed run already produced.
func printPartial(out io.Writer, deps *Dependencies, sess *pipeline.Session) {
	if sess == nil {
		return
	}
	if sess.Transcript != "" {
		fmt.Fprintf(out, "\nPartial transcript (run failed):\n%s\n", truncate(sess.Transcript, deps.Config.Display.MaxTranscriptChars))
	}
	if sess.Summary != "" {
		fmt.Fprintf(out, "\nPartial summary (run failed):\n%s\n", sess.Summary)
	}
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
