// Package slack pushes meeting summaries to a Slack incoming webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/minhngocdo/meeting-summarizer/internal/errs"
	"github.com/minhngocdo/meeting-summarizer/internal/logger"
)

const (
	webhookPrefix = "https://hooks.slack.com/"

	sendTimeout = 30 * time.Second
	testTimeout = 10 * time.Second

	testPayloadText = "🧪 Test message from Meeting Summarizer - connection successful!"
)

// Notifier posts block-formatted messages to a caller-supplied webhook URL.
type Notifier struct {
	client *http.Client
	logger logger.Logger
	now    func() time.Time
}

func NewNotifier(log logger.Logger) *Notifier {
	return &Notifier{
		client: &http.Client{},
		logger: log,
		now:    time.Now,
	}
}

// ValidateWebhookURL checks the fixed scheme/host prefix and a minimal length.
func ValidateWebhookURL(url string) bool {
	return strings.HasPrefix(url, webhookPrefix) && len(url) > 50
}

// Send posts the summary and action items as a block message. The URL is
// validated and the content checked before any network call; failures carry
// a distinguishable reason and are never retried here.
func (n *Notifier) Send(ctx context.Context, summary string, actionItems []string, webhookURL string) error {
	if !ValidateWebhookURL(webhookURL) {
		return errs.New(errs.KindInvalidWebhookURL, "invalid Slack webhook URL")
	}
	if strings.TrimSpace(summary) == "" && len(nonBlank(actionItems)) == 0 {
		return errs.New(errs.KindNoContent, "no content to send to Slack")
	}

	msg := n.buildMessage(summary, actionItems)
	if err := n.post(ctx, webhookURL, msg, sendTimeout); err != nil {
		return err
	}

	n.logger.Info(ctx, "Slack message sent successfully")
	return nil
}

// TestConnection sends a minimal fixed payload to validate the webhook
// configuration independent of any meeting content.
func (n *Notifier) TestConnection(ctx context.Context, webhookURL string) (bool, string) {
	if !ValidateWebhookURL(webhookURL) {
		return false, "Invalid webhook URL format"
	}

	if err := n.post(ctx, webhookURL, message{Text: testPayloadText}, testTimeout); err != nil {
		return false, fmt.Sprintf("Connection failed: %v", err)
	}
	return true, "Connection successful"
}

// buildMessage assembles the block structure: header, divider, summary
// section, optional action-items section, divider, footer context.
func (n *Notifier) buildMessage(summary string, actionItems []string) message {
	now := n.now()

	blocks := []block{
		headerBlock("📝 Meeting Summary - " + now.Format("January 02, 2006 at 03:04 PM")),
		dividerBlock(),
		sectionBlock("*📋 Summary:*\n" + summary),
	}

	if formatted := formatActionItems(actionItems); formatted != "" {
		blocks = append(blocks, sectionBlock("*✅ Action Items:*\n"+formatted))
	}

	blocks = append(blocks,
		dividerBlock(),
		contextBlock("Generated by Meeting Summarizer | "+now.Format("2006-01-02 15:04:05")),
	)

	return message{Blocks: blocks}
}

// formatActionItems strips any combination of leading bullet glyphs from
// each item and re-prefixes a single canonical bullet, one item per line.
func formatActionItems(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range nonBlank(items) {
		lines = append(lines, "• "+strings.TrimLeft(item, "- •*"))
	}
	return strings.Join(lines, "\n")
}

func nonBlank(items []string) []string {
	var out []string
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// post sends msg as JSON. Success is strictly HTTP 200; timeouts, connection
// failures and unexpected statuses each surface as a distinct message.
func (n *Notifier) post(ctx context.Context, url string, msg message, timeout time.Duration) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(errs.KindWebhookSendFailed, err, "failed to encode message")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(errs.KindWebhookSendFailed, err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errs.Wrap(errs.KindWebhookSendFailed, err, "Slack request timed out")
		}
		return errs.Wrap(errs.KindWebhookSendFailed, err, "failed to connect to Slack")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.New(errs.KindWebhookSendFailed, "Slack API error").WithHTTPStatus(resp.StatusCode)
	}
	return nil
}
