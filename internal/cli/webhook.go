package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewWebhookTestCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "webhook-test <url>",
		Short: "Send a test message to a Slack webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, msg := deps.Notifier.TestConnection(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("webhook test failed: %s", msg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
