package slack

// Block Kit wire structures. Only the field shapes the webhook contract
// requires; anything else would be rejected by the chat platform.

type textObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type block struct {
	Type     string       `json:"type"`
	Text     *textObject  `json:"text,omitempty"`
	Elements []textObject `json:"elements,omitempty"`
}

type message struct {
	Blocks []block `json:"blocks,omitempty"`
	Text   string  `json:"text,omitempty"`
}

func headerBlock(text string) block {
	return block{Type: "header", Text: &textObject{Type: "plain_text", Text: text}}
}

func dividerBlock() block {
	return block{Type: "divider"}
}

func sectionBlock(markdown string) block {
	return block{Type: "section", Text: &textObject{Type: "mrkdwn", Text: markdown}}
}

func contextBlock(markdown string) block {
	return block{Type: "context", Elements: []textObject{{Type: "mrkdwn", Text: markdown}}}
}
