package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/cost-notifier/pkg/models/domain"
)

const attachmentColor = "#36a64f"

// attachment is the legacy Slack attachment shape: pretext renders above
// the colored block, text inside it.
type attachment struct {
	Color   string `json:"color"`
	Pretext string `json:"pretext"`
	Text    string `json:"text"`
}

type payload struct {
	Attachments []attachment `json:"attachments"`
}

// SlackNotifier posts cost reports to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
}

func NewSlackNotifier(webhookURL string, timeout time.Duration) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: timeout},
	}
}

// Send delivers the message in a single POST. Any failure, transport or
// non-2xx response alike, surfaces as one opaque send error; there is no
// retry here.
func (n *SlackNotifier) Send(ctx context.Context, msg domain.NotificationMessage) error {
	body, err := json.Marshal(payload{
		Attachments: []attachment{
			{
				Color:   attachmentColor,
				Pretext: msg.Header,
				Text:    msg.Body,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSend, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSend, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSend, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: webhook returned %s", domain.ErrSend, resp.Status)
	}

	return nil
}
