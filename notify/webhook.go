package notify

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Event is the JSON body posted to the moderation webhook.
type Event struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Webhook posts events to a single URL.
type Webhook struct {
	client *resty.Client
	url    string
}

func NewWebhook(url string) *Webhook {
	client := resty.New().
		SetTimeout(10*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Content-Type", "application/json")
	return &Webhook{client: client, url: url}
}

func (w *Webhook) Post(ev Event) error {
	resp, err := w.client.R().SetBody(ev).Post(w.url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("webhook: status %d", resp.StatusCode())
	}
	return nil
}
