// Package notification delivers customer emails, either through an HTTP email
// relay or, when none is configured, by writing them to the log.
package notification

import (
	"context"
	"fmt"
	"time"

	"bakery/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

const relayTimeout = 10 * time.Second

// Message is the JSON body posted to the relay.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// HTTPRelay posts each email to a relay endpoint. Delivery is attempted once.
type HTTPRelay struct {
	client *resty.Client
	url    string
	from   string
}

func NewHTTPRelay(url, token, from string) (*HTTPRelay, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("relay url")
	}
	if from == "" {
		return nil, errs.NewValueIsRequiredError("sender address")
	}

	client := resty.New().
		SetTimeout(relayTimeout).
		SetHeader("Content-Type", "application/json")
	if token != "" {
		client.SetAuthToken(token)
	}

	return &HTTPRelay{client: client, url: url, from: from}, nil
}

func (r *HTTPRelay) Send(ctx context.Context, recipient, subject, body string) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(Message{From: r.from, To: recipient, Subject: subject, Body: body}).
		Post(r.url)
	if err != nil {
		return fmt.Errorf("email relay: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("email relay status: %d", resp.StatusCode())
	}
	return nil
}
