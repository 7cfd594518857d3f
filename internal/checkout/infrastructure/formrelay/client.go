package formrelay

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/forsage-shop/storefront/internal/checkout/application"
)

// Client posts order submissions to a hosted form-relay endpoint as a regular
// HTML form. The relay's contract is field names plus a subject line; no
// structured acknowledgment comes back, so a 2xx is the only success signal.
type Client struct {
	log      *slog.Logger
	endpoint string
	subject  string
	http     *http.Client
}

func NewClient(log *slog.Logger, endpoint, subject string) *Client {
	return &Client{
		log:      log,
		endpoint: endpoint,
		subject:  subject,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Send(ctx context.Context, sub application.Submission) error {
	form := url.Values{}
	form.Set("_subject", c.subject)
	form.Set("fullName", sub.FullName)
	form.Set("phone", sub.Phone)
	form.Set("address", sub.Address)
	form.Set("orderSummary", sub.OrderSummary)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("form relay responded %d", resp.StatusCode)
	}
	c.log.Info("order forwarded to relay", "status", resp.StatusCode)
	return nil
}
