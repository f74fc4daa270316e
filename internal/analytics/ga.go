package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/agencialume/app-landing/internal/utils/httpclient"
)

// GA4Collector emits events to the Google Analytics Measurement Protocol.
type GA4Collector struct {
	endpoint      string
	measurementID string
	apiSecret     string
	pool          *httpclient.Pool
}

// NewGA4Collector creates a GA4 collector. Returns a Disabled collector when
// the measurement id or secret is not configured.
func NewGA4Collector(endpoint, measurementID, apiSecret string) Collector {
	if measurementID == "" || apiSecret == "" {
		return Disabled{Label: "ga4"}
	}
	return &GA4Collector{
		endpoint:      endpoint,
		measurementID: measurementID,
		apiSecret:     apiSecret,
		pool:          httpclient.GetGlobalPool(),
	}
}

// Name returns the collector label
func (c *GA4Collector) Name() string { return "ga4" }

type ga4Payload struct {
	ClientID string     `json:"client_id"`
	Events   []ga4Event `json:"events"`
}

type ga4Event struct {
	Name   string                 `json:"name"`
	Params map[string]interface{} `json:"params"`
}

// Track sends a generate_lead event
func (c *GA4Collector) Track(ctx context.Context, event Event) error {
	clientID := event.ClientID
	if clientID == "" {
		clientID = "app-landing.server"
	}

	payload := ga4Payload{
		ClientID: clientID,
		Events: []ga4Event{
			{
				Name: "generate_lead",
				Params: map[string]interface{}{
					"value":    event.Value,
					"currency": event.Currency,
					"source":   event.Source,
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal GA4 payload: %w", err)
	}

	url := fmt.Sprintf("%s?measurement_id=%s&api_secret=%s", c.endpoint, c.measurementID, c.apiSecret)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build GA4 request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.pool.Get()
	defer c.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GA4 request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("GA4 returned status %d", resp.StatusCode)
	}
	return nil
}
