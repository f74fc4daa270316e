package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/agencialume/app-landing/internal/utils/httpclient"
)

// MetaCollector emits Lead events to the Meta Conversions API.
type MetaCollector struct {
	endpoint    string
	pixelID     string
	accessToken string
	pool        *httpclient.Pool
	now         func() time.Time
}

// NewMetaCollector creates a Meta collector. Returns a Disabled collector
// when the pixel id or access token is not configured.
func NewMetaCollector(endpoint, pixelID, accessToken string) Collector {
	if pixelID == "" || accessToken == "" {
		return Disabled{Label: "meta"}
	}
	return &MetaCollector{
		endpoint:    endpoint,
		pixelID:     pixelID,
		accessToken: accessToken,
		pool:        httpclient.GetGlobalPool(),
		now:         time.Now,
	}
}

// Name returns the collector label
func (c *MetaCollector) Name() string { return "meta" }

type metaPayload struct {
	Data []metaEvent `json:"data"`
}

type metaEvent struct {
	EventName    string                 `json:"event_name"`
	EventTime    int64                  `json:"event_time"`
	ActionSource string                 `json:"action_source"`
	CustomData   map[string]interface{} `json:"custom_data"`
}

// Track sends a Lead event
func (c *MetaCollector) Track(ctx context.Context, event Event) error {
	payload := metaPayload{
		Data: []metaEvent{
			{
				EventName:    "Lead",
				EventTime:    c.now().Unix(),
				ActionSource: "website",
				CustomData: map[string]interface{}{
					"value":        event.Value,
					"currency":     event.Currency,
					"content_name": event.Source,
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Meta payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/events?access_token=%s", c.endpoint, c.pixelID, c.accessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build Meta request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.pool.Get()
	defer c.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("Meta request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("Meta returned status %d", resp.StatusCode)
	}
	return nil
}
