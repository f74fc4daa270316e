package analytics

import "context"

// Event is a fire-and-forget conversion signal carrying a fixed nominal
// value and currency code.
type Event struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Source   string  `json:"source,omitempty"`
	ClientID string  `json:"clientId,omitempty"`
}

// Collector accepts conversion events. Implementations must tolerate the
// upstream collector being unavailable; callers never depend on a response
// and swallow emission errors after logging them.
type Collector interface {
	Name() string
	Track(ctx context.Context, event Event) error
}

// Disabled is a collector that silently accepts every event. Used when a
// collector's endpoint is not configured for a deployment.
type Disabled struct {
	Label string
}

// Name returns the collector label
func (d Disabled) Name() string { return d.Label }

// Track accepts the event and does nothing
func (d Disabled) Track(ctx context.Context, event Event) error { return nil }
