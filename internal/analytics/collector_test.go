package analytics

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDisabled_AcceptsSilently(t *testing.T) {
	c := Disabled{Label: "ga4"}

	if c.Name() != "ga4" {
		t.Errorf("Name() = %v, want ga4", c.Name())
	}
	if err := c.Track(context.Background(), Event{Value: 100, Currency: "BRL"}); err != nil {
		t.Errorf("Track() on disabled collector = %v, want nil", err)
	}
}

func TestNewGA4Collector_DisabledWithoutCredentials(t *testing.T) {
	c := NewGA4Collector("https://example.com", "", "")
	if _, ok := c.(Disabled); !ok {
		t.Errorf("collector without credentials should be Disabled, got %T", c)
	}
}

func TestNewMetaCollector_DisabledWithoutCredentials(t *testing.T) {
	c := NewMetaCollector("https://example.com", "", "")
	if _, ok := c.(Disabled); !ok {
		t.Errorf("collector without credentials should be Disabled, got %T", c)
	}
}

func TestGA4Collector_Track(t *testing.T) {
	var captured []byte
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		query = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewGA4Collector(server.URL, "G-XXXX", "secret")
	err := c.Track(context.Background(), Event{Value: 100, Currency: "BRL", Source: "landing-page"})
	if err != nil {
		t.Fatalf("Track() error = %v", err)
	}

	if query != "measurement_id=G-XXXX&api_secret=secret" {
		t.Errorf("query = %v", query)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(captured, &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	events, ok := payload["events"].([]interface{})
	if !ok || len(events) != 1 {
		t.Fatalf("events = %v, want 1 event", payload["events"])
	}
	event := events[0].(map[string]interface{})
	if event["name"] != "generate_lead" {
		t.Errorf("event name = %v, want generate_lead", event["name"])
	}
	params := event["params"].(map[string]interface{})
	if params["value"] != 100.0 || params["currency"] != "BRL" {
		t.Errorf("params = %v", params)
	}
}

func TestGA4Collector_TrackServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewGA4Collector(server.URL, "G-XXXX", "secret")
	if err := c.Track(context.Background(), Event{Value: 100, Currency: "BRL"}); err == nil {
		t.Error("Track() should surface collector failure to the caller")
	}
}

func TestMetaCollector_Track(t *testing.T) {
	var captured []byte
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewMetaCollector(server.URL, "12345", "token")
	err := c.Track(context.Background(), Event{Value: 100, Currency: "BRL", Source: "landing-page"})
	if err != nil {
		t.Fatalf("Track() error = %v", err)
	}

	if path != "/12345/events" {
		t.Errorf("path = %v, want /12345/events", path)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(captured, &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	data := payload["data"].([]interface{})
	event := data[0].(map[string]interface{})
	if event["event_name"] != "Lead" {
		t.Errorf("event_name = %v, want Lead", event["event_name"])
	}
	if event["action_source"] != "website" {
		t.Errorf("action_source = %v, want website", event["action_source"])
	}
}

func TestMetaCollector_TrackUnreachable(t *testing.T) {
	c := NewMetaCollector("http://localhost:1", "12345", "token")
	if err := c.Track(context.Background(), Event{Value: 100, Currency: "BRL"}); err == nil {
		t.Error("Track() against unreachable collector should error")
	}
}
