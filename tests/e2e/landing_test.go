package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

// TestPublishAndRenderLanding publishes a configuration version and fetches
// the composed page in both templates
func TestPublishAndRenderLanding(t *testing.T) {
	baseURL := getBaseURL(t)
	client := &http.Client{Timeout: 10 * time.Second}
	slug := fmt.Sprintf("e2e-%d", time.Now().UnixNano())

	payload := map[string]interface{}{
		"published": true,
		"sections": map[string]interface{}{
			"hero": map[string]interface{}{
				"title":    "Viva do que você cria",
				"subtitle": "Gestão completa para criadores",
			},
			"solucoes": []map[string]interface{}{
				{
					"title":        "Gestão de carreira",
					"benefits":     []string{"Planejamento", "Negociação", "Agenda", "Relatórios", "Mentoria"},
					"priceMonthly": 990.0,
				},
			},
		},
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest("PUT", baseURL+"/landing/"+slug, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to publish config: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	for _, template := range []string{"legacy", "sections"} {
		resp, err := client.Get(fmt.Sprintf("%s/landing/%s?template=%s", baseURL, slug, template))
		if err != nil {
			t.Fatalf("Failed to fetch page (%s): %v", template, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200 for template %s, got %d", template, resp.StatusCode)
		}

		var page map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			t.Fatalf("Failed to decode page: %v", err)
		}
		if page["template"] != template {
			t.Errorf("Expected template %s, got %v", template, page["template"])
		}
		sections, ok := page["sections"].([]interface{})
		if !ok || len(sections) != 2 {
			t.Errorf("Expected 2 sections (hero, solucoes), got %v", page["sections"])
		}
	}
}

// TestRenderUnknownSlug verifies a slug without a published version is 404
func TestRenderUnknownSlug(t *testing.T) {
	baseURL := getBaseURL(t)
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Get(baseURL + "/landing/slug-que-nao-existe")
	if err != nil {
		t.Fatalf("Failed to fetch page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

// TestNewVersionBecomesCurrent publishes two versions and verifies the
// second one is served
func TestNewVersionBecomesCurrent(t *testing.T) {
	baseURL := getBaseURL(t)
	client := &http.Client{Timeout: 10 * time.Second}
	slug := fmt.Sprintf("e2e-version-%d", time.Now().UnixNano())

	publish := func(title string) {
		payload := map[string]interface{}{
			"published": true,
			"sections": map[string]interface{}{
				"hero": map[string]interface{}{"title": title},
			},
		}
		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest("PUT", baseURL+"/landing/"+slug, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("Failed to publish config: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d", resp.StatusCode)
		}
	}

	publish("Primeira versão")
	publish("Segunda versão")

	resp, err := client.Get(baseURL + "/landing/" + slug)
	if err != nil {
		t.Fatalf("Failed to fetch page: %v", err)
	}
	defer resp.Body.Close()

	var page map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatalf("Failed to decode page: %v", err)
	}
	version, ok := page["version"].(float64)
	if !ok || version != 2 {
		t.Errorf("Expected version 2 to be served, got %v", page["version"])
	}
}
