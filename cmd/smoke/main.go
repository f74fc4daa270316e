package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/agencialume/app-landing/internal/analytics"
	"github.com/agencialume/app-landing/internal/config"
	"github.com/agencialume/app-landing/internal/leadform"
	"github.com/agencialume/app-landing/internal/logging"
	"github.com/agencialume/app-landing/internal/models"
	"github.com/agencialume/app-landing/internal/utils/httpclient"
)

// httpSubmitter delivers leads to a running API instance, the same way the
// landing page form does.
type httpSubmitter struct {
	baseURL string
	pool    *httpclient.Pool
}

func (s *httpSubmitter) SubmitLead(ctx context.Context, lead models.Lead) error {
	payload, err := json.Marshal(models.LeadInput{
		Name:              lead.Name,
		Company:           lead.Company,
		Phone:             lead.Phone,
		Email:             lead.Email,
		ServicoInteresse:  lead.ServicoInteresse,
		FaturamentoMensal: lead.FaturamentoMensal,
		Message:           lead.Message,
		Source:            lead.Source,
		SubmissionID:      lead.SubmissionID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/leads", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.pool.Get()
	defer s.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit lead: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("lead endpoint returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// logNavigator stands in for the browser redirect to the thank-you page.
type logNavigator struct{}

func (logNavigator) Navigate(path string) {
	logging.Logger.Info("navigation triggered", zap.String("path", path))
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "Base URL of a running API instance")
	slug := flag.String("slug", "criadores", "Landing page slug to fetch")
	flag.Parse()

	if err := logging.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	logging.Logger.Info("Starting landing smoke run", zap.String("base_url", *baseURL))

	pool := httpclient.GetGlobalPool()

	// Fetch both template renditions of the page before touching the form.
	for _, template := range []string{"legacy", "sections"} {
		if err := fetchPage(pool, *baseURL, *slug, template); err != nil {
			logging.Logger.Fatal("page fetch failed",
				zap.String("template", template),
				zap.Error(err))
		}
	}

	collectors := []analytics.Collector{
		analytics.NewGA4Collector(config.AppConfig.GAEndpoint, config.AppConfig.GAMeasurementID, config.AppConfig.GAAPISecret),
		analytics.NewMetaCollector(config.AppConfig.MetaEndpoint, config.AppConfig.MetaPixelID, config.AppConfig.MetaAccessToken),
	}

	controller := leadform.New(
		&httpSubmitter{baseURL: *baseURL, pool: pool},
		collectors,
		logNavigator{},
		leadform.Options{
			Source:          config.AppConfig.LeadSource,
			ThankYouPath:    config.AppConfig.ThankYouPath,
			NavigationDelay: config.AppConfig.NavigationDelay,
			ConversionValue: config.AppConfig.ConversionValue,
			Currency:        config.AppConfig.ConversionCurrency,
			Logger:          logging.Logger,
		},
	)
	defer controller.Close()

	// An incomplete form must fail locally without hitting the API.
	controller.UpdateField(leadform.FieldName, "Smoke Teste")
	if err := controller.Submit(context.Background()); err != leadform.ErrValidation {
		logging.Logger.Fatal("expected local validation failure", zap.Error(err))
	}
	logging.Logger.Info("incomplete form rejected locally")

	controller.UpdateField(leadform.FieldCompany, "Agência Smoke")
	controller.UpdateField(leadform.FieldPhone, "+5521999887766")
	controller.UpdateField(leadform.FieldEmail, "smoke@example.com")
	controller.UpdateField(leadform.FieldServicoInteresse, "gestao-de-carreira")
	controller.UpdateField(leadform.FieldMessage, "Envio de verificação")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := controller.Submit(ctx); err != nil {
		logging.Logger.Fatal("lead submission failed", zap.Error(err))
	}
	logging.Logger.Info("lead submitted", zap.String("state", controller.State().String()))

	// A second Submit after success must be refused.
	if err := controller.Submit(ctx); err != leadform.ErrAlreadySucceeded {
		logging.Logger.Fatal("expected resubmission to be refused", zap.Error(err))
	}

	// Give the scheduled navigation time to fire.
	time.Sleep(config.AppConfig.NavigationDelay + 500*time.Millisecond)

	logging.Logger.Info("Smoke run completed")
}

func fetchPage(pool *httpclient.Pool, baseURL, slug, template string) error {
	url := fmt.Sprintf("%s/v1/landing/%s?template=%s", baseURL, slug, template)

	client := pool.Get()
	defer pool.Put(client)

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("page endpoint returned status %d", resp.StatusCode)
	}

	var page struct {
		Slug     string `json:"slug"`
		Version  int32  `json:"version"`
		Template string `json:"template"`
		Sections []struct {
			Name string `json:"name"`
		} `json:"sections"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return fmt.Errorf("failed to decode page: %w", err)
	}

	logging.Logger.Info("page fetched",
		zap.String("slug", page.Slug),
		zap.Int32("version", page.Version),
		zap.String("template", page.Template),
		zap.Int("sections", len(page.Sections)))
	return nil
}
