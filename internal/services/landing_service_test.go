package services

import (
	"context"
	"testing"
	"time"

	"github.com/agencialume/app-landing/internal/composer"
	"github.com/agencialume/app-landing/internal/config"
	"github.com/agencialume/app-landing/internal/logging"
	"github.com/agencialume/app-landing/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func setupLandingServiceTest(t *testing.T) (*LandingService, func()) {
	if config.MongoDB == nil {
		t.Skip("Skipping landing service tests: MongoDB not initialized")
	}

	logging.InitLogger()

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{}
	}
	config.AppConfig.LandingConfigCollection = "test_landing_configs"
	config.AppConfig.ProductCollection = "test_products"

	service := NewLandingService(config.MongoDB, nil, time.Minute, logging.Logger)

	return service, func() {
		ctx := context.Background()
		config.MongoDB.Collection(config.AppConfig.LandingConfigCollection).Drop(ctx)
		config.MongoDB.Collection(config.AppConfig.ProductCollection).Drop(ctx)
	}
}

func insertVersion(t *testing.T, slug string, version int32, published bool) {
	t.Helper()
	ctx := context.Background()
	collection := config.MongoDB.Collection(config.AppConfig.LandingConfigCollection)

	_, err := collection.InsertOne(ctx, models.LandingPageConfig{
		Slug:          slug,
		VersionNumber: version,
		Published:     published,
		Sections: models.Sections{
			Hero: &models.Hero{Title: strPtr("Versão")},
			Solucoes: []models.Solucao{
				{Title: "Gestão", ProductID: strPtr("p1"), PriceMonthly: f64Ptr(9999)},
			},
		},
	})
	if err != nil {
		t.Fatalf("Failed to insert config version: %v", err)
	}
}

func TestGetConfigBySlug_CurrentIsHighestPublished(t *testing.T) {
	service, cleanup := setupLandingServiceTest(t)
	defer cleanup()

	ctx := context.Background()
	insertVersion(t, "criadores", 1, true)
	insertVersion(t, "criadores", 2, true)
	insertVersion(t, "criadores", 3, false) // draft, must not be served

	cfg, _, err := service.GetConfigBySlug(ctx, "criadores")
	if err != nil {
		t.Fatalf("GetConfigBySlug() error = %v", err)
	}
	if cfg.VersionNumber != 2 {
		t.Errorf("VersionNumber = %v, want 2 (highest published)", cfg.VersionNumber)
	}
}

func TestGetConfigBySlug_NotFound(t *testing.T) {
	service, cleanup := setupLandingServiceTest(t)
	defer cleanup()

	_, _, err := service.GetConfigBySlug(context.Background(), "inexistente")
	if err != models.ErrConfigNotFound {
		t.Errorf("GetConfigBySlug() error = %v, want ErrConfigNotFound", err)
	}
}

func TestGetConfigBySlug_EmptySlug(t *testing.T) {
	service, cleanup := setupLandingServiceTest(t)
	defer cleanup()

	_, _, err := service.GetConfigBySlug(context.Background(), "")
	if err != models.ErrSlugRequired {
		t.Errorf("GetConfigBySlug() error = %v, want ErrSlugRequired", err)
	}
}

func TestGetConfigBySlug_LinkedProducts(t *testing.T) {
	service, cleanup := setupLandingServiceTest(t)
	defer cleanup()

	ctx := context.Background()
	insertVersion(t, "criadores", 1, true)

	products := config.MongoDB.Collection(config.AppConfig.ProductCollection)
	_, err := products.InsertOne(ctx, bson.M{"_id": "p1", "name": "Gestão de carreira", "defaultPrice": 2500.0})
	if err != nil {
		t.Fatalf("Failed to insert product: %v", err)
	}

	_, linked, err := service.GetConfigBySlug(ctx, "criadores")
	if err != nil {
		t.Fatalf("GetConfigBySlug() error = %v", err)
	}
	if len(linked) != 1 {
		t.Fatalf("linked products = %v, want 1", len(linked))
	}
	if linked[0].DefaultPrice != 2500 {
		t.Errorf("DefaultPrice = %v, want 2500", linked[0].DefaultPrice)
	}
}

func TestComposePage_ProductPriceWins(t *testing.T) {
	service, cleanup := setupLandingServiceTest(t)
	defer cleanup()

	ctx := context.Background()
	insertVersion(t, "criadores", 1, true)

	products := config.MongoDB.Collection(config.AppConfig.ProductCollection)
	if _, err := products.InsertOne(ctx, bson.M{"_id": "p1", "name": "Gestão", "defaultPrice": 2500.0}); err != nil {
		t.Fatalf("Failed to insert product: %v", err)
	}

	page, err := service.ComposePage(ctx, "criadores", composer.TemplateSections)
	if err != nil {
		t.Fatalf("ComposePage() error = %v", err)
	}
	if page.Template != composer.TemplateSections {
		t.Errorf("Template = %v", page.Template)
	}

	var found bool
	for _, section := range page.Sections {
		if section.Name != composer.SectionSolucoes {
			continue
		}
		found = true
		views := section.Data.([]composer.SolutionView)
		if views[0].Price == nil || views[0].Price.Current != 2500 {
			t.Errorf("solution price = %+v, want product price 2500", views[0].Price)
		}
	}
	if !found {
		t.Error("composed page has no solucoes section")
	}
}

func TestComposePage_NotFound(t *testing.T) {
	service, cleanup := setupLandingServiceTest(t)
	defer cleanup()

	_, err := service.ComposePage(context.Background(), "inexistente", "sections")
	if err != models.ErrConfigNotFound {
		t.Errorf("ComposePage() error = %v, want ErrConfigNotFound", err)
	}
}

func TestUpsertConfig_BumpsVersion(t *testing.T) {
	service, cleanup := setupLandingServiceTest(t)
	defer cleanup()

	ctx := context.Background()

	first, err := service.UpsertConfig(ctx, "criadores", models.Sections{}, true)
	if err != nil {
		t.Fatalf("UpsertConfig() error = %v", err)
	}
	if first.VersionNumber != 1 {
		t.Errorf("first version = %v, want 1", first.VersionNumber)
	}

	second, err := service.UpsertConfig(ctx, "criadores", models.Sections{}, true)
	if err != nil {
		t.Fatalf("UpsertConfig() error = %v", err)
	}
	if second.VersionNumber != 2 {
		t.Errorf("second version = %v, want 2", second.VersionNumber)
	}
}

func TestUpsertConfig_EmptySlug(t *testing.T) {
	service, cleanup := setupLandingServiceTest(t)
	defer cleanup()

	_, err := service.UpsertConfig(context.Background(), "", models.Sections{}, true)
	if err != models.ErrSlugRequired {
		t.Errorf("UpsertConfig() error = %v, want ErrSlugRequired", err)
	}
}
