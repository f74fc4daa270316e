package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agencialume/app-landing/internal/composer"
	"github.com/agencialume/app-landing/internal/config"
	"github.com/agencialume/app-landing/internal/logging"
	"github.com/agencialume/app-landing/internal/models"
	"github.com/agencialume/app-landing/internal/observability"
	"github.com/agencialume/app-landing/internal/redisclient"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// PageResponse is a fully composed landing page
type PageResponse struct {
	Slug     string                     `json:"slug"`
	Version  int32                      `json:"version"`
	Template string                     `json:"template"`
	Theme    *models.Theme              `json:"theme,omitempty"`
	Sections []composer.RenderedSection `json:"sections"`
}

// LandingService serves landing page configurations: it selects the current
// version per slug, resolves linked products and caches composed pages.
type LandingService struct {
	database *mongo.Database
	cache    *redisclient.Client
	cacheTTL time.Duration
	logger   *logging.SafeLogger
}

// NewLandingService creates a new landing service instance
func NewLandingService(database *mongo.Database, cache *redisclient.Client, cacheTTL time.Duration, logger *logging.SafeLogger) *LandingService {
	return &LandingService{
		database: database,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Global landing service instance
var LandingServiceInstance *LandingService

// InitLandingService initializes the global landing service instance
func InitLandingService() {
	logger := zap.L().Named("landing_service")

	LandingServiceInstance = NewLandingService(
		config.MongoDB,
		config.Redis,
		config.AppConfig.RedisTTL,
		logging.Logger,
	)

	logger.Info("landing service initialized successfully")
}

// GetConfigBySlug returns the current configuration for a slug together with
// its linked products. Current means the highest published versionNumber.
// Returns models.ErrConfigNotFound when the slug has no published version;
// the caller must treat that as a not-found page, not as composer input.
func (s *LandingService) GetConfigBySlug(ctx context.Context, slug string) (*models.LandingPageConfig, []models.Product, error) {
	if slug == "" {
		return nil, nil, models.ErrSlugRequired
	}

	collection := s.database.Collection(config.AppConfig.LandingConfigCollection)
	opts := options.FindOne().SetSort(bson.D{{Key: "versionNumber", Value: -1}})

	var cfg models.LandingPageConfig
	err := collection.FindOne(ctx, bson.M{"slug": slug, "published": true}, opts).Decode(&cfg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, models.ErrConfigNotFound
		}
		s.logger.Error("failed to get landing config",
			zap.String("slug", slug),
			zap.Error(err))
		return nil, nil, fmt.Errorf("failed to get landing config: %w", err)
	}

	products, err := s.fetchLinkedProducts(ctx, &cfg)
	if err != nil {
		// A product lookup failure degrades to literal pricing rather than
		// failing the page.
		s.logger.Warn("failed to fetch linked products",
			zap.String("slug", slug),
			zap.Error(err))
		products = nil
	}

	return &cfg, products, nil
}

// fetchLinkedProducts loads the product records referenced by the config's
// solution entries
func (s *LandingService) fetchLinkedProducts(ctx context.Context, cfg *models.LandingPageConfig) ([]models.Product, error) {
	ids := make([]string, 0, len(cfg.Sections.Solucoes))
	seen := make(map[string]bool)
	for _, sol := range cfg.Sections.Solucoes {
		if sol.ProductID == nil || *sol.ProductID == "" || seen[*sol.ProductID] {
			continue
		}
		seen[*sol.ProductID] = true
		ids = append(ids, *sol.ProductID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	collection := s.database.Collection(config.AppConfig.ProductCollection)
	cursor, err := collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// ComposePage returns the composed page for a slug and template, serving
// from cache when possible
func (s *LandingService) ComposePage(ctx context.Context, slug, template string) (*PageResponse, error) {
	template = composer.NormalizeTemplate(template)
	cacheKey := fmt.Sprintf("landing:%s:%s", slug, template)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var page PageResponse
			if err := json.Unmarshal([]byte(cached), &page); err != nil {
				// A corrupt cache entry falls through to a fresh compose.
				s.logger.Warn("failed to unmarshal cached page", zap.String("key", cacheKey), zap.Error(err))
			} else {
				observability.CacheHits.WithLabelValues("landing_page").Inc()
				return &page, nil
			}
		}
	}

	cfg, products, err := s.GetConfigBySlug(ctx, slug)
	if err != nil {
		observability.PageRenders.WithLabelValues(template, "error").Inc()
		return nil, err
	}

	page := &PageResponse{
		Slug:     cfg.Slug,
		Version:  cfg.VersionNumber,
		Template: template,
		Theme:    cfg.Sections.Theme,
		Sections: composer.ForTemplate(template).Compose(cfg, products),
	}
	observability.PageRenders.WithLabelValues(template, "success").Inc()

	if s.cache != nil {
		if data, err := json.Marshal(page); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache composed page", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return page, nil
}

// UpsertConfig stores a new version of a slug's configuration. Versions are
// never overwritten: the new record gets the next versionNumber and, when
// published, becomes current. Cached pages for the slug are invalidated.
func (s *LandingService) UpsertConfig(ctx context.Context, slug string, sections models.Sections, publish bool) (*models.LandingPageConfig, error) {
	if slug == "" {
		return nil, models.ErrSlugRequired
	}

	collection := s.database.Collection(config.AppConfig.LandingConfigCollection)

	var latest models.LandingPageConfig
	next := int32(1)
	opts := options.FindOne().SetSort(bson.D{{Key: "versionNumber", Value: -1}})
	err := collection.FindOne(ctx, bson.M{"slug": slug}, opts).Decode(&latest)
	if err == nil {
		next = latest.VersionNumber + 1
	} else if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to find latest version: %w", err)
	}

	now := time.Now().UTC()
	cfg := models.LandingPageConfig{
		Slug:          slug,
		VersionNumber: next,
		Published:     publish,
		Sections:      sections,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := collection.InsertOne(ctx, cfg); err != nil {
		observability.DatabaseOperations.WithLabelValues("insert", "error").Inc()
		return nil, fmt.Errorf("failed to insert landing config: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()

	s.invalidatePage(ctx, slug)

	s.logger.Info("landing config version stored",
		zap.String("slug", slug),
		zap.Int32("version", next),
		zap.Bool("published", publish))

	return &cfg, nil
}

// invalidatePage drops every cached template render for a slug
func (s *LandingService) invalidatePage(ctx context.Context, slug string) {
	if s.cache == nil {
		return
	}
	keys := []string{
		fmt.Sprintf("landing:%s:%s", slug, composer.TemplateLegacy),
		fmt.Sprintf("landing:%s:%s", slug, composer.TemplateSections),
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("failed to invalidate cached pages",
			zap.String("slug", slug),
			zap.Error(err))
	}
}
