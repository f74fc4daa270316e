package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/agencialume/app-landing/internal/config"
	"github.com/agencialume/app-landing/internal/observability"
	"github.com/agencialume/app-landing/internal/utils"
)

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica a saúde da API e suas dependências (MongoDB e Redis)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Todos os serviços estão saudáveis"
// @Failure 503 {object} HealthResponse "Um ou mais serviços estão indisponíveis"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "health_check"),
	)

	logger := observability.Logger()

	cacheKey := "health:status"
	ctx, cacheSpan := utils.TraceCacheGet(ctx, cacheKey)
	if config.Redis != nil {
		if cachedData, err := config.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var health HealthResponse
			if err := json.Unmarshal([]byte(cachedData), &health); err == nil {
				utils.AddSpanAttribute(cacheSpan, "cache.hit", true)
				observability.CacheHits.WithLabelValues("health_check").Inc()
				cacheSpan.End()
				writeHealth(c, health)
				return
			}
			logger.Warn("failed to unmarshal cached health data", zap.Error(err))
		}
	}
	utils.AddSpanAttribute(cacheSpan, "cache.hit", false)
	cacheSpan.End()

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  make(map[string]string),
	}

	if config.MongoDB == nil {
		health.Status = "unhealthy"
		health.Services["mongodb"] = "unavailable"
	} else if err := config.MongoDB.Client().Ping(ctx, nil); err != nil {
		health.Status = "unhealthy"
		health.Services["mongodb"] = "unhealthy"
	} else {
		health.Services["mongodb"] = "healthy"
	}

	if config.Redis == nil {
		health.Status = "unhealthy"
		health.Services["redis"] = "unavailable"
	} else if err := config.Redis.Ping(ctx).Err(); err != nil {
		health.Status = "unhealthy"
		health.Services["redis"] = "unhealthy"
	} else {
		health.Services["redis"] = "healthy"
	}

	// Unhealthy results get a shorter TTL so recovery shows up quickly.
	if config.Redis != nil {
		ttl := 5 * time.Second
		if health.Status == "unhealthy" {
			ttl = 1 * time.Second
		}
		if healthJSON, err := json.Marshal(health); err == nil {
			if err := config.Redis.Set(ctx, cacheKey, healthJSON, ttl).Err(); err != nil {
				logger.Warn("failed to cache health status", zap.Error(err))
			}
		}
	}

	span.SetAttributes(
		attribute.String("health.status", health.Status),
		attribute.String("health.mongodb", health.Services["mongodb"]),
		attribute.String("health.redis", health.Services["redis"]),
	)

	writeHealth(c, health)

	logger.Info("HealthCheck completed",
		zap.String("status", health.Status),
		zap.Duration("total_duration", time.Since(startTime)))
}

func writeHealth(c *gin.Context, health HealthResponse) {
	if health.Status == "healthy" {
		c.JSON(http.StatusOK, health)
	} else {
		c.JSON(http.StatusServiceUnavailable, health)
	}
}
