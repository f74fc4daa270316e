package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/agencialume/app-landing/internal/composer"
	"github.com/agencialume/app-landing/internal/models"
	"github.com/agencialume/app-landing/internal/observability"
	"github.com/agencialume/app-landing/internal/services"
	"github.com/agencialume/app-landing/internal/utils"
)

// UpsertConfigInput is the request body for publishing a new configuration
// version.
type UpsertConfigInput struct {
	Sections  models.Sections `json:"sections" binding:"required"`
	Published bool            `json:"published"`
}

// GetLandingPage godoc
// @Summary Obter página composta
// @Description Compõe a landing page de um slug a partir da configuração publicada mais recente, no template solicitado
// @Tags landing
// @Produce json
// @Param slug path string true "Slug da página"
// @Param template query string false "Template de renderização (legacy ou sections)" Enums(legacy, sections)
// @Success 200 {object} services.PageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /landing/{slug} [get]
func GetLandingPage(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetLandingPage")
	defer span.End()

	slug := c.Param("slug")
	template := composer.NormalizeTemplate(c.Query("template"))
	logger := observability.Logger().With(zap.String("slug", slug), zap.String("template", template))

	span.SetAttributes(
		attribute.String("slug", slug),
		attribute.String("template", template),
		attribute.String("operation", "get_landing_page"),
	)

	logger.Info("GetLandingPage called")

	page, err := services.LandingServiceInstance.ComposePage(ctx, slug, template)
	if err != nil {
		switch err {
		case models.ErrSlugRequired:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "slug é obrigatório"})
		case models.ErrConfigNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "página não encontrada"})
		default:
			utils.RecordErrorInSpan(span, err, map[string]interface{}{"slug": slug})
			logger.Error("failed to compose landing page", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "erro ao montar a página"})
		}
		return
	}

	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	c.JSON(http.StatusOK, page)
	responseSpan.End()

	logger.Info("GetLandingPage completed",
		zap.Int("sections", len(page.Sections)),
		zap.Duration("total_duration", time.Since(startTime)))
}

// UpsertLandingConfig godoc
// @Summary Publicar nova versão de configuração
// @Description Grava uma nova versão da configuração de um slug. Versões nunca são sobrescritas; a versão publicada mais recente passa a ser servida.
// @Tags landing
// @Accept json
// @Produce json
// @Param slug path string true "Slug da página"
// @Param config body UpsertConfigInput true "Configuração da página"
// @Success 201 {object} models.LandingPageConfig
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /landing/{slug} [put]
func UpsertLandingConfig(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpsertLandingConfig")
	defer span.End()

	slug := c.Param("slug")
	logger := observability.Logger().With(zap.String("slug", slug))

	span.SetAttributes(
		attribute.String("slug", slug),
		attribute.String("operation", "upsert_landing_config"),
	)

	var input UpsertConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warn("invalid config payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "corpo da requisição inválido: " + err.Error()})
		return
	}

	cfg, err := services.LandingServiceInstance.UpsertConfig(ctx, slug, input.Sections, input.Published)
	if err != nil {
		if err == models.ErrSlugRequired {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "slug é obrigatório"})
			return
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"slug": slug})
		logger.Error("failed to store landing config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "erro ao gravar a configuração"})
		return
	}

	c.JSON(http.StatusCreated, cfg)

	logger.Info("UpsertLandingConfig completed",
		zap.Int32("version", cfg.VersionNumber),
		zap.Duration("total_duration", time.Since(startTime)))
}
