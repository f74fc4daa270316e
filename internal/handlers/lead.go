package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/agencialume/app-landing/internal/models"
	"github.com/agencialume/app-landing/internal/observability"
	"github.com/agencialume/app-landing/internal/services"
	"github.com/agencialume/app-landing/internal/utils"
)

// CreateLead godoc
// @Summary Registrar lead
// @Description Valida e registra um lead enviado pelo formulário da landing page. Reenvios com o mesmo submissionId dentro da janela de deduplicação retornam o lead original.
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body models.LeadInput true "Dados do lead"
// @Success 201 {object} models.Lead
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /leads [post]
func CreateLead(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateLead")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "create_lead"),
	)

	logger := observability.Logger()

	var input models.LeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warn("invalid lead payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "corpo da requisição inválido: " + err.Error()})
		return
	}

	lead, validation, err := services.LeadServiceInstance.CreateLead(ctx, input)
	if err != nil {
		if err == models.ErrLeadValidation {
			fields := make(map[string]string, len(validation.Errors))
			for _, fieldErr := range validation.Errors {
				fields[fieldErr.Field] = fieldErr.Message
			}
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{
				Error:  "dados do lead inválidos",
				Fields: fields,
			})
			return
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"email": observability.MaskEmail(input.Email),
		})
		logger.Error("failed to create lead", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "erro ao registrar o lead"})
		return
	}

	c.JSON(http.StatusCreated, lead)

	logger.Info("CreateLead completed",
		zap.String("email", observability.MaskEmail(lead.Email)),
		zap.String("source", lead.Source),
		zap.Duration("total_duration", time.Since(startTime)))
}
