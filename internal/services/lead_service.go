package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agencialume/app-landing/internal/config"
	"github.com/agencialume/app-landing/internal/logging"
	"github.com/agencialume/app-landing/internal/models"
	"github.com/agencialume/app-landing/internal/observability"
	"github.com/agencialume/app-landing/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// LeadService handles lead intake: validation, submission deduplication and
// persistence. There is exactly one external write per accepted lead.
type LeadService struct {
	database *mongo.Database
	logger   *logging.SafeLogger
}

// NewLeadService creates a new lead service instance
func NewLeadService(database *mongo.Database, logger *logging.SafeLogger) *LeadService {
	return &LeadService{
		database: database,
		logger:   logger,
	}
}

// Global lead service instance
var LeadServiceInstance *LeadService

// InitLeadService initializes the global lead service instance
func InitLeadService() {
	logger := zap.L().Named("lead_service")

	LeadServiceInstance = NewLeadService(config.MongoDB, logging.Logger)

	logger.Info("lead service initialized successfully")
}

// CreateLead validates and persists a lead. A repeated submissionId within
// the dedupe window returns the originally stored lead without a second
// insert, so double-clicks and client retries cannot create duplicates.
// Validation failures return models.ErrLeadValidation with the field errors.
func (s *LeadService) CreateLead(ctx context.Context, input models.LeadInput) (*models.Lead, *utils.ValidationResult, error) {
	validation := utils.ValidateLead(input)
	if !validation.IsValid {
		observability.LeadSubmissions.WithLabelValues("validation_failure").Inc()
		return nil, validation, models.ErrLeadValidation
	}

	collection := s.database.Collection(config.AppConfig.LeadCollection)

	if input.SubmissionID != "" {
		var existing models.Lead
		filter := bson.M{
			"submissionId": input.SubmissionID,
			"createdAt":    bson.M{"$gte": time.Now().UTC().Add(-config.AppConfig.LeadDedupeWindow)},
		}
		err := collection.FindOne(ctx, filter).Decode(&existing)
		if err == nil {
			observability.LeadSubmissions.WithLabelValues("duplicate").Inc()
			s.logger.Info("duplicate lead submission ignored",
				zap.String("submission_id", input.SubmissionID))
			return &existing, nil, nil
		}
		if err != mongo.ErrNoDocuments {
			observability.LeadSubmissions.WithLabelValues("error").Inc()
			return nil, nil, fmt.Errorf("failed to check for duplicate submission: %w", err)
		}
	}

	source := input.Source
	if source == "" {
		source = config.AppConfig.LeadSource
	}

	lead := models.Lead{
		Name:              input.Name,
		Company:           input.Company,
		Phone:             input.Phone,
		Email:             input.Email,
		ServicoInteresse:  input.ServicoInteresse,
		FaturamentoMensal: input.FaturamentoMensal,
		Message:           input.Message,
		Source:            source,
		SubmissionID:      input.SubmissionID,
		CreatedAt:         time.Now().UTC(),
	}

	result, err := collection.InsertOne(ctx, lead)
	if err != nil {
		observability.LeadSubmissions.WithLabelValues("error").Inc()
		s.logger.Error("failed to insert lead",
			zap.String("email", observability.MaskEmail(lead.Email)),
			zap.Error(err))
		return nil, nil, fmt.Errorf("failed to insert lead: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		lead.ID = oid
	}

	observability.LeadSubmissions.WithLabelValues("success").Inc()
	s.logger.Info("lead stored",
		zap.String("email", observability.MaskEmail(lead.Email)),
		zap.String("phone", observability.MaskPhone(lead.Phone)),
		zap.String("source", lead.Source))

	return &lead, nil, nil
}
