package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead is a prospective customer's submitted contact and interest data.
// Constructed once per form submission and discarded client-side after the
// outcome is recorded; no retry state is kept.
type Lead struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name"`
	Company           string             `json:"company" bson:"company"`
	Phone             string             `json:"phone" bson:"phone"`
	Email             string             `json:"email" bson:"email"`
	ServicoInteresse  string             `json:"servicoInteresse" bson:"servicoInteresse"`
	FaturamentoMensal string             `json:"faturamentoMensal,omitempty" bson:"faturamentoMensal,omitempty"`
	Message           string             `json:"message,omitempty" bson:"message,omitempty"`
	Source            string             `json:"source,omitempty" bson:"source,omitempty"`
	// SubmissionID is generated client-side once per submission attempt so
	// the endpoint can deduplicate double-clicks and network retries.
	SubmissionID string    `json:"submissionId,omitempty" bson:"submissionId,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// LeadInput is the payload accepted by the lead intake endpoint
type LeadInput struct {
	Name              string `json:"name" binding:"required"`
	Company           string `json:"company" binding:"required"`
	Phone             string `json:"phone" binding:"required"`
	Email             string `json:"email" binding:"required"`
	ServicoInteresse  string `json:"servicoInteresse" binding:"required"`
	FaturamentoMensal string `json:"faturamentoMensal"`
	Message           string `json:"message"`
	Source            string `json:"source"`
	SubmissionID      string `json:"submissionId"`
}
