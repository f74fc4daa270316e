package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LandingPageConfig is a versioned, slug-addressed content record. Multiple
// versions may exist per slug; the current one is the highest published
// versionNumber. Every section is optional: an absent section is omitted
// from the rendered page, never an error.
type LandingPageConfig struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Slug          string             `json:"slug" bson:"slug"`
	VersionNumber int32              `json:"versionNumber" bson:"versionNumber"`
	Published     bool               `json:"published" bson:"published"`
	Sections      Sections           `json:"sections" bson:"sections"`
	CreatedAt     time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Sections holds the optional, independently-shaped section payloads.
// Unknown fields in stored records are ignored for forward compatibility.
type Sections struct {
	Hero        *Hero        `json:"hero,omitempty" bson:"hero,omitempty"`
	Problema    *Problema    `json:"problema,omitempty" bson:"problema,omitempty"`
	Solucoes    []Solucao    `json:"solucoes,omitempty" bson:"solucoes,omitempty"`
	Combo       *Combo       `json:"combo,omitempty" bson:"combo,omitempty"`
	Processo    *Processo    `json:"processo,omitempty" bson:"processo,omitempty"`
	Mentor      *Mentor      `json:"mentor,omitempty" bson:"mentor,omitempty"`
	Depoimentos []Depoimento `json:"depoimentos,omitempty" bson:"depoimentos,omitempty"`
	Urgencia    *Urgencia    `json:"urgencia,omitempty" bson:"urgencia,omitempty"`
	FAQ         []FAQItem    `json:"faq,omitempty" bson:"faq,omitempty"`
	CTAFinal    *CTAFinal    `json:"ctaFinal,omitempty" bson:"ctaFinal,omitempty"`
	Theme       *Theme       `json:"theme,omitempty" bson:"theme,omitempty"`
}

// Hero drives the page's primary call-to-action
type Hero struct {
	Badge    *string `json:"badge,omitempty" bson:"badge,omitempty"`
	Title    *string `json:"title,omitempty" bson:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	CTAText  *string `json:"ctaText,omitempty" bson:"ctaText,omitempty"`
	CTAUrl   *string `json:"ctaUrl,omitempty" bson:"ctaUrl,omitempty"`
}

// Problema describes the pain points block
type Problema struct {
	Title *string  `json:"title,omitempty" bson:"title,omitempty"`
	Items []string `json:"items,omitempty" bson:"items,omitempty"`
}

// Solucao is one entry of the solutions sequence. Legacy records carry
// benefits, newer records carry features; both are accepted. ProductID links
// the entry to a relationally-stored product whose price takes precedence
// over the literal price fields.
type Solucao struct {
	Title          string   `json:"title" bson:"title"`
	Description    *string  `json:"description,omitempty" bson:"description,omitempty"`
	Benefits       []string `json:"benefits,omitempty" bson:"benefits,omitempty"`
	Features       []string `json:"features,omitempty" bson:"features,omitempty"`
	ProductID      *string  `json:"productId,omitempty" bson:"productId,omitempty"`
	PriceMonthly   *float64 `json:"priceMonthly,omitempty" bson:"priceMonthly,omitempty"`
	PriceSemestral *float64 `json:"priceSemestral,omitempty" bson:"priceSemestral,omitempty"`
	Urgency        *string  `json:"urgency,omitempty" bson:"urgency,omitempty"`
	CTAText        *string  `json:"ctaText,omitempty" bson:"ctaText,omitempty"`
	CTAUrl         *string  `json:"ctaUrl,omitempty" bson:"ctaUrl,omitempty"`
}

// Combo is a bundled offer; its price always comes from literal fields,
// never from a product record.
type Combo struct {
	Title         *string  `json:"title,omitempty" bson:"title,omitempty"`
	Description   *string  `json:"description,omitempty" bson:"description,omitempty"`
	Items         []string `json:"items,omitempty" bson:"items,omitempty"`
	ComboPrice    *float64 `json:"comboPrice,omitempty" bson:"comboPrice,omitempty"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Economy       *float64 `json:"economy,omitempty" bson:"economy,omitempty"`
	CTAText       *string  `json:"ctaText,omitempty" bson:"ctaText,omitempty"`
}

// Processo lists the onboarding/process steps
type Processo struct {
	Title *string        `json:"title,omitempty" bson:"title,omitempty"`
	Steps []ProcessoStep `json:"steps,omitempty" bson:"steps,omitempty"`
}

// ProcessoStep is one process step
type ProcessoStep struct {
	Title       string  `json:"title" bson:"title"`
	Description *string `json:"description,omitempty" bson:"description,omitempty"`
}

// Mentor presents the mentor/founder block
type Mentor struct {
	Name       *string  `json:"name,omitempty" bson:"name,omitempty"`
	Bio        *string  `json:"bio,omitempty" bson:"bio,omitempty"`
	PhotoURL   *string  `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	Highlights []string `json:"highlights,omitempty" bson:"highlights,omitempty"`
}

// Depoimento is a testimonial entry
type Depoimento struct {
	Quote   string  `json:"quote" bson:"quote"`
	Author  *string `json:"author,omitempty" bson:"author,omitempty"`
	Role    *string `json:"role,omitempty" bson:"role,omitempty"`
	Company *string `json:"company,omitempty" bson:"company,omitempty"`
}

// Urgencia is the scarcity/urgency block
type Urgencia struct {
	Title    *string `json:"title,omitempty" bson:"title,omitempty"`
	Message  *string `json:"message,omitempty" bson:"message,omitempty"`
	Deadline *string `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Spots    *int32  `json:"spots,omitempty" bson:"spots,omitempty"`
}

// FAQItem is one question/answer pair
type FAQItem struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// CTAFinal is the closing call-to-action block
type CTAFinal struct {
	Title    *string `json:"title,omitempty" bson:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	CTAText  *string `json:"ctaText,omitempty" bson:"ctaText,omitempty"`
	CTAUrl   *string `json:"ctaUrl,omitempty" bson:"ctaUrl,omitempty"`
}

// Theme carries per-page presentation hints passed through untouched
type Theme struct {
	PrimaryColor   *string `json:"primaryColor,omitempty" bson:"primaryColor,omitempty"`
	SecondaryColor *string `json:"secondaryColor,omitempty" bson:"secondaryColor,omitempty"`
	Background     *string `json:"background,omitempty" bson:"background,omitempty"`
}
