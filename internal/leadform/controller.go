package leadform

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/agencialume/app-landing/internal/analytics"
	"github.com/agencialume/app-landing/internal/logging"
	"github.com/agencialume/app-landing/internal/models"
	"github.com/agencialume/app-landing/internal/observability"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State of a lead form submission lifecycle
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Field names accepted by UpdateField
const (
	FieldName              = "name"
	FieldCompany           = "company"
	FieldPhone             = "phone"
	FieldEmail             = "email"
	FieldServicoInteresse  = "servicoInteresse"
	FieldFaturamentoMensal = "faturamentoMensal"
	FieldMessage           = "message"
)

var requiredFields = []string{
	FieldName, FieldCompany, FieldPhone, FieldEmail, FieldServicoInteresse,
}

var (
	// ErrValidation reports missing required fields; no network call is made
	ErrValidation = errors.New("required fields missing")
	// ErrSubmissionInFlight reports a Submit while one is already running
	ErrSubmissionInFlight = errors.New("submission already in flight")
	// ErrAlreadySucceeded reports a Submit after the form has succeeded
	ErrAlreadySucceeded = errors.New("form already submitted")
)

// Submitter delivers a lead to the intake endpoint
type Submitter interface {
	SubmitLead(ctx context.Context, lead models.Lead) error
}

// Navigator performs the post-success navigation
type Navigator interface {
	Navigate(path string)
}

// Options configures a Controller
type Options struct {
	Source          string
	ThankYouPath    string
	NavigationDelay time.Duration
	ConversionValue float64
	Currency        string
	Logger          *logging.SafeLogger
}

// Controller owns the lifecycle of a single lead-capture submission:
// field state, validation, one network submission per attempt, dual
// analytics emission, and a delayed post-success navigation tied to the
// controller's own lifetime. Instances are independent; a second form cannot
// observe or cancel this one's pending submission.
type Controller struct {
	mu         sync.Mutex
	state      State
	fields     map[string]string
	errMessage string

	submitter  Submitter
	collectors []analytics.Collector
	navigator  Navigator
	opts       Options

	navTimer *time.Timer
	closed   bool
}

// New creates a controller in the Editing state
func New(submitter Submitter, collectors []analytics.Collector, navigator Navigator, opts Options) *Controller {
	if opts.NavigationDelay <= 0 {
		opts.NavigationDelay = 2 * time.Second
	}
	if opts.ThankYouPath == "" {
		opts.ThankYouPath = "/obrigado"
	}
	return &Controller{
		state:      StateEditing,
		fields:     make(map[string]string),
		submitter:  submitter,
		collectors: collectors,
		navigator:  navigator,
		opts:       opts,
	}
}

// State returns the current lifecycle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Field returns the current value of a form field
func (c *Controller) Field(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields[name]
}

// ErrorMessage returns the retryable error message after a failed submission
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMessage
}

// UpdateField merges a single field into form state. Edits are ignored while
// a submission is in flight or after success; the prior submission already
// determined the outcome.
func (c *Controller) UpdateField(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting || c.state == StateSuccess {
		return
	}
	c.fields[name] = value
}

// missingRequired returns the required fields that are empty
func (c *Controller) missingRequired() []string {
	var missing []string
	for _, f := range requiredFields {
		if strings.TrimSpace(c.fields[f]) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Submit validates the form and delivers the lead. Validation failure makes
// no network call and leaves the form in Editing. A fresh submission id is
// generated per Submitting transition so the endpoint can deduplicate
// retries. On success, two analytics emissions are dispatched without
// awaiting delivery and the thank-you navigation is scheduled.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateSubmitting:
		c.mu.Unlock()
		return ErrSubmissionInFlight
	case StateSuccess:
		c.mu.Unlock()
		return ErrAlreadySucceeded
	}

	if missing := c.missingRequired(); len(missing) > 0 {
		c.state = StateEditing
		c.mu.Unlock()
		return ErrValidation
	}

	lead := models.Lead{
		Name:              c.fields[FieldName],
		Company:           c.fields[FieldCompany],
		Phone:             c.fields[FieldPhone],
		Email:             c.fields[FieldEmail],
		ServicoInteresse:  c.fields[FieldServicoInteresse],
		FaturamentoMensal: c.fields[FieldFaturamentoMensal],
		Message:           c.fields[FieldMessage],
		Source:            c.opts.Source,
		SubmissionID:      uuid.NewString(),
		CreatedAt:         time.Now().UTC(),
	}
	c.state = StateSubmitting
	c.errMessage = ""
	c.mu.Unlock()

	err := c.submitter.SubmitLead(ctx, lead)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		// Field values are preserved for a manual retry; no backoff, no
		// automatic resubmission.
		c.state = StateError
		c.errMessage = "Não foi possível enviar. Tente novamente."
		c.opts.Logger.Warn("lead submission failed",
			zap.String("submission_id", lead.SubmissionID),
			zap.Error(err))
		return err
	}

	c.state = StateSuccess
	c.emitConversions(lead)
	c.scheduleNavigation()
	return nil
}

// emitConversions dispatches one event per collector. Emissions are
// fire-and-forget: a failing or absent collector never affects the Success
// state and never blocks navigation.
func (c *Controller) emitConversions(lead models.Lead) {
	event := analytics.Event{
		Name:     "lead",
		Value:    c.opts.ConversionValue,
		Currency: c.opts.Currency,
		Source:   lead.Source,
		ClientID: lead.SubmissionID,
	}
	for _, collector := range c.collectors {
		go func(col analytics.Collector) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := col.Track(ctx, event); err != nil {
				observability.AnalyticsEmissions.WithLabelValues(col.Name(), "error").Inc()
				c.opts.Logger.Warn("analytics emission failed",
					zap.String("collector", col.Name()),
					zap.Error(err))
				return
			}
			observability.AnalyticsEmissions.WithLabelValues(col.Name(), "success").Inc()
		}(collector)
	}
}

// scheduleNavigation arms the one-shot thank-you navigation. The timer is
// tied to the controller lifecycle: Close stops it, so a dismissed form
// never navigates. Caller holds c.mu.
func (c *Controller) scheduleNavigation() {
	if c.navigator == nil || c.closed {
		return
	}
	c.navTimer = time.AfterFunc(c.opts.NavigationDelay, func() {
		c.mu.Lock()
		closed := c.closed
		c.mu.Unlock()
		if closed {
			return
		}
		c.navigator.Navigate(c.opts.ThankYouPath)
	})
}

// Retry returns an errored form to Editing so the user can resubmit
func (c *Controller) Retry() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateError {
		c.state = StateEditing
		c.errMessage = ""
	}
}

// Close disposes the controller and cancels any pending navigation
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.navTimer != nil {
		c.navTimer.Stop()
	}
}
