package composer

import (
	"strings"

	"github.com/agencialume/app-landing/internal/models"
)

// CTAView is a rendered call-to-action
type CTAView struct {
	Label  string `json:"label,omitempty"`
	Action string `json:"action"`
	URL    string `json:"url,omitempty"`
}

// PriceView is a rendered price block. Original, when set, is displayed
// struck through next to Current.
type PriceView struct {
	Current     float64  `json:"current"`
	Original    *float64 `json:"original,omitempty"`
	ProductName string   `json:"productName,omitempty"`
	FromProduct bool     `json:"fromProduct"`
}

// HeroView is the rendered hero section
type HeroView struct {
	Badge    string  `json:"badge,omitempty"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	CTA      CTAView `json:"cta"`
}

// ProblemaView is the rendered pain-points section
type ProblemaView struct {
	Title string   `json:"title,omitempty"`
	Items []string `json:"items"`
}

// SolutionView is one rendered solution entry
type SolutionView struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Benefits    []string   `json:"benefits,omitempty"`
	Layout      string     `json:"layout"`
	Price       *PriceView `json:"price,omitempty"`
	Urgency     string     `json:"urgency,omitempty"`
	CTA         CTAView    `json:"cta"`
}

// ComboView is the rendered bundle section; pricing is always literal
type ComboView struct {
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	Items         []string `json:"items,omitempty"`
	ComboPrice    *float64 `json:"comboPrice,omitempty"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Economy       *float64 `json:"economy,omitempty"`
	CTA           CTAView  `json:"cta"`
}

// ProcessoView is the rendered process section
type ProcessoView struct {
	Title string                `json:"title,omitempty"`
	Steps []models.ProcessoStep `json:"steps"`
}

// MentorView is the rendered mentor section
type MentorView struct {
	Name       string   `json:"name"`
	Bio        string   `json:"bio,omitempty"`
	PhotoURL   string   `json:"photoUrl,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// UrgenciaView is the rendered scarcity section
type UrgenciaView struct {
	Title    string  `json:"title,omitempty"`
	Message  string  `json:"message,omitempty"`
	Deadline string  `json:"deadline,omitempty"`
	Spots    *int32  `json:"spots,omitempty"`
	CTA      CTAView `json:"cta"`
}

// CTAFinalView is the rendered closing call-to-action
type CTAFinalView struct {
	Title    string  `json:"title,omitempty"`
	Subtitle string  `json:"subtitle,omitempty"`
	CTA      CTAView `json:"cta"`
}

// Solution layouts. The legacy renderer set shows a capped list; the
// decomposed set shows the full grid.
const (
	layoutList = "list"
	layoutGrid = "grid"
)

// legacyBenefitCap bounds the benefit list in the legacy layout
const legacyBenefitCap = 4

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ctaView builds a CTA: an explicit ctaUrl navigates directly, anything else
// triggers the shared open-lead-form action.
func ctaView(text, url *string, fallbackLabel string) CTAView {
	label := strings.TrimSpace(deref(text))
	if label == "" {
		label = fallbackLabel
	}
	if u := strings.TrimSpace(deref(url)); u != "" {
		return CTAView{Label: label, Action: ActionNavigate, URL: u}
	}
	return CTAView{Label: label, Action: ActionOpenLeadForm}
}

// solutionItems returns the entry's display list: legacy records carry
// benefits, newer records carry features.
func solutionItems(s models.Solucao) []string {
	if len(s.Benefits) > 0 {
		return s.Benefits
	}
	return s.Features
}

// solutionPrice applies the pricing precedence: a resolved product always
// wins; otherwise literal fields, with the semestral figure shown current and
// the monthly figure struck through when both exist; nil when neither source
// yields a price (no price block rendered).
func solutionPrice(s models.Solucao, products []models.Product) *PriceView {
	if rp := ResolvePrice(s.ProductID, products); rp != nil {
		return &PriceView{Current: rp.Price, ProductName: rp.Name, FromProduct: true}
	}
	switch {
	case s.PriceMonthly != nil && s.PriceSemestral != nil:
		return &PriceView{Current: *s.PriceSemestral, Original: s.PriceMonthly}
	case s.PriceMonthly != nil:
		return &PriceView{Current: *s.PriceMonthly}
	case s.PriceSemestral != nil:
		return &PriceView{Current: *s.PriceSemestral}
	default:
		return nil
	}
}

func renderSolutions(entries []models.Solucao, products []models.Product, layout string, limit int) (interface{}, bool) {
	views := make([]SolutionView, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry.Title) == "" {
			continue
		}
		items := solutionItems(entry)
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}
		views = append(views, SolutionView{
			Title:       entry.Title,
			Description: deref(entry.Description),
			Benefits:    items,
			Layout:      layout,
			Price:       solutionPrice(entry, products),
			Urgency:     deref(entry.Urgency),
			CTA:         ctaView(entry.CTAText, entry.CTAUrl, "Quero começar"),
		})
	}
	if len(views) == 0 {
		return nil, false
	}
	return views, true
}

func renderHero(h *models.Hero) (interface{}, bool) {
	if deref(h.Title) == "" && deref(h.Subtitle) == "" && deref(h.Badge) == "" {
		return nil, false
	}
	return HeroView{
		Badge:    deref(h.Badge),
		Title:    deref(h.Title),
		Subtitle: deref(h.Subtitle),
		CTA:      ctaView(h.CTAText, h.CTAUrl, "Falar com a equipe"),
	}, true
}

func renderProblema(p *models.Problema) (interface{}, bool) {
	if len(p.Items) == 0 {
		return nil, false
	}
	return ProblemaView{Title: deref(p.Title), Items: p.Items}, true
}

func renderCombo(c *models.Combo) (interface{}, bool) {
	if deref(c.Title) == "" && c.ComboPrice == nil && len(c.Items) == 0 {
		return nil, false
	}
	return ComboView{
		Title:         deref(c.Title),
		Description:   deref(c.Description),
		Items:         c.Items,
		ComboPrice:    c.ComboPrice,
		OriginalPrice: c.OriginalPrice,
		Economy:       c.Economy,
		CTA:           ctaView(c.CTAText, nil, "Quero o combo"),
	}, true
}

func renderProcesso(p *models.Processo) (interface{}, bool) {
	if len(p.Steps) == 0 {
		return nil, false
	}
	return ProcessoView{Title: deref(p.Title), Steps: p.Steps}, true
}

func renderMentor(m *models.Mentor) (interface{}, bool) {
	if deref(m.Name) == "" {
		return nil, false
	}
	return MentorView{
		Name:       deref(m.Name),
		Bio:        deref(m.Bio),
		PhotoURL:   deref(m.PhotoURL),
		Highlights: m.Highlights,
	}, true
}

func renderDepoimentos(entries []models.Depoimento) (interface{}, bool) {
	views := make([]models.Depoimento, 0, len(entries))
	for _, d := range entries {
		if strings.TrimSpace(d.Quote) == "" {
			continue
		}
		views = append(views, d)
	}
	if len(views) == 0 {
		return nil, false
	}
	return views, true
}

func renderUrgencia(u *models.Urgencia) (interface{}, bool) {
	if deref(u.Title) == "" && deref(u.Message) == "" {
		return nil, false
	}
	return UrgenciaView{
		Title:    deref(u.Title),
		Message:  deref(u.Message),
		Deadline: deref(u.Deadline),
		Spots:    u.Spots,
		CTA:      CTAView{Label: "Garantir vaga", Action: ActionOpenLeadForm},
	}, true
}

func renderFAQ(items []models.FAQItem) (interface{}, bool) {
	views := make([]models.FAQItem, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Question) == "" {
			continue
		}
		views = append(views, item)
	}
	if len(views) == 0 {
		return nil, false
	}
	return views, true
}

func renderCTAFinal(c *models.CTAFinal) (interface{}, bool) {
	if deref(c.Title) == "" && deref(c.CTAText) == "" {
		return nil, false
	}
	return CTAFinalView{
		Title:    deref(c.Title),
		Subtitle: deref(c.Subtitle),
		CTA:      ctaView(c.CTAText, c.CTAUrl, "Começar agora"),
	}, true
}

// SectionRenderers is the decomposed renderer set: each section has its own
// renderer and the solutions block shows the full feature grid, uncapped.
func SectionRenderers() RendererSet {
	return RendererSet{
		Name:     TemplateSections,
		Hero:     renderHero,
		Problema: renderProblema,
		Solucoes: func(entries []models.Solucao, products []models.Product) (interface{}, bool) {
			return renderSolutions(entries, products, layoutGrid, 0)
		},
		Combo:       renderCombo,
		Processo:    renderProcesso,
		Mentor:      renderMentor,
		Depoimentos: renderDepoimentos,
		Urgencia:    renderUrgencia,
		FAQ:         renderFAQ,
		CTAFinal:    renderCTAFinal,
	}
}
