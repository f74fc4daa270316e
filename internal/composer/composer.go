package composer

import "github.com/agencialume/app-landing/internal/models"

// Section names in the fixed canonical render order. theme is not a body
// section; it is passed through at the page level.
const (
	SectionHero        = "hero"
	SectionProblema    = "problema"
	SectionSolucoes    = "solucoes"
	SectionCombo       = "combo"
	SectionProcesso    = "processo"
	SectionMentor      = "mentor"
	SectionDepoimentos = "depoimentos"
	SectionUrgencia    = "urgencia"
	SectionFAQ         = "faq"
	SectionCTAFinal    = "ctaFinal"
)

// CTA actions. Every section CTA either opens the shared lead form or, when
// the section declares an explicit URL, navigates directly.
const (
	ActionOpenLeadForm = "open-lead-form"
	ActionNavigate     = "navigate"
)

// RenderedSection is one entry of the ordered render sequence
type RenderedSection struct {
	Name string      `json:"name"`
	Data interface{} `json:"data"`
}

// RendererSet supplies one renderer per section. A renderer returns false to
// omit its section; the composer emits no placeholder for omitted sections.
// The legacy monolithic composer and the decomposed per-section composer are
// both expressed as renderer sets over the same schema, so pricing precedence
// and omission policy live in exactly one code path.
type RendererSet struct {
	Name        string
	Hero        func(*models.Hero) (interface{}, bool)
	Problema    func(*models.Problema) (interface{}, bool)
	Solucoes    func([]models.Solucao, []models.Product) (interface{}, bool)
	Combo       func(*models.Combo) (interface{}, bool)
	Processo    func(*models.Processo) (interface{}, bool)
	Mentor      func(*models.Mentor) (interface{}, bool)
	Depoimentos func([]models.Depoimento) (interface{}, bool)
	Urgencia    func(*models.Urgencia) (interface{}, bool)
	FAQ         func([]models.FAQItem) (interface{}, bool)
	CTAFinal    func(*models.CTAFinal) (interface{}, bool)
}

// Composer turns a configuration record plus products into an ordered render
// sequence. Compose is pure: identical inputs yield identical output, and a
// missing or malformed section payload never fails the page.
type Composer struct {
	renderers RendererSet
}

// New creates a composer with the given renderer set
func New(renderers RendererSet) *Composer {
	return &Composer{renderers: renderers}
}

// Template returns the renderer set name this composer was built with
func (c *Composer) Template() string {
	return c.renderers.Name
}

// Compose renders the declared sections of cfg in canonical order, resolving
// solution prices against products. Absent and empty payloads are skipped.
func (c *Composer) Compose(cfg *models.LandingPageConfig, products []models.Product) []RenderedSection {
	sections := make([]RenderedSection, 0, 10)
	if cfg == nil {
		return sections
	}
	s := cfg.Sections

	if s.Hero != nil && c.renderers.Hero != nil {
		if data, ok := c.renderers.Hero(s.Hero); ok {
			sections = append(sections, RenderedSection{Name: SectionHero, Data: data})
		}
	}
	if s.Problema != nil && c.renderers.Problema != nil {
		if data, ok := c.renderers.Problema(s.Problema); ok {
			sections = append(sections, RenderedSection{Name: SectionProblema, Data: data})
		}
	}
	if len(s.Solucoes) > 0 && c.renderers.Solucoes != nil {
		if data, ok := c.renderers.Solucoes(s.Solucoes, products); ok {
			sections = append(sections, RenderedSection{Name: SectionSolucoes, Data: data})
		}
	}
	if s.Combo != nil && c.renderers.Combo != nil {
		if data, ok := c.renderers.Combo(s.Combo); ok {
			sections = append(sections, RenderedSection{Name: SectionCombo, Data: data})
		}
	}
	if s.Processo != nil && c.renderers.Processo != nil {
		if data, ok := c.renderers.Processo(s.Processo); ok {
			sections = append(sections, RenderedSection{Name: SectionProcesso, Data: data})
		}
	}
	if s.Mentor != nil && c.renderers.Mentor != nil {
		if data, ok := c.renderers.Mentor(s.Mentor); ok {
			sections = append(sections, RenderedSection{Name: SectionMentor, Data: data})
		}
	}
	if len(s.Depoimentos) > 0 && c.renderers.Depoimentos != nil {
		if data, ok := c.renderers.Depoimentos(s.Depoimentos); ok {
			sections = append(sections, RenderedSection{Name: SectionDepoimentos, Data: data})
		}
	}
	if s.Urgencia != nil && c.renderers.Urgencia != nil {
		if data, ok := c.renderers.Urgencia(s.Urgencia); ok {
			sections = append(sections, RenderedSection{Name: SectionUrgencia, Data: data})
		}
	}
	if len(s.FAQ) > 0 && c.renderers.FAQ != nil {
		if data, ok := c.renderers.FAQ(s.FAQ); ok {
			sections = append(sections, RenderedSection{Name: SectionFAQ, Data: data})
		}
	}
	if s.CTAFinal != nil && c.renderers.CTAFinal != nil {
		if data, ok := c.renderers.CTAFinal(s.CTAFinal); ok {
			sections = append(sections, RenderedSection{Name: SectionCTAFinal, Data: data})
		}
	}

	return sections
}
