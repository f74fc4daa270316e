package composer

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/agencialume/app-landing/internal/models"
)

func fullConfig() *models.LandingPageConfig {
	return &models.LandingPageConfig{
		Slug:          "criadores",
		VersionNumber: 2,
		Published:     true,
		Sections: models.Sections{
			Hero: &models.Hero{
				Title:   strPtr("Transforme sua audiência em receita"),
				CTAText: strPtr("Quero uma proposta"),
			},
			Problema: &models.Problema{
				Title: strPtr("Você cria, mas não fatura"),
				Items: []string{"Marcas não respondem", "Precificação no escuro"},
			},
			Solucoes: []models.Solucao{
				{
					Title:        "Gestão de carreira",
					ProductID:    strPtr("p1"),
					PriceMonthly: f64Ptr(9999),
					Benefits:     []string{"a", "b", "c", "d", "e", "f"},
				},
			},
			Combo: &models.Combo{
				Title:      strPtr("Combo completo"),
				ComboPrice: f64Ptr(4000),
			},
			Processo: &models.Processo{
				Steps: []models.ProcessoStep{{Title: "Diagnóstico"}, {Title: "Plano"}},
			},
			Mentor: &models.Mentor{Name: strPtr("Ana Lume")},
			Depoimentos: []models.Depoimento{
				{Quote: "Tripliquei meu faturamento", Author: strPtr("João")},
			},
			Urgencia: &models.Urgencia{Message: strPtr("Últimas vagas da turma")},
			FAQ: []models.FAQItem{
				{Question: "Quanto custa?", Answer: "Depende do plano"},
			},
			CTAFinal: &models.CTAFinal{Title: strPtr("Bora?"), CTAText: strPtr("Começar")},
		},
	}
}

func sectionNames(sections []RenderedSection) []string {
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, s.Name)
	}
	return names
}

func TestCompose_EmptySections(t *testing.T) {
	cfg := &models.LandingPageConfig{Slug: "vazia"}

	for _, template := range []string{TemplateLegacy, TemplateSections} {
		got := ForTemplate(template).Compose(cfg, nil)
		if len(got) != 0 {
			t.Errorf("Compose(%s) with empty sections = %v sections, want 0", template, len(got))
		}
	}
}

func TestCompose_NilConfig(t *testing.T) {
	got := ForTemplate(TemplateSections).Compose(nil, nil)
	if len(got) != 0 {
		t.Errorf("Compose(nil) = %v sections, want 0", len(got))
	}
}

func TestCompose_CanonicalOrder(t *testing.T) {
	products := []models.Product{{ID: "p1", Name: "Gestão", DefaultPrice: 2500}}
	got := ForTemplate(TemplateSections).Compose(fullConfig(), products)

	want := []string{
		SectionHero, SectionProblema, SectionSolucoes, SectionCombo,
		SectionProcesso, SectionMentor, SectionDepoimentos, SectionUrgencia,
		SectionFAQ, SectionCTAFinal,
	}
	if !reflect.DeepEqual(sectionNames(got), want) {
		t.Errorf("section order = %v, want %v", sectionNames(got), want)
	}
}

func TestCompose_SkipsAbsentSections(t *testing.T) {
	cfg := fullConfig()
	cfg.Sections.FAQ = nil
	cfg.Sections.Mentor = nil

	got := ForTemplate(TemplateSections).Compose(cfg, nil)
	for _, name := range sectionNames(got) {
		if name == SectionFAQ || name == SectionMentor {
			t.Errorf("absent section %q should be omitted", name)
		}
	}
}

func TestCompose_EmptySliceOmitsLikeAbsent(t *testing.T) {
	// Both absent and empty sequences are omission triggers
	absent := fullConfig()
	absent.Sections.FAQ = nil

	empty := fullConfig()
	empty.Sections.FAQ = []models.FAQItem{}

	composer := ForTemplate(TemplateSections)
	if !reflect.DeepEqual(sectionNames(composer.Compose(absent, nil)), sectionNames(composer.Compose(empty, nil))) {
		t.Error("absent and empty faq should render identically")
	}
}

func TestCompose_ProductPricePrecedence(t *testing.T) {
	products := []models.Product{{ID: "p1", Name: "Gestão de carreira", DefaultPrice: 2500}}
	got := ForTemplate(TemplateSections).Compose(fullConfig(), products)

	solutions := findSolutions(t, got)
	price := solutions[0].Price
	if price == nil {
		t.Fatal("solution should have a price block")
	}
	if price.Current != 2500 {
		t.Errorf("price = %v, want product price 2500 over literal 9999", price.Current)
	}
	if !price.FromProduct {
		t.Error("price should be marked as product-resolved")
	}
	if price.ProductName != "Gestão de carreira" {
		t.Errorf("product name = %v", price.ProductName)
	}
}

func TestCompose_LiteralFallbackWhenProductMissing(t *testing.T) {
	cfg := fullConfig()
	cfg.Sections.Solucoes[0].ProductID = strPtr("does-not-exist")
	cfg.Sections.Solucoes[0].PriceMonthly = f64Ptr(2500)
	cfg.Sections.Solucoes[0].PriceSemestral = nil

	got := ForTemplate(TemplateSections).Compose(cfg, nil)
	price := findSolutions(t, got)[0].Price
	if price == nil {
		t.Fatal("solution should fall back to literal price")
	}
	if price.Current != 2500 || price.FromProduct {
		t.Errorf("price = %+v, want literal 2500", price)
	}
}

func TestCompose_SemestralShownWithMonthlyStruck(t *testing.T) {
	cfg := fullConfig()
	cfg.Sections.Solucoes[0].ProductID = nil
	cfg.Sections.Solucoes[0].PriceMonthly = f64Ptr(2500)
	cfg.Sections.Solucoes[0].PriceSemestral = f64Ptr(1500)

	got := ForTemplate(TemplateSections).Compose(cfg, nil)
	price := findSolutions(t, got)[0].Price
	if price == nil {
		t.Fatal("solution should have a price block")
	}
	if price.Current != 1500 {
		t.Errorf("current = %v, want semestral 1500", price.Current)
	}
	if price.Original == nil || *price.Original != 2500 {
		t.Errorf("original = %v, want monthly 2500 struck through", price.Original)
	}
}

func TestCompose_NoPriceBlockWhenNoSource(t *testing.T) {
	cfg := fullConfig()
	cfg.Sections.Solucoes[0].ProductID = nil
	cfg.Sections.Solucoes[0].PriceMonthly = nil
	cfg.Sections.Solucoes[0].PriceSemestral = nil

	got := ForTemplate(TemplateSections).Compose(cfg, nil)
	if price := findSolutions(t, got)[0].Price; price != nil {
		t.Errorf("price = %+v, want no price block", price)
	}
}

func TestCompose_LegacyCapsBenefits(t *testing.T) {
	got := ForTemplate(TemplateLegacy).Compose(fullConfig(), nil)
	sol := findSolutions(t, got)[0]

	if len(sol.Benefits) != legacyBenefitCap {
		t.Errorf("legacy benefits = %v, want capped at %v", len(sol.Benefits), legacyBenefitCap)
	}
	if sol.Layout != layoutList {
		t.Errorf("legacy layout = %v, want %v", sol.Layout, layoutList)
	}
}

func TestCompose_SectionsRenderUncappedGrid(t *testing.T) {
	got := ForTemplate(TemplateSections).Compose(fullConfig(), nil)
	sol := findSolutions(t, got)[0]

	if len(sol.Benefits) != 6 {
		t.Errorf("sections benefits = %v, want all 6", len(sol.Benefits))
	}
	if sol.Layout != layoutGrid {
		t.Errorf("sections layout = %v, want %v", sol.Layout, layoutGrid)
	}
}

func TestCompose_FeaturesUsedWhenNoBenefits(t *testing.T) {
	cfg := fullConfig()
	cfg.Sections.Solucoes[0].Benefits = nil
	cfg.Sections.Solucoes[0].Features = []string{"x", "y"}

	got := ForTemplate(TemplateSections).Compose(cfg, nil)
	sol := findSolutions(t, got)[0]
	if !reflect.DeepEqual(sol.Benefits, []string{"x", "y"}) {
		t.Errorf("benefits = %v, want features fallback", sol.Benefits)
	}
}

func TestCompose_CTAUrlNavigatesInsteadOfOpeningForm(t *testing.T) {
	cfg := fullConfig()
	cfg.Sections.Solucoes[0].CTAUrl = strPtr("https://wa.me/5521999999999")

	got := ForTemplate(TemplateSections).Compose(cfg, nil)
	cta := findSolutions(t, got)[0].CTA
	if cta.Action != ActionNavigate {
		t.Errorf("action = %v, want navigate", cta.Action)
	}
	if cta.URL != "https://wa.me/5521999999999" {
		t.Errorf("url = %v", cta.URL)
	}
}

func TestCompose_DefaultCTAOpensLeadForm(t *testing.T) {
	got := ForTemplate(TemplateSections).Compose(fullConfig(), nil)

	hero, ok := got[0].Data.(HeroView)
	if !ok {
		t.Fatalf("hero data type = %T", got[0].Data)
	}
	if hero.CTA.Action != ActionOpenLeadForm {
		t.Errorf("hero action = %v, want open-lead-form", hero.CTA.Action)
	}
	if hero.CTA.Label != "Quero uma proposta" {
		t.Errorf("hero label = %v", hero.CTA.Label)
	}
}

func TestCompose_Idempotent(t *testing.T) {
	cfg := fullConfig()
	products := []models.Product{{ID: "p1", Name: "Gestão", DefaultPrice: 2500}}
	composer := ForTemplate(TemplateSections)

	first, err := json.Marshal(composer.Compose(cfg, products))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	second, err := json.Marshal(composer.Compose(cfg, products))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if string(first) != string(second) {
		t.Error("Compose() is not idempotent for identical inputs")
	}
}

func TestCompose_MalformedEntriesSkippedNotFatal(t *testing.T) {
	cfg := fullConfig()
	cfg.Sections.Solucoes = []models.Solucao{
		{},                                   // no title
		{Title: "   "},                       // blank title
		{Title: "Válida", Features: []string{"f"}},
	}
	cfg.Sections.Depoimentos = []models.Depoimento{{Quote: ""}, {Quote: "Ótimo"}}
	cfg.Sections.FAQ = []models.FAQItem{{Question: "", Answer: "x"}}

	got := ForTemplate(TemplateSections).Compose(cfg, nil)

	solutions := findSolutions(t, got)
	if len(solutions) != 1 {
		t.Errorf("solutions = %v, want 1 valid entry", len(solutions))
	}
	for _, s := range got {
		if s.Name == SectionFAQ {
			t.Error("faq with only blank questions should be omitted")
		}
	}
}

func findSolutions(t *testing.T, sections []RenderedSection) []SolutionView {
	t.Helper()
	for _, s := range sections {
		if s.Name == SectionSolucoes {
			views, ok := s.Data.([]SolutionView)
			if !ok {
				t.Fatalf("solucoes data type = %T", s.Data)
			}
			return views
		}
	}
	t.Fatal("no solucoes section rendered")
	return nil
}
