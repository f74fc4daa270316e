package composer

import "github.com/agencialume/app-landing/internal/models"

// LegacyRenderers reproduces the behavior of the original monolithic page
// composer as a renderer set over the shared schema. The only intended
// divergence from the decomposed set is the solutions block: a list layout
// with the displayed benefits capped, where the decomposed set renders the
// full grid. Pricing precedence and omission policy are shared, not
// duplicated.
func LegacyRenderers() RendererSet {
	set := SectionRenderers()
	set.Name = TemplateLegacy
	set.Solucoes = func(entries []models.Solucao, products []models.Product) (interface{}, bool) {
		return renderSolutions(entries, products, layoutList, legacyBenefitCap)
	}
	return set
}
