package composer

// Template names. Which template renders a page is decided by the caller
// (route or query), never by inspecting the configuration record; both
// templates consume the identical schema. This allows rolling out the
// decomposed renderer without a data migration.
const (
	TemplateLegacy   = "legacy"
	TemplateSections = "sections"
)

// NormalizeTemplate maps a requested template name onto a known one.
// Unknown or empty names fall back to the decomposed set.
func NormalizeTemplate(name string) string {
	if name == TemplateLegacy {
		return TemplateLegacy
	}
	return TemplateSections
}

// ForTemplate returns a composer wired with the renderer set for the given
// template name.
func ForTemplate(name string) *Composer {
	if NormalizeTemplate(name) == TemplateLegacy {
		return New(LegacyRenderers())
	}
	return New(SectionRenderers())
}
