package composer

import "testing"

func TestNormalizeTemplate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"legacy", "legacy", TemplateLegacy},
		{"sections", "sections", TemplateSections},
		{"empty falls back", "", TemplateSections},
		{"unknown falls back", "v3-experimental", TemplateSections},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTemplate(tt.in); got != tt.want {
				t.Errorf("NormalizeTemplate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestForTemplate(t *testing.T) {
	if got := ForTemplate("legacy").Template(); got != TemplateLegacy {
		t.Errorf("ForTemplate(legacy).Template() = %v", got)
	}
	if got := ForTemplate("sections").Template(); got != TemplateSections {
		t.Errorf("ForTemplate(sections).Template() = %v", got)
	}
	if got := ForTemplate("bogus").Template(); got != TemplateSections {
		t.Errorf("ForTemplate(bogus).Template() = %v, want fallback to sections", got)
	}
}
