package prism

import "testing"

func TestGetEffectCategory(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"mandelbrot", "Generate"},
		{"unifiedBlur", "Enhance"},
		{"kaleidoscope", "Distort"},
		{"unifiedReaction", "Organic"},
		{"unifiedFlow", "Paint"},
		{"blur", "Enhance"},  // alias resolves to its studio's category
		{"coral", "Organic"}, // same, through the reaction studio
		{"noSuchEffect", ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := GetEffectCategory(tt.id); got != tt.want {
				t.Errorf("GetEffectCategory(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestAllEffects_HidesAliases(t *testing.T) {
	effects := AllEffects()
	if len(effects) == 0 {
		t.Fatal("AllEffects returned nothing")
	}

	for _, e := range effects {
		if IsLegacyEffect(e.ID) {
			t.Errorf("legacy alias %q listed in catalog", e.ID)
		}
		if len(e.Params) == 0 {
			t.Errorf("effect %q listed without a parameter schema", e.ID)
		}
	}

	if len(effects) != len(implementations) {
		t.Errorf("listed %d effects, want %d direct implementations",
			len(effects), len(implementations))
	}
}

func TestAllEffects_SortedByName(t *testing.T) {
	effects := AllEffects()
	for i := 1; i < len(effects); i++ {
		if effects[i-1].Name > effects[i].Name {
			t.Errorf("catalog out of order: %q before %q", effects[i-1].Name, effects[i].Name)
		}
	}
}

func TestEffectsForCategory(t *testing.T) {
	generate := EffectsForCategory("Generate")
	want := map[string]bool{"mandelbrot": true, "julia": true, "noiseTexture": true}
	if len(generate) != len(want) {
		t.Fatalf("Generate category has %d effects, want %d", len(generate), len(want))
	}
	for _, e := range generate {
		if !want[e.ID] {
			t.Errorf("unexpected effect %q in Generate", e.ID)
		}
	}

	if got := EffectsForCategory("NoSuchCategory"); len(got) != 0 {
		t.Errorf("unknown category returned %d effects, want 0", len(got))
	}
}

func TestEveryImplementationHasCatalogInfo(t *testing.T) {
	for id, impl := range implementations {
		if impl.Info.ID != id {
			t.Errorf("implementation %q carries mismatched Info.ID %q", id, impl.Info.ID)
		}
		if impl.Info.Name == "" || impl.Info.Category == "" {
			t.Errorf("implementation %q missing catalog metadata", id)
		}
		if impl.generator == nil {
			t.Errorf("implementation %q has no generator", id)
		}
	}
}
