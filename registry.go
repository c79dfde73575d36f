package prism

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// EffectInfo describes one directly callable effect implementation for
// catalog UIs.
type EffectInfo struct {
	ID       string
	Name     string
	Category string
	Params   []ParamSpec
}

// effectImpl pairs catalog metadata with the runnable generator.
type effectImpl struct {
	Info      EffectInfo
	Params    []ParamSpec
	generator Generator
}

// GetEffectCategory returns the category of a direct effect identifier,
// resolving legacy aliases to their unified implementation first. It
// returns the empty string for unknown identifiers.
func GetEffectCategory(id string) string {
	if u := GetUnifiedEffect(id); u != nil {
		id = u.Unified
	}
	if impl, ok := implementations[id]; ok {
		return impl.Info.Category
	}
	return ""
}

// AllEffects returns every user-visible effect, sorted by display name.
// Hidden legacy aliases are not listed (they remain callable through
// ApplyEffect).
func AllEffects() []EffectInfo {
	out := make([]EffectInfo, 0, len(implementations))
	for id, impl := range implementations {
		if ShouldHideFromUI(id) {
			continue
		}
		info := impl.Info
		info.Params = impl.Params
		out = append(out, info)
	}
	sortEffects(out)
	return out
}

// EffectsForCategory returns the user-visible effects in one category,
// sorted by display name.
func EffectsForCategory(name string) []EffectInfo {
	var out []EffectInfo
	for id, impl := range implementations {
		if impl.Info.Category != name || ShouldHideFromUI(id) {
			continue
		}
		info := impl.Info
		info.Params = impl.Params
		out = append(out, info)
	}
	sortEffects(out)
	return out
}

func sortEffects(effects []EffectInfo) {
	// A Collator keeps internal buffers, so each sort builds its own.
	collator := collate.New(language.English)
	// Insertion sort; catalogs are small.
	for i := 1; i < len(effects); i++ {
		for j := i; j > 0 && collator.CompareString(effects[j].Name, effects[j-1].Name) < 0; j-- {
			effects[j], effects[j-1] = effects[j-1], effects[j]
		}
	}
}
