package prism

// UnifiedEffect identifies the unified-studio implementation and preset a
// legacy effect name maps onto.
type UnifiedEffect struct {
	Unified string
	Preset  int
}

// legacyAliases maps every historical effect identifier onto its unified
// implementation and preset. Built once; never mutated at runtime. The
// preset index selects a row of the implementation's preset table.
var legacyAliases = map[string]UnifiedEffect{
	// Convolution studio.
	"blur":         {Unified: "unifiedBlur", Preset: 0},
	"gaussianBlur": {Unified: "unifiedBlur", Preset: 1},
	"sharpen":      {Unified: "unifiedBlur", Preset: 2},
	"edgeDetect":   {Unified: "unifiedBlur", Preset: 3},
	"emboss":       {Unified: "unifiedBlur", Preset: 4},

	// Fractal displacement studio.
	"newton":      {Unified: "unifiedFractal", Preset: 0},
	"burningShip": {Unified: "unifiedFractal", Preset: 1},
	"tricorn":     {Unified: "unifiedFractal", Preset: 2},
	"phoenix":     {Unified: "unifiedFractal", Preset: 3},

	// Reaction-diffusion studio.
	"coral":   {Unified: "unifiedReaction", Preset: 0},
	"mitosis": {Unified: "unifiedReaction", Preset: 1},
	"spots":   {Unified: "unifiedReaction", Preset: 2},
	"stripes": {Unified: "unifiedReaction", Preset: 3},
	"bubbles": {Unified: "unifiedReaction", Preset: 4},
	"worms":   {Unified: "unifiedReaction", Preset: 5},
	"maze":    {Unified: "unifiedReaction", Preset: 6},
	"holes":   {Unified: "unifiedReaction", Preset: 7},

	// Flow-field studio.
	"swirlField":      {Unified: "unifiedFlow", Preset: 0},
	"turbulenceField": {Unified: "unifiedFlow", Preset: 1},
	"waveField":       {Unified: "unifiedFlow", Preset: 2},
	"radialField":     {Unified: "unifiedFlow", Preset: 3},
}

// GetUnifiedEffect returns the unified mapping for a legacy effect name,
// or nil when the identifier is not an alias. Nil means "try a direct
// lookup", not "unknown effect".
func GetUnifiedEffect(id string) *UnifiedEffect {
	if u, ok := legacyAliases[id]; ok {
		return &u
	}
	return nil
}

// IsLegacyEffect reports whether id is a historical alias onto a unified
// implementation.
func IsLegacyEffect(id string) bool {
	_, ok := legacyAliases[id]
	return ok
}

// ShouldHideFromUI reports whether id should be kept out of user-facing
// effect listings. Aliases stay callable but are hidden so the catalog
// shows each studio once.
func ShouldHideFromUI(id string) bool {
	return IsLegacyEffect(id)
}
