package prism

// ParamSpec declares one adjustable parameter of an effect implementation:
// its identifier, display label, bounds, default, and UI step size.
type ParamSpec struct {
	ID      string
	Label   string
	Min     float64
	Max     float64
	Default float64
	Step    float64
}

// resolveParams validates a caller-supplied parameter map against a schema.
// Values are clamped to [Min, Max]; missing parameters take the schema
// default (never zero); keys the schema does not declare are dropped.
func resolveParams(schema []ParamSpec, in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(schema))
	for _, spec := range schema {
		v, ok := in[spec.ID]
		if !ok {
			out[spec.ID] = spec.Default
			continue
		}
		if v < spec.Min {
			v = spec.Min
		} else if v > spec.Max {
			v = spec.Max
		}
		out[spec.ID] = v
	}
	return out
}

// param reads a resolved parameter, falling back to def when absent. The
// fallback only matters for generators invoked outside ApplyEffect; resolved
// maps always carry every declared key.
func param(params map[string]float64, id string, def float64) float64 {
	if v, ok := params[id]; ok {
		return v
	}
	return def
}
