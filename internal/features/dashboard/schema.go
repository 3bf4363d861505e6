package dashboard

import "fmt"

// Per-type config schemas. Unknown keys are dropped at configure time,
// missing keys take their defaults.

type configField struct {
	boolean bool
	def     interface{}
	allowed []string
}

var configSchemas = map[WidgetType]map[string]configField{
	WidgetTypeProjects: {
		"showStatus":        {boolean: true, def: true},
		"showCollaborators": {boolean: true, def: true},
	},
	WidgetTypeMilestones: {
		"timeRange": {def: "upcoming", allowed: []string{"upcoming", "recent", "all"}},
	},
	WidgetTypeFunding: {
		"chartType": {def: "doughnut", allowed: []string{"doughnut", "pie", "bar"}},
	},
	WidgetTypeCalendar: {
		"viewType": {def: "upcoming", allowed: []string{"upcoming", "month", "list"}},
	},
	WidgetTypeRecentActivity: {},
	WidgetTypeAISuggestions:  {},
}

var defaultSizes = map[WidgetType]GridSize{
	WidgetTypeProjects:       {Width: 6, Height: 4},
	WidgetTypeMilestones:     {Width: 6, Height: 4},
	WidgetTypeFunding:        {Width: 12, Height: 8},
	WidgetTypeCalendar:       {Width: 6, Height: 6},
	WidgetTypeRecentActivity: {Width: 6, Height: 4},
	WidgetTypeAISuggestions:  {Width: 6, Height: 5},
}

// DefaultSize returns the grid footprint a new widget of the given type gets.
func DefaultSize(t WidgetType) GridSize {
	return defaultSizes[t]
}

// DefaultConfig returns a fresh config map with every schema key at its default.
func DefaultConfig(t WidgetType) map[string]interface{} {
	cfg := make(map[string]interface{})
	for key, field := range configSchemas[t] {
		cfg[key] = field.def
	}
	return cfg
}

// NormalizeConfig validates a caller-supplied config against the widget
// type's schema. Unknown keys are silently discarded, missing keys default,
// and type or enum violations are rejected before any state changes.
func NormalizeConfig(t WidgetType, in map[string]interface{}) (map[string]interface{}, error) {
	schema, ok := configSchemas[t]
	if !ok {
		return nil, fmt.Errorf("unknown widget type '%s'", t)
	}

	out := make(map[string]interface{})
	for key, field := range schema {
		value, present := in[key]
		if !present {
			out[key] = field.def
			continue
		}

		if field.boolean {
			b, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("config key '%s' must be a boolean", key)
			}
			out[key] = b
			continue
		}

		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("config key '%s' must be a string", key)
		}
		if !contains(field.allowed, s) {
			return nil, fmt.Errorf("config key '%s' must be one of %v", key, field.allowed)
		}
		out[key] = s
	}

	return out, nil
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
