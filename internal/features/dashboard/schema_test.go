package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSize(t *testing.T) {
	tests := []struct {
		widgetType WidgetType
		want       GridSize
	}{
		{WidgetTypeProjects, GridSize{Width: 6, Height: 4}},
		{WidgetTypeMilestones, GridSize{Width: 6, Height: 4}},
		{WidgetTypeFunding, GridSize{Width: 12, Height: 8}},
		{WidgetTypeCalendar, GridSize{Width: 6, Height: 6}},
		{WidgetTypeRecentActivity, GridSize{Width: 6, Height: 4}},
		{WidgetTypeAISuggestions, GridSize{Width: 6, Height: 5}},
	}

	for _, tt := range tests {
		t.Run(string(tt.widgetType), func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultSize(tt.widgetType))
		})
	}
}

func TestNormalizeConfig_Defaults(t *testing.T) {
	cfg, err := NormalizeConfig(WidgetTypeFunding, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "doughnut", cfg["chartType"])

	cfg, err = NormalizeConfig(WidgetTypeProjects, nil)
	require.NoError(t, err)
	assert.Equal(t, true, cfg["showStatus"])
	assert.Equal(t, true, cfg["showCollaborators"])
}

func TestNormalizeConfig_UnknownKeysDropped(t *testing.T) {
	cfg, err := NormalizeConfig(WidgetTypeFunding, map[string]interface{}{
		"chartType": "bar",
		"sparkle":   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "bar", cfg["chartType"])
	_, present := cfg["sparkle"]
	assert.False(t, present)
}

func TestNormalizeConfig_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		widgetType WidgetType
		in         map[string]interface{}
	}{
		{"enum violation", WidgetTypeFunding, map[string]interface{}{"chartType": "radar"}},
		{"wrong type for enum", WidgetTypeMilestones, map[string]interface{}{"timeRange": 7}},
		{"wrong type for bool", WidgetTypeProjects, map[string]interface{}{"showStatus": "yes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeConfig(tt.widgetType, tt.in)
			assert.Error(t, err)
		})
	}

	_, err := NormalizeConfig(WidgetType("weather"), nil)
	assert.Error(t, err)
}

func TestNormalizeConfig_EnumValues(t *testing.T) {
	for _, chart := range []string{"doughnut", "pie", "bar"} {
		cfg, err := NormalizeConfig(WidgetTypeFunding, map[string]interface{}{"chartType": chart})
		require.NoError(t, err)
		assert.Equal(t, chart, cfg["chartType"])
	}
	for _, view := range []string{"upcoming", "month", "list"} {
		cfg, err := NormalizeConfig(WidgetTypeCalendar, map[string]interface{}{"viewType": view})
		require.NoError(t, err)
		assert.Equal(t, view, cfg["viewType"])
	}
}
