package dashboard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPendingID_Distinct(t *testing.T) {
	a := NewPendingID()
	b := NewPendingID()

	assert.True(t, a.Pending())
	assert.True(t, b.Pending())
	assert.NotEqual(t, a.String(), b.String())
}

func TestParseWidgetID(t *testing.T) {
	assert.True(t, ParseWidgetID("temp_1000").Pending())
	assert.False(t, ParseWidgetID("42").Pending())
	assert.False(t, PersistedID("42").Pending())
}

func TestWidgetID_JSONRoundTrip(t *testing.T) {
	w := Widget{
		ID:     ParseWidgetID("temp_1000"),
		UserID: "u1",
		Type:   WidgetTypeFunding,
		Size:   GridSize{Width: 12, Height: 8},
	}

	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"temp_1000"`)

	var decoded Widget
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "temp_1000", decoded.ID.String())
	assert.True(t, decoded.ID.Pending())
}

func TestWidgetType_Valid(t *testing.T) {
	for _, valid := range []WidgetType{
		WidgetTypeProjects, WidgetTypeMilestones, WidgetTypeFunding,
		WidgetTypeCalendar, WidgetTypeRecentActivity, WidgetTypeAISuggestions,
	} {
		assert.True(t, valid.Valid(), string(valid))
	}
	assert.False(t, WidgetType("weather").Valid())
}
