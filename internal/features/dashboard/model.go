package dashboard

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type WidgetType string

const (
	WidgetTypeProjects       WidgetType = "projects"
	WidgetTypeMilestones     WidgetType = "milestones"
	WidgetTypeFunding        WidgetType = "funding"
	WidgetTypeCalendar       WidgetType = "calendar"
	WidgetTypeRecentActivity WidgetType = "recent_activity"
	WidgetTypeAISuggestions  WidgetType = "ai_suggestions"
)

var validWidgetTypes = map[WidgetType]bool{
	WidgetTypeProjects:       true,
	WidgetTypeMilestones:     true,
	WidgetTypeFunding:        true,
	WidgetTypeCalendar:       true,
	WidgetTypeRecentActivity: true,
	WidgetTypeAISuggestions:  true,
}

func (t WidgetType) Valid() bool {
	return validWidgetTypes[t]
}

type GridPosition struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

type GridSize struct {
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

const pendingPrefix = "temp_"

// WidgetID distinguishes ids minted client-side while a create is still in
// flight from ids the server has acknowledged. Both serialize as a plain
// string on the wire; pending ids carry the temp_ prefix.
type WidgetID struct {
	value string
}

var (
	pendingMu   sync.Mutex
	pendingLast int64
)

// NewPendingID mints a temporary id. Ids are strictly increasing even when
// two widgets are created within the same millisecond.
func NewPendingID() WidgetID {
	pendingMu.Lock()
	defer pendingMu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= pendingLast {
		ms = pendingLast + 1
	}
	pendingLast = ms

	return WidgetID{value: fmt.Sprintf("%s%d", pendingPrefix, ms)}
}

// PersistedID wraps a server-assigned id.
func PersistedID(id string) WidgetID {
	return WidgetID{value: id}
}

// ParseWidgetID classifies an id received from a caller.
func ParseWidgetID(id string) WidgetID {
	return WidgetID{value: id}
}

// Pending reports whether the server has not acknowledged this widget yet.
func (id WidgetID) Pending() bool {
	return strings.HasPrefix(id.value, pendingPrefix)
}

func (id WidgetID) String() string {
	return id.value
}

func (id WidgetID) IsZero() bool {
	return id.value == ""
}

func (id WidgetID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

func (id *WidgetID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	id.value = s
	return nil
}

func (id WidgetID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(id.value)
}

func (id *WidgetID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	raw := bson.RawValue{Type: t, Value: data}
	if err := raw.Unmarshal(&s); err != nil {
		return err
	}
	id.value = s
	return nil
}

// Widget is one tile on a user's dashboard.
type Widget struct {
	ID        WidgetID               `json:"id" bson:"id"`
	UserID    string                 `json:"user_id" bson:"user_id"`
	Type      WidgetType             `json:"widget_type" bson:"widget_type"`
	Position  GridPosition           `json:"position" bson:"position"`
	Size      GridSize               `json:"size" bson:"size"`
	Config    map[string]interface{} `json:"config" bson:"config"`
	CreatedAt time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time              `json:"updated_at" bson:"updated_at"`
}

// GeometryUpdate carries one widget's settled grid geometry after a drag
// or resize.
type GeometryUpdate struct {
	ID       string       `json:"id"`
	Position GridPosition `json:"position"`
	Size     GridSize     `json:"size"`
}
