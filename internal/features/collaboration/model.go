package collaboration

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
)

func (s InvitationStatus) Valid() bool {
	return s == InvitationStatusPending || s == InvitationStatusAccepted || s == InvitationStatusDeclined
}

// Terminal reports whether no further status transition is defined.
func (s InvitationStatus) Terminal() bool {
	return s == InvitationStatusAccepted || s == InvitationStatusDeclined
}

// Collaborator is one entry in a project's embedded collaborator list.
// At most one entry exists per user id; re-inviting replaces the entry.
type Collaborator struct {
	UserID         string           `json:"id" bson:"id"`
	Name           string           `json:"name" bson:"name"`
	Position       string           `json:"position" bson:"position"`
	InvitationDate time.Time        `json:"invitationDate" bson:"invitation_date"`
	Status         InvitationStatus `json:"status" bson:"status"`
	Message        string           `json:"message" bson:"message"`
}

// Project carries the fields of the external projects contract that the
// invitation machine touches. The collaborator field is deliberately
// untyped: stored rows hold either a JSON-encoded string or an array,
// and DecodeCollaborators sorts that out.
type Project struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	ResearchArea  string             `json:"research_area" bson:"research_area"`
	StartDate     *time.Time         `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate       *time.Time         `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Funded        bool               `json:"funded" bson:"funded"`
	OwnerID       string             `json:"owner_id" bson:"owner_id"`
	Collaborators interface{}        `json:"collaborators" bson:"collaborators"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// DecodeCollaborators turns whatever shape the store handed back into a
// typed list. A non-nil error means the value was unreadable; callers log
// it and continue with the returned empty list, never abort.
func DecodeCollaborators(raw interface{}) ([]Collaborator, error) {
	switch v := raw.(type) {
	case nil:
		return []Collaborator{}, nil
	case []Collaborator:
		return v, nil
	case string:
		return decodeJSONList([]byte(v))
	case []byte:
		return decodeJSONList(v)
	case primitive.A:
		// Round-trip through BSON to map the array elements onto the struct
		data, err := bson.Marshal(bson.M{"list": v})
		if err != nil {
			return []Collaborator{}, fmt.Errorf("collaborator list not decodable: %w", err)
		}
		var wrapper struct {
			List []Collaborator `bson:"list"`
		}
		if err := bson.Unmarshal(data, &wrapper); err != nil {
			return []Collaborator{}, fmt.Errorf("collaborator list not decodable: %w", err)
		}
		return wrapper.List, nil
	case []interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return []Collaborator{}, fmt.Errorf("collaborator list not decodable: %w", err)
		}
		return decodeJSONList(data)
	default:
		return []Collaborator{}, fmt.Errorf("collaborator list has unexpected type %T", raw)
	}
}

func decodeJSONList(data []byte) ([]Collaborator, error) {
	var list []Collaborator
	if err := json.Unmarshal(data, &list); err != nil {
		return []Collaborator{}, fmt.Errorf("collaborator list is not valid JSON: %w", err)
	}
	if list == nil {
		list = []Collaborator{}
	}
	return list, nil
}

// InvitationRecord is the frozen snapshot written to the invitation log
// when an invite goes out. It captures the project as it looked at that
// moment and is never updated when the project changes afterwards.
type InvitationRecord struct {
	ID             string           `json:"id" bson:"id"`
	ProjectID      string           `json:"project_id" bson:"project_id"`
	ProjectTitle   string           `json:"project_title" bson:"project_title"`
	ResearchArea   string           `json:"research_area" bson:"research_area"`
	StartDate      *time.Time       `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate        *time.Time       `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Funded         bool             `json:"funded" bson:"funded"`
	InviteeID      string           `json:"invitee_id" bson:"invitee_id"`
	InviteeName    string           `json:"invitee_name" bson:"invitee_name"`
	InviteeEmail   string           `json:"invitee_email" bson:"invitee_email"`
	Position       string           `json:"position" bson:"position"`
	Message        string           `json:"message" bson:"message"`
	Status         InvitationStatus `json:"status" bson:"status"`
	InvitationDate time.Time        `json:"invitation_date" bson:"invitation_date"`
}
