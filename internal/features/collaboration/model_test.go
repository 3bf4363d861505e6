package collaboration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDecodeCollaborators_Nil(t *testing.T) {
	list, err := DecodeCollaborators(nil)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestDecodeCollaborators_JSONString(t *testing.T) {
	raw := `[{"id":"u1","name":"Ada","status":"pending"}]`
	list, err := DecodeCollaborators(raw)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "u1", list[0].UserID)
	assert.Equal(t, "Ada", list[0].Name)
	assert.Equal(t, InvitationStatusPending, list[0].Status)
}

func TestDecodeCollaborators_GarbageString(t *testing.T) {
	list, err := DecodeCollaborators("not json")
	assert.Error(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestDecodeCollaborators_JSONNullString(t *testing.T) {
	list, err := DecodeCollaborators("null")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestDecodeCollaborators_BSONArray(t *testing.T) {
	raw := primitive.A{
		primitive.M{"id": "u1", "name": "Ada", "status": "accepted"},
		primitive.M{"id": "u2", "name": "Grace", "status": "pending"},
	}
	list, err := DecodeCollaborators(raw)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, InvitationStatusAccepted, list[0].Status)
	assert.Equal(t, "u2", list[1].UserID)
}

func TestDecodeCollaborators_InterfaceSlice(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"id": "u1", "status": "declined"},
	}
	list, err := DecodeCollaborators(raw)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, InvitationStatusDeclined, list[0].Status)
}

func TestDecodeCollaborators_UnexpectedType(t *testing.T) {
	list, err := DecodeCollaborators(42)
	assert.Error(t, err)
	assert.Empty(t, list)
}

func TestInvitationStatus_Terminal(t *testing.T) {
	assert.False(t, InvitationStatusPending.Terminal())
	assert.True(t, InvitationStatusAccepted.Terminal())
	assert.True(t, InvitationStatusDeclined.Terminal())
}
