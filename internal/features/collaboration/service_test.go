package collaboration

import (
	"context"
	"errors"
	"testing"

	"go-research/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockProjectRepo struct {
	project *Project
	getErr  error
}

func (m *mockProjectRepo) Get(ctx context.Context, projectID string) (*Project, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.project, nil
}

func (m *mockProjectRepo) ReplaceCollaborators(ctx context.Context, projectID string, list []Collaborator) error {
	m.project.Collaborators = list
	return nil
}

type mockInvitationRepo struct {
	records   []*InvitationRecord
	createErr error
	deleted   []string
}

func (m *mockInvitationRepo) Create(ctx context.Context, record *InvitationRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockInvitationRepo) DeleteByInvitee(ctx context.Context, projectID, inviteeID string) error {
	m.deleted = append(m.deleted, inviteeID)
	kept := m.records[:0]
	for _, r := range m.records {
		if r.InviteeID != inviteeID {
			kept = append(kept, r)
		}
	}
	m.records = kept
	return nil
}

func newTestCollabService(projects *mockProjectRepo, invitations *mockInvitationRepo) CollaborationService {
	return NewCollaborationService(projects, invitations, zap.NewNop(), metrics.New())
}

func TestSendInvitation_DuplicateInviteOverwrites(t *testing.T) {
	projects := &mockProjectRepo{project: &Project{Title: "Quantum Sensing"}}
	invitations := &mockInvitationRepo{}
	svc := newTestCollabService(projects, invitations)

	_, err := svc.SendInvitation(context.Background(), "p1", InviteRequest{
		UserID: "u1", Name: "Ada", Message: "first ask",
	})
	require.NoError(t, err)

	_, err = svc.SendInvitation(context.Background(), "p1", InviteRequest{
		UserID: "u1", Name: "Ada", Message: "second ask",
	})
	require.NoError(t, err)

	list, err := svc.ListCollaborators(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "second ask", list[0].Message)
	assert.Equal(t, InvitationStatusPending, list[0].Status)
}

func TestSendInvitation_RequiresUserID(t *testing.T) {
	projects := &mockProjectRepo{project: &Project{}}
	svc := newTestCollabService(projects, &mockInvitationRepo{})

	_, err := svc.SendInvitation(context.Background(), "p1", InviteRequest{Name: "Ada"})
	assert.Error(t, err)
}

func TestSendInvitation_UnreadableListTreatedAsEmpty(t *testing.T) {
	projects := &mockProjectRepo{project: &Project{Collaborators: "definitely not json"}}
	svc := newTestCollabService(projects, &mockInvitationRepo{})

	entry, err := svc.SendInvitation(context.Background(), "p1", InviteRequest{UserID: "u1", Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "u1", entry.UserID)

	list, err := svc.ListCollaborators(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSendInvitation_LogWriteFailureTolerated(t *testing.T) {
	projects := &mockProjectRepo{project: &Project{}}
	invitations := &mockInvitationRepo{createErr: errors.New("log store down")}
	svc := newTestCollabService(projects, invitations)

	_, err := svc.SendInvitation(context.Background(), "p1", InviteRequest{UserID: "u1"})
	require.NoError(t, err)

	list, err := svc.ListCollaborators(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Empty(t, invitations.records)
}

func TestSendInvitation_SnapshotFrozenAfterProjectEdit(t *testing.T) {
	projects := &mockProjectRepo{project: &Project{Title: "Original Title", Funded: false}}
	invitations := &mockInvitationRepo{}
	svc := newTestCollabService(projects, invitations)

	_, err := svc.SendInvitation(context.Background(), "p1", InviteRequest{UserID: "u1", Email: "ada@uni.edu"})
	require.NoError(t, err)

	projects.project.Title = "Renamed Title"
	projects.project.Funded = true

	require.Len(t, invitations.records, 1)
	assert.Equal(t, "Original Title", invitations.records[0].ProjectTitle)
	assert.False(t, invitations.records[0].Funded)
	assert.Equal(t, "ada@uni.edu", invitations.records[0].InviteeEmail)
}

func TestRemoveCollaborator_RemovesOnlyTarget(t *testing.T) {
	projects := &mockProjectRepo{project: &Project{}}
	invitations := &mockInvitationRepo{}
	svc := newTestCollabService(projects, invitations)

	_, err := svc.SendInvitation(context.Background(), "p1", InviteRequest{UserID: "u1", Name: "Ada"})
	require.NoError(t, err)
	_, err = svc.SendInvitation(context.Background(), "p1", InviteRequest{UserID: "u2", Name: "Grace"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveCollaborator(context.Background(), "p1", "u1"))

	list, err := svc.ListCollaborators(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "u2", list[0].UserID)

	assert.Equal(t, []string{"u1"}, invitations.deleted)
	require.Len(t, invitations.records, 1)
	assert.Equal(t, "u2", invitations.records[0].InviteeID)
}

func TestRemoveCollaborator_InviteThenRemoveLeavesNothing(t *testing.T) {
	projects := &mockProjectRepo{project: &Project{}}
	invitations := &mockInvitationRepo{}
	svc := newTestCollabService(projects, invitations)

	_, err := svc.SendInvitation(context.Background(), "p1", InviteRequest{UserID: "u1"})
	require.NoError(t, err)
	require.NoError(t, svc.RemoveCollaborator(context.Background(), "p1", "u1"))

	list, err := svc.ListCollaborators(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, invitations.records)
}

func TestRemoveCollaborator_AbsentUserIsNoError(t *testing.T) {
	projects := &mockProjectRepo{project: &Project{}}
	svc := newTestCollabService(projects, &mockInvitationRepo{})

	assert.NoError(t, svc.RemoveCollaborator(context.Background(), "p1", "ghost"))
}

func TestRespondToInvitation_AcceptPending(t *testing.T) {
	projects := &mockProjectRepo{project: &Project{}}
	svc := newTestCollabService(projects, &mockInvitationRepo{})

	_, err := svc.SendInvitation(context.Background(), "p1", InviteRequest{UserID: "u1"})
	require.NoError(t, err)

	updated, err := svc.RespondToInvitation(context.Background(), "p1", "u1", InvitationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, InvitationStatusAccepted, updated.Status)

	list, err := svc.ListCollaborators(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, InvitationStatusAccepted, list[0].Status)
}

func TestRespondToInvitation_TerminalStatusRejected(t *testing.T) {
	projects := &mockProjectRepo{project: &Project{}}
	svc := newTestCollabService(projects, &mockInvitationRepo{})

	_, err := svc.SendInvitation(context.Background(), "p1", InviteRequest{UserID: "u1"})
	require.NoError(t, err)
	_, err = svc.RespondToInvitation(context.Background(), "p1", "u1", InvitationStatusDeclined)
	require.NoError(t, err)

	_, err = svc.RespondToInvitation(context.Background(), "p1", "u1", InvitationStatusAccepted)
	assert.Error(t, err)
}

func TestRespondToInvitation_ReinviteResetsToPending(t *testing.T) {
	projects := &mockProjectRepo{project: &Project{}}
	svc := newTestCollabService(projects, &mockInvitationRepo{})

	_, err := svc.SendInvitation(context.Background(), "p1", InviteRequest{UserID: "u1"})
	require.NoError(t, err)
	_, err = svc.RespondToInvitation(context.Background(), "p1", "u1", InvitationStatusDeclined)
	require.NoError(t, err)

	_, err = svc.SendInvitation(context.Background(), "p1", InviteRequest{UserID: "u1"})
	require.NoError(t, err)

	updated, err := svc.RespondToInvitation(context.Background(), "p1", "u1", InvitationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, InvitationStatusAccepted, updated.Status)
}

func TestRespondToInvitation_InvalidInputs(t *testing.T) {
	projects := &mockProjectRepo{project: &Project{}}
	svc := newTestCollabService(projects, &mockInvitationRepo{})

	_, err := svc.RespondToInvitation(context.Background(), "p1", "u1", InvitationStatusPending)
	assert.Error(t, err)

	_, err = svc.RespondToInvitation(context.Background(), "p1", "nobody", InvitationStatusAccepted)
	assert.Error(t, err)
}
