package rest

import (
	"context"
	"net/http"
	"net/url"

	"go-research/internal/features/collaboration"
)

// ProjectStore implements collaboration.ProjectRepository against the
// managed store's projects endpoints.
type ProjectStore struct {
	client *Client
}

func NewProjectStore(client *Client) collaboration.ProjectRepository {
	return &ProjectStore{client: client}
}

func (s *ProjectStore) Get(ctx context.Context, id string) (*collaboration.Project, error) {
	var project collaboration.Project
	if err := s.client.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectStore) ReplaceCollaborators(ctx context.Context, id string, collaborators []collaboration.Collaborator) error {
	// Full replacement of the stored list, matching the PUT semantics of
	// the managed store
	body := map[string]interface{}{"collaborators": collaborators}
	return s.client.do(ctx, http.MethodPut, "/projects/"+url.PathEscape(id)+"/collaborators", body, nil)
}

// InvitationStore implements collaboration.InvitationRepository against the
// project_invitations endpoints.
type InvitationStore struct {
	client *Client
}

func NewInvitationStore(client *Client) collaboration.InvitationRepository {
	return &InvitationStore{client: client}
}

func (s *InvitationStore) Create(ctx context.Context, record *collaboration.InvitationRecord) error {
	return s.client.do(ctx, http.MethodPost, "/project_invitations", record, nil)
}

func (s *InvitationStore) DeleteByInvitee(ctx context.Context, projectID, inviteeID string) error {
	path := "/project_invitations?project_id=" + url.QueryEscape(projectID) +
		"&invitee_id=" + url.QueryEscape(inviteeID)
	return s.client.do(ctx, http.MethodDelete, path, nil, nil)
}
