package collaboration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-research/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InviteRequest is what the project owner submits when inviting a
// collaborator.
type InviteRequest struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position"`
	Message  string `json:"message"`
}

// CollaborationService drives the invitation lifecycle. The project's
// embedded collaborator list is the source of truth; the invitation log is
// a best-effort audit trail.
type CollaborationService interface {
	ListCollaborators(ctx context.Context, projectID string) ([]Collaborator, error)
	SendInvitation(ctx context.Context, projectID string, req InviteRequest) (Collaborator, error)
	RemoveCollaborator(ctx context.Context, projectID, userID string) error
	RespondToInvitation(ctx context.Context, projectID, userID string, status InvitationStatus) (Collaborator, error)
}

type CollaborationServiceImpl struct {
	Projects    ProjectRepository
	Invitations InvitationRepository
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
}

func NewCollaborationService(projects ProjectRepository, invitations InvitationRepository, logger *zap.Logger, m *metrics.Metrics) CollaborationService {
	return &CollaborationServiceImpl{
		Projects:    projects,
		Invitations: invitations,
		Logger:      logger,
		Metrics:     m,
	}
}

func (s *CollaborationServiceImpl) ListCollaborators(ctx context.Context, projectID string) ([]Collaborator, error) {
	project, err := s.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.decode(project), nil
}

// SendInvitation upserts a pending entry for the invitee in the project's
// collaborator list, then writes a frozen snapshot to the invitation log.
// A log write failure after a successful project update is logged and
// swallowed: the collaborator relationship already holds.
func (s *CollaborationServiceImpl) SendInvitation(ctx context.Context, projectID string, req InviteRequest) (Collaborator, error) {
	if req.UserID == "" {
		return Collaborator{}, errors.New("invitee user id is required")
	}

	project, err := s.Projects.Get(ctx, projectID)
	if err != nil {
		return Collaborator{}, err
	}

	entry := Collaborator{
		UserID:         req.UserID,
		Name:           req.Name,
		Position:       req.Position,
		InvitationDate: time.Now(),
		Status:         InvitationStatusPending,
		Message:        req.Message,
	}

	list := upsertCollaborator(s.decode(project), entry)

	if err := s.Projects.ReplaceCollaborators(ctx, projectID, list); err != nil {
		return Collaborator{}, err
	}

	record := &InvitationRecord{
		ID:             uuid.NewString(),
		ProjectID:      projectID,
		ProjectTitle:   project.Title,
		ResearchArea:   project.ResearchArea,
		StartDate:      project.StartDate,
		EndDate:        project.EndDate,
		Funded:         project.Funded,
		InviteeID:      req.UserID,
		InviteeName:    req.Name,
		InviteeEmail:   req.Email,
		Position:       req.Position,
		Message:        req.Message,
		Status:         InvitationStatusPending,
		InvitationDate: entry.InvitationDate,
	}
	if err := s.Invitations.Create(ctx, record); err != nil {
		s.Logger.Warn("invitation log write failed, collaborator entry kept",
			zap.String("project_id", projectID),
			zap.String("invitee_id", req.UserID),
			zap.Error(err))
	}

	s.Metrics.InvitationsSent.Inc()

	return entry, nil
}

// RemoveCollaborator is a destructive revoke, not a status transition.
func (s *CollaborationServiceImpl) RemoveCollaborator(ctx context.Context, projectID, userID string) error {
	project, err := s.Projects.Get(ctx, projectID)
	if err != nil {
		return err
	}

	list := s.decode(project)
	filtered := make([]Collaborator, 0, len(list))
	for _, c := range list {
		if c.UserID != userID {
			filtered = append(filtered, c)
		}
	}

	if err := s.Projects.ReplaceCollaborators(ctx, projectID, filtered); err != nil {
		return err
	}

	if err := s.Invitations.DeleteByInvitee(ctx, projectID, userID); err != nil {
		s.Logger.Warn("invitation log cleanup failed",
			zap.String("project_id", projectID),
			zap.String("invitee_id", userID),
			zap.Error(err))
	}

	return nil
}

// RespondToInvitation moves a pending entry to accepted or declined.
// Accepted and declined are terminal; a re-invite is the only way back to
// pending.
func (s *CollaborationServiceImpl) RespondToInvitation(ctx context.Context, projectID, userID string, status InvitationStatus) (Collaborator, error) {
	if status != InvitationStatusAccepted && status != InvitationStatusDeclined {
		return Collaborator{}, fmt.Errorf("invalid response status '%s'", status)
	}

	project, err := s.Projects.Get(ctx, projectID)
	if err != nil {
		return Collaborator{}, err
	}

	list := s.decode(project)
	index := -1
	for i := range list {
		if list[i].UserID == userID {
			index = i
			break
		}
	}
	if index < 0 {
		return Collaborator{}, fmt.Errorf("no invitation for user '%s' on this project", userID)
	}
	if list[index].Status.Terminal() {
		return Collaborator{}, fmt.Errorf("invitation already %s", list[index].Status)
	}

	list[index].Status = status
	updated := list[index]

	if err := s.Projects.ReplaceCollaborators(ctx, projectID, list); err != nil {
		return Collaborator{}, err
	}

	return updated, nil
}

// decode never fails the calling flow: an unreadable collaborator blob is
// logged and treated as empty.
func (s *CollaborationServiceImpl) decode(project *Project) []Collaborator {
	list, err := DecodeCollaborators(project.Collaborators)
	if err != nil {
		s.Logger.Warn("unreadable collaborator list, treating as empty",
			zap.String("project_id", project.ID.Hex()),
			zap.Error(err))
	}
	return list
}

// upsertCollaborator replaces an existing entry for the same user id or
// appends a new one. Duplicate invites overwrite, never append.
func upsertCollaborator(list []Collaborator, entry Collaborator) []Collaborator {
	for i := range list {
		if list[i].UserID == entry.UserID {
			list[i] = entry
			return list
		}
	}
	return append(list, entry)
}
