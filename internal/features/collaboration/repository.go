package collaboration

import (
	"context"
	"errors"
	"time"

	"go-research/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProjectRepository exposes the slice of the projects contract the
// invitation machine needs. General project CRUD belongs to the managed
// store, not this service.
type ProjectRepository interface {
	Get(ctx context.Context, id string) (*Project, error)
	// ReplaceCollaborators writes the full collaborator list back. The
	// list always replaces the stored value; there are no partial patches.
	ReplaceCollaborators(ctx context.Context, id string, collaborators []Collaborator) error
}

type ProjectRepositoryImpl struct {
	collection *mongo.Collection
}

func NewProjectRepository(db *database.MongodbDB) ProjectRepository {
	return &ProjectRepositoryImpl{
		collection: db.DB.Collection("projects"),
	}
}

func (r *ProjectRepositoryImpl) Get(ctx context.Context, id string) (*Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var project Project
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("project not found")
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) ReplaceCollaborators(ctx context.Context, id string, collaborators []Collaborator) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"collaborators": collaborators,
			"updated_at":    time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("project not found")
	}
	return nil
}

// InvitationRepository is the separate invitation-log store holding frozen
// snapshots.
type InvitationRepository interface {
	Create(ctx context.Context, record *InvitationRecord) error
	// DeleteByInvitee removes the log record matching a revoked
	// collaborator. Absence is not an error.
	DeleteByInvitee(ctx context.Context, projectID, inviteeID string) error
}

type InvitationRepositoryImpl struct {
	collection *mongo.Collection
}

func NewInvitationRepository(db *database.MongodbDB) InvitationRepository {
	return &InvitationRepositoryImpl{
		collection: db.DB.Collection("project_invitations"),
	}
}

func (r *InvitationRepositoryImpl) Create(ctx context.Context, record *InvitationRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *InvitationRepositoryImpl) DeleteByInvitee(ctx context.Context, projectID, inviteeID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{
		"project_id": projectID,
		"invitee_id": inviteeID,
	})
	return err
}
