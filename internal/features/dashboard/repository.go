package dashboard

import (
	"context"
	"errors"
	"time"

	"go-research/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WidgetRepository is the remote store behind the widget engine. The Mongo
// implementation below is used when the service owns its database; the REST
// implementation in internal/store/rest speaks the managed store's CRUD
// endpoints instead.
type WidgetRepository interface {
	ListByUser(ctx context.Context, userID string) ([]Widget, error)
	// Create persists the widget and returns the server-assigned id.
	Create(ctx context.Context, widget Widget) (string, error)
	Update(ctx context.Context, widget Widget) error
	UpdateGeometry(ctx context.Context, userID string, updates []GeometryUpdate) error
	Delete(ctx context.Context, userID, id string) error
}

type WidgetRepositoryImpl struct {
	collection *mongo.Collection
}

func NewWidgetRepository(db *database.MongodbDB) WidgetRepository {
	return &WidgetRepositoryImpl{
		collection: db.DB.Collection("dashboard_widgets"),
	}
}

func (r *WidgetRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]Widget, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var widgets []Widget
	if err = cursor.All(ctx, &widgets); err != nil {
		return nil, err
	}

	return widgets, nil
}

func (r *WidgetRepositoryImpl) Create(ctx context.Context, widget Widget) (string, error) {
	// The client-side temp id never reaches the store
	serverID := primitive.NewObjectID().Hex()
	widget.ID = PersistedID(serverID)
	widget.CreatedAt = time.Now()
	widget.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, widget); err != nil {
		return "", err
	}
	return serverID, nil
}

func (r *WidgetRepositoryImpl) Update(ctx context.Context, widget Widget) error {
	widget.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"position":   widget.Position,
			"size":       widget.Size,
			"config":     widget.Config,
			"updated_at": widget.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"id": widget.ID.String(), "user_id": widget.UserID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("widget not found")
	}
	return nil
}

func (r *WidgetRepositoryImpl) UpdateGeometry(ctx context.Context, userID string, updates []GeometryUpdate) error {
	now := time.Now()
	for _, u := range updates {
		_, err := r.collection.UpdateOne(ctx,
			bson.M{"id": u.ID, "user_id": userID},
			bson.M{"$set": bson.M{
				"position":   u.Position,
				"size":       u.Size,
				"updated_at": now,
			}},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *WidgetRepositoryImpl) Delete(ctx context.Context, userID, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("widget not found")
	}
	return nil
}
