package eventstatus

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatusRepository interface {
	Find(ctx context.Context, userID string, eventID primitive.ObjectID) (*EventUserStatus, error)
	Upsert(ctx context.Context, status *EventUserStatus) error
	Delete(ctx context.Context, userID string, eventID primitive.ObjectID) error
}

type statusRepository struct {
	collection *mongo.Collection
}

func NewStatusRepository(collection *mongo.Collection) StatusRepository {
	_ = EnsureStatusIndexes(context.Background(), collection)
	return &statusRepository{
		collection: collection,
	}
}

func (r *statusRepository) Find(ctx context.Context, userID string, eventID primitive.ObjectID) (*EventUserStatus, error) {

	var status EventUserStatus

	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "event_id": eventID}).Decode(&status)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &status, nil
}

func (r *statusRepository) Upsert(ctx context.Context, status *EventUserStatus) error {

	filter := bson.M{
		"user_id":  status.UserID,
		"event_id": status.EventID,
	}

	update := bson.M{
		"$set": bson.M{
			"tickets_secured": status.TicketsSecured,
			"updated_at":      status.UpdatedAt,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *statusRepository) Delete(ctx context.Context, userID string, eventID primitive.ObjectID) error {

	_, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "event_id": eventID})
	return err
}

func EnsureStatusIndexes(ctx context.Context, coll *mongo.Collection) error {

	models := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "event_id", Value: 1},
			},
			Options: options.Index().
				SetName("by_user_event").
				SetUnique(true),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}
