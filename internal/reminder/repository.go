package reminder

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *Reminder) error
	FindAllByUser(ctx context.Context, userID string) ([]*Reminder, error)
	FindByIDAndUser(ctx context.Context, id primitive.ObjectID, userID string) (*Reminder, error)
	FindActiveByUserAndEvent(ctx context.Context, userID string, eventID primitive.ObjectID) (*Reminder, error)
	FindActive(ctx context.Context) ([]*Reminder, error)
	Update(ctx context.Context, reminder *Reminder, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type reminderRepository struct {
	collection *mongo.Collection
}

func NewReminderRepository(collection *mongo.Collection) ReminderRepository {
	_ = EnsureReminderIndexes(context.Background(), collection)
	return &reminderRepository{
		collection: collection,
	}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *Reminder) error {

	_, err := r.collection.InsertOne(ctx, reminder)
	if err != nil {
		return err
	}

	return nil
}

func (r *reminderRepository) FindAllByUser(ctx context.Context, userID string) ([]*Reminder, error) {

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}

	var reminders []*Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}

	return reminders, nil
}

func (r *reminderRepository) FindByIDAndUser(ctx context.Context, id primitive.ObjectID, userID string) (*Reminder, error) {

	var reminder Reminder

	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&reminder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &reminder, nil
}

func (r *reminderRepository) FindActiveByUserAndEvent(ctx context.Context, userID string, eventID primitive.ObjectID) (*Reminder, error) {

	var reminder Reminder

	filter := bson.M{
		"user_id":  userID,
		"event_id": eventID,
		"status":   StatusActive,
	}

	err := r.collection.FindOne(ctx, filter).Decode(&reminder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &reminder, nil
}

func (r *reminderRepository) FindActive(ctx context.Context) ([]*Reminder, error) {

	cursor, err := r.collection.Find(ctx, bson.M{"status": StatusActive})
	if err != nil {
		return nil, err
	}

	var reminders []*Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}

	return reminders, nil
}

func (r *reminderRepository) Update(ctx context.Context, reminder *Reminder, id primitive.ObjectID) error {

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": reminder})
	if err != nil {
		return err
	}
	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	return nil
}

func EnsureReminderIndexes(ctx context.Context, coll *mongo.Collection) error {

	models := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "event_id", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().
				SetName("by_user_event_status"),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
			},
			Options: options.Index().
				SetName("by_status"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("by_user_created"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}
