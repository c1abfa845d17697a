package event

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventFilter struct {
	Page     int
	Limit    int
	Category string
	Status   string
	Search   string
}

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	FindEvents(ctx context.Context, filter EventFilter) ([]*Event, int64, error)
	FindEventByID(ctx context.Context, eventID primitive.ObjectID) (*Event, error)
	FindEventsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Event, error)
	UpdateEvent(ctx context.Context, event *Event, id primitive.ObjectID) error
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error
	CreateUpdate(ctx context.Context, update *EventUpdate) error
	FindUpdatesByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*EventUpdate, error)
}

type eventRepository struct {
	events  *mongo.Collection
	updates *mongo.Collection
}

func NewEventRepository(events, updates *mongo.Collection) EventRepository {
	_ = EnsureEventIndexes(context.Background(), events, updates)
	return &eventRepository{
		events:  events,
		updates: updates,
	}
}

func (e *eventRepository) Create(ctx context.Context, event *Event) error {

	_, err := e.events.InsertOne(ctx, event)
	if err != nil {
		return err
	}

	return nil
}

func (e *eventRepository) FindEvents(ctx context.Context, filter EventFilter) ([]*Event, int64, error) {

	query := bson.M{}

	if filter.Category != "" {
		query["category"] = filter.Category
	}

	if filter.Status != "" {
		query["status"] = filter.Status
	}

	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = []bson.M{
			{"title": regex},
			{"artist": regex},
			{"venue": regex},
			{"location": regex},
		}
	}

	total, err := e.events.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((filter.Page - 1) * filter.Limit)
	opts := options.Find().
		SetSkip(skip).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := e.events.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	var events []*Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (e *eventRepository) FindEventByID(ctx context.Context, eventID primitive.ObjectID) (*Event, error) {

	var event Event

	err := e.events.FindOne(ctx, bson.M{"_id": eventID}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

func (e *eventRepository) FindEventsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Event, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := e.events.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var events []*Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (e *eventRepository) UpdateEvent(ctx context.Context, event *Event, id primitive.ObjectID) error {

	_, err := e.events.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": event})
	if err != nil {
		return err
	}
	return nil
}

func (e *eventRepository) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {

	_, err := e.events.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	_, err = e.updates.DeleteMany(ctx, bson.M{"event_id": id})
	if err != nil {
		return err
	}

	return nil
}

func (e *eventRepository) CreateUpdate(ctx context.Context, update *EventUpdate) error {

	_, err := e.updates.InsertOne(ctx, update)
	if err != nil {
		return err
	}

	return nil
}

func (e *eventRepository) FindUpdatesByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*EventUpdate, error) {

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := e.updates.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, err
	}

	var updates []*EventUpdate
	if err := cursor.All(ctx, &updates); err != nil {
		return nil, err
	}

	return updates, nil
}

func EnsureEventIndexes(ctx context.Context, events, updates *mongo.Collection) error {

	eventModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetName("by_date"),
		},
		{
			Keys: bson.D{
				{Key: "category", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().
				SetName("by_category_status"),
		},
	}
	if _, err := events.Indexes().CreateMany(ctx, eventModels); err != nil {
		return err
	}

	updateModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "event_id", Value: 1},
				{Key: "timestamp", Value: -1},
			},
			Options: options.Index().
				SetName("by_event_timestamp"),
		},
	}
	_, err := updates.Indexes().CreateMany(ctx, updateModels)
	return err
}
