package eventstatus

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventUserStatus is the per-user "tickets secured" record, keyed by
// (event, user). It used to live in browser localStorage; owning it here
// keeps the flag consistent across devices.
type EventUserStatus struct {
	EventID        primitive.ObjectID `bson:"event_id" json:"eventId"`
	UserID         string             `bson:"user_id" json:"userId"`
	TicketsSecured bool               `bson:"tickets_secured" json:"ticketsSecured"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}
