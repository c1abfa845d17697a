package event

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Artist         string             `bson:"artist,omitempty" json:"artist,omitempty"`
	Venue          string             `bson:"venue" json:"venue"`
	Location       string             `bson:"location" json:"location"`
	Date           time.Time          `bson:"date" json:"date"`
	Category       string             `bson:"category" json:"category"`
	ImageURL       string             `bson:"image_url" json:"imageUrl"`
	Description    string             `bson:"description" json:"description"`
	TicketSaleDate *time.Time         `bson:"ticket_sale_date,omitempty" json:"ticketSaleDate,omitempty"`
	PresaleDate    *time.Time         `bson:"presale_date,omitempty" json:"presaleDate,omitempty"`
	TicketURL      string             `bson:"ticket_url,omitempty" json:"ticketUrl,omitempty"`
	Status         string             `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`

	// Populated on detail lookups only.
	Updates []*EventUpdate `bson:"-" json:"updates,omitempty"`
}

// SaleDate resolves the date a reminder counts down to: presale wins over the
// public sale date. ok is false when the event has neither, which makes any
// reminder on it inert.
func (e *Event) SaleDate() (time.Time, bool) {
	if e.PresaleDate != nil {
		return *e.PresaleDate, true
	}
	if e.TicketSaleDate != nil {
		return *e.TicketSaleDate, true
	}
	return time.Time{}, false
}

type EventUpdate struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	EventID     primitive.ObjectID `bson:"event_id" json:"eventId"`
	Type        string             `bson:"type" json:"type"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	Priority    string             `bson:"priority" json:"priority"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

var Categories = []string{"concert", "sports", "theater", "comedy", "festival", "nightlife"}

var Statuses = []string{"upcoming", "presale", "onsale", "soldout"}

var UpdateTypes = []string{"lineup", "tickets", "schedule", "weather", "logistics", "alert"}

var UpdatePriorities = []string{"normal", "important", "urgent"}
