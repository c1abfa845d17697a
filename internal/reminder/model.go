package reminder

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReminderStatus string

const (
	StatusActive    ReminderStatus = "active"
	StatusCompleted ReminderStatus = "completed"
	StatusDismissed ReminderStatus = "dismissed"
)

func ValidStatus(s ReminderStatus) bool {
	switch s {
	case StatusActive, StatusCompleted, StatusDismissed:
		return true
	}
	return false
}

// Intervals holds the lead-time thresholds a user selected. A valid reminder
// has at least one enabled; the evaluator is still inert against all-false.
type Intervals struct {
	TwoHours      bool `bson:"two_hours" json:"twoHours"`
	OneHour       bool `bson:"one_hour" json:"oneHour"`
	ThirtyMinutes bool `bson:"thirty_minutes" json:"thirtyMinutes"`
	TenMinutes    bool `bson:"ten_minutes" json:"tenMinutes"`
}

func (i Intervals) Any() bool {
	return i.TwoHours || i.OneHour || i.ThirtyMinutes || i.TenMinutes
}

type NotificationMethods struct {
	BrowserPush bool `bson:"browser_push" json:"browserPush"`
	// Email is accepted and stored but delivery is not implemented.
	Email bool `bson:"email" json:"email"`
}

func (m NotificationMethods) Any() bool {
	return m.BrowserPush || m.Email
}

func DefaultIntervals() Intervals {
	return Intervals{OneHour: true, TenMinutes: true}
}

func DefaultNotificationMethods() NotificationMethods {
	return NotificationMethods{BrowserPush: true}
}

type Reminder struct {
	ID                  primitive.ObjectID  `bson:"_id" json:"id"`
	EventID             primitive.ObjectID  `bson:"event_id" json:"eventId"`
	UserID              string              `bson:"user_id" json:"userId"`
	Intervals           Intervals           `bson:"intervals" json:"intervals"`
	NotificationMethods NotificationMethods `bson:"notification_methods" json:"notificationMethods"`
	Status              ReminderStatus      `bson:"status" json:"status"`
	CreatedAt           time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time           `bson:"updated_at" json:"updatedAt"`
}
