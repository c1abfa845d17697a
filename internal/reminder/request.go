package reminder

type CreateReminderRequest struct {
	EventID string `json:"eventId"`

	// Both are optional; omitted fields get the defaults (one hour + ten
	// minutes, browser push only).
	Intervals           *Intervals           `json:"intervals,omitempty"`
	NotificationMethods *NotificationMethods `json:"notificationMethods,omitempty"`
}

type UpdateReminderRequest struct {
	Intervals           *Intervals           `json:"intervals,omitempty"`
	NotificationMethods *NotificationMethods `json:"notificationMethods,omitempty"`
	Status              *ReminderStatus      `json:"status,omitempty"`
}

type UpdateReminderStatusRequest struct {
	Status ReminderStatus `json:"status"`
}
