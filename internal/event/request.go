package event

type CreateEventRequest struct {
	Title          string `json:"title"`
	Artist         string `json:"artist,omitempty"`
	Venue          string `json:"venue"`
	Location       string `json:"location"`
	Date           string `json:"date"`
	Category       string `json:"category"`
	ImageURL       string `json:"imageUrl,omitempty"`
	Description    string `json:"description,omitempty"`
	TicketSaleDate string `json:"ticketSaleDate,omitempty"`
	PresaleDate    string `json:"presaleDate,omitempty"`
	TicketURL      string `json:"ticketUrl,omitempty"`
	Status         string `json:"status,omitempty"`
}

type UpdateEventRequest struct {
	Title          *string `json:"title,omitempty"`
	Artist         *string `json:"artist,omitempty"`
	Venue          *string `json:"venue,omitempty"`
	Location       *string `json:"location,omitempty"`
	Date           *string `json:"date,omitempty"`
	Category       *string `json:"category,omitempty"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	Description    *string `json:"description,omitempty"`
	TicketSaleDate *string `json:"ticketSaleDate,omitempty"`
	PresaleDate    *string `json:"presaleDate,omitempty"`
	TicketURL      *string `json:"ticketUrl,omitempty"`
	Status         *string `json:"status,omitempty"`
}

type CreateEventUpdateRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

type ListEventsQuery struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Category string `form:"category"`
	Status   string `form:"status"`
	Search   string `form:"search"`
}
