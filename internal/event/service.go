package event

import (
	"context"
	"fmt"
	"time"

	"ticketcue/helper"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxPageLimit = 100

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type EventPage struct {
	Events     []*Event   `json:"events"`
	Pagination Pagination `json:"pagination"`
}

type EventService interface {
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*Event, error)
	GetEvents(ctx context.Context, query *ListEventsQuery) (*EventPage, error)
	GetEventByID(ctx context.Context, eventID string) (*Event, error)
	UpdateEvent(ctx context.Context, req *UpdateEventRequest, id string) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	CreateEventUpdate(ctx context.Context, eventID string, req *CreateEventUpdateRequest) (*EventUpdate, error)
}

type eventService struct {
	eventRepository EventRepository
}

func NewEventService(repo EventRepository) EventService {
	return &eventService{
		eventRepository: repo,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req *CreateEventRequest) (*Event, error) {

	if req.Title == "" || req.Venue == "" || req.Location == "" {
		return nil, fmt.Errorf("%w: title, venue and location are required", helper.ErrValidation)
	}

	if req.Date == "" {
		return nil, fmt.Errorf("%w: date is required", helper.ErrValidation)
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", helper.ErrValidation, err)
	}

	if req.Category != "" && !contains(Categories, req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", helper.ErrValidation, req.Category)
	}

	status := req.Status
	if status == "" {
		status = "upcoming"
	}
	if !contains(Statuses, status) {
		return nil, fmt.Errorf("%w: unknown status %q", helper.ErrValidation, status)
	}

	ticketSaleDate, err := parseOptionalDate(req.TicketSaleDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ticketSaleDate: %v", helper.ErrValidation, err)
	}

	presaleDate, err := parseOptionalDate(req.PresaleDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid presaleDate: %v", helper.ErrValidation, err)
	}

	now := time.Now().UTC()

	ev := &Event{
		ID:             primitive.NewObjectID(),
		Title:          req.Title,
		Artist:         req.Artist,
		Venue:          req.Venue,
		Location:       req.Location,
		Date:           date.UTC(),
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		Description:    req.Description,
		TicketSaleDate: ticketSaleDate,
		PresaleDate:    presaleDate,
		TicketURL:      req.TicketURL,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.eventRepository.Create(ctx, ev); err != nil {
		return nil, err
	}

	return ev, nil
}

func (s *eventService) GetEvents(ctx context.Context, query *ListEventsQuery) (*EventPage, error) {

	page := query.Page
	if page < 1 {
		page = 1
	}

	limit := query.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > maxPageLimit {
		return nil, fmt.Errorf("%w: limit must be at most %d", helper.ErrValidation, maxPageLimit)
	}

	filter := EventFilter{
		Page:     page,
		Limit:    limit,
		Category: query.Category,
		Status:   query.Status,
		Search:   query.Search,
	}

	events, total, err := s.eventRepository.FindEvents(ctx, filter)
	if err != nil {
		return nil, err
	}

	if events == nil {
		events = []*Event{}
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return &EventPage{
		Events: events,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*Event, error) {

	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", helper.ErrValidation)
	}

	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event_id", helper.ErrValidation)
	}

	ev, err := s.eventRepository.FindEventByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, fmt.Errorf("%w: event %s", helper.ErrNotFound, eventID)
	}

	updates, err := s.eventRepository.FindUpdatesByEvent(ctx, objID)
	if err != nil {
		return nil, err
	}
	ev.Updates = updates

	return ev, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, req *UpdateEventRequest, id string) (*Event, error) {

	if id == "" {
		return nil, fmt.Errorf("%w: event_id is required", helper.ErrValidation)
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event_id", helper.ErrValidation)
	}

	ev, err := s.eventRepository.FindEventByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, fmt.Errorf("%w: event %s", helper.ErrNotFound, id)
	}

	if req.Title != nil {
		ev.Title = *req.Title
	}

	if req.Artist != nil {
		ev.Artist = *req.Artist
	}

	if req.Venue != nil {
		ev.Venue = *req.Venue
	}

	if req.Location != nil {
		ev.Location = *req.Location
	}

	if req.Date != nil {
		t, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date: %v", helper.ErrValidation, err)
		}
		ev.Date = t.UTC()
	}

	if req.Category != nil {
		if !contains(Categories, *req.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", helper.ErrValidation, *req.Category)
		}
		ev.Category = *req.Category
	}

	if req.ImageURL != nil {
		ev.ImageURL = *req.ImageURL
	}

	if req.Description != nil {
		ev.Description = *req.Description
	}

	if req.TicketSaleDate != nil {
		t, err := parseOptionalDate(*req.TicketSaleDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid ticketSaleDate: %v", helper.ErrValidation, err)
		}
		ev.TicketSaleDate = t
	}

	if req.PresaleDate != nil {
		t, err := parseOptionalDate(*req.PresaleDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid presaleDate: %v", helper.ErrValidation, err)
		}
		ev.PresaleDate = t
	}

	if req.TicketURL != nil {
		ev.TicketURL = *req.TicketURL
	}

	if req.Status != nil {
		if !contains(Statuses, *req.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", helper.ErrValidation, *req.Status)
		}
		ev.Status = *req.Status
	}

	ev.UpdatedAt = time.Now().UTC()

	if err := s.eventRepository.UpdateEvent(ctx, ev, objID); err != nil {
		return nil, err
	}

	return ev, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {

	if id == "" {
		return fmt.Errorf("%w: event_id is required", helper.ErrValidation)
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid event_id", helper.ErrValidation)
	}

	ev, err := s.eventRepository.FindEventByID(ctx, objID)
	if err != nil {
		return err
	}
	if ev == nil {
		return fmt.Errorf("%w: event %s", helper.ErrNotFound, id)
	}

	return s.eventRepository.DeleteEvent(ctx, objID)
}

func (s *eventService) CreateEventUpdate(ctx context.Context, eventID string, req *CreateEventUpdateRequest) (*EventUpdate, error) {

	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", helper.ErrValidation)
	}

	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event_id", helper.ErrValidation)
	}

	ev, err := s.eventRepository.FindEventByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, fmt.Errorf("%w: event %s", helper.ErrNotFound, eventID)
	}

	if req.Title == "" || req.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", helper.ErrValidation)
	}

	if !contains(UpdateTypes, req.Type) {
		return nil, fmt.Errorf("%w: unknown update type %q", helper.ErrValidation, req.Type)
	}

	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}
	if !contains(UpdatePriorities, priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", helper.ErrValidation, priority)
	}

	now := time.Now().UTC()

	update := &EventUpdate{
		ID:          primitive.NewObjectID(),
		EventID:     objID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Timestamp:   now,
		Priority:    priority,
		CreatedAt:   now,
	}

	if err := s.eventRepository.CreateUpdate(ctx, update); err != nil {
		return nil, err
	}

	return update, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	utc := t.UTC()
	return &utc, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
