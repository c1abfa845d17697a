package eventstatus

import (
	"context"
	"fmt"
	"time"

	"ticketcue/helper"
	"ticketcue/internal/event"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventSource interface {
	FindEventByID(ctx context.Context, eventID primitive.ObjectID) (*event.Event, error)
}

type StatusService interface {
	GetStatus(ctx context.Context, userID, eventID string) (*EventUserStatus, error)
	SetTicketsSecured(ctx context.Context, userID, eventID string, secured bool) (*EventUserStatus, error)
	DeleteStatus(ctx context.Context, userID, eventID string) error
}

type statusService struct {
	statusRepository StatusRepository
	events           EventSource
	now              func() time.Time
}

func NewStatusService(repo StatusRepository, events EventSource) StatusService {
	return &statusService{
		statusRepository: repo,
		events:           events,
		now:              time.Now,
	}
}

// GetStatus returns the stored record, or a zero-value one when the user has
// never touched the flag for this event.
func (s *statusService) GetStatus(ctx context.Context, userID, eventID string) (*EventUserStatus, error) {

	objID, err := s.checkArgs(userID, eventID)
	if err != nil {
		return nil, err
	}

	status, err := s.statusRepository.Find(ctx, userID, objID)
	if err != nil {
		return nil, err
	}

	if status == nil {
		return &EventUserStatus{
			EventID:        objID,
			UserID:         userID,
			TicketsSecured: false,
		}, nil
	}

	return status, nil
}

func (s *statusService) SetTicketsSecured(ctx context.Context, userID, eventID string, secured bool) (*EventUserStatus, error) {

	objID, err := s.checkArgs(userID, eventID)
	if err != nil {
		return nil, err
	}

	ev, err := s.events.FindEventByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, fmt.Errorf("%w: event %s", helper.ErrNotFound, eventID)
	}

	status := &EventUserStatus{
		EventID:        objID,
		UserID:         userID,
		TicketsSecured: secured,
		UpdatedAt:      s.now().UTC(),
	}

	if err := s.statusRepository.Upsert(ctx, status); err != nil {
		return nil, err
	}

	return status, nil
}

func (s *statusService) DeleteStatus(ctx context.Context, userID, eventID string) error {

	objID, err := s.checkArgs(userID, eventID)
	if err != nil {
		return err
	}

	return s.statusRepository.Delete(ctx, userID, objID)
}

func (s *statusService) checkArgs(userID, eventID string) (primitive.ObjectID, error) {

	if userID == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: no authenticated user", helper.ErrUnauthorized)
	}

	if eventID == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: event_id is required", helper.ErrValidation)
	}

	objID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid event_id", helper.ErrValidation)
	}

	return objID, nil
}
