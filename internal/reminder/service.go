package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"ticketcue/helper"
	"ticketcue/internal/event"
	"ticketcue/internal/notify"
	"ticketcue/internal/realtime"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

/// EventSource is the slice of the event catalog the reminder core needs:
// existence checks at the write boundary and sale-date lookups per tick.
type EventSource interface {
	FindEventByID(ctx context.Context, eventID primitive.ObjectID) (*event.Event, error)
	FindEventsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*event.Event, error)
}

type ReminderService interface {
	ListReminders(ctx context.Context, userID string) ([]*Reminder, error)
	CreateReminder(ctx context.Context, userID string, req *CreateReminderRequest) (*Reminder, bool, error)
	UpdateReminder(ctx context.Context, userID, id string, req *UpdateReminderRequest) (*Reminder, error)
	UpdateReminderStatus(ctx context.Context, userID, id string, status ReminderStatus) (*Reminder, error)
	DeleteReminder(ctx context.Context, userID, id string) error
	TriggerReminder(ctx context.Context, userID, id string) error
	CronReminderNotifications(ctx context.Context) error
}

type reminderService struct {
	reminderRepository ReminderRepository
	events             EventSource
	notifier           notify.Notifier
	now                func() time.Time
}

func NewReminderService(repo ReminderRepository, events EventSource, notifier notify.Notifier) ReminderService {
	return &reminderService{
		reminderRepository: repo,
		events:             events,
		notifier:           notifier,
		now:                time.Now,
	}
}

func (s *reminderService) ListReminders(ctx context.Context, userID string) ([]*Reminder, error) {

	if userID == "" {
		return nil, fmt.Errorf("%w: no authenticated user", helper.ErrUnauthorized)
	}

	reminders, err := s.reminderRepository.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if reminders == nil {
		reminders = []*Reminder{}
	}

	return reminders, nil
}

// CreateReminder enforces at-most-one-active per (user, event): creating
// against an event the user already has an active reminder for updates that
// reminder in place instead of inserting a duplicate. The second return value
// reports whether a new row was inserted.
func (s *reminderService) CreateReminder(ctx context.Context, userID string, req *CreateReminderRequest) (*Reminder, bool, error) {

	if userID == "" {
		return nil, false, fmt.Errorf("%w: no authenticated user", helper.ErrUnauthorized)
	}

	if req.EventID == "" {
		return nil, false, fmt.Errorf("%w: eventId is required", helper.ErrValidation)
	}

	eventID, err := primitive.ObjectIDFromHex(req.EventID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: invalid eventId", helper.ErrValidation)
	}

	ev, err := s.events.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, false, err
	}
	if ev == nil {
		return nil, false, fmt.Errorf("%w: event %s does not exist", helper.ErrValidation, req.EventID)
	}

	intervals := DefaultIntervals()
	if req.Intervals != nil {
		intervals = *req.Intervals
	}
	if !intervals.Any() {
		return nil, false, fmt.Errorf("%w: at least one reminder interval must be enabled", helper.ErrValidation)
	}

	methods := DefaultNotificationMethods()
	if req.NotificationMethods != nil {
		methods = *req.NotificationMethods
	}
	if !methods.Any() {
		return nil, false, fmt.Errorf("%w: at least one notification method must be enabled", helper.ErrValidation)
	}

	existing, err := s.reminderRepository.FindActiveByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		existing.Intervals = intervals
		existing.NotificationMethods = methods
		existing.Status = StatusActive
		existing.UpdatedAt = s.now().UTC()

		if err := s.reminderRepository.Update(ctx, existing, existing.ID); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	now := s.now().UTC()

	reminder := &Reminder{
		ID:                  primitive.NewObjectID(),
		EventID:             eventID,
		UserID:              userID,
		Intervals:           intervals,
		NotificationMethods: methods,
		Status:              StatusActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.reminderRepository.Create(ctx, reminder); err != nil {
		return nil, false, err
	}

	return reminder, true, nil
}

func (s *reminderService) UpdateReminder(ctx context.Context, userID, id string, req *UpdateReminderRequest) (*Reminder, error) {

	reminder, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Intervals != nil {
		if !req.Intervals.Any() {
			return nil, fmt.Errorf("%w: at least one reminder interval must be enabled", helper.ErrValidation)
		}
		reminder.Intervals = *req.Intervals
	}

	if req.NotificationMethods != nil {
		if !req.NotificationMethods.Any() {
			return nil, fmt.Errorf("%w: at least one notification method must be enabled", helper.ErrValidation)
		}
		reminder.NotificationMethods = *req.NotificationMethods
	}

	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", helper.ErrValidation, *req.Status)
		}
		reminder.Status = *req.Status
	}

	reminder.UpdatedAt = s.now().UTC()

	if err := s.reminderRepository.Update(ctx, reminder, reminder.ID); err != nil {
		return nil, err
	}

	return reminder, nil
}

func (s *reminderService) UpdateReminderStatus(ctx context.Context, userID, id string, status ReminderStatus) (*Reminder, error) {

	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", helper.ErrValidation, status)
	}

	return s.UpdateReminder(ctx, userID, id, &UpdateReminderRequest{Status: &status})
}

// DeleteReminder is terminal and unconditional: no soft delete, no undo.
func (s *reminderService) DeleteReminder(ctx context.Context, userID, id string) error {

	reminder, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	return s.reminderRepository.Delete(ctx, reminder.ID)
}

// TriggerReminder force-sends a test push for an owned reminder, bypassing
// threshold matching.
func (s *reminderService) TriggerReminder(ctx context.Context, userID, id string) error {

	reminder, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	ev, err := s.events.FindEventByID(ctx, reminder.EventID)
	if err != nil {
		return err
	}
	if ev == nil {
		return fmt.Errorf("%w: event for reminder %s", helper.ErrNotFound, id)
	}

	return s.notifier.Push(ctx, userID, notify.Notification{
		Title: ev.Title,
		Body:  "This is a test notification for your reminder.",
		Tag:   notificationTag(reminder.ID.Hex(), "test"),
		Link:  clickLink(ev),
	})
}

// CronReminderNotifications is the evaluator tick: cross-reference active
// reminders against event sale dates and fire one notification per crossed
// threshold. Best effort only; a tick missed while the process is down is
// never backfilled.
func (s *reminderService) CronReminderNotifications(ctx context.Context) error {

	now := s.now().UTC().Truncate(time.Minute)

	log.Printf("🕐 Reminder check at: %s", now.Format("2006-01-02 15:04:05"))

	reminders, err := s.reminderRepository.FindActive(ctx)
	if err != nil {
		log.Printf("❌ Error FindActive: %v", err)
		return err
	}

	log.Printf("📋 Found %d active reminders", len(reminders))

	if len(reminders) == 0 {
		return nil
	}

	eventIDs := make([]primitive.ObjectID, 0, len(reminders))
	seen := make(map[primitive.ObjectID]struct{}, len(reminders))
	for _, rem := range reminders {
		if _, ok := seen[rem.EventID]; ok {
			continue
		}
		seen[rem.EventID] = struct{}{}
		eventIDs = append(eventIDs, rem.EventID)
	}

	events, err := s.events.FindEventsByIDs(ctx, eventIDs)
	if err != nil {
		log.Printf("❌ Error FindEventsByIDs: %v", err)
		return err
	}

	eventsByID := make(map[primitive.ObjectID]*event.Event, len(events))
	for _, ev := range events {
		eventsByID[ev.ID] = ev
	}

	for _, rem := range reminders {
		s.evaluateReminder(ctx, rem, eventsByID, now)
	}

	return nil
}

func (s *reminderService) evaluateReminder(ctx context.Context, rem *Reminder, eventsByID map[primitive.ObjectID]*event.Event, now time.Time) {

	ev, ok := eventsByID[rem.EventID]
	if !ok {
		// Event deleted or not yet loaded. Expected steady state, not an error.
		log.Printf("⏭️ Reminder %s: event %s not found, skipping", rem.ID.Hex(), rem.EventID.Hex())
		return
	}

	saleDate, ok := ev.SaleDate()
	if !ok {
		log.Printf("⏭️ Reminder %s: event %q has no sale date, skipping", rem.ID.Hex(), ev.Title)
		return
	}

	mins := minutesUntil(saleDate, now)

	crossed := crossedThresholds(rem.Intervals, mins)
	if len(crossed) == 0 {
		log.Printf("⏭️ Reminder %s: %d minutes until sale, no threshold crossed", rem.ID.Hex(), mins)
		return
	}

	for _, t := range crossed {
		message := thresholdMessage(t.Minutes)
		log.Printf("🎯 Reminder %s crossed %s threshold for %q", rem.ID.Hex(), t.Key, ev.Title)

		if rem.NotificationMethods.BrowserPush {
			n := notify.Notification{
				Title: ev.Title,
				Body:  message,
				Tag:   notificationTag(rem.ID.Hex(), t.Key),
				Link:  clickLink(ev),
			}
			if err := s.notifier.Push(ctx, rem.UserID, n); err != nil {
				log.Printf("❌ Push failed for reminder %s: %v", rem.ID.Hex(), err)
			}
		}

		if t.Minutes <= urgentCutoffMinutes {
			s.notifier.Urgent(ctx, rem.UserID, realtime.UrgentAlert{
				EventID:    ev.ID.Hex(),
				EventTitle: ev.Title,
				Message:    message,
				SaleDate:   saleDate,
				TicketURL:  ev.TicketURL,
			})
		}
	}
}

func clickLink(ev *event.Event) string {
	if ev.TicketURL != "" {
		return ev.TicketURL
	}
	return "/events/" + ev.ID.Hex()
}

func (s *reminderService) findOwned(ctx context.Context, userID, id string) (*Reminder, error) {

	if userID == "" {
		return nil, fmt.Errorf("%w: no authenticated user", helper.ErrUnauthorized)
	}

	if id == "" {
		return nil, fmt.Errorf("%w: reminder id is required", helper.ErrValidation)
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reminder id", helper.ErrValidation)
	}

	reminder, err := s.reminderRepository.FindByIDAndUser(ctx, objID, userID)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, fmt.Errorf("%w: reminder %s", helper.ErrNotFound, id)
	}

	return reminder, nil
}
