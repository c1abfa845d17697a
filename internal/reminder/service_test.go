package reminder

import (
	"context"
	"testing"
	"time"

	"ticketcue/helper"
	"ticketcue/internal/event"
	"ticketcue/internal/notify"
	"ticketcue/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeReminderRepo struct {
	reminders map[primitive.ObjectID]*Reminder
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: make(map[primitive.ObjectID]*Reminder)}
}

func (f *fakeReminderRepo) Create(_ context.Context, reminder *Reminder) error {
	stored := *reminder
	f.reminders[reminder.ID] = &stored
	return nil
}

func (f *fakeReminderRepo) FindAllByUser(_ context.Context, userID string) ([]*Reminder, error) {
	var out []*Reminder
	for _, r := range f.reminders {
		if r.UserID == userID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) FindByIDAndUser(_ context.Context, id primitive.ObjectID, userID string) (*Reminder, error) {
	r, ok := f.reminders[id]
	if !ok || r.UserID != userID {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReminderRepo) FindActiveByUserAndEvent(_ context.Context, userID string, eventID primitive.ObjectID) (*Reminder, error) {
	for _, r := range f.reminders {
		if r.UserID == userID && r.EventID == eventID && r.Status == StatusActive {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeReminderRepo) FindActive(_ context.Context) ([]*Reminder, error) {
	var out []*Reminder
	for _, r := range f.reminders {
		if r.Status == StatusActive {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) Update(_ context.Context, reminder *Reminder, id primitive.ObjectID) error {
	stored := *reminder
	f.reminders[id] = &stored
	return nil
}

func (f *fakeReminderRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.reminders, id)
	return nil
}

type fakeEvents struct {
	events map[primitive.ObjectID]*event.Event
}

func newFakeEvents(events ...*event.Event) *fakeEvents {
	f := &fakeEvents{events: make(map[primitive.ObjectID]*event.Event)}
	for _, ev := range events {
		f.events[ev.ID] = ev
	}
	return f
}

func (f *fakeEvents) FindEventByID(_ context.Context, id primitive.ObjectID) (*event.Event, error) {
	return f.events[id], nil
}

func (f *fakeEvents) FindEventsByIDs(_ context.Context, ids []primitive.ObjectID) ([]*event.Event, error) {
	var out []*event.Event
	for _, id := range ids {
		if ev, ok := f.events[id]; ok {
			out = append(out, ev)
		}
	}
	return out, nil
}

type sentPush struct {
	userID string
	n      notify.Notification
}

type sentUrgent struct {
	userID string
	alert  realtime.UrgentAlert
}

type fakeNotifier struct {
	pushes  []sentPush
	urgents []sentUrgent
}

func (f *fakeNotifier) Push(_ context.Context, userID string, n notify.Notification) error {
	f.pushes = append(f.pushes, sentPush{userID: userID, n: n})
	return nil
}

func (f *fakeNotifier) Urgent(_ context.Context, userID string, alert realtime.UrgentAlert) {
	f.urgents = append(f.urgents, sentUrgent{userID: userID, alert: alert})
}

func newTestService(repo ReminderRepository, events EventSource, notifier notify.Notifier, now time.Time) *reminderService {
	return &reminderService{
		reminderRepository: repo,
		events:             events,
		notifier:           notifier,
		now:                func() time.Time { return now },
	}
}

func newEvent(title string, saleIn *time.Duration, base time.Time) *event.Event {
	ev := &event.Event{
		ID:    primitive.NewObjectID(),
		Title: title,
	}
	if saleIn != nil {
		sale := base.Add(*saleIn)
		ev.TicketSaleDate = &sale
	}
	return ev
}

func durPtr(d time.Duration) *time.Duration { return &d }

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCreateReminder(t *testing.T) {
	ctx := context.Background()

	t.Run("requires an authenticated user", func(t *testing.T) {
		svc := newTestService(newFakeReminderRepo(), newFakeEvents(), &fakeNotifier{}, testNow)

		_, _, err := svc.CreateReminder(ctx, "", &CreateReminderRequest{EventID: primitive.NewObjectID().Hex()})
		assert.ErrorIs(t, err, helper.ErrUnauthorized)
	})

	t.Run("rejects a nonexistent event", func(t *testing.T) {
		svc := newTestService(newFakeReminderRepo(), newFakeEvents(), &fakeNotifier{}, testNow)

		_, _, err := svc.CreateReminder(ctx, "user-1", &CreateReminderRequest{EventID: primitive.NewObjectID().Hex()})
		assert.ErrorIs(t, err, helper.ErrValidation)
	})

	t.Run("rejects all-false intervals", func(t *testing.T) {
		ev := newEvent("Concert", durPtr(2*time.Hour), testNow)
		svc := newTestService(newFakeReminderRepo(), newFakeEvents(ev), &fakeNotifier{}, testNow)

		_, _, err := svc.CreateReminder(ctx, "user-1", &CreateReminderRequest{
			EventID:   ev.ID.Hex(),
			Intervals: &Intervals{},
		})
		assert.ErrorIs(t, err, helper.ErrValidation)
	})

	t.Run("rejects all-false notification methods", func(t *testing.T) {
		ev := newEvent("Concert", durPtr(2*time.Hour), testNow)
		svc := newTestService(newFakeReminderRepo(), newFakeEvents(ev), &fakeNotifier{}, testNow)

		_, _, err := svc.CreateReminder(ctx, "user-1", &CreateReminderRequest{
			EventID:             ev.ID.Hex(),
			NotificationMethods: &NotificationMethods{},
		})
		assert.ErrorIs(t, err, helper.ErrValidation)
	})

	t.Run("applies defaults when settings are omitted", func(t *testing.T) {
		ev := newEvent("Concert", durPtr(2*time.Hour), testNow)
		svc := newTestService(newFakeReminderRepo(), newFakeEvents(ev), &fakeNotifier{}, testNow)

		rem, created, err := svc.CreateReminder(ctx, "user-1", &CreateReminderRequest{EventID: ev.ID.Hex()})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, Intervals{OneHour: true, TenMinutes: true}, rem.Intervals)
		assert.Equal(t, NotificationMethods{BrowserPush: true}, rem.NotificationMethods)
		assert.Equal(t, StatusActive, rem.Status)
	})

	t.Run("second create for the same event updates in place", func(t *testing.T) {
		ev := newEvent("Concert", durPtr(2*time.Hour), testNow)
		repo := newFakeReminderRepo()
		svc := newTestService(repo, newFakeEvents(ev), &fakeNotifier{}, testNow)

		first, created, err := svc.CreateReminder(ctx, "user-1", &CreateReminderRequest{EventID: ev.ID.Hex()})
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := svc.CreateReminder(ctx, "user-1", &CreateReminderRequest{
			EventID:   ev.ID.Hex(),
			Intervals: &Intervals{TwoHours: true},
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, Intervals{TwoHours: true}, second.Intervals)
		assert.Equal(t, first.CreatedAt, second.CreatedAt)

		active, err := repo.FindActive(ctx)
		require.NoError(t, err)
		assert.Len(t, active, 1)
	})

	t.Run("different users keep independent reminders", func(t *testing.T) {
		ev := newEvent("Concert", durPtr(2*time.Hour), testNow)
		repo := newFakeReminderRepo()
		svc := newTestService(repo, newFakeEvents(ev), &fakeNotifier{}, testNow)

		_, _, err := svc.CreateReminder(ctx, "user-1", &CreateReminderRequest{EventID: ev.ID.Hex()})
		require.NoError(t, err)
		_, _, err = svc.CreateReminder(ctx, "user-2", &CreateReminderRequest{EventID: ev.ID.Hex()})
		require.NoError(t, err)

		active, err := repo.FindActive(ctx)
		require.NoError(t, err)
		assert.Len(t, active, 2)
	})
}

func TestUpdateReminder(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*reminderService, *fakeReminderRepo, *Reminder) {
		ev := newEvent("Concert", durPtr(2*time.Hour), testNow)
		repo := newFakeReminderRepo()
		svc := newTestService(repo, newFakeEvents(ev), &fakeNotifier{}, testNow)

		rem, _, err := svc.CreateReminder(ctx, "user-1", &CreateReminderRequest{EventID: ev.ID.Hex()})
		require.NoError(t, err)
		return svc, repo, rem
	}

	t.Run("partial update leaves unsupplied fields unchanged", func(t *testing.T) {
		svc, _, rem := setup(t)

		updated, err := svc.UpdateReminder(ctx, "user-1", rem.ID.Hex(), &UpdateReminderRequest{
			Intervals: &Intervals{ThirtyMinutes: true},
		})
		require.NoError(t, err)
		assert.Equal(t, Intervals{ThirtyMinutes: true}, updated.Intervals)
		assert.Equal(t, rem.NotificationMethods, updated.NotificationMethods)
		assert.Equal(t, rem.Status, updated.Status)
	})

	t.Run("foreign-owned reminder is not found", func(t *testing.T) {
		svc, _, rem := setup(t)

		_, err := svc.UpdateReminder(ctx, "someone-else", rem.ID.Hex(), &UpdateReminderRequest{})
		assert.ErrorIs(t, err, helper.ErrNotFound)
	})

	t.Run("rejects clearing every interval", func(t *testing.T) {
		svc, _, rem := setup(t)

		_, err := svc.UpdateReminder(ctx, "user-1", rem.ID.Hex(), &UpdateReminderRequest{
			Intervals: &Intervals{},
		})
		assert.ErrorIs(t, err, helper.ErrValidation)
	})

	t.Run("status transitions through the dedicated operation", func(t *testing.T) {
		svc, repo, rem := setup(t)

		updated, err := svc.UpdateReminderStatus(ctx, "user-1", rem.ID.Hex(), StatusDismissed)
		require.NoError(t, err)
		assert.Equal(t, StatusDismissed, updated.Status)

		active, err := repo.FindActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		svc, _, rem := setup(t)

		_, err := svc.UpdateReminderStatus(ctx, "user-1", rem.ID.Hex(), ReminderStatus("archived"))
		assert.ErrorIs(t, err, helper.ErrValidation)
	})
}

func TestDeleteReminder(t *testing.T) {
	ctx := context.Background()

	ev := newEvent("Concert", durPtr(2*time.Hour), testNow)
	repo := newFakeReminderRepo()
	svc := newTestService(repo, newFakeEvents(ev), &fakeNotifier{}, testNow)

	rem, _, err := svc.CreateReminder(ctx, "user-1", &CreateReminderRequest{EventID: ev.ID.Hex()})
	require.NoError(t, err)

	t.Run("nonexistent id leaves the store unchanged", func(t *testing.T) {
		err := svc.DeleteReminder(ctx, "user-1", primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, helper.ErrNotFound)
		assert.Len(t, repo.reminders, 1)
	})

	t.Run("foreign-owned id leaves the store unchanged", func(t *testing.T) {
		err := svc.DeleteReminder(ctx, "someone-else", rem.ID.Hex())
		assert.ErrorIs(t, err, helper.ErrNotFound)
		assert.Len(t, repo.reminders, 1)
	})

	t.Run("owner delete is terminal", func(t *testing.T) {
		require.NoError(t, svc.DeleteReminder(ctx, "user-1", rem.ID.Hex()))
		assert.Empty(t, repo.reminders)
	})
}

func TestCronReminderNotifications(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo *fakeReminderRepo, ev *event.Event, userID string, intervals Intervals, methods NotificationMethods) *Reminder {
		rem := &Reminder{
			ID:                  primitive.NewObjectID(),
			EventID:             ev.ID,
			UserID:              userID,
			Intervals:           intervals,
			NotificationMethods: methods,
			Status:              StatusActive,
			CreatedAt:           testNow.Add(-time.Hour),
			UpdatedAt:           testNow.Add(-time.Hour),
		}
		require.NoError(t, repo.Create(ctx, rem))
		return rem
	}

	push := NotificationMethods{BrowserPush: true}

	t.Run("one hour out fires exactly one notification and no urgent alert", func(t *testing.T) {
		ev := newEvent("The Eras Tour", durPtr(60*time.Minute), testNow)
		repo := newFakeReminderRepo()
		notifier := &fakeNotifier{}
		svc := newTestService(repo, newFakeEvents(ev), notifier, testNow)

		rem := seed(t, repo, ev, "user-1", Intervals{OneHour: true, TenMinutes: true}, push)

		require.NoError(t, svc.CronReminderNotifications(ctx))

		require.Len(t, notifier.pushes, 1)
		assert.Equal(t, "user-1", notifier.pushes[0].userID)
		assert.Equal(t, "The Eras Tour", notifier.pushes[0].n.Title)
		assert.Equal(t, "Ticket sale starts in 1 hour!", notifier.pushes[0].n.Body)
		assert.Equal(t, notificationTag(rem.ID.Hex(), "oneHour"), notifier.pushes[0].n.Tag)
		assert.Empty(t, notifier.urgents)
	})

	t.Run("ten minutes out fires push and urgent alert", func(t *testing.T) {
		sale := testNow.Add(10 * time.Minute)
		ev := &event.Event{
			ID:             primitive.NewObjectID(),
			Title:          "Neon Valley Festival",
			TicketSaleDate: &sale,
			TicketURL:      "https://example.com/tickets",
		}
		repo := newFakeReminderRepo()
		notifier := &fakeNotifier{}
		svc := newTestService(repo, newFakeEvents(ev), notifier, testNow)

		seed(t, repo, ev, "user-1", Intervals{TenMinutes: true}, push)

		require.NoError(t, svc.CronReminderNotifications(ctx))

		require.Len(t, notifier.pushes, 1)
		assert.Equal(t, "Ticket sale starts in 10 minutes!", notifier.pushes[0].n.Body)
		require.Len(t, notifier.urgents, 1)
		assert.Equal(t, "Neon Valley Festival", notifier.urgents[0].alert.EventTitle)
		assert.Equal(t, sale, notifier.urgents[0].alert.SaleDate)
		assert.Equal(t, "https://example.com/tickets", notifier.urgents[0].alert.TicketURL)
	})

	t.Run("nine minutes out the boundary is already behind us", func(t *testing.T) {
		ev := newEvent("Concert", durPtr(9*time.Minute), testNow)
		repo := newFakeReminderRepo()
		notifier := &fakeNotifier{}
		svc := newTestService(repo, newFakeEvents(ev), notifier, testNow)

		seed(t, repo, ev, "user-1", Intervals{TenMinutes: true}, push)

		require.NoError(t, svc.CronReminderNotifications(ctx))
		assert.Empty(t, notifier.pushes)
		assert.Empty(t, notifier.urgents)
	})

	t.Run("presale date wins over the public sale date", func(t *testing.T) {
		presale := testNow.Add(30 * time.Minute)
		public := testNow.Add(3 * time.Hour)
		ev := &event.Event{
			ID:             primitive.NewObjectID(),
			Title:          "Concert",
			TicketSaleDate: &public,
			PresaleDate:    &presale,
		}
		repo := newFakeReminderRepo()
		notifier := &fakeNotifier{}
		svc := newTestService(repo, newFakeEvents(ev), notifier, testNow)

		seed(t, repo, ev, "user-1", Intervals{ThirtyMinutes: true}, push)

		require.NoError(t, svc.CronReminderNotifications(ctx))
		require.Len(t, notifier.pushes, 1)
		assert.Equal(t, "Ticket sale starts in 30 minutes!", notifier.pushes[0].n.Body)
	})

	t.Run("skips reminders whose event is gone", func(t *testing.T) {
		ev := newEvent("Deleted", durPtr(60*time.Minute), testNow)
		repo := newFakeReminderRepo()
		notifier := &fakeNotifier{}
		svc := newTestService(repo, newFakeEvents(), notifier, testNow)

		seed(t, repo, ev, "user-1", Intervals{OneHour: true}, push)

		require.NoError(t, svc.CronReminderNotifications(ctx))
		assert.Empty(t, notifier.pushes)
	})

	t.Run("skips reminders whose event has no sale date", func(t *testing.T) {
		ev := newEvent("No sale date yet", nil, testNow)
		repo := newFakeReminderRepo()
		notifier := &fakeNotifier{}
		svc := newTestService(repo, newFakeEvents(ev), notifier, testNow)

		seed(t, repo, ev, "user-1", Intervals{OneHour: true}, push)

		require.NoError(t, svc.CronReminderNotifications(ctx))
		assert.Empty(t, notifier.pushes)
	})

	t.Run("inert against a reminder with every flag off", func(t *testing.T) {
		ev := newEvent("Concert", durPtr(60*time.Minute), testNow)
		repo := newFakeReminderRepo()
		notifier := &fakeNotifier{}
		svc := newTestService(repo, newFakeEvents(ev), notifier, testNow)

		seed(t, repo, ev, "user-1", Intervals{}, push)

		require.NoError(t, svc.CronReminderNotifications(ctx))
		assert.Empty(t, notifier.pushes)
	})

	t.Run("non-active reminders are never evaluated", func(t *testing.T) {
		ev := newEvent("Concert", durPtr(60*time.Minute), testNow)
		repo := newFakeReminderRepo()
		notifier := &fakeNotifier{}
		svc := newTestService(repo, newFakeEvents(ev), notifier, testNow)

		rem := seed(t, repo, ev, "user-1", Intervals{OneHour: true}, push)
		rem.Status = StatusDismissed
		require.NoError(t, repo.Update(ctx, rem, rem.ID))

		require.NoError(t, svc.CronReminderNotifications(ctx))
		assert.Empty(t, notifier.pushes)
	})

	t.Run("urgent alert still fires when browser push is disabled", func(t *testing.T) {
		ev := newEvent("Concert", durPtr(10*time.Minute), testNow)
		repo := newFakeReminderRepo()
		notifier := &fakeNotifier{}
		svc := newTestService(repo, newFakeEvents(ev), notifier, testNow)

		seed(t, repo, ev, "user-1", Intervals{TenMinutes: true}, NotificationMethods{Email: true})

		require.NoError(t, svc.CronReminderNotifications(ctx))
		assert.Empty(t, notifier.pushes)
		assert.Len(t, notifier.urgents, 1)
	})
}

func TestTriggerReminder(t *testing.T) {
	ctx := context.Background()

	ev := newEvent("Concert", durPtr(2*time.Hour), testNow)
	repo := newFakeReminderRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, newFakeEvents(ev), notifier, testNow)

	rem, _, err := svc.CreateReminder(ctx, "user-1", &CreateReminderRequest{EventID: ev.ID.Hex()})
	require.NoError(t, err)

	require.NoError(t, svc.TriggerReminder(ctx, "user-1", rem.ID.Hex()))
	require.Len(t, notifier.pushes, 1)
	assert.Equal(t, "Concert", notifier.pushes[0].n.Title)

	err = svc.TriggerReminder(ctx, "someone-else", rem.ID.Hex())
	assert.ErrorIs(t, err, helper.ErrNotFound)
}
