package notify

import (
	"context"
	"log"

	"ticketcue/internal/realtime"
	"ticketcue/internal/user"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// Notification is a browser notification. Notifications sharing a Tag replace
// any still-visible notification with the same tag instead of stacking.
type Notification struct {
	Title string
	Body  string
	Tag   string
	Link  string
}

type Notifier interface {
	Push(ctx context.Context, userID string, n Notification) error
	Urgent(ctx context.Context, userID string, alert realtime.UrgentAlert)
}

type pushNotifier struct {
	fireBase    *firebase.App
	userService user.UserService
	hub         *realtime.Hub
}

func NewPushNotifier(fb *firebase.App, us user.UserService, hub *realtime.Hub) Notifier {
	return &pushNotifier{
		fireBase:    fb,
		userService: us,
		hub:         hub,
	}
}

// Push sends a web-push notification to every device the user has registered.
// A user with no registered devices has not granted notification permission,
// so the dispatch is a no-op rather than an error.
func (p *pushNotifier) Push(ctx context.Context, userID string, n Notification) error {

	tokens, err := p.userService.GetTokenUser(ctx, userID)
	if err != nil || tokens == nil {
		log.Printf("❌ GetTokenUser error for user %s: %v", userID, err)
		return err
	}

	if len(*tokens) == 0 {
		log.Printf("📵 No device tokens for user %s, skipping push", userID)
		return nil
	}

	client, err := p.fireBase.Messaging(ctx)
	if err != nil {
		log.Printf("❌ Firebase client error: %v", err)
		return err
	}

	successCount := 0
	for _, token := range *tokens {
		if token == "" {
			continue
		}

		msg := &messaging.Message{
			Notification: &messaging.Notification{
				Title: n.Title,
				Body:  n.Body,
			},
			Webpush: &messaging.WebpushConfig{
				Notification: &messaging.WebpushNotification{
					Title:              n.Title,
					Body:               n.Body,
					Tag:                n.Tag,
					Icon:               "/icon.svg",
					Badge:              "/icon.svg",
					RequireInteraction: true,
				},
			},
			Token: token,
		}

		if n.Link != "" {
			msg.Webpush.FCMOptions = &messaging.WebpushFCMOptions{
				Link: n.Link,
			}
		}

		response, err := client.Send(ctx, msg)
		if err != nil {
			log.Printf("❌ Failed to send to token %s: %v", token, err)
		} else {
			log.Printf("✅ Sent notification to token %s (response: %s)", token, response)
			successCount++
		}
	}

	log.Printf("📊 User %s: sent %d/%d notifications successfully", userID, successCount, len(*tokens))
	return nil
}

func (p *pushNotifier) Urgent(ctx context.Context, userID string, alert realtime.UrgentAlert) {
	p.hub.PushUrgent(userID, alert)
}
