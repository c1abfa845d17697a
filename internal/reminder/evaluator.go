package reminder

import (
	"fmt"
	"time"
)

// urgentCutoffMinutes: crossings at or below this lead time also raise the
// blocking in-app alert.
const urgentCutoffMinutes = 10

type threshold struct {
	Key     string
	Minutes int
}

// Checked in descending order; each enabled threshold fires independently.
var thresholds = []threshold{
	{Key: "twoHours", Minutes: 120},
	{Key: "oneHour", Minutes: 60},
	{Key: "thirtyMinutes", Minutes: 30},
	{Key: "tenMinutes", Minutes: 10},
}

// minutesUntil is floor((saleDate - now) / 1m), so it goes negative once the
// sale has started. Floor, not truncation: -90s until the sale is -2 minutes.
func minutesUntil(saleDate, now time.Time) int {
	d := saleDate.Sub(now)
	m := d / time.Minute
	if d%time.Minute != 0 && d < 0 {
		m--
	}
	return int(m)
}

func (i Intervals) enabled(key string) bool {
	switch key {
	case "twoHours":
		return i.TwoHours
	case "oneHour":
		return i.OneHour
	case "thirtyMinutes":
		return i.ThirtyMinutes
	case "tenMinutes":
		return i.TenMinutes
	}
	return false
}

// crossedThresholds returns the thresholds whose one-minute window contains
// minutesUntil. The window (T-1, T] is half-open so that with a 60 second
// tick each threshold is visited at most once as the countdown passes it;
// a threshold already behind the countdown on the first tick never fires.
func crossedThresholds(intervals Intervals, minutesUntil int) []threshold {
	var crossed []threshold
	for _, t := range thresholds {
		if !intervals.enabled(t.Key) {
			continue
		}
		if minutesUntil <= t.Minutes && minutesUntil > t.Minutes-1 {
			crossed = append(crossed, t)
		}
	}
	return crossed
}

func thresholdMessage(minutes int) string {
	switch minutes {
	case 120:
		return "Ticket sale starts in 2 hours!"
	case 60:
		return "Ticket sale starts in 1 hour!"
	default:
		return fmt.Sprintf("Ticket sale starts in %d minutes!", minutes)
	}
}

// notificationTag de-duplicates at the platform level: re-sending with the
// same tag replaces a still-visible notification instead of stacking one.
func notificationTag(reminderID string, thresholdKey string) string {
	return fmt.Sprintf("reminder-%s-%s", reminderID, thresholdKey)
}
