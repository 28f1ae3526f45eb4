package notify

import (
	"fmt"
	"strings"
	"time"
)

// Level distinguishes routine events from failures.
type Level int

const (
	Info Level = iota
	Error
)

// Notification is a single preview event, such as a saved file.
type Notification struct {
	Message   string
	Level     Level
	Timestamp time.Time
}

// Bar manages a FIFO queue of notification entries.
type Bar struct {
	items    []Notification
	maxStore int
}

// NewBar creates a notification bar with the given buffer size.
func NewBar(maxStore int) *Bar {
	if maxStore < 1 {
		maxStore = 1
	}
	return &Bar{
		items:    make([]Notification, 0, maxStore),
		maxStore: maxStore,
	}
}

// Push adds a notification, trimming oldest if at capacity.
func (b *Bar) Push(n Notification) {
	b.items = append(b.items, n)
	if len(b.items) > b.maxStore {
		b.items = b.items[len(b.items)-b.maxStore:]
	}
}

// Infof pushes an Info notification stamped with now.
func (b *Bar) Infof(now time.Time, format string, args ...any) {
	b.Push(Notification{Message: fmt.Sprintf(format, args...), Level: Info, Timestamp: now})
}

// Errorf pushes an Error notification stamped with now.
func (b *Bar) Errorf(now time.Time, format string, args ...any) {
	b.Push(Notification{Message: fmt.Sprintf(format, args...), Level: Error, Timestamp: now})
}

// Visible returns the most recent notifications (max 2).
func (b *Bar) Visible() []Notification {
	if len(b.items) <= 2 {
		return b.items
	}
	return b.items[len(b.items)-2:]
}

// Latest returns the newest notification, if any.
func (b *Bar) Latest() (Notification, bool) {
	if len(b.items) == 0 {
		return Notification{}, false
	}
	return b.items[len(b.items)-1], true
}

// Clear drops every buffered notification.
func (b *Bar) Clear() {
	b.items = b.items[:0]
}

// Len returns the total number of buffered notifications.
func (b *Bar) Len() int {
	return len(b.items)
}

// Render formats the visible notifications for display within the given width.
func (b *Bar) Render(width int, now time.Time) string {
	visible := b.Visible()
	if len(visible) == 0 {
		return ""
	}

	parts := make([]string, 0, len(visible))
	for _, n := range visible {
		parts = append(parts, formatNotification(n, now))
	}
	result := strings.Join(parts, " │ ")

	runes := []rune(result)
	if width >= 0 && len(runes) > width {
		if width > 1 {
			result = string(runes[:width-1]) + "…"
		} else {
			result = string(runes[:width])
		}
	}

	return result
}

func formatNotification(n Notification, now time.Time) string {
	age := now.Sub(n.Timestamp).Truncate(time.Second)
	var ageStr string
	if age < time.Minute {
		ageStr = fmt.Sprintf("%ds ago", int(age.Seconds()))
	} else if age < time.Hour {
		ageStr = fmt.Sprintf("%dm ago", int(age.Minutes()))
	} else {
		ageStr = fmt.Sprintf("%dh ago", int(age.Hours()))
	}

	marker := "●"
	if n.Level == Error {
		marker = "!"
	}
	return fmt.Sprintf("%s %s (%s)", marker, n.Message, ageStr)
}
