// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package notify provides the transient notification service used by handlers to
tell a client what just happened (signed in, message sent, upload failed).

A [Center] is owned by the API server and shared by every handler. Showing the
same message of the same kind to the same audience again within the suppression
window is a no-op, so a double-submitted form produces a single notification.

Audiences are opaque strings: the admin email for dashboard flows, the client
IP for public forms.
*/
package notify

import (
	"sync"
	"time"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/pkg/uuidv7"
)

// Kind selects how a client styles the notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notification is one message shown to an audience.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type suppressKey struct {
	audience string
	kind     Kind
	message  string
}

// Center queues notifications per audience and suppresses duplicates.
//
// # Concurrency
//
// Center is safe for concurrent use.
type Center struct {
	mu        sync.Mutex
	window    time.Duration
	queueSize int
	now       func() time.Time
	lastShown map[suppressKey]time.Time
	queues    map[string][]Notification
}

// Option customises a [Center].
type Option func(*Center)

// WithWindow overrides the suppression window.
func WithWindow(window time.Duration) Option {
	return func(center *Center) { center.window = window }
}

// WithClock injects the time source.
func WithClock(now func() time.Time) Option {
	return func(center *Center) { center.now = now }
}

// WithQueueSize overrides how many pending notifications an audience keeps.
func WithQueueSize(size int) Option {
	return func(center *Center) { center.queueSize = size }
}

// NewCenter returns a Center using the platform defaults unless overridden.
func NewCenter(opts ...Option) *Center {
	center := &Center{
		window:    constants.NotificationSuppressWindow,
		queueSize: constants.NotificationQueueSize,
		now:       time.Now,
		lastShown: make(map[suppressKey]time.Time),
		queues:    make(map[string][]Notification),
	}
	for _, opt := range opts {
		opt(center)
	}
	return center
}

// Show queues message for audience. It returns false, and queues nothing, when
// the same message and kind was shown to the audience within the window.
func (center *Center) Show(audience, message string, kind Kind) (Notification, bool) {
	center.mu.Lock()
	defer center.mu.Unlock()

	now := center.now()
	key := suppressKey{audience: audience, kind: kind, message: message}

	if last, seen := center.lastShown[key]; seen && now.Sub(last) < center.window {
		return Notification{}, false
	}
	center.lastShown[key] = now
	center.evictStale(now)

	notification := Notification{
		ID:        uuidv7.New(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now.UTC(),
	}

	queue := append(center.queues[audience], notification)
	if len(queue) > center.queueSize {
		queue = queue[len(queue)-center.queueSize:]
	}
	center.queues[audience] = queue

	return notification, true
}

// Drain returns and clears the pending notifications of audience, oldest first.
func (center *Center) Drain(audience string) []Notification {
	center.mu.Lock()
	defer center.mu.Unlock()

	queue := center.queues[audience]
	delete(center.queues, audience)

	if queue == nil {
		return []Notification{}
	}
	return queue
}

// evictStale drops suppression entries older than the window. Caller holds mu.
func (center *Center) evictStale(now time.Time) {
	for key, last := range center.lastShown {
		if now.Sub(last) >= center.window {
			delete(center.lastShown, key)
		}
	}
}
