// Package notify is the notification scheduling facility. The rest of the app
// treats it as an unreliable collaborator: a failed Schedule yields no
// registration and is never fatal, and Cancel tolerates unknown ids.
package notify

import (
	"context"
	"time"
)

// Trigger describes when a notification fires. Single-shot triggers carry an
// absolute instant in At; repeating triggers fire daily at Hour:Minute.
type Trigger struct {
	At      time.Time
	Hour    int
	Minute  int
	Repeats bool
}

type Notification struct {
	Title   string
	Body    string
	Trigger Trigger
}

// Delivery is an emitted notification.
type Delivery struct {
	ID    string
	Title string
	Body  string
	At    time.Time
}

// Gateway registers and cancels pending triggers. Schedule returns an opaque
// registration id; Cancel is idempotent and never fails on an
// already-cancelled or unknown id.
type Gateway interface {
	Schedule(ctx context.Context, n Notification) (string, error)
	Cancel(ctx context.Context, id string) error
}
