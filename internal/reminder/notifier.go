package reminder

import (
	"context"
	"time"
)

// PermissionStatus reports whether the notification collaborator is
// able to deliver notifications to the user.
type PermissionStatus int

const (
	PermissionGranted PermissionStatus = iota
	PermissionDenied
)

// Request is a notification request handed to the collaborator. The
// EventID payload tags the originating event so delivered notifications
// can be traced back to it.
type Request struct {
	Title   string
	Body    string
	EventID string
}

// Notifier is the external notification collaborator. Delivery triggers
// are relative delays, not absolute wall-clock times. There is no
// per-request cancellation; callers cancel wholesale and rebuild.
type Notifier interface {
	// Schedule queues req for delivery after delay and returns an
	// opaque notification handle.
	Schedule(ctx context.Context, req Request, delay time.Duration) (string, error)

	// CancelAll drops every outstanding scheduled notification.
	CancelAll(ctx context.Context) error

	// Permission reports whether notifications can be delivered.
	Permission(ctx context.Context) PermissionStatus
}

// Disabled is a Notifier that reports denied permission, used when the
// user has turned reminders off in config.
type Disabled struct{}

func (Disabled) Schedule(ctx context.Context, req Request, delay time.Duration) (string, error) {
	return "", nil
}

func (Disabled) CancelAll(ctx context.Context) error {
	return nil
}

func (Disabled) Permission(ctx context.Context) PermissionStatus {
	return PermissionDenied
}
