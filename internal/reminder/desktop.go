package reminder

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmhodges/clock"

	"github.com/anhle/countdown/internal/log"
)

// DesktopNotifier delivers reminders as desktop notifications via the
// platform notification command. Pending deliveries live in-process as
// timers keyed by an opaque handle.
type DesktopNotifier struct {
	clk  clock.Clock
	send func(title, body string) error

	mu      sync.Mutex
	pending map[string]*clock.Timer
	granted bool
}

// NewDesktopNotifier creates a notifier using the platform notification
// command. command overrides auto-detection when non-empty.
func NewDesktopNotifier(command string) *DesktopNotifier {
	n := &DesktopNotifier{
		clk:     clock.New(),
		pending: make(map[string]*clock.Timer),
	}
	n.send, n.granted = resolveSender(command)
	return n
}

// newDesktopNotifierWithClock is the test constructor: it injects a
// clock and a send function and always reports permission granted.
func newDesktopNotifierWithClock(clk clock.Clock, send func(title, body string) error) *DesktopNotifier {
	return &DesktopNotifier{
		clk:     clk,
		send:    send,
		pending: make(map[string]*clock.Timer),
		granted: true,
	}
}

// resolveSender picks the platform notification command. A missing
// command means notifications cannot be delivered, which surfaces as
// PermissionDenied.
func resolveSender(command string) (func(title, body string) error, bool) {
	if command != "" {
		if _, err := exec.LookPath(command); err != nil {
			return nil, false
		}
		return func(title, body string) error {
			return exec.Command(command, title, body).Run()
		}, true
	}

	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("osascript"); err != nil {
			return nil, false
		}
		return func(title, body string) error {
			script := fmt.Sprintf(`display notification %q with title %q`, body, title)
			return exec.Command("osascript", "-e", script).Run()
		}, true
	case "linux":
		if _, err := exec.LookPath("notify-send"); err != nil {
			return nil, false
		}
		return func(title, body string) error {
			return exec.Command("notify-send", title, body).Run()
		}, true
	default:
		return nil, false
	}
}

// Schedule queues req for delivery after delay.
func (n *DesktopNotifier) Schedule(ctx context.Context, req Request, delay time.Duration) (string, error) {
	if !n.granted {
		return "", nil
	}

	id := uuid.New().String()

	n.mu.Lock()
	defer n.mu.Unlock()

	timer := n.clk.NewTimer(delay)
	n.pending[id] = timer
	go func() {
		<-timer.C

		n.mu.Lock()
		delete(n.pending, id)
		n.mu.Unlock()

		if err := n.send(req.Title, req.Body); err != nil {
			log.Error("delivering notification", err, "event_id", req.EventID)
		}
	}()

	return id, nil
}

// CancelAll stops and drops every pending notification timer.
func (n *DesktopNotifier) CancelAll(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, timer := range n.pending {
		timer.Stop()
		delete(n.pending, id)
	}
	return nil
}

// Permission reports whether a notification command is available.
func (n *DesktopNotifier) Permission(ctx context.Context) PermissionStatus {
	if n.granted {
		return PermissionGranted
	}
	return PermissionDenied
}

// PendingCount returns the number of notifications awaiting delivery.
func (n *DesktopNotifier) PendingCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.pending)
}
