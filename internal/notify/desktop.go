package notify

import (
	"context"
	"fmt"
	"os/exec"
)

// Desktop emits notifications through the notify-send utility. Permission
// maps to binary availability: if notify-send is not installed the request
// is denied and nothing is ever sent.
type Desktop struct {
	// AppName is passed as the notification source. Defaults to "memo".
	AppName string

	path string
}

// NewDesktop creates a Desktop notifier. The notify-send lookup happens in
// RequestPermission, not here, so construction never fails.
func NewDesktop() *Desktop {
	return &Desktop{AppName: "memo"}
}

// RequestPermission checks that notify-send is available.
func (d *Desktop) RequestPermission(_ context.Context) (bool, error) {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		return false, nil
	}
	d.path = path
	return true, nil
}

// Notify sends a desktop notification. Urgent notifications use the
// critical urgency level, which desktops keep on screen until dismissed.
func (d *Desktop) Notify(ctx context.Context, title, body string, opts Options) error {
	if d.path == "" {
		return fmt.Errorf("notify-send not available")
	}

	args := []string{"--app-name=" + d.AppName}
	if opts.RequireInteraction {
		args = append(args, "--urgency=critical")
	}
	args = append(args, title, body)

	if out, err := exec.CommandContext(ctx, d.path, args...).CombinedOutput(); err != nil {
		return fmt.Errorf("notify-send: %w: %s", err, out)
	}
	return nil
}
