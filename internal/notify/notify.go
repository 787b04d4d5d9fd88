package notify

import (
	"errors"
	"os/exec"
	"strconv"
	"time"
)

// Level is the severity of a notice
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a short message about the outcome of an operation
type Notice struct {
	Level Level
	Title string
	Body  string
}

// Sender delivers notices somewhere the user will see them
type Sender interface {
	Send(Notice) error
}

// SenderFunc adapts a function to Sender
type SenderFunc func(Notice) error

func (f SenderFunc) Send(n Notice) error { return f(n) }

// Discard drops every notice
var Discard Sender = SenderFunc(func(Notice) error { return nil })

// Multi fans a notice out to several senders and joins their errors
func Multi(senders ...Sender) Sender {
	return SenderFunc(func(n Notice) error {
		var errs []error
		for _, s := range senders {
			if s == nil {
				continue
			}
			if err := s.Send(n); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

// Async delivers notices from a new goroutine so slow senders do not
// block the caller. onErr may be nil.
func Async(s Sender, onErr func(error)) Sender {
	return SenderFunc(func(n Notice) error {
		go func() {
			if err := s.Send(n); err != nil && onErr != nil {
				onErr(err)
			}
		}()
		return nil
	})
}

// Desktop sends notices as desktop notifications using notify-send
type Desktop struct {
	enabled bool
	timeout time.Duration
	command string
}

// NewDesktop creates a desktop notifier
func NewDesktop(enabled bool, timeout time.Duration) *Desktop {
	return &Desktop{
		enabled: enabled,
		timeout: timeout,
		command: "notify-send",
	}
}

// SetEnabled enables or disables notifications
func (d *Desktop) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// IsEnabled returns whether notifications are enabled
func (d *Desktop) IsEnabled() bool {
	return d.enabled
}

// Send shows the notice. Errors get critical urgency.
func (d *Desktop) Send(n Notice) error {
	if !d.enabled {
		return nil
	}
	return exec.Command(d.command, d.args(n)...).Run()
}

func (d *Desktop) args(n Notice) []string {
	var args []string

	switch n.Level {
	case LevelError:
		args = append(args, "-u", "critical", "-i", "dialog-error-symbolic")
	case LevelSuccess:
		args = append(args, "-u", "low")
	default:
		args = append(args, "-u", "normal")
	}

	// Timeout in milliseconds
	if d.timeout > 0 {
		args = append(args, "-t", strconv.Itoa(int(d.timeout.Milliseconds())))
	}

	args = append(args, "-a", "tablero", n.Title)
	if n.Body != "" {
		args = append(args, n.Body)
	}
	return args
}
