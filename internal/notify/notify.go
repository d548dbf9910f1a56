// Package notify decouples user-visible notifications from the code that
// emits them. The form state machine talks to a Notifier; the TUI drains a
// Recorder into toasts, and the headless path logs notices directly.
package notify

import "log"

// Level classifies a notice.
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

// Notice is a single fire-and-forget notification.
type Notice struct {
	Level   Level
	Message string
}

// Notifier receives transient user-visible messages. Implementations must
// not block; delivery is best effort.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Recorder collects notices in order. The TUI uses it as a staging queue
// between the wizard and the toast overlay; tests assert against it.
type Recorder struct {
	Notices []Notice
}

func (r *Recorder) Success(msg string) { r.append(LevelSuccess, msg) }
func (r *Recorder) Error(msg string)   { r.append(LevelError, msg) }
func (r *Recorder) Info(msg string)    { r.append(LevelInfo, msg) }

func (r *Recorder) append(level Level, msg string) {
	r.Notices = append(r.Notices, Notice{Level: level, Message: msg})
}

// Drain returns all recorded notices and resets the recorder.
func (r *Recorder) Drain() []Notice {
	out := r.Notices
	r.Notices = nil
	return out
}

// LogNotifier writes notices to a standard logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (n *LogNotifier) Success(msg string) { n.printf(LevelSuccess, msg) }
func (n *LogNotifier) Error(msg string)   { n.printf(LevelError, msg) }
func (n *LogNotifier) Info(msg string)    { n.printf(LevelInfo, msg) }

func (n *LogNotifier) printf(level Level, msg string) {
	logger := n.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("%s: %s", level, msg)
}
