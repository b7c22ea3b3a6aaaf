package host

// Severity classifies a user-facing message. The host only decides which
// severity a message carries; rendering is not its concern.
type Severity int

const (
	// SeverityInfo is an informational message.
	SeverityInfo Severity = iota
	// SeverityWarn is a warning.
	SeverityWarn
	// SeverityError is an error.
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MessageSink receives severity-tagged user-facing messages.
type MessageSink interface {
	Show(severity Severity, message string)
}

// LogSink routes messages to a Logger at the matching level.
type LogSink struct {
	log *Logger
}

// NewLogSink creates a sink backed by the given logger.
func NewLogSink(log *Logger) *LogSink {
	return &LogSink{log: log}
}

// Show logs the message at the level matching its severity.
func (s *LogSink) Show(severity Severity, message string) {
	switch severity {
	case SeverityError:
		s.log.Error("%s", message)
	case SeverityWarn:
		s.log.Warn("%s", message)
	default:
		s.log.Info("%s", message)
	}
}

// ActivatePlugin is the plugin-activation extension point. A standalone
// host has no plugin infrastructure, and accidental use must surface
// immediately rather than silently succeed.
func ActivatePlugin(id string) {
	panic("host: plugin activation is not supported in a standalone host: " + id)
}
