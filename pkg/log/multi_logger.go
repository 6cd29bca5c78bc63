package log

// MultiLogger fans events out to several loggers, e.g. a SlogAdapter for the
// console and a FileLogger for capture.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger returns a MultiLogger over the non-nil loggers given.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Log sends the event to every logger in order.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)
