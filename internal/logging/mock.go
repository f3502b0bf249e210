package logging

// MockLogger is a Logger implementation for tests. It captures log entries
// for later inspection. Derived loggers created via the With* methods share
// the same entry list as their parent.
type MockLogger struct {
	entries       *[]LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single captured log record.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	entries := []LogEntry{}
	return &MockLogger{entries: &entries}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	*m.entries = append(*m.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		entries:       m.entries,
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	return &MockLogger{
		entries:       m.entries,
		pendingError:  m.pendingError,
		pendingFields: allFields,
	}
}

// Entries returns all captured log entries.
func (m *MockLogger) Entries() []LogEntry {
	return *m.entries
}

// EntriesByLevel returns captured entries with the given level.
func (m *MockLogger) EntriesByLevel(level string) []LogEntry {
	var out []LogEntry
	for _, entry := range *m.entries {
		if entry.Level == level {
			out = append(out, entry)
		}
	}
	return out
}

// HasEntry reports whether an entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range *m.entries {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}
