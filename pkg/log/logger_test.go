package log

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Log(event Event) {
	m.Called(event)
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(Event{ConnectionID: "ignored"})
}

func TestOrNoop(t *testing.T) {
	if _, ok := OrNoop(nil).(NoopLogger); !ok {
		t.Error("OrNoop(nil) should return NoopLogger")
	}

	m := &mockLogger{}
	if OrNoop(m) != Logger(m) {
		t.Error("OrNoop should return a non-nil logger unchanged")
	}
}

func TestMultiLoggerFansOut(t *testing.T) {
	event := Event{ConnectionID: "conn-9", Category: CategoryError}

	a := &mockLogger{}
	a.On("Log", event).Once()
	b := &mockLogger{}
	b.On("Log", event).Once()

	NewMultiLogger(a, nil, b).Log(event)

	a.AssertExpectations(t)
	b.AssertExpectations(t)
}

func TestMultiLoggerEmpty(t *testing.T) {
	NewMultiLogger().Log(Event{})
	NewMultiLogger(nil, nil).Log(Event{})
}
