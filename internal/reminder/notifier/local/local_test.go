package local

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JellyPork/bunflow/internal/reminder"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockSender struct {
	mu       sync.Mutex
	messages []string
	fired    chan struct{}
}

func newMockSender(capacity int) *mockSender {
	return &mockSender{fired: make(chan struct{}, capacity)}
}

func (m *mockSender) SendMessage(chatID int64, text string) error {
	m.mu.Lock()
	m.messages = append(m.messages, text)
	m.mu.Unlock()
	m.fired <- struct{}{}
	return nil
}

func (m *mockSender) sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

func TestService_ScheduleDelivers(t *testing.T) {
	sender := newMockSender(1)
	s := New(&mockLogger{}, sender, 42)
	defer s.Stop()

	handle, err := s.Schedule(context.Background(), reminder.Request{
		TaskID: "task-1",
		Title:  "Water plants",
		Body:   "Bunflow reminder",
		At:     time.Now().Add(20 * time.Millisecond),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle == "" {
		t.Fatal("got empty handle")
	}

	select {
	case <-sender.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("reminder never fired")
	}

	messages := sender.sent()
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}
	if !strings.Contains(messages[0], "Water plants") || !strings.Contains(messages[0], "Bunflow reminder") {
		t.Errorf("message %q is missing title or body", messages[0])
	}
}

func TestService_CancelStopsTimer(t *testing.T) {
	sender := newMockSender(1)
	s := New(&mockLogger{}, sender, 42)
	defer s.Stop()

	handle, err := s.Schedule(context.Background(), reminder.Request{
		TaskID: "task-1",
		Title:  "Cancelled",
		At:     time.Now().Add(50 * time.Millisecond),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Cancel(context.Background(), handle); err != nil {
		t.Fatalf("unexpected cancel error: %v", err)
	}

	select {
	case <-sender.fired:
		t.Fatal("cancelled reminder still fired")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestService_CancelUnknownHandle(t *testing.T) {
	s := New(&mockLogger{}, nil, 0)
	defer s.Stop()

	if err := s.Cancel(context.Background(), "no-such-handle"); err != nil {
		t.Errorf("cancel of unknown handle returned %v, want nil", err)
	}
}

func TestService_StopRejectsNewWork(t *testing.T) {
	sender := newMockSender(2)
	s := New(&mockLogger{}, sender, 42)

	_, err := s.Schedule(context.Background(), reminder.Request{
		TaskID: "task-1",
		Title:  "Pending",
		At:     time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Stop()

	if _, err := s.Schedule(context.Background(), reminder.Request{
		TaskID: "task-2",
		Title:  "After stop",
		At:     time.Now(),
	}); err != ErrStopped {
		t.Errorf("Schedule after Stop returned %v, want ErrStopped", err)
	}

	select {
	case <-sender.fired:
		t.Fatal("stopped service still delivered a reminder")
	case <-time.After(100 * time.Millisecond):
	}
}
