package local

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JellyPork/bunflow/internal/reminder"
	pkgLog "github.com/JellyPork/bunflow/pkg/log"
)

// ErrStopped is returned by Schedule after the service has been shut down.
var ErrStopped = errors.New("local notifier stopped")

// Sender delivers one reminder text. *telegram.Bot satisfies this.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// Service is an in-process timer-backed Notifier. Each scheduled reminder
// owns one timer keyed by a uuid handle; Cancel stops the timer. With no
// Sender configured, firing reminders are only logged.
type Service struct {
	l      pkgLog.Logger
	sender Sender
	chatID int64

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
}

// New creates a new local notifier Service instance. sender may be nil.
func New(l pkgLog.Logger, sender Sender, chatID int64) *Service {
	return &Service{
		l:      l,
		sender: sender,
		chatID: chatID,
		timers: make(map[string]*time.Timer),
	}
}

func (s *Service) Schedule(ctx context.Context, req reminder.Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return "", ErrStopped
	}

	handle := uuid.NewString()
	delay := time.Until(req.At)
	if delay < 0 {
		delay = 0
	}

	s.timers[handle] = time.AfterFunc(delay, func() {
		s.fire(handle, req)
	})
	return handle, nil
}

func (s *Service) Cancel(ctx context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// An unknown or already-fired handle is not an error.
	if timer, ok := s.timers[handle]; ok {
		timer.Stop()
		delete(s.timers, handle)
	}
	return nil
}

// Stop cancels every pending timer. Subsequent Schedule calls fail with
// ErrStopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for handle, timer := range s.timers {
		timer.Stop()
		delete(s.timers, handle)
	}
}

func (s *Service) fire(handle string, req reminder.Request) {
	s.mu.Lock()
	delete(s.timers, handle)
	s.mu.Unlock()

	ctx := context.Background()
	if s.sender == nil {
		s.l.Infof(ctx, "reminder fired: task=%s %s", req.TaskID, req.Title)
		return
	}

	text := req.Title
	if req.Body != "" {
		text += "\n" + req.Body
	}
	if err := s.sender.SendMessage(s.chatID, text); err != nil {
		s.l.Warnf(ctx, "reminder delivery failed for task %s (non-fatal): %v", req.TaskID, err)
	}
}
