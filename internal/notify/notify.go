// Package notify holds the transient notification slot surfaced to the
// client after mutations. It is a capability constructed at startup and
// handed to every handler that needs it, never a package-level global.
package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// DefaultHideDelay matches the snackbar auto-hide of the UI.
const DefaultHideDelay = 3 * time.Second

// Notice is the currently visible message, if any.
type Notice struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Visible  bool     `json:"visible"`
}

// Service is a single-slot channel: showing a message replaces whatever is
// visible and restarts the auto-hide timer. There is no queue.
type Service struct {
	mu        sync.Mutex
	current   Notice
	hideDelay time.Duration
	timer     *time.Timer
	gen       uint64
}

func NewService(hideDelay time.Duration) *Service {
	if hideDelay <= 0 {
		hideDelay = DefaultHideDelay
	}
	return &Service{hideDelay: hideDelay}
}

func (s *Service) Show(message string, severity Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Notice{Message: message, Severity: severity, Visible: true}
	s.gen++
	gen := s.gen

	// Stop is not enough on its own: a timer that already fired may have
	// its callback blocked on the mutex, so hide rechecks the generation.
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.hideDelay, func() { s.hide(gen) })
}

func (s *Service) Success(message string) { s.Show(message, SeveritySuccess) }
func (s *Service) Error(message string)   { s.Show(message, SeverityError) }
func (s *Service) Info(message string)    { s.Show(message, SeverityInfo) }

func (s *Service) hide(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer message replaced the slot after this timer fired.
		return
	}
	s.current.Visible = false
}

// Current returns a copy of the slot.
func (s *Service) Current() Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Close stops the pending hide timer. Safe to call more than once.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
