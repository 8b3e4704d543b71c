package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShow_SetsSlot(t *testing.T) {
	s := NewService(time.Minute)
	defer s.Close()

	s.Success("Application added successfully")

	got := s.Current()
	assert.True(t, got.Visible)
	assert.Equal(t, "Application added successfully", got.Message)
	assert.Equal(t, SeveritySuccess, got.Severity)
}

func TestShow_ReplacesCurrentMessage(t *testing.T) {
	s := NewService(time.Minute)
	defer s.Close()

	s.Success("first")
	s.Error("second")

	got := s.Current()
	assert.Equal(t, "second", got.Message)
	assert.Equal(t, SeverityError, got.Severity)
	assert.True(t, got.Visible)
}

func TestAutoHide(t *testing.T) {
	s := NewService(20 * time.Millisecond)
	defer s.Close()

	s.Info("short lived")
	assert.True(t, s.Current().Visible)

	assert.Eventually(t, func() bool {
		return !s.Current().Visible
	}, time.Second, 5*time.Millisecond)

	// Message text remains in the slot, only visibility drops.
	assert.Equal(t, "short lived", s.Current().Message)
}

func TestShow_RestartsHideTimer(t *testing.T) {
	s := NewService(60 * time.Millisecond)
	defer s.Close()

	s.Info("first")
	time.Sleep(40 * time.Millisecond)
	s.Info("second")
	time.Sleep(40 * time.Millisecond)

	// 80ms after "first" but only 40ms after "second": still visible.
	assert.True(t, s.Current().Visible)

	assert.Eventually(t, func() bool {
		return !s.Current().Visible
	}, time.Second, 5*time.Millisecond)
}

func TestStaleHideLeavesNewerMessageVisible(t *testing.T) {
	s := NewService(time.Minute)
	defer s.Close()

	s.Info("first")
	stale := s.gen
	s.Info("second")

	// A hide callback left over from "first" must not clear "second".
	s.hide(stale)
	assert.True(t, s.Current().Visible)

	s.hide(s.gen)
	assert.False(t, s.Current().Visible)
}

func TestNewService_DefaultsDelay(t *testing.T) {
	s := NewService(0)
	defer s.Close()
	assert.Equal(t, DefaultHideDelay, s.hideDelay)
}
