package session

import "github.com/palemoky/mimica-master/internal/apperrors"

// StartCountdown arms the turn clock. Legal only on the Timer screen
// while the clock is not already running. The session does not own a
// goroutine: the driver (the UI event loop) delivers one Tick per second
// while the clock runs.
func (s *Session) StartCountdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseTimer || s.running {
		return apperrors.ErrWrongPhase
	}

	s.running = true
	return nil
}

// Tick advances the clock by one second. A tick delivered after the turn
// resolved or the clock stopped is stale and is dropped, so it can never
// decrement a completed turn. Reaching zero stops the clock but does not
// advance the turn; the players still confirm the outcome themselves.
func (s *Session) Tick() {
	s.mu.Lock()

	if !s.running || s.phase != PhaseTimer {
		s.mu.Unlock()
		return
	}

	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.stopCountdown()
	}

	hook := s.onTick
	remaining := s.remaining
	s.mu.Unlock()

	if hook != nil {
		hook(remaining)
	}
}

// CountdownRemaining returns the seconds left on the clock.
func (s *Session) CountdownRemaining() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remaining
}

// CountdownRunning reports whether the clock is ticking.
func (s *Session) CountdownRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// stopCountdown halts the clock; any tick still in flight is rejected by
// the running/phase guard in Tick. Caller holds mu.
func (s *Session) stopCountdown() {
	s.running = false
}
