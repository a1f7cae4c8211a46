package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/mimica-master/internal/apperrors"
	"github.com/palemoky/mimica-master/internal/game/team"
)

// newTimerSession returns a session parked on the Timer screen with a
// short clock. Ticks are driven by hand via tick().
func newTimerSession(t *testing.T, seconds int) *Session {
	t.Helper()

	teams := []*team.Team{
		makeTeam("Red", "Ana", "Bruno"),
		makeTeam("Blue", "Carla", "Diego"),
	}
	s, err := NewSession(teams, makeCategory("A", "B", "C"), 1, seconds)
	require.NoError(t, err)
	require.NoError(t, s.DrawCard())
	require.NoError(t, s.ProceedToTimer())
	return s
}

func TestCountdown_StartsOnlyOnTimerScreen(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	assert.ErrorIs(t, s.StartCountdown(), apperrors.ErrWrongPhase)

	s = newTimerSession(t, 120)
	require.NoError(t, s.StartCountdown())
	assert.True(t, s.CountdownRunning())

	// Double start is rejected
	assert.ErrorIs(t, s.StartCountdown(), apperrors.ErrWrongPhase)
}

func TestCountdown_TickDecrements(t *testing.T) {
	t.Parallel()

	s := newTimerSession(t, 120)
	require.NoError(t, s.StartCountdown())

	s.Tick()
	s.Tick()
	assert.Equal(t, 118, s.CountdownRemaining())
	assert.True(t, s.CountdownRunning())
}

func TestCountdown_ZeroStopsClockNotTurn(t *testing.T) {
	t.Parallel()

	s := newTimerSession(t, 3)
	require.NoError(t, s.StartCountdown())

	for range 3 {
		s.Tick()
	}

	assert.Zero(t, s.CountdownRemaining())
	assert.False(t, s.CountdownRunning())
	// Time out does not auto-advance; the turn waits for confirmation
	assert.Equal(t, PhaseTimer, s.Phase())

	// A success after the buzzer is too late, fail is the only way out
	assert.ErrorIs(t, s.MarkSuccess(), apperrors.ErrTimeExpired)
	require.NoError(t, s.MarkFail())
	assert.Equal(t, PhaseScoreUpdate, s.Phase())
	assert.Zero(t, s.Snapshot().Teams[0].Score)
}

func TestCountdown_ResolvingTurnCancelsClock(t *testing.T) {
	t.Parallel()

	s := newTimerSession(t, 120)
	require.NoError(t, s.StartCountdown())
	s.Tick()

	require.NoError(t, s.MarkSuccess())
	assert.False(t, s.CountdownRunning())

	// A tick that raced the resolution is dropped, not applied
	before := s.CountdownRemaining()
	s.Tick()
	assert.Equal(t, before, s.CountdownRemaining())
	assert.Equal(t, PhaseScoreUpdate, s.Phase())
}

func TestCountdown_ResetBetweenTurns(t *testing.T) {
	t.Parallel()

	s := newTimerSession(t, 120)
	require.NoError(t, s.StartCountdown())
	s.Tick()
	require.NoError(t, s.MarkFail())
	require.NoError(t, s.NextTurn())

	// The next turn starts from a full clock
	require.NoError(t, s.DrawCard())
	require.NoError(t, s.ProceedToTimer())
	assert.Equal(t, 120, s.CountdownRemaining())
	assert.False(t, s.CountdownRunning())
}

func TestCountdown_TickHook(t *testing.T) {
	t.Parallel()

	s := newTimerSession(t, 10)

	var got []int
	s.SetTickHook(func(remaining int) {
		got = append(got, remaining)
	})

	require.NoError(t, s.StartCountdown())
	s.Tick()
	s.Tick()

	assert.Equal(t, []int{9, 8}, got)
}
