// Package session implements the turn state machine and the session
// controller: standby, card reveal, countdown, scoring, team rotation
// and final standings for one game.
package session

import (
	"log"

	"github.com/palemoky/mimica-master/internal/apperrors"
	"github.com/palemoky/mimica-master/internal/game/deck"
	"github.com/palemoky/mimica-master/internal/game/team"
)

// NewSession wires up a session from completed setup. actorsPerTurn is
// clamped to [1, MaxActorsPerTurn] so the smallest team always keeps at
// least one guesser. The category must have cards and every team at
// least one player; setup screens enforce both before getting here, but
// the session refuses degenerate input rather than trusting them.
func NewSession(teams []*team.Team, category deck.Category, actorsPerTurn int, turnDuration int) (*Session, error) {
	if len(teams) == 0 {
		return nil, apperrors.ErrNoTeams
	}
	for _, t := range teams {
		if t.Size() == 0 {
			return nil, apperrors.ErrTooFewPlayers
		}
	}
	if len(category.Cards) == 0 {
		return nil, apperrors.ErrEmptyCategory
	}

	if maxActors := team.MaxActorsPerTurn(teams); actorsPerTurn > maxActors {
		actorsPerTurn = maxActors
	}
	if actorsPerTurn < 1 {
		actorsPerTurn = 1
	}

	return &Session{
		teams:         teams,
		category:      category,
		dealer:        deck.NewDealer(category),
		actorsPerTurn: actorsPerTurn,
		turnDuration:  turnDuration,
		phase:         PhaseStandby,
		remaining:     turnDuration,
	}, nil
}

// SetTickHook registers a callback invoked after every countdown tick
// with the seconds left. Used by the UI for redraws and sound cues.
func (s *Session) SetTickHook(fn func(remaining int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTick = fn
}

// CurrentTeam returns the team on turn.
func (s *Session) CurrentTeam() *team.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teams[s.currentTeamIdx]
}

// CurrentActors derives the acting players for the team on turn. It is a
// pure function of the rotation cursor and the actors-per-turn setting,
// so it can be recomputed on every render without drifting.
func (s *Session) CurrentActors() []team.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teams[s.currentTeamIdx].NextActors(s.actorsPerTurn)
}

// Phase returns the active turn phase.
func (s *Session) Phase() TurnPhase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Ended reports whether the session has terminated.
func (s *Session) Ended() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ended
}

// CardsLeft reports how many undrawn cards remain in the deck.
func (s *Session) CardsLeft() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dealer.Remaining()
}

// DrawCard deals the next card and moves Standby -> CardReveal. The card
// is marked used by the dealer in the same step. An exhausted deck ends
// the session instead; callers detect that through Ended.
func (s *Session) DrawCard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return apperrors.ErrSessionEnded
	}
	if s.phase != PhaseStandby {
		return apperrors.ErrWrongPhase
	}

	card, ok := s.dealer.Draw()
	if !ok {
		log.Printf("deck exhausted, ending session after %d turns worth of cards", len(s.category.Cards))
		s.endLocked()
		return nil
	}

	s.currentCard = &card
	s.phase = PhaseCardReveal
	return nil
}

// ProceedToTimer moves CardReveal -> Timer with a full countdown. The
// countdown does not run until StartCountdown.
func (s *Session) ProceedToTimer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseCardReveal {
		return apperrors.ErrWrongPhase
	}

	s.phase = PhaseTimer
	s.remaining = s.turnDuration
	return nil
}

// MarkSuccess scores the current turn: +1 for the acting team, then
// Timer -> ScoreUpdate. Once the countdown has hit zero the guess came
// too late and only MarkFail remains valid.
func (s *Session) MarkSuccess() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseTimer {
		return apperrors.ErrWrongPhase
	}
	if s.remaining <= 0 {
		return apperrors.ErrTimeExpired
	}

	s.stopCountdown()
	s.teams[s.currentTeamIdx].Score++
	s.result = ResultSuccess
	s.phase = PhaseScoreUpdate
	return nil
}

// MarkFail resolves the turn without scoring, Timer -> ScoreUpdate.
// Valid both as a manual pass and as the confirmation after time ran out.
func (s *Session) MarkFail() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseTimer {
		return apperrors.ErrWrongPhase
	}

	s.stopCountdown()
	s.result = ResultFail
	s.phase = PhaseScoreUpdate
	return nil
}

// NextTurn finishes the turn: the rotation cursor advances past the
// actors who just played, turn-local state clears, and play passes to
// the next team in Standby.
func (s *Session) NextTurn() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseScoreUpdate {
		return apperrors.ErrWrongPhase
	}

	s.teams[s.currentTeamIdx].AdvanceRotation(s.actorsPerTurn)
	s.clearTurnLocked()
	s.currentTeamIdx = (s.currentTeamIdx + 1) % len(s.teams)
	s.phase = PhaseStandby
	return nil
}

// EndGame terminates the session manually. Only reachable from Standby,
// before the next card is drawn; mid-turn the UI never offers it.
func (s *Session) EndGame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return apperrors.ErrSessionEnded
	}
	if s.phase != PhaseStandby {
		return apperrors.ErrWrongPhase
	}

	s.endLocked()
	return nil
}

// ResetForReplay starts a rematch with the same roster: scores back to
// zero, a fresh deck, team 1 on turn. Team membership, names and the
// rotation cursors carry over, so acting continues where it left off.
func (s *Session) ResetForReplay() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ended {
		return apperrors.ErrWrongPhase
	}

	for _, t := range s.teams {
		t.Score = 0
	}
	s.dealer.Reset()
	s.clearTurnLocked()
	s.currentTeamIdx = 0
	s.phase = PhaseStandby
	s.ended = false

	log.Printf("rematch started with %d teams, same roster", len(s.teams))
	return nil
}

// Snapshot returns a consistent read-only view for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.teams[s.currentTeamIdx]

	snap := Snapshot{
		Phase:           s.phase,
		Ended:           s.ended,
		CategoryName:    s.category.Name,
		CurrentTeamIdx:  s.currentTeamIdx,
		CurrentTeamName: current.Name,
		Actors:          current.NextActors(s.actorsPerTurn),
		Result:          s.result,
		Remaining:       s.remaining,
		Running:         s.running,
		CardsLeft:       s.dealer.Remaining(),
		Teams:           make([]TeamView, len(s.teams)),
	}
	if s.currentCard != nil {
		snap.CardText = s.currentCard.Text
	}
	for i, t := range s.teams {
		snap.Teams[i] = TeamView{Name: t.Name, Score: t.Score, Players: t.Players}
	}
	return snap
}

// endLocked terminates the session. Caller holds mu.
func (s *Session) endLocked() {
	s.stopCountdown()
	s.clearTurnLocked()
	s.ended = true
}

// clearTurnLocked resets turn-local fields. Caller holds mu.
func (s *Session) clearTurnLocked() {
	s.currentCard = nil
	s.result = ResultNone
	s.remaining = s.turnDuration
}
