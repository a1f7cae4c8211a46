package session

import (
	"sync"

	"github.com/palemoky/mimica-master/internal/game/deck"
	"github.com/palemoky/mimica-master/internal/game/team"
)

// TurnPhase is the state of the active turn.
type TurnPhase int

const (
	PhaseStandby     TurnPhase = iota // showing whose turn it is
	PhaseCardReveal                   // actors look at the card
	PhaseTimer                        // countdown screen
	PhaseScoreUpdate                  // result screen between turns
)

func (p TurnPhase) String() string {
	switch p {
	case PhaseStandby:
		return "STANDBY"
	case PhaseCardReveal:
		return "CARD_REVEAL"
	case PhaseTimer:
		return "TIMER"
	case PhaseScoreUpdate:
		return "SCORE_UPDATE"
	}
	return "UNKNOWN"
}

// TurnResult is the pending outcome of the active turn.
type TurnResult int

const (
	ResultNone TurnResult = iota
	ResultSuccess
	ResultFail
)

// Session is the single source of truth for one play-through: teams,
// deck, the active turn and the countdown. All mutation goes through its
// action methods; the UI only ever reads snapshots.
type Session struct {
	teams         []*team.Team
	category      deck.Category
	dealer        *deck.Dealer
	actorsPerTurn int
	turnDuration  int // seconds

	currentTeamIdx int
	phase          TurnPhase
	currentCard    *deck.CardItem
	result         TurnResult
	ended          bool

	// Countdown state. The clock is driven cooperatively: the UI loop
	// delivers one Tick per second while running is set.
	remaining int
	running   bool

	onTick func(remaining int)

	mu sync.RWMutex
}

// TeamView is a read-only scoreboard row.
type TeamView struct {
	Name    string
	Score   int
	Players []team.Player
}

// Snapshot is an immutable view of the session for rendering.
type Snapshot struct {
	Phase           TurnPhase
	Ended           bool
	CategoryName    string
	CurrentTeamIdx  int
	CurrentTeamName string
	Actors          []team.Player
	CardText        string
	Result          TurnResult
	Remaining       int
	Running         bool
	CardsLeft       int
	Teams           []TeamView
}

// Standing is one row of the final ranking.
type Standing struct {
	Rank   int
	Name   string
	Score  int
	Winner bool
}
