// Package team models players, teams and the acting rotation.
package team

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Player is a roster entry. Immutable once created.
type Player struct {
	ID   string
	Name string
}

// NewPlayer creates a player with a fresh identity.
func NewPlayer(name string) Player {
	return Player{ID: uuid.NewString(), Name: name}
}

// Team is an ordered group of players with a score and a rotation cursor.
// Player order is fixed at formation time and doubles as the acting order.
type Team struct {
	ID      string
	Name    string
	Players []Player

	Score int

	// nextActorIndex points at the player who acts first on this
	// team's next turn. Always in [0, len(Players)).
	nextActorIndex int
}

// Size returns the number of players on the team.
func (t *Team) Size() int {
	return len(t.Players)
}

// Rename sets the display name. Team names are freely editable after
// formation; membership is not.
func (t *Team) Rename(name string) {
	t.Name = name
}

// NextActors returns count players starting at the rotation cursor,
// wrapping around the roster. It never mutates the cursor, so the same
// actors are returned however often the current turn is re-rendered.
// If count >= team size some players repeat within the set; setup policy
// prevents that configuration, but it is not an error here.
func (t *Team) NextActors(count int) []Player {
	actors := make([]Player, 0, count)
	size := len(t.Players)
	for i := range count {
		actors = append(actors, t.Players[(t.nextActorIndex+i)%size])
	}
	return actors
}

// AdvanceRotation moves the cursor past count actors. Called exactly once
// per completed turn, never during one.
func (t *Team) AdvanceRotation(count int) {
	t.nextActorIndex = (t.nextActorIndex + count) % len(t.Players)
}

// RotationCursor exposes the cursor for display and tests.
func (t *Team) RotationCursor() int {
	return t.nextActorIndex
}

// FormTeams shuffles players and distributes them round-robin over
// teamCount fresh teams, so sizes differ by at most one and composition
// is unpredictable. Teams get generated names ("Team 1", ...), zero
// score and a zeroed rotation cursor.
//
// The function performs no validation; callers gate teamCount to
// [1, len(players)] before reaching this point.
func FormTeams(players []Player, teamCount int) []*Team {
	shuffled := make([]Player, len(players))
	copy(shuffled, players)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	teams := make([]*Team, teamCount)
	for i := range teams {
		teams[i] = &Team{
			ID:   uuid.NewString(),
			Name: fmt.Sprintf("Team %d", i+1),
		}
	}

	for i, p := range shuffled {
		t := teams[i%teamCount]
		t.Players = append(t.Players, p)
	}

	return teams
}

// MaxActorsPerTurn returns the largest legal actors-per-turn setting for
// the given teams: at least one guesser must remain on the smallest team,
// and more than three actors at once is never allowed.
func MaxActorsPerTurn(teams []*Team) int {
	minSize := 0
	for i, t := range teams {
		if i == 0 || t.Size() < minSize {
			minSize = t.Size()
		}
	}
	return max(1, min(3, minSize-1))
}
