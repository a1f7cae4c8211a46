package team

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePlayers(n int) []Player {
	players := make([]Player, n)
	for i := range players {
		players[i] = NewPlayer(fmt.Sprintf("Player %d", i+1))
	}
	return players
}

func TestFormTeams_Balance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		players   int
		teamCount int
	}{
		{"even split", 6, 2},
		{"uneven split", 7, 3},
		{"one team", 4, 1},
		{"one player per team", 5, 5},
		{"large roster", 23, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			players := makePlayers(tt.players)
			teams := FormTeams(players, tt.teamCount)
			require.Len(t, teams, tt.teamCount)

			// Sizes differ by at most one
			minSize, maxSize := teams[0].Size(), teams[0].Size()
			for _, tm := range teams {
				minSize = min(minSize, tm.Size())
				maxSize = max(maxSize, tm.Size())
			}
			assert.LessOrEqual(t, maxSize-minSize, 1)

			// Combined membership is exactly the input set
			seen := make(map[string]bool)
			for _, tm := range teams {
				for _, p := range tm.Players {
					assert.False(t, seen[p.ID], "player %s assigned twice", p.Name)
					seen[p.ID] = true
				}
			}
			assert.Len(t, seen, tt.players)
		})
	}
}

func TestFormTeams_InitialState(t *testing.T) {
	t.Parallel()

	teams := FormTeams(makePlayers(6), 3)

	for i, tm := range teams {
		assert.Equal(t, fmt.Sprintf("Team %d", i+1), tm.Name)
		assert.Zero(t, tm.Score)
		assert.Zero(t, tm.RotationCursor())
		assert.NotEmpty(t, tm.ID)
	}
}

func TestTeam_Rename(t *testing.T) {
	t.Parallel()

	tm := FormTeams(makePlayers(2), 1)[0]
	tm.Rename("Los Cracks")
	assert.Equal(t, "Los Cracks", tm.Name)
}

func TestNextActors_ReadOnly(t *testing.T) {
	t.Parallel()

	tm := &Team{Players: makePlayers(5)}

	first := tm.NextActors(2)
	second := tm.NextActors(2)

	// Re-querying during a turn never moves the cursor
	assert.Equal(t, first, second)
	assert.Zero(t, tm.RotationCursor())
	assert.Equal(t, tm.Players[0], first[0])
	assert.Equal(t, tm.Players[1], first[1])
}

func TestNextActors_Wraps(t *testing.T) {
	t.Parallel()

	tm := &Team{Players: makePlayers(3)}
	tm.AdvanceRotation(2)

	actors := tm.NextActors(2)
	assert.Equal(t, tm.Players[2], actors[0])
	assert.Equal(t, tm.Players[0], actors[1])
}

func TestNextActors_CountBeyondSizeRepeats(t *testing.T) {
	t.Parallel()

	// Setup policy prevents this configuration, but it must not panic.
	tm := &Team{Players: makePlayers(2)}
	actors := tm.NextActors(3)

	require.Len(t, actors, 3)
	assert.Equal(t, actors[0], actors[2])
}

func TestAdvanceRotation_VisitsEveryone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		size         int
		actors       int
		cycleAdvance int // lcm(size, actors) / actors
	}{
		{"5 players 2 actors", 5, 2, 5},
		{"4 players 2 actors", 4, 2, 2},
		{"3 players 1 actor", 3, 1, 3},
		{"6 players 3 actors", 6, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tm := &Team{Players: makePlayers(tt.size)}
			visited := make(map[string]bool)

			for range tt.size {
				for _, p := range tm.NextActors(tt.actors) {
					visited[p.ID] = true
				}
				tm.AdvanceRotation(tt.actors)
			}
			assert.Len(t, visited, tt.size, "every player should act at least once")

			// The cursor cycles back after lcm(size, actors)/actors advances
			tm2 := &Team{Players: makePlayers(tt.size)}
			for range tt.cycleAdvance {
				tm2.AdvanceRotation(tt.actors)
			}
			assert.Zero(t, tm2.RotationCursor())
		})
	}
}

func TestMaxActorsPerTurn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sizes []int
		want  int
	}{
		{"pairs leave one guesser", []int{2, 2}, 1},
		{"trios allow two actors", []int{3, 3}, 2},
		{"smallest team caps", []int{5, 3}, 2},
		{"never above three", []int{8, 8}, 3},
		{"solo team still one", []int{1, 4}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			teams := make([]*Team, len(tt.sizes))
			for i, size := range tt.sizes {
				teams[i] = &Team{Players: makePlayers(size)}
			}
			assert.Equal(t, tt.want, MaxActorsPerTurn(teams))
		})
	}
}
