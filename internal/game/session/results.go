package session

import "sort"

// Standings ranks the teams by score, highest first. Every team matching
// the top score is flagged as a winner, so a shared maximum is a joint
// win rather than whichever team happens to sort first.
func (s *Session) Standings() []Standing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type row struct {
		name  string
		score int
	}
	rows := make([]row, len(s.teams))
	for i, t := range s.teams {
		rows[i] = row{name: t.Name, score: t.Score}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].score > rows[j].score
	})

	maxScore := rows[0].score
	standings := make([]Standing, len(rows))
	for i, r := range rows {
		standings[i] = Standing{
			Rank:   i + 1,
			Name:   r.name,
			Score:  r.score,
			Winner: r.score == maxScore,
		}
	}
	return standings
}

// Winners returns the names of the teams sharing the top score.
func (s *Session) Winners() []string {
	var winners []string
	for _, st := range s.Standings() {
		if st.Winner {
			winners = append(winners, st.Name)
		}
	}
	return winners
}
