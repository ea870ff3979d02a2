// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// Results is the full tally: every candidate in id order plus the id
// of the current leader. WinnerID is 0 when there are no candidates.
type Results struct {
	Candidates []Candidate `json:"candidates"`
	WinnerID   int         `json:"winner_id"`
}

// Winner is the leading candidate's name and count.
type Winner struct {
	Name      string `json:"name"`
	VoteCount int    `json:"vote_count"`
}

// Stats is a consistent point-in-time snapshot of the election.
type Stats struct {
	CandidateCount int    `json:"candidate_count"`
	TotalVotes     int    `json:"total_votes"`
	Active         bool   `json:"active"`
	Authority      string `json:"authority"`
}

// leadingCandidate scans in ascending id order tracking the highest
// count seen. Only a strictly greater count displaces the leader, so
// ties go to the lowest id. With at least one candidate the default
// leader is candidate 1; with none it is 0.
func leadingCandidate(candidates []Candidate) int {
	if len(candidates) == 0 {
		return 0
	}
	winner, highest := 1, 0
	for _, c := range candidates {
		if c.VoteCount > highest {
			highest = c.VoteCount
			winner = c.ID
		}
	}
	return winner
}

// Results returns the tally snapshot for all candidates.
func (m *Machine) Results() Results {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Non-nil even when empty so the zero-candidate tally serializes
	// as [] rather than null.
	candidates := make([]Candidate, len(m.candidates))
	copy(candidates, m.candidates)
	return Results{
		Candidates: candidates,
		WinnerID:   leadingCandidate(m.candidates),
	}
}

// Winner returns the leading candidate. The second return is false
// when no candidates exist.
func (m *Machine) Winner() (Winner, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := leadingCandidate(m.candidates)
	if id == 0 {
		return Winner{}, false
	}
	leader := m.candidates[id-1]
	return Winner{Name: leader.Name, VoteCount: leader.VoteCount}, true
}

// Stats returns a snapshot with no partial visibility of any in-flight
// mutation.
func (m *Machine) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Stats{
		CandidateCount: len(m.candidates),
		TotalVotes:     m.totalVotes,
		Active:         m.active,
		Authority:      m.authority,
	}
}
