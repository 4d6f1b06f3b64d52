package routing

import "time"

// solution is a complete sequence from start anchor to end anchor with the
// arrival time at every position and the total objective.
type solution struct {
	seq      []int
	arrivals []int
	cost     int64
}

// searcher runs the depth-first branch-and-bound. Candidates are expanded in
// ascending node index and a finish move is probed before extensions, so the
// search order, and therefore the achieved objective, is deterministic.
type searcher struct {
	m        *model
	deadline time.Time
	expired  bool
	tick     int

	// contrib[j] is an admissible lower bound on what node j adds to any
	// completion: its cheapest incoming arc if it must be visited, the
	// cheaper of that and the skip penalty if it is optional.
	contrib   []int64
	remaining int64

	mandatoryLeft int

	bestCost int64
	best     *solution

	seq      []int
	arrivals []int
	visited  []bool
	cost     int64
}

const deadlineCheckInterval = 256

func newSearcher(m *model, deadline time.Time) *searcher {
	total := len(m.places)

	s := &searcher{
		m:        m,
		deadline: deadline,
		contrib:  make([]int64, total),
		visited:  make([]bool, total),
		bestCost: int64(1) << 62,
	}

	minIn := make([]int64, total)
	for j := 0; j < total; j++ {
		minIn[j] = int64(1) << 62
		for i := 0; i < total; i++ {
			if i == j || i == m.end {
				continue
			}
			if c := m.arcCost(i, j); c < minIn[j] {
				minIn[j] = c
			}
		}
	}

	for j := 0; j < total; j++ {
		if j == m.start || j == m.end {
			continue
		}
		switch {
		case m.mandatory[j]:
			s.contrib[j] = minIn[j]
			s.mandatoryLeft++
		case !m.visitable[j]:
			// Never reachable inside its window; the skip penalty is certain.
			s.contrib[j] = m.skipCost
		default:
			s.contrib[j] = minIn[j]
			if m.skipCost < s.contrib[j] {
				s.contrib[j] = m.skipCost
			}
		}
		s.remaining += s.contrib[j]
	}

	return s
}

func (s *searcher) run() *solution {
	m := s.m

	// Degenerate single-node day: the start anchor is the whole route.
	if m.start == m.end {
		return &solution{
			seq:      []int{m.start},
			arrivals: []int{m.gs},
			cost:     0,
		}
	}

	s.seq = append(s.seq, m.start)
	s.arrivals = append(s.arrivals, m.gs)
	s.visited[m.start] = true

	s.dfs(m.start, m.gs)
	return s.best
}

func (s *searcher) overBudget() bool {
	if s.expired {
		return true
	}
	s.tick++
	if s.tick%deadlineCheckInterval == 0 && time.Now().After(s.deadline) {
		s.expired = true
	}
	return s.expired
}

func (s *searcher) dfs(current int, arrival int) {
	if s.overBudget() {
		return
	}

	m := s.m

	// Close the route whenever every mandatory node is covered; leftover
	// optional nodes are charged their skip penalty.
	if s.mandatoryLeft == 0 {
		s.tryFinish(current, arrival)
	}

	for j := 0; j < len(m.places); j++ {
		if j == m.start || j == m.end {
			continue
		}
		if s.visited[j] || !m.visitable[j] {
			continue
		}

		arc := m.arcCost(current, j)
		arrivalJ := arrival + int(arc)
		if arrivalJ < m.lo[j] {
			arrivalJ = m.lo[j] // wait until the window opens
		}
		if arrivalJ > m.hi[j] {
			continue
		}

		var late int64
		if over := arrivalJ - m.softClose[j]; over > 0 {
			late = m.lateCoeff * int64(over)
		}

		stepCost := arc + late
		if s.cost+stepCost+s.remaining-s.contrib[j] >= s.bestCost {
			continue
		}

		s.push(j, arrivalJ, stepCost)
		s.dfs(j, arrivalJ)
		s.pop(j, stepCost)

		if s.expired {
			return
		}
	}
}

func (s *searcher) tryFinish(current int, arrival int) {
	m := s.m

	arc := m.arcCost(current, m.end)
	arrivalEnd := arrival + int(arc)
	if arrivalEnd > m.ge {
		return
	}

	total := s.cost + arc + int64(s.skippedCount())*m.skipCost
	if total >= s.bestCost {
		return
	}

	seq := make([]int, len(s.seq)+1)
	copy(seq, s.seq)
	seq[len(seq)-1] = m.end

	arrivals := make([]int, len(s.arrivals)+1)
	copy(arrivals, s.arrivals)
	arrivals[len(arrivals)-1] = arrivalEnd

	s.best = &solution{seq: seq, arrivals: arrivals, cost: total}
	s.bestCost = total
}

func (s *searcher) skippedCount() int {
	skipped := 0
	for j := 0; j < len(s.m.places); j++ {
		if j == s.m.start || j == s.m.end || s.m.mandatory[j] {
			continue
		}
		if !s.visited[j] {
			skipped++
		}
	}
	return skipped
}

func (s *searcher) push(j, arrivalJ int, stepCost int64) {
	s.seq = append(s.seq, j)
	s.arrivals = append(s.arrivals, arrivalJ)
	s.visited[j] = true
	s.cost += stepCost
	s.remaining -= s.contrib[j]
	if s.m.mandatory[j] {
		s.mandatoryLeft--
	}
}

func (s *searcher) pop(j int, stepCost int64) {
	s.seq = s.seq[:len(s.seq)-1]
	s.arrivals = s.arrivals[:len(s.arrivals)-1]
	s.visited[j] = false
	s.cost -= stepCost
	s.remaining += s.contrib[j]
	if s.m.mandatory[j] {
		s.mandatoryLeft++
	}
}
