package tournament

import "sort"

// Pairing is one scheduled match for a round; BYE is true when an odd
// number of entrants leaves one without an opponent (it counts as a win
// without playing a battle).
type Pairing struct {
	A, B string
	BYE  bool
}

// Tournament runs Swiss-style pairing and standings over a fixed entrant
// pool (spec.md §1: "Swiss pairing and standings computation"). Tournament
// itself never touches internal/battle; Runner and Server in this package
// play the single battles on internal/battle.Engine, keeping the
// tournament layer the thin driver the spec calls for.
type Tournament struct {
	entrants  []Entrant
	standings map[string]*Standing
	round     int
	history   []MatchResult
}

// New builds a Tournament over the given entrants, zero-initializing
// every standing.
func New(entrants []Entrant) *Tournament {
	t := &Tournament{
		entrants:  entrants,
		standings: make(map[string]*Standing, len(entrants)),
	}
	for _, e := range entrants {
		t.standings[e.ID] = newStanding(e.ID)
	}
	return t
}

// NextRound computes this round's Swiss pairings: sort entrants by points
// (descending), then Buchholz tiebreaker, then pair adjacent entrants that
// have not yet faced each other, falling back to the next available
// entrant when a rematch would otherwise occur. An odd entrant count
// produces one BYE pairing for the entrant left unpaired once everyone
// ranked above it is matched; earlier byes are not tracked, so an entrant
// can receive more than one.
func (t *Tournament) NextRound() []Pairing {
	t.round++
	ranked := t.ranked()

	var pairings []Pairing
	paired := make(map[string]bool, len(ranked))

	for i := 0; i < len(ranked); i++ {
		a := ranked[i]
		if paired[a] {
			continue
		}
		var opponent string
		for j := i + 1; j < len(ranked); j++ {
			b := ranked[j]
			if paired[b] {
				continue
			}
			if !t.standings[a].OpponentsFaced[b] {
				opponent = b
				break
			}
		}
		if opponent == "" {
			// Every remaining candidate is a rematch; accept the best-ranked
			// unpaired one rather than leave a second entrant unpaired.
			for j := i + 1; j < len(ranked); j++ {
				if !paired[ranked[j]] {
					opponent = ranked[j]
					break
				}
			}
		}
		if opponent == "" {
			pairings = append(pairings, Pairing{A: a, BYE: true})
			paired[a] = true
			continue
		}
		pairings = append(pairings, Pairing{A: a, B: opponent})
		paired[a] = true
		paired[opponent] = true
	}
	return pairings
}

// ranked sorts entrant ids by points desc, then Buchholz tiebreaker desc,
// then id for a stable, reproducible order.
func (t *Tournament) ranked() []string {
	ids := make([]string, 0, len(t.entrants))
	for _, e := range t.entrants {
		ids = append(ids, e.ID)
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := t.standings[ids[i]], t.standings[ids[j]]
		if si.Points() != sj.Points() {
			return si.Points() > sj.Points()
		}
		if si.OpponentWinPct != sj.OpponentWinPct {
			return si.OpponentWinPct > sj.OpponentWinPct
		}
		return ids[i] < ids[j]
	})
	return ids
}

// RecordResult folds one finished battle's outcome into the tournament's
// running standings. BYE pairings should be recorded with Winner == A and
// no opposing Standing side effect beyond the win itself.
func (t *Tournament) RecordResult(res MatchResult) {
	if res.B == "" { // BYE
		s := t.standings[res.A]
		s.Wins++
		t.history = append(t.history, res)
		return
	}
	applyResult(t.standings, res)
	t.history = append(t.history, res)
}

// FinalizeRound recomputes every standing's tiebreaker after a round's
// results are all recorded (§ tiebreakers depend on every opponent's
// up-to-date win percentage, so this cannot run incrementally per-match).
func (t *Tournament) FinalizeRound() {
	recomputeTiebreakers(t.standings)
}

// Standings returns the current ranking, best record first.
func (t *Tournament) Standings() []Standing {
	ranked := t.ranked()
	out := make([]Standing, 0, len(ranked))
	for _, id := range ranked {
		out = append(out, *t.standings[id])
	}
	return out
}

// Round reports the current (1-indexed) round number.
func (t *Tournament) Round() int { return t.round }

// History returns every recorded match result in chronological order.
func (t *Tournament) History() []MatchResult { return t.history }
