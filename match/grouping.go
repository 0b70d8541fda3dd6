package match

// Grouping enumerates the ways to partition a subject list of S elements
// into P contiguous, non-empty groups, one per pattern element, by
// choosing P-1 monotonic cut markers over the S-1 internal gaps - exactly
// C(S-1, P-1) total groupings (spec.md §4.7's grouping search for
// Associative matching). Requires P >= 1 and S >= P.
type Grouping struct {
	s, p      int
	markers   []int
	started   bool
	exhausted bool
}

// NewGrouping returns a Grouping over a subject of length s split into p
// contiguous groups.
func NewGrouping(s, p int) *Grouping {
	markers := make([]int, p-1)
	for i := range markers {
		markers[i] = i + 1
	}
	return &Grouping{s: s, p: p, markers: markers}
}

// Next advances to the next grouping in lexicographic marker order. The
// first call yields the leftmost grouping (groups 1..p-1 each of size 1,
// group p holding the remainder); it returns false once every grouping
// has been produced.
func (g *Grouping) Next() bool {
	if g.exhausted {
		return false
	}
	if !g.started {
		g.started = true
		return true
	}
	k := len(g.markers)
	i := k - 1
	for i >= 0 && g.markers[i] == g.s-1-(k-1-i) {
		i--
	}
	if i < 0 {
		g.exhausted = true
		return false
	}
	g.markers[i]++
	for j := i + 1; j < k; j++ {
		g.markers[j] = g.markers[j-1] + 1
	}
	return true
}

// Ranges returns the p half-open [start, end) index ranges into the
// subject slice for the grouping found by the most recent Next call.
func (g *Grouping) Ranges() [][2]int {
	ranges := make([][2]int, g.p)
	prev := 0
	for i, m := range g.markers {
		ranges[i] = [2]int{prev, m}
		prev = m
	}
	ranges[g.p-1] = [2]int{prev, g.s}
	return ranges
}
