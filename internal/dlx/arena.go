package dlx

// phase tracks where a Problem is in its builder lifecycle. The transitions
// are strictly ordered, matching spec.md §4.3: items are declared, then
// PrepareOptions fixes the item rings once and for all, then options are
// appended one at a time, then EndOptions closes the arena for search.
type phase int

const (
	phaseDeclaring phase = iota
	phaseBuildingOptions
	phaseReady
	phaseSearching
)

// Problem owns the link arena: a set of parallel, index-addressed arrays
// that together encode the sparse exact-cover matrix as intertwined
// doubly-linked lists (spec.md §3). Index 0 is the primary-ring sentinel;
// 1..n1 are primary item headers; n1+1..n are secondary item headers; n+1
// is the first spacer; the rest is option nodes and spacers.
//
// No entry is ever removed from the arena: it is append-only while building,
// mutation-only during search. Problem is not safe for concurrent use.
type Problem struct {
	phase phase

	n1 int // number of primary items
	n2 int // number of secondary items
	n  int // n1 + n2
	m  int // number of options appended so far

	name  []string // name[n]; nullable for the two sentinels
	llink []int    // item ring, left
	rlink []int    // item ring, right

	// top: for an option node, its item header index; for a spacer,
	// -(1-based option ordinal); for a header, unused. The teacher
	// aliases len as a sub-slice of top (top[0:n+1]) because it knows
	// the arena's final size before allocating it; this Problem grows
	// the arena incrementally as options are appended one at a time, so
	// len is kept as its own slice instead of a view that append would
	// silently detach from top on reallocation.
	top []int
	len []int // len[h], valid for h in [1,n]

	ulink []int // vertical list, up
	dlink []int // vertical list, down
	color []int // option-node colour tag; 0 = uncoloured, <0 = purified-match

	colorNames []string // index 0 unused; colour tag -> name

	// Multiplicity bounds per item header, spec.md §3 expansion. bound[i]
	// is how many more times item i may still be covered before it must
	// be retired; slack[i] = v_i - u_i is how many of those remaining
	// covers are optional. Ordinary items have bound=1, slack=0.
	bound []int
	slack []int

	nameIndex map[string]int // declared name -> item index, for O(1) dup checks

	// pendingMultiplicity records u/v bounds given to
	// DefinePrimaryItemWithMultiplicity before PrepareOptions has
	// allocated the bound/slack arrays.
	pendingMultiplicity map[int][2]int

	// Option-under-construction state.
	optionOpen bool
	optionLen  int // number of items added to the currently open option
	spacerAt   int // index of the spacer that opened the current option

	// Search state, persisted across ComputeNextResult calls so the
	// driver is resumable without coroutines (spec.md §4.5, §9).
	state     searchState
	level     int
	x         []int // x[0:level] is the chosen option-node per level
	branchI   int   // current branch item, "i" in spec.md
	scratchP  int   // scratch pointer, "p" in spec.md
	xSize     int   // length of the last reported solution in x[]

	// tweakLog[level] accumulates undo records for tweak() calls made
	// while building the option chosen at that level; untweak(level)
	// drains it. Filled by commit for items with bound > 1 (in both
	// drivers) and by the Algorithm M driver's branch step; only the
	// Algorithm M driver (mcc.go) calls untweak.
	tweakLog [][]tweakRecord

	// exercise83Applied guards the one-time level-0 symmetry-breaking
	// step Options.Exercise83 enables (driver.go), so a resumed search
	// doesn't try to reapply it on every call.
	exercise83Applied bool

	opts   Options
	stats  *Stats
	logger Logger
}

// Options configures optional search behaviour. The zero value is the
// default: MRV heuristic, exercise 83 disabled.
type Options struct {
	// Heuristic picks the next item to branch on. Nil means MRV.
	Heuristic Heuristic

	// Exercise83 enables the level-0 fast path from Knuth's answer to
	// exercise 7.2.2.1-83: permanently cover a colourless secondary item
	// that ends the first chosen option. See driver.go.
	Exercise83 bool
}

// NewProblem allocates a new, empty Problem ready to accept item
// declarations. It corresponds to init_problem in spec.md §4.3.
func NewProblem(opts Options, stats *Stats, logger Logger) *Problem {
	if opts.Heuristic == nil {
		opts.Heuristic = MRV
	}
	if logger == nil {
		logger = NopLogger{}
	}
	p := &Problem{
		name:      []string{""},
		llink:     []int{0},
		rlink:     []int{0},
		nameIndex: make(map[string]int),
		opts:      opts,
		stats:     stats,
		logger:    logger,
	}
	return p
}

// itemCount reports how many item headers (primary + secondary) have been
// declared so far; valid during phaseDeclaring.
func (p *Problem) itemCount() int {
	return len(p.name) - 1
}
