package dlx

// Stats captures runtime statistics and progress feedback for a search,
// mirroring the teacher's ExactCoverStats (dancing_links_xcc.go /
// dancing_links_xcc_wordcross.go), trimmed to the fields this port actually
// uses. A nil *Stats disables all bookkeeping.
type Stats struct {
	// Delta is how many Nodes should pass between progress reports;
	// Theta is the running threshold (Delta plus however many nodes have
	// already been visited).
	Delta int
	Theta int

	// MaxLevel is the deepest level reached so far, for progress
	// estimation.
	MaxLevel int

	// Levels[l] counts how many times the search has entered level l.
	Levels []int

	// Solutions counts solutions visited; Nodes counts C4 entries (one
	// per branch item taken up).
	Solutions int
	Nodes     int

	// Progress enables periodic progress reporting every Delta nodes.
	Progress bool

	// Verbosity gates how chatty debug output is: above 1, every
	// primitive call is logged through the Logger; at 1 or below none
	// is. Matrix dumps are not made here (the CLI prints DumpMatrix
	// around each search step when its -v count is at least 1).
	Verbosity int
}
