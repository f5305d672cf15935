package dlx

// This file implements the eight primitive operations of spec.md §4.2, each
// with its exact inverse. They operate purely on the arena's parallel
// arrays and never allocate past what PrepareOptions/AddItem already grew.
//
// Grounded in the teacher (dancing_links_xcc.go's hide/unhide/cover/uncover/
// purify/unpurify/commit/uncommit closures) for the algorithmic shape, and
// in original_source/include/xcc/ops.h for the exact distinction between
// the plain and coloured ("prime") hide/cover variants: the teacher's Go
// port collapsed hide and hide′ into one function that always skips
// purified (color<0) entries, which happens to work for how its own driver
// calls them but loses the distinction spec.md §4.2 calls for. This port
// keeps both, matching ops.h's xcc_hide vs xcc_hide_prime.

// hide removes option row p from the vertical lists of every item it
// touches, except p's own item (the caller is expected to be in the middle
// of covering that item already). It does not skip purified entries.
func (p *Problem) hide(row int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("hide(p=%d)", row)
	}

	q := row + 1
	for q != row {
		x := p.top[q]
		u, d := p.ulink[q], p.dlink[q]
		if x <= 0 {
			q = u // q was the row's closing spacer, wrap to the row's first node
		} else {
			p.dlink[u], p.ulink[d] = d, u
			p.len[x]--
			q++
		}
	}
}

// unhide is hide's exact inverse, walking backwards.
func (p *Problem) unhide(row int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("unhide(p=%d)", row)
	}

	q := row - 1
	for q != row {
		x := p.top[q]
		if x <= 0 {
			q = p.dlink[q] // q was the row's opening spacer, wrap to the row's last node
		} else {
			u, d := p.ulink[q], p.dlink[q]
			p.dlink[u], p.ulink[d] = q, q
			p.len[x]++
			q--
		}
	}
}

// hidePrime is hide, except nodes already neutralised by purify
// (color[q] < 0) are left in place: they are "already hidden" in spirit, so
// touching their vertical-list links again would desynchronise the count.
func (p *Problem) hidePrime(row int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("hide'(p=%d)", row)
	}

	q := row + 1
	for q != row {
		x := p.top[q]
		if x <= 0 {
			q = p.ulink[q]
		} else if p.color[q] < 0 {
			q++
		} else {
			u, d := p.ulink[q], p.dlink[q]
			p.dlink[u], p.ulink[d] = d, u
			p.len[x]--
			q++
		}
	}
}

// unhidePrime is hidePrime's exact inverse.
func (p *Problem) unhidePrime(row int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("unhide'(p=%d)", row)
	}

	q := row - 1
	for q != row {
		x := p.top[q]
		if x <= 0 {
			q = p.dlink[q]
		} else if p.color[q] < 0 {
			q--
		} else {
			u, d := p.ulink[q], p.dlink[q]
			p.dlink[u], p.ulink[d] = q, q
			p.len[x]++
			q--
		}
	}
}

// cover removes item i from the active ring and hides every option that
// currently mentions it.
func (p *Problem) cover(i int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("cover(i=%d)", i)
	}

	for row := p.dlink[i]; row != i; row = p.dlink[row] {
		p.hide(row)
	}
	l, r := p.llink[i], p.rlink[i]
	p.rlink[l], p.llink[r] = r, l
}

// uncover is cover's exact inverse.
func (p *Problem) uncover(i int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("uncover(i=%d)", i)
	}

	l, r := p.llink[i], p.rlink[i]
	p.rlink[l], p.llink[r] = i, i
	for row := p.ulink[i]; row != i; row = p.ulink[row] {
		p.unhide(row)
	}
}

// coverPrime is cover, but hiding each option with hidePrime so that
// already-purified entries are left untouched.
func (p *Problem) coverPrime(i int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("cover'(i=%d)", i)
	}

	for row := p.dlink[i]; row != i; row = p.dlink[row] {
		p.hidePrime(row)
	}
	l, r := p.llink[i], p.rlink[i]
	p.rlink[l], p.llink[r] = r, l
}

// uncoverPrime is coverPrime's exact inverse.
func (p *Problem) uncoverPrime(i int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("uncover'(i=%d)", i)
	}

	l, r := p.llink[i], p.rlink[i]
	p.rlink[l], p.llink[r] = i, i
	for row := p.ulink[i]; row != i; row = p.ulink[row] {
		p.unhidePrime(row)
	}
}

// purify resolves the secondary item headed by node p's item (top[p]) to
// color[p]'s colour: every other option node for that item either matches
// (and is marked -1, "already neutralised, same colour") or conflicts (and
// is hidden via hidePrime).
func (p *Problem) purify(node int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("purify(p=%d)", node)
	}

	c := p.color[node]
	i := p.top[node]
	p.color[i] = c

	for q := p.dlink[i]; q != i; q = p.dlink[q] {
		if p.color[q] == c {
			p.color[q] = -1
		} else {
			p.hidePrime(q)
		}
	}
}

// unpurify is purify's exact inverse, walking the vertical list bottom to
// top (the reverse visitation order of purify's top to bottom).
func (p *Problem) unpurify(node int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("unpurify(p=%d)", node)
	}

	c := p.color[node]
	i := p.top[node]

	for q := p.ulink[i]; q != i; q = p.ulink[q] {
		if p.color[q] < 0 {
			p.color[q] = c
		} else {
			p.unhidePrime(q)
		}
	}
	p.color[i] = 0
}

// commit is the branch-time dispatch used while walking a chosen option,
// for every item the option touches other than the item branched on: an
// uncoloured node (color==0) covers its item, a coloured one (color>0)
// purifies it, and an already-neutralised one (color<0, "same colour as
// current branch, already committed") needs nothing. An uncoloured item
// that still has multiplicity slack left (bound>1) is tweaked instead of
// covered outright, consuming one unit of its bound without removing it
// from future branching at a deeper level — see tweak's doc comment.
func (p *Problem) commit(node, item int, level int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("commit(p=%d, j=%d)", node, item)
	}

	switch {
	case p.color[node] == 0 && p.bound[item] > 1:
		p.tweak(node, level)
	case p.color[node] == 0:
		p.coverPrime(item)
	case p.color[node] > 0:
		p.purify(node)
	}
}

// uncommit is commit's exact inverse.
func (p *Problem) uncommit(node, item int, level int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("uncommit(p=%d, j=%d)", node, item)
	}

	switch {
	case p.color[node] == 0 && p.bound[item] > 1:
		// Already undone: untweak(level) pops tweakLog in one pass and
		// reverses this node along with any others tweaked at this
		// level, so there is nothing left for uncommit to do here.
	case p.color[node] == 0:
		p.uncoverPrime(item)
	case p.color[node] > 0:
		p.unpurify(node)
	}
}

// tweakRecord is the undo information needed to reverse one tweak call:
// which node was spliced out of which item's vertical list, its former
// neighbours there, and — when the item's remaining bound hit zero and it
// was retired from the active ring — its former ring neighbours too.
type tweakRecord struct {
	node, item, u, d int
	retired          bool
	ringL, ringR     int
	hiddenRows       []int // untried sibling rows hidden at retirement time, in hide order
}

// ringUnlink splices item i out of whichever ring (primary or secondary)
// it currently sits in, without touching its vertical list. This is the
// half of cover that tweak needs on its own, for a multiplicity item whose
// bound has just been exhausted.
func (p *Problem) ringUnlink(i int) {
	l, r := p.llink[i], p.rlink[i]
	p.rlink[l], p.llink[r] = r, l
}

// ringRelink is ringUnlink's exact inverse given the saved neighbours.
func (p *Problem) ringRelink(i, l, r int) {
	p.llink[i], p.rlink[i] = l, r
	p.rlink[l], p.llink[r] = i, i
}

// tweak hides option row x (removing every other item's vertical-list
// entry for that row, via hide) and splices x itself out of the vertical
// list of its own item header (top[x]) — decrementing that header's len —
// then decrements the header's remaining bound. Unlike cover, the header
// is left in the active ring unless its bound has just reached zero: this
// is how Algorithm M lets a multiplicity item be covered by options chosen
// at several nested levels, each consuming one unit of bound, rather than
// being removed after the first. The undo
// record is appended to tweakLog[level] so untweak(level) can reverse
// exactly the tweaks made at that level, in reverse order. See
// SPEC_FULL.md §4.7's resolution of open question (a).
func (p *Problem) tweak(x int, level int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("tweak(x=%d, level=%d)", x, level)
	}

	p.hide(x)

	item := p.top[x]
	u, d := p.ulink[x], p.dlink[x]
	p.dlink[u], p.ulink[d] = d, u
	p.len[item]--

	rec := tweakRecord{node: x, item: item, u: u, d: d}

	p.bound[item]--
	if p.bound[item] == 0 {
		rec.retired = true
		rec.ringL, rec.ringR = p.llink[item], p.rlink[item]
		p.ringUnlink(item)

		// No further option may consume this item's remaining
		// capacity: hide whatever untried rows are still wired to it,
		// the same way cover would, so a later commit() triggered by
		// an unrelated item sharing this column can't touch it again.
		for row := p.dlink[item]; row != item; row = p.dlink[row] {
			p.hide(row)
			rec.hiddenRows = append(rec.hiddenRows, row)
		}
	}

	p.tweakLog[level] = append(p.tweakLog[level], rec)
}

// untweak reverses every tweak recorded at the given level, most recent
// first, then clears that level's log.
func (p *Problem) untweak(level int) {
	if p.stats != nil && p.stats.Verbosity > 1 {
		p.logger.Debugf("untweak(level=%d)", level)
	}

	log := p.tweakLog[level]
	for k := len(log) - 1; k >= 0; k-- {
		rec := log[k]
		if rec.retired {
			for j := len(rec.hiddenRows) - 1; j >= 0; j-- {
				p.unhide(rec.hiddenRows[j])
			}
			p.ringRelink(rec.item, rec.ringL, rec.ringR)
		}
		p.bound[rec.item]++

		p.dlink[rec.u] = rec.node
		p.ulink[rec.d] = rec.node
		p.len[rec.item]++
		p.unhide(rec.node)
	}
	p.tweakLog[level] = p.tweakLog[level][:0]
}
