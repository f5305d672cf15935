package dlx

import (
	"context"
	"fmt"
)

// ComputeNextResultM is ComputeNextResult's counterpart for problems that
// declared at least one item with DefinePrimaryItemWithMultiplicity: it
// runs Algorithm M's generalisation of Algorithm C, where a primary item
// may be chosen as a branch several times across nested levels instead of
// exactly once. An item leaves the active ring only once its bound has
// been used up, so every reported solution covers each item exactly v
// times; solutions that cover an item fewer than v times (though at least
// u) are not produced. It must not be mixed with calls to
// ComputeNextResult on the same Problem.
//
// The branch item is the active primary item with the least declared
// slack (v - u), ties going to the leftmost. slack is fixed by
// PrepareOptions and not changed during the search, so the negative-slack
// check in C3 never fires for bounds accepted by
// DefinePrimaryItemWithMultiplicity (which rejects v < u).
//
// Grounded in the bound/slack fields of original_source/include/xcc/ops.h
// and SPEC_FULL.md §4.7's resolution of open question (a); the state
// numbering mirrors ComputeNextResult's C1-C8 so the two read side by
// side.
func (p *Problem) ComputeNextResultM(ctx context.Context) (bool, error) {
	if p.phase != phaseReady && p.phase != phaseSearching {
		return false, ErrNotReady
	}
	p.phase = phaseSearching

	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		switch p.state {

		case stateC1:
			p.level = 0
			p.state = stateC2

		case stateC2:
			p.bumpLevel(p.level)
			if p.rlink[0] == 0 {
				p.xSize = p.level
				p.state = stateC8
				if p.stats != nil {
					p.stats.Solutions++
				}
				return true, nil
			}
			p.branchI = minSlackItem(p)
			p.state = stateC3

		case stateC3:
			if p.slack[p.branchI] < 0 {
				// Infeasible: nothing was touched at this level, so
				// leave it without uncovering or untweaking anything.
				p.state = stateC8
				continue
			}
			p.state = stateC4

		case stateC4:
			if p.stats != nil {
				p.stats.Nodes++
			}
			p.x[p.level] = p.dlink[p.branchI]
			p.state = stateC5

		case stateC5:
			if p.x[p.level] == p.branchI {
				p.state = stateC8
				continue
			}
			p.commitRow(p.x[p.level], p.level)
			p.tweak(p.x[p.level], p.level)
			p.level++
			p.state = stateC2

		case stateC6:
			p.untweak(p.level)
			p.uncommitRow(p.x[p.level], p.level)
			p.branchI = p.top[p.x[p.level]]
			p.x[p.level] = p.dlink[p.x[p.level]]
			p.state = stateC5

		case stateC7:
			// Algorithm M never covers branchI outright, so there is
			// nothing to uncover here; C7 is unreachable in this
			// driver, kept only so the state numbering lines up with
			// ComputeNextResult.
			p.state = stateC8

		case stateC8:
			if p.level == 0 {
				p.state = stateDone
				return false, nil
			}
			p.level--
			p.state = stateC6

		case stateDone:
			return false, nil

		default:
			return false, fmt.Errorf("dlx: unreachable search state %d", p.state)
		}
	}
}

// minSlackItem returns the active primary item with the least slack,
// breaking ties by leftmost ring position.
func minSlackItem(p *Problem) int {
	best := p.rlink[0]
	bestSlack := 0
	first := true
	for i := p.rlink[0]; i != 0; i = p.rlink[i] {
		if first || p.slack[i] < bestSlack {
			best = i
			bestSlack = p.slack[i]
			first = false
		}
	}
	return best
}
