package dlx

import (
	"context"
	"fmt"
)

// searchState names one step of Algorithm C's state machine (TAOCP
// 7.2.2.1), numbered the way Knuth numbers them so the control flow below
// reads against the original text. ComputeNextResult is the resumable
// rendition: each call runs the machine until either a solution is found
// (state parked at C8, ready to resume backtracking on the next call) or
// the search is exhausted (state parked at done).
type searchState int

const (
	stateC1 searchState = iota
	stateC2
	stateC3
	stateC4
	stateC5
	stateC6
	stateC7
	stateC8
	stateDone
)

// ComputeNextResult advances the search to the next solution. It returns
// (true, nil) with a solution available via ExtractOptionIndices/
// ExtractItemNames, (false, nil) once every solution has been produced, or
// a non-nil error if the context was cancelled or the problem was never
// sealed with EndOptions. Grounded in
// original_source/src/algorithm_c.c's solve loop, reshaped from a single
// run-to-completion function into a resumable state machine so callers can
// pull one solution at a time (spec.md §4.5).
func (p *Problem) ComputeNextResult(ctx context.Context) (bool, error) {
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
			if i, ok := p.firstItemWithNoOptions(); ok {
				p.logger.Debugf("item %q has no options", p.name[i])
				p.state = stateDone
				return false, nil
			}
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
			p.branchI = p.opts.Heuristic(p)
			p.state = stateC3

		case stateC3:
			p.state = stateC4

		case stateC4:
			if p.stats != nil {
				p.stats.Nodes++
			}
			p.coverPrime(p.branchI)
			p.x[p.level] = p.dlink[p.branchI]
			p.state = stateC5

		case stateC5:
			if p.x[p.level] == p.branchI {
				p.state = stateC7
				continue
			}
			p.commitRow(p.x[p.level], p.level)
			if p.level == 0 && p.opts.Exercise83 && !p.exercise83Applied {
				p.exercise83Applied = true
				p.applyExercise83(p.x[p.level])
			}
			p.level++
			p.state = stateC2

		case stateC6:
			p.uncommitRow(p.x[p.level], p.level)
			p.branchI = p.top[p.x[p.level]]
			p.x[p.level] = p.dlink[p.x[p.level]]
			p.state = stateC5

		case stateC7:
			p.uncoverPrime(p.branchI)
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

// commitRow walks the option row starting at node, committing every item
// node it touches other than the row's own spacer boundary.
func (p *Problem) commitRow(node int, level int) {
	for q := node + 1; q != node; {
		j := p.top[q]
		if j <= 0 {
			q = p.ulink[q]
			continue
		}
		p.commit(q, j, level)
		q++
	}
}

// uncommitRow is commitRow's exact inverse, walking right to left.
func (p *Problem) uncommitRow(node int, level int) {
	for q := node - 1; q != node; {
		j := p.top[q]
		if j <= 0 {
			q = p.dlink[q]
			continue
		}
		p.uncommit(q, j, level)
		q--
	}
}

// applyExercise83 implements Knuth's answer to exercise 7.2.2.1-83: once
// the very first option of a search is chosen, if it ends in an
// uncoloured secondary item, that item is covered permanently (outside
// the backtracking log, so it is never uncovered again) rather than left
// for ordinary branching. Fixing that single choice breaks the symmetry
// a crossword-style problem has under relabelling of that item, cutting
// the search roughly in proportion to the symmetry group's size without
// losing any solutions up to that symmetry.
func (p *Problem) applyExercise83(row int) {
	q := row
	for p.top[q+1] > 0 {
		q++
	}
	last := p.top[q]
	if last > p.n1 && p.color[q] == 0 {
		p.cover(last)
	}
}

// firstItemWithNoOptions reports the first active primary item whose
// vertical list is empty, the structural error spec.md §7 calls out as
// detected in C1. Grounded in original_source/src/algorithm.c's startup
// check before the first call to solve.
func (p *Problem) firstItemWithNoOptions() (int, bool) {
	for i := p.rlink[0]; i != 0; i = p.rlink[i] {
		if p.dlink[i] == i {
			return i, true
		}
	}
	return 0, false
}

// bumpLevel records entry into level l for progress statistics.
func (p *Problem) bumpLevel(l int) {
	if p.stats == nil {
		return
	}
	for len(p.stats.Levels) <= l {
		p.stats.Levels = append(p.stats.Levels, 0)
	}
	p.stats.Levels[l]++
	if l > p.stats.MaxLevel {
		p.stats.MaxLevel = l
	}
	if p.stats.Progress && p.stats.Delta > 0 && p.stats.Nodes >= p.stats.Theta {
		p.stats.Theta = p.stats.Nodes + p.stats.Delta
		p.logger.Debugf("progress: level=%d nodes=%d solutions=%d", l, p.stats.Nodes, p.stats.Solutions)
	}
}
