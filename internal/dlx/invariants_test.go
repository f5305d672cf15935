package dlx

import (
	"testing"

	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type InvariantSuite struct{}

var _ = Suite(&InvariantSuite{})

func (s *InvariantSuite) buildSmall(c *C) *Problem {
	p := NewProblem(Options{}, nil, nil)
	a, err := p.DefinePrimaryItem("a")
	c.Assert(err, IsNil)
	b, err := p.DefinePrimaryItem("b")
	c.Assert(err, IsNil)
	c.Assert(p.PrepareOptions(), IsNil)
	c.Assert(p.AddOption([]int{a, b}, nil), IsNil)
	c.Assert(p.AddOption([]int{a}, nil), IsNil)
	c.Assert(p.AddOption([]int{b}, nil), IsNil)
	c.Assert(p.EndOptions(), IsNil)
	return p
}

// ringConsistent checks invariant 1: rlink[llink[h]] = h = llink[rlink[h]]
// for every header still in the active ring.
func (s *InvariantSuite) ringConsistent(c *C, p *Problem) {
	for h := p.rlink[0]; h != 0; h = p.rlink[h] {
		c.Assert(p.rlink[p.llink[h]], Equals, h)
		c.Assert(p.llink[p.rlink[h]], Equals, h)
	}
}

// lenConsistent checks invariant 3: len[h] equals the count of nodes
// reachable along dlink from h back to h.
func (s *InvariantSuite) lenConsistent(c *C, p *Problem) {
	for h := 1; h <= p.n; h++ {
		count := 0
		for q := p.dlink[h]; q != h; q = p.dlink[q] {
			count++
		}
		c.Assert(p.len[h], Equals, count, Commentf("header %d (%s)", h, p.name[h]))
	}
}

func (s *InvariantSuite) TestCoverUncoverIsReversible(c *C) {
	p := s.buildSmall(c)
	before := cloneArena(p)

	p.cover(1)
	s.ringConsistent(c, p)
	s.lenConsistent(c, p)

	p.uncover(1)
	s.ringConsistent(c, p)
	s.lenConsistent(c, p)

	c.Assert(cloneArena(p), DeepEquals, before)
}

func (s *InvariantSuite) TestHideUnhideIsReversible(c *C) {
	p := s.buildSmall(c)
	before := cloneArena(p)

	// The first node of a's vertical list: index 4, the "a" node of
	// option 1 ("a b"), just past the headers and first spacer.
	node := p.dlink[1]
	p.hide(node)
	s.lenConsistent(c, p)
	p.unhide(node)
	s.lenConsistent(c, p)

	c.Assert(cloneArena(p), DeepEquals, before)
}

func (s *InvariantSuite) TestTweakUntweakIsReversible(c *C) {
	p := NewProblem(Options{}, nil, nil)
	a, err := p.DefinePrimaryItemWithMultiplicity("a", 1, 2)
	c.Assert(err, IsNil)
	c.Assert(p.PrepareOptions(), IsNil)
	c.Assert(p.AddOption([]int{a}, nil), IsNil)
	c.Assert(p.AddOption([]int{a}, nil), IsNil)
	c.Assert(p.EndOptions(), IsNil)

	before := cloneArena(p)

	row := p.dlink[a]
	p.tweak(row, 0)
	s.lenConsistent(c, p)
	p.untweak(0)
	s.lenConsistent(c, p)

	c.Assert(cloneArena(p), DeepEquals, before)
}

func (s *InvariantSuite) TestMRVShortCircuitsOnEmptyItem(c *C) {
	p := NewProblem(Options{}, nil, nil)
	a, err := p.DefinePrimaryItem("a")
	c.Assert(err, IsNil)
	_, err = p.DefinePrimaryItem("b")
	c.Assert(err, IsNil)
	c.Assert(p.PrepareOptions(), IsNil)
	// "b" is never used in any option, so its len is 0; a's len is forced
	// to 0 as well, so the leftmost dead item is a.
	c.Assert(p.AddOption([]int{a}, nil), IsNil)
	p.len[a] = 0 // force the dead-end case deterministically
	c.Assert(p.EndOptions(), IsNil)

	chosen := MRV(p)
	c.Assert(p.len[chosen], Equals, 0)
}

// arenaSnapshot is a deep copy of every parallel array, for exact
// before/after comparison.
type arenaSnapshot struct {
	name                         []string
	llink, rlink                 []int
	top, len, ulink, dlink, color []int
	bound, slack                 []int
}

func cloneArena(p *Problem) arenaSnapshot {
	return arenaSnapshot{
		name:  append([]string(nil), p.name...),
		llink: append([]int(nil), p.llink...),
		rlink: append([]int(nil), p.rlink...),
		top:   append([]int(nil), p.top...),
		len:   append([]int(nil), p.len...),
		ulink: append([]int(nil), p.ulink...),
		dlink: append([]int(nil), p.dlink...),
		color: append([]int(nil), p.color...),
		bound: append([]int(nil), p.bound...),
		slack: append([]int(nil), p.slack...),
	}
}
