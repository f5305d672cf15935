package dlx

import (
	"fmt"
	"strings"
)

// DumpMatrix renders the arena's current link arrays, the items still
// active in the ring, and the options chosen so far at each level,
// grounded directly in the teacher's dump closure
// (_examples/wallberg-python/taocp/dancing_links_xcc.go:56-100). Where the
// teacher logs straight from its closure-local slices, this renders the
// same information from the Problem's persisted arena so it can be called
// from outside the search loop, before and after each step, per spec.md §6.
func (p *Problem) DumpMatrix() string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("name :  %v\n", p.name))
	b.WriteString(fmt.Sprintf("llink:  %v\n", p.llink))
	b.WriteString(fmt.Sprintf("rlink:  %v\n", p.rlink))
	b.WriteString(fmt.Sprintf("top  :  %v\n", p.top))
	b.WriteString(fmt.Sprintf("len  :  %v\n", p.len))
	b.WriteString(fmt.Sprintf("ulink:  %v\n", p.ulink))
	b.WriteString(fmt.Sprintf("dlink:  %v\n", p.dlink))
	b.WriteString(fmt.Sprintf("color:  %v\n", p.color))
	b.WriteString("colors: ")
	for i, name := range p.colorNames {
		if i > 0 {
			b.WriteString(fmt.Sprintf(" %d=%s", i, name))
		}
	}
	b.WriteString("\n")

	b.WriteString("items:  ")
	for i := p.rlink[0]; i != 0; i = p.rlink[i] {
		b.WriteString(" " + p.name[i])
	}
	b.WriteString("\n")

	for l, node := range p.x[:p.level] {
		q := node
		for p.top[q-1] > 0 {
			q--
		}
		b.WriteString(fmt.Sprintf("  option: i=%d, p=%d (", l, node))
		for p.top[q] > 0 {
			b.WriteString(fmt.Sprintf(" %v", p.name[p.top[q]]))
			q++
		}
		b.WriteString(" )\n")
	}

	return b.String()
}
