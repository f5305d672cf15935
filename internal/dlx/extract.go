package dlx

import "strings"

// ExtractOptionIndices returns, for the solution currently parked after a
// true result from ComputeNextResult, the 1-based option ordinal chosen at
// each level. Option ordinals are assigned in the order EndOption was
// called, starting at 1.
func (p *Problem) ExtractOptionIndices() []int {
	out := make([]int, p.xSize)
	for l := 0; l < p.xSize; l++ {
		out[l] = p.optionOrdinal(p.x[l])
	}
	return out
}

// optionOrdinal walks left from node to the option's opening spacer and
// reads off its ordinal. The opening spacer is the previous option's
// closing spacer (top = -(ordinal-1)), so the ordinal is -top[spacer] + 1.
func (p *Problem) optionOrdinal(node int) int {
	q := node
	for p.top[q] > 0 {
		q--
	}
	return -p.top[q] + 1
}

// ExtractItemNames returns, for the solution currently parked after a true
// result from ComputeNextResult, the items covered at each level rendered
// as "name" for uncoloured items and "name:color" for coloured secondary
// items — the textual form spec.md §6 uses for solution output.
func (p *Problem) ExtractItemNames() [][]string {
	out := make([][]string, p.xSize)
	for l := 0; l < p.xSize; l++ {
		out[l] = p.rowItemNames(p.x[l])
	}
	return out
}

func (p *Problem) rowItemNames(node int) []string {
	var names []string
	// Walk left to the start of the row, then forward, so the emitted
	// order matches declaration order within the option.
	start := node
	for p.top[start] > 0 {
		start--
	}
	start++
	for q := start; p.top[q] > 0; q++ {
		j := p.top[q]
		name := p.name[j]
		if c := p.color[q]; c > 0 {
			name = name + ":" + p.colorNames[c]
		}
		names = append(names, name)
	}
	return names
}

// FormatSolution renders ExtractItemNames as one option per line, items
// separated by spaces within a line — the layout the reference CLI prints.
func (p *Problem) FormatSolution() string {
	rows := p.ExtractItemNames()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, " ")
	}
	return strings.Join(lines, "\n")
}
