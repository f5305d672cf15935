package dlx

import "fmt"

// defineItem appends one header at the next free index, linking it into a
// temporary straight chain (llink[i]=i-1, rlink[i-1]=i) that PrepareOptions
// later rewires into the two active-item rings. Grounded in
// original_source/src/algorithm.c's define_item, with the linear name scan
// replaced by a map lookup so there is no operator-precedence pitfall to
// inherit (spec.md §9 design note (b)).
func (p *Problem) defineItem(name string) (int, error) {
	if p.phase != phaseDeclaring {
		return 0, fmt.Errorf("%w: %q", ErrSecondaryAfterOptions, name)
	}
	if _, exists := p.nameIndex[name]; exists {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	i := len(p.name)
	p.name = append(p.name, name)
	p.llink = append(p.llink, i-1)
	p.rlink = append(p.rlink, 0)
	p.rlink[i-1] = i
	p.nameIndex[name] = i

	return i, nil
}

// DefinePrimaryItem declares a primary item, which must be covered exactly
// once in every solution. Primary items must all be declared before any
// secondary item.
func (p *Problem) DefinePrimaryItem(name string) (int, error) {
	if p.n2 > 0 {
		return 0, fmt.Errorf("%w: %q", ErrPrimaryAfterSecondary, name)
	}
	i, err := p.defineItem(name)
	if err != nil {
		return 0, err
	}
	p.n1++
	return i, nil
}

// DefinePrimaryItemWithMultiplicity declares a primary item that may be
// covered anywhere between u and v times (spec.md §3 expansion, scenario 2
// of §8: "<a : 2 b : 1;2>"). u=v=1 is equivalent to DefinePrimaryItem.
func (p *Problem) DefinePrimaryItemWithMultiplicity(name string, u, v int) (int, error) {
	if u < 0 || v < u {
		return 0, fmt.Errorf("%w: u=%d v=%d", ErrInvalidMultiplicity, u, v)
	}
	i, err := p.DefinePrimaryItem(name)
	if err != nil {
		return 0, err
	}
	if u != 1 || v != 1 {
		if p.pendingMultiplicity == nil {
			p.pendingMultiplicity = make(map[int][2]int)
		}
		p.pendingMultiplicity[i] = [2]int{u, v}
	}
	return i, nil
}

// DefineSecondaryItem declares a secondary item, which may be covered at
// most once (and, if coloured, all covering options must agree on colour).
func (p *Problem) DefineSecondaryItem(name string) (int, error) {
	i, err := p.defineItem(name)
	if err != nil {
		return 0, err
	}
	p.n2++
	return i, nil
}

// PrepareOptions finalises the item count, wires the primary and secondary
// rings, and allocates the per-item vertical-list and multiplicity arrays.
// After this call no further item may be declared, and AddItem/EndOption
// become legal. Grounded in original_source/src/algorithm.c's
// prepare_options.
func (p *Problem) PrepareOptions() error {
	if p.phase != phaseDeclaring {
		return ErrSecondaryAfterOptions
	}
	if p.itemCount() == 0 {
		return ErrNoItems
	}

	n1, n := p.n1, p.n1+p.n2
	p.n = n

	// Two doubly linked rings sharing the llink/rlink arrays: primary
	// items headed at index 0, secondary items headed at index n+1.
	p.llink = append(p.llink, 0)
	p.rlink = append(p.rlink, 0)

	p.llink[n+1] = n
	p.rlink[n] = n + 1
	p.llink[n1+1] = n + 1
	p.rlink[n+1] = n1 + 1
	p.llink[0] = n1
	p.rlink[n1] = 0

	p.len = make([]int, n+1)
	p.ulink = make([]int, n+1)
	p.dlink = make([]int, n+1)
	p.color = make([]int, n+1)
	p.bound = make([]int, n+1)
	p.slack = make([]int, n+1)
	p.colorNames = []string{""}

	for i := 1; i <= n; i++ {
		p.len[i] = 0
		p.ulink[i] = i
		p.dlink[i] = i
		p.bound[i] = 1
		p.slack[i] = 0
	}
	for idx, uv := range p.pendingMultiplicity {
		p.bound[idx] = uv[1]
		p.slack[idx] = uv[1] - uv[0]
	}

	p.top = make([]int, n+1)

	// First spacer, opening the option region.
	spacer := len(p.top)
	p.top = append(p.top, 0)
	p.ulink = append(p.ulink, 0)
	p.dlink = append(p.dlink, 0)
	p.color = append(p.color, 0)
	p.spacerAt = spacer

	p.phase = phaseBuildingOptions
	return nil
}

// ColorIndex returns the integer colour tag for a colour name, registering
// it if this is the first time it has been seen. The empty string always
// maps to 0 (uncoloured).
func (p *Problem) ColorIndex(name string) int {
	if name == "" {
		return 0
	}
	for i, n := range p.colorNames {
		if i > 0 && n == name {
			return i
		}
	}
	p.colorNames = append(p.colorNames, name)
	return len(p.colorNames) - 1
}

// ColorName returns the name registered for a colour tag, or "" for 0.
func (p *Problem) ColorName(tag int) string {
	if tag <= 0 || tag >= len(p.colorNames) {
		return ""
	}
	return p.colorNames[tag]
}

// BeginOption opens a new option. Every option must be closed with
// EndOption before another is opened or the arena is sealed with
// EndOptions.
func (p *Problem) BeginOption() error {
	if p.phase != phaseBuildingOptions {
		if p.phase == phaseDeclaring {
			return ErrNotReady
		}
		return ErrSecondaryAfterOptions
	}
	if p.optionOpen {
		return ErrOptionInProgress
	}
	p.optionOpen = true
	p.optionLen = 0
	return nil
}

// AddItem appends an uncoloured item to the currently open option.
func (p *Problem) AddItem(itemIndex int) error {
	return p.AddItemWithColor(itemIndex, 0)
}

// AddItemWithColor appends an item to the currently open option, tagged
// with the given colour (0 means uncoloured; use ColorIndex to resolve a
// colour name to a tag). Grounded in
// original_source/src/algorithm.c's add_item_with_color.
func (p *Problem) AddItemWithColor(itemIndex int, color int) error {
	if p.phase != phaseBuildingOptions {
		return ErrNotReady
	}
	if !p.optionOpen {
		return ErrNoOptionOpen
	}
	if itemIndex < 1 || itemIndex > p.n {
		return fmt.Errorf("%w: %d", ErrUnknownItem, itemIndex)
	}

	p.optionLen++
	x := len(p.top)
	p.top = append(p.top, itemIndex)
	p.color = append(p.color, color)

	p.len[itemIndex]++
	tail := p.ulink[itemIndex]
	p.ulink = append(p.ulink, tail)
	p.dlink = append(p.dlink, itemIndex)
	p.dlink[tail] = x
	p.ulink[itemIndex] = x

	return nil
}

// EndOption closes the option opened by BeginOption, appending the
// trailing spacer that separates it from the next option. Grounded in
// original_source/src/algorithm.c's end_option.
func (p *Problem) EndOption() error {
	if p.phase != phaseBuildingOptions {
		return ErrNotReady
	}
	if !p.optionOpen {
		return ErrNoOptionOpen
	}
	if p.optionLen == 0 {
		p.optionOpen = false
		return ErrEmptyOption
	}

	p.m++
	lastItem := len(p.top) - 1
	p.dlink[p.spacerAt] = lastItem

	newSpacer := len(p.top)
	p.top = append(p.top, -p.m)
	p.ulink = append(p.ulink, p.spacerAt+1)
	p.dlink = append(p.dlink, 0)
	p.color = append(p.color, 0)
	p.spacerAt = newSpacer

	p.optionOpen = false
	p.optionLen = 0
	return nil
}

// EndOptions closes the arena for search: it fixes the final spacer's dlink
// to wrap back to the sentinel and allocates the search-state slices.
// Grounded in original_source/src/algorithm.c's end_options.
func (p *Problem) EndOptions() error {
	if p.phase != phaseBuildingOptions {
		return ErrSecondaryAfterOptions
	}
	if p.optionOpen {
		return ErrOptionInProgress
	}

	last := len(p.top) - 1
	p.dlink[last] = 0

	p.phase = phaseReady
	p.x = make([]int, p.m)
	p.tweakLog = make([][]tweakRecord, p.m)
	p.state = stateC1
	return nil
}

// AddOption is a convenience helper combining BeginOption/AddItem(WithColor
// for ":"-suffixed entries)/EndOption for a whole option given as item
// index, colour-tag pairs. A colour of 0 means uncoloured.
func (p *Problem) AddOption(items []int, colors []int) error {
	if err := p.BeginOption(); err != nil {
		return err
	}
	for k, item := range items {
		c := 0
		if colors != nil {
			c = colors[k]
		}
		if err := p.AddItemWithColor(item, c); err != nil {
			return err
		}
	}
	return p.EndOption()
}

// ItemIndex looks up the index of a previously declared item by name, or
// returns false if it was never declared.
func (p *Problem) ItemIndex(name string) (int, bool) {
	i, ok := p.nameIndex[name]
	return i, ok
}

// ItemName returns the declared name of item index i.
func (p *Problem) ItemName(i int) string {
	return p.name[i]
}

// NumPrimary and NumSecondary report the item counts fixed by
// PrepareOptions.
func (p *Problem) NumPrimary() int   { return p.n1 }
func (p *Problem) NumSecondary() int { return p.n2 }
func (p *Problem) NumOptions() int   { return p.m }
