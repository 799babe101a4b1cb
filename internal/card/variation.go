package card

import (
	"iter"

	"mahjong/internal/domain"
)

// Variation is one concrete resolution of a pattern: a suit for each virtual
// slot and, for patterns with runs, the base number of offset 1.
type Variation struct {
	Suits [3]domain.Suit
	Base  int // 0 when the pattern has no runs
}

// Resolve returns the concrete tile a component requires under v.
func (v Variation) Resolve(c Component) domain.Tile {
	switch {
	case c.Suit.IsVirtualDragon():
		// Dragon numbers share their index with their suit.
		return domain.NewTile(domain.Dragon, int(v.Suits[c.Suit.Slot()]))
	case c.Suit.IsVirtual():
		n := c.Number
		if c.Offset > 0 {
			n = v.Base + c.Offset - 1
		}
		return domain.NewTile(v.Suits[c.Suit.Slot()], n)
	}
	return domain.NewTile(domain.Suit(c.Suit), c.Number)
}

var unassigned = [3]domain.Suit{domain.Invalid, domain.Invalid, domain.Invalid}

// suitPermutations lists injective assignments of n slots to the numbered suits
// in crack, bam, dot order.
func suitPermutations(n int) [][3]domain.Suit {
	if n <= 0 {
		return [][3]domain.Suit{unassigned}
	}
	var out [][3]domain.Suit
	var used [3]bool
	cur := unassigned
	var walk func(slot int)
	walk = func(slot int) {
		if slot == n {
			out = append(out, cur)
			return
		}
		for i, s := range domain.NumberedSuits {
			if used[i] {
				continue
			}
			used[i] = true
			cur[slot] = s
			walk(slot + 1)
			cur[slot] = domain.Invalid
			used[i] = false
		}
	}
	walk(0)
	return out
}

var permutationTable = [4][][3]domain.Suit{
	suitPermutations(0),
	suitPermutations(1),
	suitPermutations(2),
	suitPermutations(3),
}

// bases returns the candidate base numbers. Bases that would push a run past 9
// cannot be completed and are skipped.
func (p *Pattern) bases() []int {
	top := p.maxOffset()
	if top == 0 {
		return []int{0}
	}
	start, step := 1, 1
	switch {
	case p.Odd:
		step = 2
	case p.Even:
		start, step = 2, 2
	}
	var out []int
	for b := start; b+top-1 <= 9; b += step {
		out = append(out, b)
	}
	return out
}

// Variations yields every variation of the pattern lazily. The sequence is
// finite and can be ranged over any number of times.
func (p *Pattern) Variations() iter.Seq[Variation] {
	return func(yield func(Variation) bool) {
		slots := p.suitSlots()
		if slots > 3 {
			return
		}
		perms := permutationTable[slots]
		for _, base := range p.bases() {
			for _, perm := range perms {
				if !yield(Variation{Suits: perm, Base: base}) {
					return
				}
			}
		}
	}
}

// VariationCount returns how many variations Variations yields.
func (p *Pattern) VariationCount() int {
	n := 0
	for range p.Variations() {
		n++
	}
	return n
}
