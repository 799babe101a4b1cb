package card

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownYear    = errors.New("no card for year")
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Group is a section of the card ("Like Numbers", "Quints", ...).
type Group struct {
	Description string
	Patterns    []Pattern
}

// Card is the read-only set of patterns for one card year. A Card is built
// once at package init and is safe for concurrent use.
type Card struct {
	Year     int
	Groups   []Group
	patterns []*Pattern
}

func newCard(year int, groups ...Group) *Card {
	c := &Card{Year: year, Groups: groups}
	for gi := range c.Groups {
		g := &c.Groups[gi]
		for pi := range g.Patterns {
			p := &g.Patterns[pi]
			p.Group = g.Description
			if err := p.Validate(); err != nil {
				panic(fmt.Sprintf("card %d: %v", year, err))
			}
			c.patterns = append(c.patterns, p)
		}
	}
	return c
}

// Patterns returns all patterns in catalog order. Equal ranks keep this order.
func (c *Card) Patterns() []*Pattern {
	return c.patterns
}

// Find returns the first pattern with the given description.
func (c *Card) Find(description string) (*Pattern, error) {
	for _, p := range c.patterns {
		if p.Description == description {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, description)
}

var cards = map[int]*Card{
	2017: newCard(2017, groups2017()...),
	2019: newCard(2019, groups2019()...),
	2020: newCard(2020, groups2020()...),
	2025: newCard(2025, groups2025()...),
}

// DefaultYear is the card used when none is configured.
const DefaultYear = 2025

// Lookup returns the card for a year.
func Lookup(year int) (*Card, error) {
	c, ok := cards[year]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownYear, year)
	}
	return c, nil
}

// MustLookup is Lookup for years known at compile time.
func MustLookup(year int) *Card {
	c, err := Lookup(year)
	if err != nil {
		panic(err)
	}
	return c
}

// Years lists the available card years in ascending order.
func Years() []int {
	years := make([]int, 0, len(cards))
	for y := range cards {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
