package bot

import (
	"math/rand"

	"mahjong/internal/card"
)

// Agent is an AI seat: a profile and the policy that plays it.
type Agent struct {
	Seat    int
	Profile Profile
	Policy  Policy
}

// NewAgents seats one agent per seat, drawing profiles from the pool in seat
// order. All agents share rng.
func NewAgents(c *card.Card, profiles []Profile, seats int, rng *rand.Rand) ([]*Agent, error) {
	agents := make([]*Agent, 0, seats)
	for seat := 0; seat < seats; seat++ {
		p := ProfileForSeat(profiles, seat)
		policy, err := NewPolicy(c, p.Difficulty, rng)
		if err != nil {
			return nil, err
		}
		agents = append(agents, &Agent{Seat: seat, Profile: p, Policy: policy})
	}
	return agents, nil
}
