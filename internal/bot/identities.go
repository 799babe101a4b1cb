package bot

import (
	"encoding/json"
	"fmt"
	"os"
)

// Profile names an AI seat and its difficulty.
type Profile struct {
	Name       string     `json:"name"`
	Difficulty Difficulty `json:"difficulty"` // "easy", "medium", "hard"
}

// LoadProfiles reads seat profiles from a JSON array.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profiles: %w", err)
	}
	for i := range profiles {
		d, err := ParseDifficulty(string(profiles[i].Difficulty))
		if err != nil {
			return nil, fmt.Errorf("profile %d: %w", i, err)
		}
		profiles[i].Difficulty = d
	}
	return profiles, nil
}

// ProfileForSeat returns the profile for a seat (mod pool size), or a default
// medium player when the pool is empty.
func ProfileForSeat(profiles []Profile, seat int) Profile {
	if len(profiles) == 0 {
		return Profile{
			Name:       fmt.Sprintf("AI Player %d", seat+1),
			Difficulty: DifficultyMedium,
		}
	}
	return profiles[seat%len(profiles)]
}
