package bot

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"mahjong/internal/card"
)

func writeProfiles(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write profiles: %v", err)
	}
	return path
}

func TestLoadProfiles(t *testing.T) {
	path := writeProfiles(t, `[{"name":"Ada","difficulty":"Hard"},{"name":"Bo","difficulty":"easy"}]`)
	profiles, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles: %v", err)
	}
	if len(profiles) != 2 || profiles[0].Difficulty != DifficultyHard || profiles[1].Name != "Bo" {
		t.Fatalf("profiles = %+v", profiles)
	}

	if _, err := LoadProfiles(writeProfiles(t, `[{"name":"X","difficulty":"expert"}]`)); err == nil {
		t.Fatal("unknown difficulty should fail")
	}
	if _, err := LoadProfiles(writeProfiles(t, `{`)); err == nil {
		t.Fatal("malformed json should fail")
	}
	if _, err := LoadProfiles(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestNewAgents(t *testing.T) {
	profiles := []Profile{{Name: "Ada", Difficulty: DifficultyHard}, {Name: "Bo", Difficulty: DifficultyEasy}}
	agents, err := NewAgents(card.MustLookup(2025), profiles, 4, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewAgents: %v", err)
	}
	if len(agents) != 4 {
		t.Fatalf("got %d agents", len(agents))
	}
	for i, a := range agents {
		if a.Seat != i || a.Profile != profiles[i%2] {
			t.Fatalf("agent %d = %+v", i, a)
		}
		if a.Policy.(*Engine).Difficulty() != profiles[i%2].Difficulty {
			t.Fatalf("agent %d plays %s", i, a.Policy.(*Engine).Difficulty())
		}
	}

	if got := ProfileForSeat(nil, 2); got.Name != "AI Player 3" || got.Difficulty != DifficultyMedium {
		t.Fatalf("default profile = %+v", got)
	}
}
