package store

import (
	_ "embed"
	"fmt"

	"github.com/jonathan/career-board/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedDocument []byte

// Seed holds the rows every collection starts with.
type Seed struct {
	Interviews []types.InterviewExperience `yaml:"interviews"`
	Jobs       []types.JobPosting          `yaml:"jobs"`
}

// LoadSeed parses the embedded seed document.
func LoadSeed() (*Seed, error) {
	return ParseSeed(seedDocument)
}

// ParseSeed parses a seed document and checks that ids are unique per collection.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed document: %w", err)
	}

	if err := uniqueIDs("interviews", seed.Interviews); err != nil {
		return nil, err
	}
	if err := uniqueIDs("jobs", seed.Jobs); err != nil {
		return nil, err
	}
	return &seed, nil
}

func uniqueIDs[T interface{ RecordID() int }](name string, rows []T) error {
	seen := make(map[int]struct{}, len(rows))
	for _, row := range rows {
		id := row.RecordID()
		if _, dup := seen[id]; dup {
			return fmt.Errorf("seed %s: duplicate id %d", name, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
