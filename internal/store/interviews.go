package store

import (
	"context"

	"github.com/jonathan/career-board/internal/types"
)

// InterviewStore holds the community interview experiences.
type InterviewStore struct {
	rows    *Collection[types.InterviewExperience]
	latency Latency
}

// NewInterviewStore creates a store seeded with the given rows.
func NewInterviewStore(seed []types.InterviewExperience, opts ...Option) *InterviewStore {
	o := buildOptions(opts)
	return &InterviewStore{
		rows:    NewCollection(seed, o.now),
		latency: o.latency,
	}
}

// List returns the experiences matching query on company, position or experience text.
func (s *InterviewStore) List(ctx context.Context, query string) ([]types.InterviewExperience, error) {
	if err := wait(ctx, s.latency.List); err != nil {
		return nil, err
	}
	return s.rows.List(query), nil
}

// Get returns the experience with the given id.
func (s *InterviewStore) Get(ctx context.Context, id int) (types.InterviewExperience, bool, error) {
	if err := wait(ctx, s.latency.Get); err != nil {
		return types.InterviewExperience{}, false, err
	}
	exp, ok := s.rows.Get(id)
	return exp, ok, nil
}

// Create stores a new experience dated today.
func (s *InterviewStore) Create(ctx context.Context, in types.NewInterviewExperience) (types.InterviewExperience, error) {
	if err := wait(ctx, s.latency.Create); err != nil {
		return types.InterviewExperience{}, err
	}
	return s.rows.Create(func(id int, date string) types.InterviewExperience {
		return types.InterviewExperience{
			ID:         id,
			Company:    in.Company,
			Position:   in.Position,
			Experience: in.Experience,
			Date:       date,
		}
	}), nil
}
