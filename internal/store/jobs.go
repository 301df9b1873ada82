package store

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/jonathan/career-board/internal/types"
)

// JobNotFoundMessage is returned when applying to a job that does not exist.
const JobNotFoundMessage = "Job not found"

// JobStore holds the job postings.
type JobStore struct {
	rows    *Collection[types.JobPosting]
	latency Latency
}

// NewJobStore creates a store seeded with the given rows.
func NewJobStore(seed []types.JobPosting, opts ...Option) *JobStore {
	o := buildOptions(opts)
	return &JobStore{
		rows:    NewCollection(seed, o.now),
		latency: o.latency,
	}
}

// List returns the postings matching query on company, position, location or description.
func (s *JobStore) List(ctx context.Context, query string) ([]types.JobPosting, error) {
	if err := wait(ctx, s.latency.List); err != nil {
		return nil, err
	}
	return s.rows.List(query), nil
}

// Get returns the posting with the given id.
func (s *JobStore) Get(ctx context.Context, id int) (types.JobPosting, bool, error) {
	if err := wait(ctx, s.latency.Get); err != nil {
		return types.JobPosting{}, false, err
	}
	job, ok := s.rows.Get(id)
	return job, ok, nil
}

// Create publishes a new posting dated today.
func (s *JobStore) Create(ctx context.Context, in types.NewJobPosting) (types.JobPosting, error) {
	if err := wait(ctx, s.latency.Create); err != nil {
		return types.JobPosting{}, err
	}
	return s.rows.Create(func(id int, date string) types.JobPosting {
		return types.JobPosting{
			ID:             id,
			Company:        in.Company,
			Position:       in.Position,
			Location:       in.Location,
			Description:    in.Description,
			Requirements:   slices.Clone(in.Requirements),
			Salary:         in.Salary,
			PostedDate:     date,
			ApplicationURL: in.ApplicationURL,
		}
	}), nil
}

// Apply submits an application to a posting. The application is logged and
// discarded; every application to an existing job succeeds.
func (s *JobStore) Apply(ctx context.Context, jobID int, app types.JobApplication) (types.ApplyResult, error) {
	if err := wait(ctx, s.latency.Apply); err != nil {
		return types.ApplyResult{}, err
	}

	job, ok := s.rows.Get(jobID)
	if !ok {
		return types.ApplyResult{Success: false, Message: JobNotFoundMessage}, nil
	}

	log.Printf("[jobs] Application received for %s at %s from %s <%s>", job.Position, job.Company, app.Name, app.Email)

	return types.ApplyResult{
		Success: true,
		Message: fmt.Sprintf("Application for %s at %s submitted successfully!", job.Position, job.Company),
	}, nil
}
