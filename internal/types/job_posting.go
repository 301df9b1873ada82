//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// JobPosting is a job listing published on the board.
type JobPosting struct {
	ID             int      `json:"id" yaml:"id"`
	Company        string   `json:"company" yaml:"company"`
	Position       string   `json:"position" yaml:"position"`
	Location       string   `json:"location" yaml:"location"`
	Description    string   `json:"description" yaml:"description"`
	Requirements   []string `json:"requirements" yaml:"requirements"`
	Salary         *string  `json:"salary,omitempty" yaml:"salary,omitempty"`
	PostedDate     string   `json:"postedDate" yaml:"postedDate"` // ISO date stamped at creation
	ApplicationURL *string  `json:"applicationUrl,omitempty" yaml:"applicationUrl,omitempty"`
}

// NewJobPosting holds the caller-supplied fields of a job posting.
type NewJobPosting struct {
	Company        string   `json:"company"`
	Position       string   `json:"position"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Requirements   []string `json:"requirements"`
	Salary         *string  `json:"salary,omitempty"`
	ApplicationURL *string  `json:"applicationUrl,omitempty"`
}

// RecordID returns the collection identifier.
func (j JobPosting) RecordID() int { return j.ID }

// SearchFields returns the fields matched by a text query.
func (j JobPosting) SearchFields() []string {
	return []string{j.Company, j.Position, j.Location, j.Description}
}

// Clone returns a copy that shares no mutable state with j.
func (j JobPosting) Clone() JobPosting {
	c := j
	c.Requirements = slices.Clone(j.Requirements)
	if j.Salary != nil {
		s := *j.Salary
		c.Salary = &s
	}
	if j.ApplicationURL != nil {
		u := *j.ApplicationURL
		c.ApplicationURL = &u
	}
	return c
}

// JobApplication is an applicant's submission. It is never stored.
type JobApplication struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Resume      string `json:"resume"` // resume summary or LinkedIn profile
	CoverLetter string `json:"coverLetter,omitempty"`
}

// ApplyResult is the outcome of a job application.
type ApplyResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
