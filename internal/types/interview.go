// Package types provides type definitions for structured data shared by the career board services.
//
//nolint:revive // types is a standard Go package name pattern
package types

// InterviewExperience is a community write-up of one interview process.
type InterviewExperience struct {
	ID         int    `json:"id" yaml:"id"`
	Company    string `json:"company" yaml:"company"`
	Position   string `json:"position" yaml:"position"`
	Experience string `json:"experience" yaml:"experience"`
	Date       string `json:"date" yaml:"date"` // ISO date stamped at creation
}

// NewInterviewExperience holds the caller-supplied fields of an interview experience.
type NewInterviewExperience struct {
	Company    string `json:"company"`
	Position   string `json:"position"`
	Experience string `json:"experience"`
}

// RecordID returns the collection identifier.
func (e InterviewExperience) RecordID() int { return e.ID }

// SearchFields returns the fields matched by a text query.
func (e InterviewExperience) SearchFields() []string {
	return []string{e.Company, e.Position, e.Experience}
}

// Clone returns an independent copy.
func (e InterviewExperience) Clone() InterviewExperience { return e }
