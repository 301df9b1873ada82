package validation

import (
	"strings"

	"github.com/jonathan/career-board/internal/experience"
	"github.com/jonathan/career-board/internal/types"
)

// JobPostingForm is the admin form for publishing a job.
type JobPostingForm struct {
	Company        string `json:"company" validate:"min=2"`
	Position       string `json:"position" validate:"min=2"`
	Location       string `json:"location" validate:"min=2"`
	Description    string `json:"description" validate:"min=10"`
	Requirements   string `json:"requirements" validate:"min=10"` // one requirement per line
	Salary         string `json:"salary,omitempty"`
	ApplicationURL string `json:"applicationUrl,omitempty" validate:"omitempty,url"`
}

// JobPostingSchema holds the job posting messages.
var JobPostingSchema = Schema{
	Name: "job posting",
	Messages: map[string]string{
		"company":        "Company name must be at least 2 characters.",
		"position":       "Position must be at least 2 characters.",
		"location":       "Location must be at least 2 characters.",
		"description":    "Description must be at least 10 characters.",
		"requirements":   "Requirements must be at least 10 characters.",
		"applicationUrl": "Please enter a valid URL.",
	},
}

// ToNewJobPosting converts a validated form into store fields. Requirements are
// split on newlines, trimmed, and blank lines dropped; empty optionals become nil.
func (f JobPostingForm) ToNewJobPosting() types.NewJobPosting {
	return types.NewJobPosting{
		Company:        f.Company,
		Position:       f.Position,
		Location:       f.Location,
		Description:    f.Description,
		Requirements:   SplitRequirements(f.Requirements),
		Salary:         optional(f.Salary),
		ApplicationURL: optional(f.ApplicationURL),
	}
}

// SplitRequirements turns the raw requirements text into an ordered list.
func SplitRequirements(raw string) []string {
	lines := strings.Split(raw, "\n")
	reqs := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			reqs = append(reqs, line)
		}
	}
	return reqs
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// JobApplicationForm is the applicant form for a job.
type JobApplicationForm struct {
	Name        string `json:"name" validate:"min=2"`
	Email       string `json:"email" validate:"required,email"`
	Resume      string `json:"resume" validate:"min=10"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

// JobApplicationSchema holds the job application messages.
var JobApplicationSchema = Schema{
	Name: "job application",
	Messages: map[string]string{
		"name":   "Name must be at least 2 characters.",
		"email":  "Please enter a valid email address.",
		"resume": "Please provide your resume or LinkedIn profile.",
	},
}

// ToJobApplication converts a validated form.
func (f JobApplicationForm) ToJobApplication() types.JobApplication {
	return types.JobApplication{
		Name:        f.Name,
		Email:       f.Email,
		Resume:      f.Resume,
		CoverLetter: f.CoverLetter,
	}
}

// InterviewExperienceForm is the structured "share your interview" form.
type InterviewExperienceForm struct {
	Company             string `json:"company" validate:"min=2"`
	Position            string `json:"position" validate:"min=2"`
	InterviewRounds     string `json:"interviewRounds" validate:"min=1"`
	TechnicalQuestions  string `json:"technicalQuestions" validate:"min=5"`
	SystemDesign        string `json:"systemDesign,omitempty"`
	BehavioralQuestions string `json:"behavioralQuestions" validate:"min=5"`
	OverallExperience   string `json:"overallExperience" validate:"min=10"`
}

// InterviewExperienceSchema holds the interview experience messages.
var InterviewExperienceSchema = Schema{
	Name: "interview experience",
	Messages: map[string]string{
		"company":             "Company must be at least 2 characters.",
		"position":            "Position must be at least 2 characters.",
		"interviewRounds":     "Please specify the number of interview rounds.",
		"technicalQuestions":  "Please provide some details about technical questions asked.",
		"behavioralQuestions": "Please describe some behavioral questions asked.",
		"overallExperience":   "Please share your overall experience in at least 10 characters.",
	},
}

// ToNewInterviewExperience formats the write-up into the stored narrative.
func (f InterviewExperienceForm) ToNewInterviewExperience() types.NewInterviewExperience {
	return types.NewInterviewExperience{
		Company:  f.Company,
		Position: f.Position,
		Experience: experience.Format(experience.Writeup{
			InterviewRounds:     f.InterviewRounds,
			TechnicalQuestions:  f.TechnicalQuestions,
			SystemDesign:        f.SystemDesign,
			BehavioralQuestions: f.BehavioralQuestions,
			OverallExperience:   f.OverallExperience,
		}),
	}
}

// SkillGapForm is the skill gap analyzer input.
type SkillGapForm struct {
	Resume  string `json:"resume" validate:"notblank"`
	JobRole string `json:"jobRole" validate:"notblank"`
}

// SkillGapSchema holds the skill gap messages.
var SkillGapSchema = Schema{
	Name: "skill gap request",
	Messages: map[string]string{
		"resume":  "Please enter your resume or skills for analysis",
		"jobRole": "Please enter the job role you are targeting",
	},
}

// LoginForm is the sign-in form. The password is required but never verified.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupForm is the registration form.
type SignupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"oneof=student admin"`
}

// RoleForm changes the role of the active session.
type RoleForm struct {
	Role string `json:"role" validate:"oneof=student admin"`
}

// AuthSchema holds the messages shared by the auth forms.
var AuthSchema = Schema{
	Name: "auth",
	Messages: map[string]string{
		"email":    "Please enter a valid email address.",
		"password": "Please enter your password.",
		"role":     "Role must be either student or admin.",
	},
}
