package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJobPostingForm() JobPostingForm {
	return JobPostingForm{
		Company:      "Acme",
		Position:     "Engineer",
		Location:     "Remote",
		Description:  "Build things, ship things.",
		Requirements: "Go\nKubernetes",
	}
}

func TestCheck_JobPosting_Valid(t *testing.T) {
	form := validJobPostingForm()
	form.ApplicationURL = "https://acme.example.com/careers"

	got, err := Check(JobPostingSchema, form)
	require.NoError(t, err)
	assert.Equal(t, form, got)
}

func TestCheck_JobPosting_Thresholds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JobPostingForm)
		field  string
		msg    string
	}{
		{"short company", func(f *JobPostingForm) { f.Company = "A" }, "company", "Company name must be at least 2 characters."},
		{"short position", func(f *JobPostingForm) { f.Position = "E" }, "position", "Position must be at least 2 characters."},
		{"short location", func(f *JobPostingForm) { f.Location = "R" }, "location", "Location must be at least 2 characters."},
		{"short description", func(f *JobPostingForm) { f.Description = "too short" }, "description", "Description must be at least 10 characters."},
		{"short requirements", func(f *JobPostingForm) { f.Requirements = "Go" }, "requirements", "Requirements must be at least 10 characters."},
		{"bad url", func(f *JobPostingForm) { f.ApplicationURL = "not a url" }, "applicationUrl", "Please enter a valid URL."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validJobPostingForm()
			tt.mutate(&form)

			_, err := Check(JobPostingSchema, form)
			require.Error(t, err)

			fieldErrors, ok := err.(FieldErrors)
			require.True(t, ok, "expected FieldErrors, got %T", err)
			assert.Len(t, fieldErrors, 1)
			assert.Equal(t, tt.msg, fieldErrors[tt.field])
		})
	}
}

func TestCheck_JobPosting_BoundaryLengths(t *testing.T) {
	form := validJobPostingForm()
	form.Company = "AB"
	form.Description = "0123456789"
	form.Requirements = "0123456789"

	_, err := Check(JobPostingSchema, form)
	assert.NoError(t, err)
}

func TestCheck_JobPosting_EmptyURLIsAbsent(t *testing.T) {
	form := validJobPostingForm()
	form.ApplicationURL = ""

	_, err := Check(JobPostingSchema, form)
	assert.NoError(t, err)
}

func TestCheck_ReportsEveryFailingField(t *testing.T) {
	_, err := Check(JobPostingSchema, JobPostingForm{})
	require.Error(t, err)

	fieldErrors := err.(FieldErrors)
	assert.Len(t, fieldErrors, 5)
	assert.Contains(t, fieldErrors, "company")
	assert.Contains(t, fieldErrors, "requirements")
	assert.NotContains(t, fieldErrors, "salary")
	assert.NotContains(t, fieldErrors, "applicationUrl")
	assert.Contains(t, err.Error(), "company: Company name must be at least 2 characters.")
}

func TestToNewJobPosting_SplitsRequirements(t *testing.T) {
	form := validJobPostingForm()
	form.Requirements = "  Go  \n\n Kubernetes\r\n   \nSQL"
	form.Salary = "$100k"

	job := form.ToNewJobPosting()

	assert.Equal(t, []string{"Go", "Kubernetes", "SQL"}, job.Requirements)
	require.NotNil(t, job.Salary)
	assert.Equal(t, "$100k", *job.Salary)
	assert.Nil(t, job.ApplicationURL)
}

func TestCheck_JobApplication(t *testing.T) {
	valid := JobApplicationForm{
		Name:   "Jo",
		Email:  "jo@example.com",
		Resume: "linkedin.com/in/jo",
	}
	_, err := Check(JobApplicationSchema, valid)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*JobApplicationForm)
		field  string
	}{
		{"short name", func(f *JobApplicationForm) { f.Name = "J" }, "name"},
		{"bad email", func(f *JobApplicationForm) { f.Email = "jo-at-example" }, "email"},
		{"empty email", func(f *JobApplicationForm) { f.Email = "" }, "email"},
		{"short resume", func(f *JobApplicationForm) { f.Resume = "short" }, "resume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			_, err := Check(JobApplicationSchema, form)
			require.Error(t, err)
			assert.Equal(t, JobApplicationSchema.Messages[tt.field], err.(FieldErrors)[tt.field])
		})
	}
}

func TestCheck_InterviewExperience(t *testing.T) {
	valid := InterviewExperienceForm{
		Company:             "Acme",
		Position:            "Engineer",
		InterviewRounds:     "3",
		TechnicalQuestions:  "arrays",
		BehavioralQuestions: "conflict",
		OverallExperience:   "great process",
	}
	_, err := Check(InterviewExperienceSchema, valid)
	require.NoError(t, err)

	bad := valid
	bad.InterviewRounds = ""
	bad.TechnicalQuestions = "abc"
	bad.OverallExperience = "meh"

	_, err = Check(InterviewExperienceSchema, bad)
	require.Error(t, err)
	fieldErrors := err.(FieldErrors)
	assert.Equal(t, "Please specify the number of interview rounds.", fieldErrors["interviewRounds"])
	assert.Equal(t, "Please provide some details about technical questions asked.", fieldErrors["technicalQuestions"])
	assert.Equal(t, "Please share your overall experience in at least 10 characters.", fieldErrors["overallExperience"])
	assert.NotContains(t, fieldErrors, "systemDesign")
}

func TestToNewInterviewExperience_FormatsNarrative(t *testing.T) {
	form := InterviewExperienceForm{
		Company:             "Acme",
		Position:            "Engineer",
		InterviewRounds:     "5",
		TechnicalQuestions:  "arrays",
		BehavioralQuestions: "conflict",
		OverallExperience:   "great",
	}

	got := form.ToNewInterviewExperience()

	assert.Equal(t, "Acme", got.Company)
	assert.Contains(t, got.Experience, "The interview process consisted of 5 rounds.")
	assert.NotContains(t, got.Experience, "System Design:")
}

func TestCheck_SkillGap_BlankResume(t *testing.T) {
	_, err := Check(SkillGapSchema, SkillGapForm{Resume: "   \n", JobRole: "Engineer"})
	require.Error(t, err)
	assert.Equal(t, "Please enter your resume or skills for analysis", err.(FieldErrors)["resume"])
}

func TestCheck_SignupRole(t *testing.T) {
	_, err := Check(AuthSchema, SignupForm{Email: "a@b.co", Password: "x", Role: "admin"})
	assert.NoError(t, err)

	_, err = Check(AuthSchema, SignupForm{Email: "a@b.co", Password: "x", Role: "root"})
	require.Error(t, err)
	assert.Equal(t, "Role must be either student or admin.", err.(FieldErrors)["role"])
}

func TestCheck_NonStruct(t *testing.T) {
	_, err := Check(AuthSchema, "not a form")
	require.Error(t, err)

	var vErr *Error
	assert.ErrorAs(t, err, &vErr)
}
