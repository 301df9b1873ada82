package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/jonathan/career-board/internal/app"
	"github.com/jonathan/career-board/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	answer string
	prompt string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.answer, nil
}

func (f *fakeLLM) Close() error { return nil }

// runCLI executes one invocation against sessionDir and returns stdout.
func runCLI(t *testing.T, sessionDir string, extra []app.Option, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("SESSION_DIR", "")
	t.Setenv("SIMULATED_LATENCY", "")

	root := newRootCmd(extra...)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--session-dir", sessionDir, "--no-latency"}, args...))

	err := root.ExecuteContext(t.Context())
	return stdout.String(), err
}

func TestSessionPersistsAcrossInvocations(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, nil, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Not signed in\n", out)

	out, err = runCLI(t, dir, nil, "login", "--email", "ada@example.com", "--password", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Signed in as ada@example.com (student)\n", out)

	out, err = runCLI(t, dir, nil, "--json", "whoami")
	require.NoError(t, err)
	var user types.User
	require.NoError(t, json.Unmarshal([]byte(out), &user))
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, types.RoleStudent, user.Role)

	_, err = runCLI(t, dir, nil, "logout")
	require.NoError(t, err)

	out, err = runCLI(t, dir, nil, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Not signed in\n", out)
}

func TestPagesRequireSession(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{
		{"interviews", "list"},
		{"jobs", "show", "1"},
		{"skill-gap", "--resume", "Go", "--role", "SRE"},
	} {
		_, err := runCLI(t, dir, nil, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "not signed in")
	}
}

func TestLoginValidation(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), nil, "login", "--email", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please enter a valid email address.")
	assert.Contains(t, err.Error(), "Please enter your password.")
}

func TestInterviewsPages(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, nil, "login", "--email", "ada@example.com", "--password", "pw")
	require.NoError(t, err)

	out, err := runCLI(t, dir, nil, "interviews", "list", "-q", "microsoft")
	require.NoError(t, err)
	assert.Contains(t, out, "Full Stack Engineer")
	assert.NotContains(t, out, "Google")

	out, err = runCLI(t, dir, nil, "interviews", "list", "-q", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "No interview experiences match \"zzz\"\n", out)

	out, err = runCLI(t, dir, nil, "interviews", "show", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "AMAZON INTERVIEW")
	assert.Contains(t, out, "Position: Software Development Engineer II")

	_, err = runCLI(t, dir, nil, "interviews", "show", "42")
	assert.Error(t, err)

	out, err = runCLI(t, dir, nil, "--json", "interviews", "share",
		"--company", "Stripe", "--position", "Backend Engineer", "--rounds", "4",
		"--technical", "Design a rate limiter", "--behavioral", "Tell me about a conflict",
		"--overall", "Well organized and friendly.")
	require.NoError(t, err)
	var created types.InterviewExperience
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, 4, created.ID)
	assert.Contains(t, created.Experience, "Technical Questions: Design a rate limiter")

	out, err = runCLI(t, dir, nil, "--json", "interviews", "list")
	require.NoError(t, err)
	var all []types.InterviewExperience
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	assert.Len(t, all, 3, "collections reset on every invocation")
}

func TestJobsPages(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, nil, "login", "--email", "ada@example.com", "--password", "pw")
	require.NoError(t, err)

	post := []string{"jobs", "post",
		"--company", "Acme", "--position", "Platform Engineer", "--location", "Remote",
		"--description", "Keep the lights on for everyone.",
		"--requirements", "Go\nKubernetes experience"}

	_, err = runCLI(t, dir, nil, post...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin")

	_, err = runCLI(t, dir, nil, "role", "admin")
	require.NoError(t, err)

	out, err := runCLI(t, dir, nil, append([]string{"--json"}, post...)...)
	require.NoError(t, err)
	var job types.JobPosting
	require.NoError(t, json.Unmarshal([]byte(out), &job))
	assert.Equal(t, []string{"Go", "Kubernetes experience"}, job.Requirements)

	out, err = runCLI(t, dir, nil, "jobs", "apply", "1",
		"--name", "Ada Lovelace", "--email", "ada@example.com", "--resume", "Analytical engine programs")
	require.NoError(t, err)
	assert.Equal(t, "Application for Senior Frontend Developer at Google submitted successfully!\n", out)

	for _, id := range []string{"9", "0"} {
		out, err = runCLI(t, dir, nil, "jobs", "apply", id,
			"--name", "Ada Lovelace", "--email", "ada@example.com", "--resume", "Analytical engine programs")
		require.Error(t, err, id)
		assert.Equal(t, "Job not found\n", out)
	}

	_, err = runCLI(t, dir, nil, "jobs", "apply", "one",
		"--name", "Ada Lovelace", "--email", "ada@example.com", "--resume", "Analytical engine programs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")

	out, err = runCLI(t, dir, nil, "jobs", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Salary: $140,000 - $180,000")
	assert.Contains(t, out, "Apply at: https://careers.google.com")
}

func TestSkillGapPage(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, nil, "login", "--email", "ada@example.com", "--password", "pw")
	require.NoError(t, err)

	_, err = runCLI(t, dir, nil, "skill-gap", "--resume", "Go", "--role", "SRE")
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrAnalyzerUnavailable)

	client := &fakeLLM{answer: `{"matchingSkills":["Java"],"missingSkills":["Rust"],"industryTrends":[],"recommendations":["Learn Rust"],"learningResources":[{"title":"The Book","description":"Rust book","type":"Book"}]}`}
	opts := []app.Option{app.WithLLMClient(client)}

	out, err := runCLI(t, dir, opts, "skill-gap", "--resume", "Java and AWS", "--job", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Skill gap analysis for Software Development Engineer II")
	assert.Contains(t, out, "• Rust")
	assert.Contains(t, out, "INDUSTRY TRENDS")
	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "The Book [Book]: Rust book")
	assert.Contains(t, client.prompt, "My resume: Java and AWS")

	bad := &fakeLLM{answer: "no json here"}
	_, err = runCLI(t, dir, []app.Option{app.WithLLMClient(bad)}, "skill-gap", "--resume", "Java", "--role", "SRE")
	require.Error(t, err)
	assert.Equal(t, "Analysis failed. Please try again.", err.Error())

	_, err = runCLI(t, dir, opts, "skill-gap", "--resume", "  ", "--role", "SRE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please enter your resume or skills for analysis")
}

func TestExportPage(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, dir, nil, "login", "--email", "ada@example.com", "--password", "pw")
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "board")
	out, err := runCLI(t, dir, nil, "export", "--out", target, "-q", "amazon")
	require.NoError(t, err)
	assert.Equal(t, "Exported 1 jobs and 1 interview experiences to "+target+".xlsx\n", out)
	assert.FileExists(t, target+".xlsx")
}
