package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/career-board/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPrintJobPosting(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobPosting(types.JobPosting{
		ID:             1,
		Company:        "Acme Corp",
		Position:       "Senior Engineer",
		Location:       "Remote",
		Description:    "Build things.",
		Requirements:   []string{"Go", "Kubernetes"},
		Salary:         strPtr("$150k"),
		PostedDate:     "2024-02-01",
		ApplicationURL: strPtr("https://acme.example/jobs/1"),
	})
	output := buf.String()

	assert.Contains(t, output, "SENIOR ENGINEER")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Salary: $150k")
	assert.Contains(t, output, "• Kubernetes")
	assert.Contains(t, output, "Apply at: https://acme.example/jobs/1")
}

func TestPrintJobPosting_OptionalFieldsOmitted(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobPosting(types.JobPosting{Company: "Acme", Position: "SRE", Requirements: []string{"Linux"}})

	assert.NotContains(t, buf.String(), "Salary")
	assert.NotContains(t, buf.String(), "Apply at")
}

func TestPrintInterview(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintInterview(types.InterviewExperience{
		Company:    "Stripe",
		Position:   "Backend Engineer",
		Date:       "2024-03-10",
		Experience: "The interview process consisted of 4 rounds.\n\nOverall Experience: Friendly.",
	})
	output := buf.String()

	assert.Contains(t, output, "STRIPE INTERVIEW")
	assert.Contains(t, output, "Shared:   2024-03-10")
	assert.Contains(t, output, "Overall Experience: Friendly.")
}

func TestPrintSkillGap(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkillGap("Platform Engineer", &types.SkillGapResult{
		MatchingSkills: []string{"Go"},
		MissingSkills:  []string{"Terraform"},
		LearningResources: []types.LearningResource{
			{Title: "Terraform Up & Running", Description: "Book on IaC", Type: "Book"},
		},
	})
	output := buf.String()

	assert.True(t, strings.HasPrefix(output, "Skill gap analysis for Platform Engineer\n"))
	assert.Contains(t, output, "SKILLS TO DEVELOP")
	assert.Contains(t, output, "• Terraform")
	assert.Contains(t, output, "(none)", "empty sections are marked")
	assert.Contains(t, output, "Terraform Up & Running [Book]: Book on IaC")
}

func TestPrintSkillGap_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkillGap("SRE", nil)
	assert.Empty(t, buf.String())
}

func TestPrintBox_WrapsLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := strings.Repeat("word ", 40)
	p.printBox("TITLE", long)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Greater(t, len(lines), 5)
	for _, line := range lines {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
	assert.Equal(t, 40, strings.Count(buf.String(), "word"), "nothing is truncated")
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{name: "fits", in: "short line", width: 20, want: []string{"short line"}},
		{name: "empty", in: "", width: 20, want: []string{""}},
		{name: "breaks on words", in: "alpha beta gamma delta", width: 11, want: []string{"alpha beta", "  gamma", "  delta"}},
		{name: "keeps indent", in: "  • one two three", width: 10, want: []string{"  • one", "    two", "    three"}},
		{name: "cuts long word", in: "abcdefghij", width: 4, want: []string{"abcd", "  ef", "  gh", "  ij"}},
		{name: "indent equal to width is capped", in: strings.Repeat(" ", 10) + "word", width: 10, want: []string{"     word"}},
		{name: "indent beyond width is capped", in: strings.Repeat(" ", 14) + "indented", width: 10, want: []string{"     inde", "     nted"}},
		{name: "multibyte word cut on runes", in: strings.Repeat("é", 7), width: 4, want: []string{"éééé", "  éé", "  é"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.in, tt.width))
		})
	}
}

func TestWrap_LinesStayWithinWidth(t *testing.T) {
	inputs := []string{
		strings.Repeat(" ", contentWidth) + "word",
		strings.Repeat(" ", contentWidth+4) + "indented recommendation text that keeps going past the edge",
		"a" + strings.Repeat("é", 80),
		strings.Repeat("日本語", 30),
	}

	for _, in := range inputs {
		lines := wrap(in, contentWidth)
		require.NotEmpty(t, lines)
		for _, line := range lines {
			assert.True(t, utf8.ValidString(line), "line %q", line)
			assert.LessOrEqual(t, utf8.RuneCountInString(line), contentWidth, "line %q", line)
		}
	}
}

func TestPrintSkillGap_IndentedModelOutput(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSkillGap("SRE", &types.SkillGapResult{
		Recommendations: []string{"intro\n" + strings.Repeat(" ", 60) + "indented", strings.Repeat("é", 70)},
	})

	output := buf.String()
	assert.Contains(t, output, "indented")
	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n")[1:] {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestPrintBox_AlignsMultibyteLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("RÉSUMÉ", "  • café\n  • naïve")

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
		assert.True(t, strings.HasSuffix(line, "│") || strings.HasSuffix(line, "┐") ||
			strings.HasSuffix(line, "┤") || strings.HasSuffix(line, "┘"), "line %q", line)
	}
}
