// Package observability provides boxed, human-readable output for the CLI pages.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/career-board/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// contentWidth is the room left inside the borders
	contentWidth = boxWidth - 4
)

// Printer writes formatted boxes
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a box with a title and content. Long lines are wrapped at
// word boundaries.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	for _, line := range wrap(title, contentWidth) {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, contentWidth))
	}
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, raw := range strings.Split(content, "\n") {
		for _, line := range wrap(raw, contentWidth) {
			fmt.Fprintf(p.out, "│ %s │\n", pad(line, contentWidth))
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// wrap splits s into lines of at most width runes. Leading indentation is
// kept on continuation lines but capped at half the width; words longer than
// the room left are cut on rune boundaries.
func wrap(s string, width int) []string {
	if utf8.RuneCountInString(s) <= width {
		return []string{s}
	}

	indent := s[:len(s)-len(strings.TrimLeft(s, " "))]
	indent = indent[:min(len(indent), width/2)]
	cont := indent + "  "
	if len(cont) > width/2 {
		cont = indent
	}

	var (
		lines   []string
		current []rune
		prefix  = []rune(indent)
	)
	flush := func() {
		if strings.TrimSpace(string(current)) != "" {
			lines = append(lines, string(current))
		}
		current = nil
		prefix = []rune(cont)
	}

	for _, field := range strings.Fields(s) {
		word := []rune(field)
		switch {
		case len(current) == 0:
		case len(current)+1+len(word) <= width:
			current = append(current, ' ')
			current = append(current, word...)
			continue
		default:
			flush()
		}

		for len(prefix)+len(word) > width {
			room := width - len(prefix)
			lines = append(lines, string(prefix)+string(word[:room]))
			word = word[room:]
			prefix = []rune(cont)
		}
		current = append(append([]rune{}, prefix...), word...)
	}
	flush()
	return lines
}

// PrintJobPosting outputs the full job detail page.
func (p *Printer) PrintJobPosting(job types.JobPosting) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	sb.WriteString(fmt.Sprintf("Posted:   %s\n", job.PostedDate))
	if job.Salary != nil {
		sb.WriteString(fmt.Sprintf("Salary: %s\n", *job.Salary))
	}
	sb.WriteString("\n")
	sb.WriteString(job.Description)
	sb.WriteString("\n")

	if len(job.Requirements) > 0 {
		sb.WriteString("\nRequirements:\n")
		for _, req := range job.Requirements {
			sb.WriteString(fmt.Sprintf("  • %s\n", req))
		}
	}

	if job.ApplicationURL != nil {
		sb.WriteString(fmt.Sprintf("\nApply at: %s\n", *job.ApplicationURL))
	}

	p.printBox(strings.ToUpper(job.Position), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInterview outputs one interview experience.
func (p *Printer) PrintInterview(experience types.InterviewExperience) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Position: %s\n", experience.Position))
	sb.WriteString(fmt.Sprintf("Shared:   %s\n", experience.Date))
	sb.WriteString("\n")
	sb.WriteString(experience.Experience)

	p.printBox(strings.ToUpper(experience.Company)+" INTERVIEW", sb.String())
}

// PrintSkillGap outputs a skill gap report, one box per section.
func (p *Printer) PrintSkillGap(jobRole string, result *types.SkillGapResult) {
	if result == nil {
		return
	}

	sections := []struct {
		title string
		items []string
	}{
		{"MATCHING SKILLS", result.MatchingSkills},
		{"SKILLS TO DEVELOP", result.MissingSkills},
		{"INDUSTRY TRENDS", result.IndustryTrends},
		{"RECOMMENDATIONS", result.Recommendations},
	}

	_, _ = fmt.Fprintf(p.out, "Skill gap analysis for %s\n", jobRole)
	for _, section := range sections {
		p.printBox(section.title, bulletList(section.items))
	}

	resources := make([]string, 0, len(result.LearningResources))
	for _, r := range result.LearningResources {
		resources = append(resources, fmt.Sprintf("%s [%s]: %s", r.Title, r.Type, r.Description))
	}
	p.printBox("LEARNING RESOURCES", bulletList(resources))
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "  (none)"
	}
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  • ")
		sb.WriteString(item)
	}
	return sb.String()
}
