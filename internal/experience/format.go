// Package experience assembles structured interview write-ups into the narrative stored on the board.
package experience

import (
	"fmt"
	"strings"
)

// Writeup holds the sections a member fills in when sharing an interview.
type Writeup struct {
	InterviewRounds     string
	TechnicalQuestions  string
	SystemDesign        string // optional
	BehavioralQuestions string
	OverallExperience   string
}

// Format renders the write-up as a single narrative. The System Design
// section is left out entirely when it is empty.
func Format(w Writeup) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nThe interview process consisted of %s rounds.\n\n", w.InterviewRounds)
	fmt.Fprintf(&sb, "Technical Questions: %s\n\n", w.TechnicalQuestions)
	if w.SystemDesign != "" {
		fmt.Fprintf(&sb, "System Design: %s\n\n", w.SystemDesign)
	}
	fmt.Fprintf(&sb, "Behavioral Questions: %s\n\n", w.BehavioralQuestions)
	fmt.Fprintf(&sb, "Overall Experience: %s", w.OverallExperience)
	return strings.TrimSpace(sb.String())
}
