package skillgap

import (
	"errors"
	"fmt"
)

// ErrAnalysisFailed matches every AnalysisError via errors.Is.
var ErrAnalysisFailed = errors.New("skill gap analysis failed")

// UserMessage is the only failure text shown to end users.
const UserMessage = "Analysis failed. Please try again."

// Stage identifies where an analysis broke down.
type Stage string

// Analysis stages.
const (
	StagePrompt  Stage = "prompt"  // rendering the prompt template
	StageRequest Stage = "request" // calling the model
	StageExtract Stage = "extract" // locating the JSON object in the answer
	StageSchema  Stage = "schema"  // the JSON is missing fields or has wrong types
	StageDecode  Stage = "decode"  // decoding into the result shape
)

// AnalysisError represents a failed skill gap analysis
type AnalysisError struct {
	Stage   Stage
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill gap %s: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("skill gap %s: %s", e.Stage, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// Is reports ErrAnalysisFailed as a match.
func (e *AnalysisError) Is(target error) bool {
	return target == ErrAnalysisFailed
}
