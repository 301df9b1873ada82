// Package skillgap compares a resume with a target role using a generative
// language model and returns the structured gap report.
package skillgap

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/career-board/internal/llm"
	"github.com/jonathan/career-board/internal/prompts"
	"github.com/jonathan/career-board/internal/schemas"
	"github.com/jonathan/career-board/internal/types"
)

// Analyzer runs skill gap analyses.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an Analyzer backed by client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze asks the model for a gap report between resume and jobRole.
// Every failure is an *AnalysisError; nothing is substituted for a bad answer.
func (a *Analyzer) Analyze(ctx context.Context, resume, jobRole string) (*types.SkillGapResult, error) {
	result, err := a.analyze(ctx, resume, jobRole)
	if err != nil {
		log.Printf("[skill-gap] Analysis for role %q failed: %v", jobRole, err)
		return nil, err
	}
	return result, nil
}

func (a *Analyzer) analyze(ctx context.Context, resume, jobRole string) (*types.SkillGapResult, error) {
	prompt, err := prompts.Render(prompts.SkillGapFile, "analyze", map[string]string{
		"Resume":  resume,
		"JobRole": jobRole,
	})
	if err != nil {
		return nil, &AnalysisError{Stage: StagePrompt, Message: "failed to render prompt", Cause: err}
	}

	answer, err := a.client.Generate(ctx, prompt)
	if err != nil {
		return nil, &AnalysisError{Stage: StageRequest, Message: "model request failed", Cause: err}
	}

	object, ok := llm.ExtractJSONObject(answer)
	if !ok {
		return nil, &AnalysisError{Stage: StageExtract, Message: "could not extract JSON from the response"}
	}

	if err := schemas.ValidateSkillGap(object); err != nil {
		return nil, &AnalysisError{Stage: StageSchema, Message: "response does not match the expected shape", Cause: err}
	}

	var result types.SkillGapResult
	if err := json.Unmarshal([]byte(object), &result); err != nil {
		return nil, &AnalysisError{Stage: StageDecode, Message: "failed to decode response", Cause: err}
	}
	return &result, nil
}
