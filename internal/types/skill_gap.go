//nolint:revive // types is a standard Go package name pattern
package types

// SkillGapResult is the structured answer of a skill gap analysis.
type SkillGapResult struct {
	MatchingSkills    []string           `json:"matchingSkills"`
	MissingSkills     []string           `json:"missingSkills"`
	IndustryTrends    []string           `json:"industryTrends"`
	Recommendations   []string           `json:"recommendations"`
	LearningResources []LearningResource `json:"learningResources"`
}

// LearningResource is a course, book or certification suggestion.
type LearningResource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}
