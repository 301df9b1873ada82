// Package llm provides the generative-language client used by the skill gap analyzer.
package llm

// Provider represents an LLM provider
type Provider string

// Supported providers.
const (
	// ProviderGemini calls the Gemini API with an API key
	ProviderGemini Provider = "gemini"
	// ProviderVertex calls Gemini through Vertex AI with application default credentials
	ProviderVertex Provider = "vertex"
)

// DefaultVertexLocation is used when no Vertex AI region is configured.
const DefaultVertexLocation = "us-central1"

// DefaultModel is the Gemini model the analyzer talks to.
const DefaultModel = "gemini-2.0-flash"

// GenerationParams are the sampling settings sent with every request.
type GenerationParams struct {
	Temperature     float32
	TopK            int32
	TopP            float32
	MaxOutputTokens int32
}

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
	Params   GenerationParams

	// Project and Location select the Vertex AI endpoint. Unused by ProviderGemini.
	Project  string
	Location string
}

// DefaultConfig returns the Gemini configuration used for skill gap analysis.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
		Params: GenerationParams{
			Temperature:     0.4,
			TopK:            32,
			TopP:            0.95,
			MaxOutputTokens: 8192,
		},
	}
}

// WithModel returns a copy of the config using model. An empty model keeps the current one.
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	if model != "" {
		newConfig.Model = model
	}
	return &newConfig
}

// ForVertex returns a copy of the config targeting Vertex AI in project.
// An empty location falls back to DefaultVertexLocation.
func (c *Config) ForVertex(project, location string) *Config {
	newConfig := *c
	newConfig.Provider = ProviderVertex
	newConfig.Project = project
	newConfig.Location = location
	if newConfig.Location == "" {
		newConfig.Location = DefaultVertexLocation
	}
	return &newConfig
}
