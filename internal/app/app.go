// Package app builds the career board services once so that the HTTP server
// and the CLI pages share a single construction path.
package app

import (
	"context"
	"fmt"

	"github.com/jonathan/career-board/internal/auth"
	"github.com/jonathan/career-board/internal/config"
	"github.com/jonathan/career-board/internal/llm"
	"github.com/jonathan/career-board/internal/skillgap"
	"github.com/jonathan/career-board/internal/store"
)

// ErrAnalyzerUnavailable is returned by Services.SkillGap when no backend is configured.
var ErrAnalyzerUnavailable = fmt.Errorf("skill gap analyzer unavailable: set %s or %s",
	config.EnvGeminiAPIKey, config.EnvVertexProject)

// Services is the wired set of career board services.
type Services struct {
	Config     config.Config
	Interviews *store.InterviewStore
	Jobs       *store.JobStore
	Auth       *auth.Holder

	analyzer *skillgap.Analyzer
	client   llm.Client
}

// Option overrides a dependency, mostly for tests.
type Option func(*options)

type options struct {
	storage auth.Storage
	client  llm.Client
	latency *store.Latency
}

// WithStorage replaces the file-backed session storage.
func WithStorage(s auth.Storage) Option {
	return func(o *options) { o.storage = s }
}

// WithLLMClient replaces the Gemini client.
func WithLLMClient(c llm.Client) Option {
	return func(o *options) { o.client = c }
}

// WithLatency overrides the store delays regardless of configuration.
func WithLatency(l store.Latency) Option {
	return func(o *options) { o.latency = &l }
}

// New constructs every service from cfg.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*Services, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	seed, err := store.LoadSeed()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}

	latency := store.DefaultLatency()
	if !cfg.LatencyEnabled() {
		latency = store.NoLatency()
	}
	if o.latency != nil {
		latency = *o.latency
	}

	storage := o.storage
	if storage == nil {
		fs, err := auth.NewFileStorage(cfg.SessionDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open session storage: %w", err)
		}
		storage = fs
	}

	s := &Services{
		Config:     cfg,
		Interviews: store.NewInterviewStore(seed.Interviews, store.WithLatency(latency)),
		Jobs:       store.NewJobStore(seed.Jobs, store.WithLatency(latency)),
		Auth:       auth.NewHolder(storage),
	}

	client := o.client
	if client == nil && cfg.AnalyzerConfigured() {
		client, err = llm.NewClient(ctx, llmConfig(cfg), cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}
	if client != nil {
		s.client = client
		s.analyzer = skillgap.NewAnalyzer(client)
	}

	return s, nil
}

// llmConfig picks the Gemini API when a key is set and Vertex AI otherwise.
func llmConfig(cfg config.Config) *llm.Config {
	llmCfg := llm.DefaultConfig().WithModel(cfg.GeminiModel)
	if cfg.GeminiAPIKey == "" {
		llmCfg = llmCfg.ForVertex(cfg.VertexProject, cfg.VertexLocation)
	}
	return llmCfg
}

// SkillGap returns the analyzer, or ErrAnalyzerUnavailable.
func (s *Services) SkillGap() (*skillgap.Analyzer, error) {
	if s.analyzer == nil {
		return nil, ErrAnalyzerUnavailable
	}
	return s.analyzer, nil
}

// Close releases the LLM client.
func (s *Services) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
