// Package ideas orchestrates the generation pipeline: it tries the
// generative model first and routes every failure kind to the fallback
// synthesizer, so a caller always receives usable data.
package ideas

import (
	"context"
	"fmt"
	"sync"

	"ideaforge/internal/core"
	"ideaforge/internal/llm"
	"ideaforge/internal/logger"
	"ideaforge/internal/prompt"
	"ideaforge/internal/synth"
	"ideaforge/internal/trends"
)

// FallbackNotice is the retained message attached to results produced by the
// synthesizer after a model failure; callers may surface it to the user.
const FallbackNotice = "Falling back to enhanced mock generation"

// Generator is the model-backed generation surface. It is nil-able at the
// Service level: a Service without a Generator runs in fallback-only mode.
type Generator interface {
	GenerateIdeas(ctx context.Context, profile core.Profile) ([]core.Idea, error)
	GenerateInsight(ctx context.Context, idea core.Idea, insightType core.InsightType) (*llm.Insight, error)
}

// Service ties the generation client, fallback synthesizer, and validation
// synthesizer together behind the operations the HTTP and CLI layers call.
type Service struct {
	gen    Generator
	synth  *synth.Synthesizer
	trends *trends.Synthesizer
}

// NewService builds a Service. gen may be nil when no model credential is
// configured; generation then always uses the synthesizer.
func NewService(gen Generator, syn *synth.Synthesizer, tr *trends.Synthesizer) *Service {
	return &Service{gen: gen, synth: syn, trends: tr}
}

// HasGenerator reports whether a model-backed generator is configured.
func (s *Service) HasGenerator() bool {
	return s.gen != nil
}

// GenerationResult is an idea batch plus its provenance. Notice carries the
// retained model error message when the batch came from the fallback path.
type GenerationResult struct {
	Ideas    []core.Idea `json:"ideas"`
	Fallback bool        `json:"fallback"`
	Notice   string      `json:"notice,omitempty"`
}

// Generate produces an idea batch for a profile. Model failures of any kind
// are logged and routed to the synthesizer; Generate itself never fails.
func (s *Service) Generate(ctx context.Context, profile core.Profile) GenerationResult {
	if s.gen == nil {
		logger.Info("no model credential configured, using fallback generation")
		return GenerationResult{Ideas: s.synth.Ideas(profile), Fallback: true}
	}

	ideas, err := s.gen.GenerateIdeas(ctx, profile)
	if err != nil {
		logger.Warn("idea generation failed, using fallback", "error", err.Error())
		return GenerationResult{
			Ideas:    s.synth.Ideas(profile),
			Fallback: true,
			Notice:   FallbackNotice + ": " + err.Error(),
		}
	}
	return GenerationResult{Ideas: ideas}
}

// ValidationResult is a validation bundle plus the provenance of each
// model-backed insight in it. Notices carry the retained model error messages
// when an insight came from the fallback path.
type ValidationResult struct {
	core.ValidationData
	AudienceFallback     bool     `json:"audienceFallback"`
	MonetizationFallback bool     `json:"monetizationFallback"`
	Notices              []string `json:"notices,omitempty"`
}

// Validate computes the full validation bundle for an idea: synthetic keyword
// trends, competitor counts, and demand signals, plus the target-audience and
// monetization insights. The two insight calls run concurrently and each
// falls back independently; Validate never fails.
func (s *Service) Validate(ctx context.Context, idea core.Idea) ValidationResult {
	res := ValidationResult{ValidationData: s.trends.Validate(idea)}

	var audNotice, monNotice string
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		res.TargetAudience, res.AudienceFallback, audNotice = s.audienceInsight(ctx, idea)
	}()
	go func() {
		defer wg.Done()
		res.Monetization, res.MonetizationFallback, monNotice = s.monetizationInsight(ctx, idea)
	}()
	wg.Wait()

	for _, n := range []string{audNotice, monNotice} {
		if n != "" {
			res.Notices = append(res.Notices, n)
		}
	}
	return res
}

func (s *Service) audienceInsight(ctx context.Context, idea core.Idea) (*core.TargetAudience, bool, string) {
	if s.gen != nil {
		insight, err := s.gen.GenerateInsight(ctx, idea, core.InsightTargetAudience)
		if err == nil && insight.TargetAudience != nil {
			return insight.TargetAudience, false, ""
		}
		if err != nil {
			logger.Warn("target audience insight failed, using fallback", "idea", idea.ID, "error", err.Error())
			return s.synth.Persona(idea), true, FallbackNotice + ": " + err.Error()
		}
	}
	return s.synth.Persona(idea), true, ""
}

func (s *Service) monetizationInsight(ctx context.Context, idea core.Idea) (*core.MonetizationStrategy, bool, string) {
	if s.gen != nil {
		insight, err := s.gen.GenerateInsight(ctx, idea, core.InsightMonetization)
		if err == nil && insight.Monetization != nil {
			return insight.Monetization, false, ""
		}
		if err != nil {
			logger.Warn("monetization insight failed, using fallback", "idea", idea.ID, "error", err.Error())
			return s.synth.Monetization(idea), true, FallbackNotice + ": " + err.Error()
		}
	}
	return s.synth.Monetization(idea), true, ""
}

// InsightResult is one insight payload plus its provenance.
type InsightResult struct {
	Insight  *llm.Insight `json:"insight"`
	Fallback bool         `json:"fallback"`
}

// Insight generates a single enrichment analysis for an idea. Target
// audience, monetization, and roadmap requests fall back to synthesized
// payloads on model failure. Competitor analysis has no synthesized
// equivalent, so its failures propagate to the caller.
func (s *Service) Insight(ctx context.Context, idea core.Idea, insightType core.InsightType) (InsightResult, error) {
	if s.gen != nil {
		insight, err := s.gen.GenerateInsight(ctx, idea, insightType)
		if err == nil {
			return InsightResult{Insight: insight}, nil
		}
		if insightType == core.InsightCompetitorAnalysis {
			return InsightResult{}, err
		}
		logger.Warn("insight generation failed, using fallback", "type", string(insightType), "error", err.Error())
	} else if insightType == core.InsightCompetitorAnalysis {
		return InsightResult{}, llm.ErrMissingAPIKey
	}

	insight := &llm.Insight{Type: insightType}
	switch insightType {
	case core.InsightTargetAudience:
		insight.TargetAudience = s.synth.Persona(idea)
	case core.InsightMonetization:
		insight.Monetization = s.synth.Monetization(idea)
	case core.InsightRoadmap:
		insight.Roadmap = s.synth.RoadmapPlan(idea)
	default:
		return InsightResult{}, fmt.Errorf("%w: %q", prompt.ErrUnknownInsightType, insightType)
	}
	return InsightResult{Insight: insight, Fallback: true}, nil
}
